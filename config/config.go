package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"

	"github.com/02priyeshraj/Restaurant_Management_Backend/models"
)

type Config struct {
	ServiceName string
	LoggerLevel string

	AppPort        int
	RequestTimeout time.Duration

	MongoURI      string
	MongoDatabase string
	MongoTimeout  time.Duration

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	KafkaBroker     string
	KafkaOrderTopic string

	SecretKey       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	BcryptCost      int

	DefaultReservationMinutes int
	Timezone                  string

	CORSAllowedOrigins []string
	StaticDir          string
	PublicBaseURL      string

	TraceExporter string
	OTLPEndpoint  string
}

func Load() Config {
	_ = godotenv.Load(".env")

	cfg := Config{}

	cfg.ServiceName = cast.ToString(getOrReturnDefault("SERVICE_NAME", "restaurant-api"))
	cfg.LoggerLevel = cast.ToString(getOrReturnDefault("LOGGER_LEVEL", "debug"))

	cfg.AppPort = cast.ToInt(getOrReturnDefault("APP_PORT", 8000))
	cfg.RequestTimeout = cast.ToDuration(getOrReturnDefault("REQUEST_TIMEOUT", "15s"))

	cfg.MongoURI = cast.ToString(getOrReturnDefault("MONGO_URI", "mongodb://localhost:27017"))
	cfg.MongoDatabase = cast.ToString(getOrReturnDefault("MONGO_DATABASE", "restaurant"))
	cfg.MongoTimeout = cast.ToDuration(getOrReturnDefault("MONGO_TIMEOUT", "10s"))

	cfg.RedisHost = cast.ToString(getOrReturnDefault("REDIS_HOST", ""))
	cfg.RedisPort = cast.ToString(getOrReturnDefault("REDIS_PORT", "6379"))
	cfg.RedisPassword = cast.ToString(getOrReturnDefault("REDIS_PASSWORD", ""))
	cfg.RedisDB = cast.ToInt(getOrReturnDefault("REDIS_DB", 0))

	cfg.KafkaBroker = cast.ToString(getOrReturnDefault("KAFKA_BROKER", ""))
	cfg.KafkaOrderTopic = cast.ToString(getOrReturnDefault("KAFKA_ORDER_TOPIC", "restaurant.orders"))

	cfg.SecretKey = cast.ToString(getOrReturnDefault("SECRET_KEY", ""))
	cfg.AccessTokenTTL = cast.ToDuration(getOrReturnDefault("ACCESS_TOKEN_TTL", "24h"))
	cfg.RefreshTokenTTL = cast.ToDuration(getOrReturnDefault("REFRESH_TOKEN_TTL", "168h"))
	cfg.BcryptCost = cast.ToInt(getOrReturnDefault("BCRYPT_COST", 12))

	// Unparsable values are left at 0 so Validate rejects them.
	cfg.DefaultReservationMinutes, _ = cast.ToIntE(getOrReturnDefault("DEFAULT_RESERVATION_MINUTES", models.DefaultReservationMinutes))
	cfg.Timezone = cast.ToString(getOrReturnDefault("RESTAURANT_TIMEZONE", "UTC"))

	cfg.CORSAllowedOrigins = splitList(cast.ToString(getOrReturnDefault("CORS_ALLOWED_ORIGINS", "*")))
	cfg.StaticDir = cast.ToString(getOrReturnDefault("STATIC_DIR", ""))
	cfg.PublicBaseURL = cast.ToString(getOrReturnDefault("PUBLIC_BASE_URL", "http://localhost:8000"))

	cfg.TraceExporter = cast.ToString(getOrReturnDefault("OTEL_EXPORTER", ""))
	cfg.OTLPEndpoint = cast.ToString(getOrReturnDefault("OTEL_EXPORTER_OTLP_ENDPOINT", ""))

	return cfg
}

// Validate rejects settings the server must not start with.
func (c Config) Validate() error {
	if c.SecretKey == "" {
		return errors.New("SECRET_KEY must be set")
	}
	if !models.ValidReservationMinutes(c.DefaultReservationMinutes) {
		return fmt.Errorf("DEFAULT_RESERVATION_MINUTES must be a whole number of minutes between %d and %d",
			models.MinReservationMinutes, models.MaxReservationMinutes)
	}
	return nil
}

// Location resolves the restaurant timezone, falling back to UTC.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getOrReturnDefault(key string, defaultValue interface{}) interface{} {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
