package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("DEFAULT_RESERVATION_MINUTES", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg := Load()

	assert.Equal(t, 8000, cfg.AppPort)
	assert.Equal(t, 120, cfg.DefaultReservationMinutes)
	assert.Equal(t, 24*time.Hour, cfg.AccessTokenTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("ACCESS_TOKEN_TTL", "30m")
	t.Setenv("DEFAULT_RESERVATION_MINUTES", "90")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("RESTAURANT_TIMEZONE", "Europe/Berlin")

	cfg := Load()

	assert.Equal(t, 9090, cfg.AppPort)
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 90, cfg.DefaultReservationMinutes)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "Europe/Berlin", cfg.Location().String())
}

func TestLoad_SecretKeyHasNoDefault(t *testing.T) {
	t.Setenv("SECRET_KEY", "")

	cfg := Load()

	assert.Empty(t, cfg.SecretKey)
	assert.EqualError(t, cfg.Validate(), "SECRET_KEY must be set")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		minutes string
		wantErr bool
	}{
		{name: "default", minutes: "", wantErr: false},
		{name: "lower_bound", minutes: "30", wantErr: false},
		{name: "upper_bound", minutes: "480", wantErr: false},
		{name: "duration_syntax", minutes: "2h", wantErr: true},
		{name: "garbage", minutes: "abc", wantErr: true},
		{name: "too_short", minutes: "15", wantErr: true},
		{name: "too_long", minutes: "600", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SECRET_KEY", "s3cret")
			t.Setenv("DEFAULT_RESERVATION_MINUTES", tt.minutes)

			err := Load().Validate()

			if tt.wantErr {
				assert.ErrorContains(t, err, "DEFAULT_RESERVATION_MINUTES")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLocation_FallsBackToUTC(t *testing.T) {
	cfg := Config{Timezone: "Not/AZone"}
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestOptionalBrokers(t *testing.T) {
	cfg := Config{}

	client, err := ConnectRedis(context.Background(), cfg)
	require.NoError(t, err)
	assert.Nil(t, client)
	assert.Nil(t, NewKafkaWriter(cfg))
}

func TestNewKafkaWriter(t *testing.T) {
	w := NewKafkaWriter(Config{KafkaBroker: "k1:9092,k2:9092", KafkaOrderTopic: "orders"})
	require.NotNil(t, w)
	assert.Equal(t, "orders", w.Topic)
	assert.Equal(t, 10*time.Millisecond, w.BatchTimeout)
	assert.NotNil(t, w.Addr)
}
