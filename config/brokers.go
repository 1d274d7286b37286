package config

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

// ConnectRedis returns nil without error when REDIS_HOST is unset.
func ConnectRedis(ctx context.Context, cfg Config) (*redis.Client, error) {
	if cfg.RedisHost == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisHost + ":" + cfg.RedisPort,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}

// Order events are written inline with the request that caused them.
const kafkaBatchTimeout = 10 * time.Millisecond

// NewKafkaWriter returns nil when KAFKA_BROKER is unset.
func NewKafkaWriter(cfg Config) *kafka.Writer {
	if cfg.KafkaBroker == "" {
		return nil
	}

	return &kafka.Writer{
		Addr:                   kafka.TCP(splitList(cfg.KafkaBroker)...),
		Topic:                  cfg.KafkaOrderTopic,
		Balancer:               &kafka.LeastBytes{},
		BatchTimeout:           kafkaBatchTimeout,
		AllowAutoTopicCreation: true,
	}
}
