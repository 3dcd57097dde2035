package redis

import (
	"context"
	"fmt"
	"time"

	"marketplace-wallet/config"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// keyspace prefixes every key this service writes.
const keyspace = "mpw:"

const (
	dialTimeout = 5 * time.Second
	ioTimeout   = 2 * time.Second
)

// NewClient creates a Redis client and verifies connectivity. The client is
// closed again if the first ping fails.
func NewClient(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (*goredis.Client, error) {
	client := goredis.NewClient(options(cfg))

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis at %s: %w", cfg.Addr(), err)
	}

	log.Info().
		Str("addr", cfg.Addr()).
		Int("db", cfg.DB).
		Str("keyspace", keyspace).
		Msg("Redis connection established")

	return client, nil
}

func options(cfg config.RedisConfig) *goredis.Options {
	return &goredis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  dialTimeout,
		ReadTimeout:  ioTimeout,
		WriteTimeout: ioTimeout,
	}
}
