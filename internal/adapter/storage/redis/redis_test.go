package redis

import (
	"context"
	"strconv"
	"testing"

	"marketplace-wallet/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func miniredisConfig(t *testing.T, s *miniredis.Miniredis) config.RedisConfig {
	t.Helper()
	port, err := strconv.Atoi(s.Port())
	require.NoError(t, err)
	return config.RedisConfig{Host: s.Host(), Port: port}
}

func TestNewClient_Connects(t *testing.T) {
	s := miniredis.RunT(t)

	client, err := NewClient(context.Background(), miniredisConfig(t, s), zerolog.Nop())
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.Set(context.Background(), keyspace+"canary", "1", 0).Err())
	assert.True(t, s.Exists("mpw:canary"))
}

func TestNewClient_PingFailure(t *testing.T) {
	s := miniredis.RunT(t)
	cfg := miniredisConfig(t, s)
	s.Close()

	client, err := NewClient(context.Background(), cfg, zerolog.Nop())
	assert.Error(t, err)
	assert.Nil(t, client)
}

func TestOptions(t *testing.T) {
	opts := options(config.RedisConfig{Host: "redis.example.com", Port: 6380, DB: 2})

	assert.Equal(t, "redis.example.com:6380", opts.Addr)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, ioTimeout, opts.ReadTimeout)
	assert.Equal(t, dialTimeout, opts.DialTimeout)
}

func TestHealthCheck(t *testing.T) {
	s := miniredis.RunT(t)
	client, err := NewClient(context.Background(), miniredisConfig(t, s), zerolog.Nop())
	require.NoError(t, err)
	defer client.Close()

	h := NewHealthCheck(client)
	assert.Equal(t, "redis", h.Name())
	assert.NoError(t, h.Ping(context.Background()))

	s.Close()
	assert.Error(t, h.Ping(context.Background()))
}
