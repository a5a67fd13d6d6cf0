package probe

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis probes a Redis server given as a redis:// or rediss:// URL.
type Redis struct {
	URL string
}

// NewRedis returns a probe for the server at url.
func NewRedis(url string) *Redis { return &Redis{URL: url} }

func (p *Redis) Name() string { return "Redis" }

// Check sends a single PING on a one-connection client.
func (p *Redis) Check(ctx context.Context) error {
	if p.URL == "" {
		return ErrNotConfigured
	}
	opt, err := redis.ParseURL(p.URL)
	if err != nil {
		return fmt.Errorf("redis probe: parse url: %w", err)
	}
	// one attempt, one connection
	opt.MaxRetries = -1
	opt.PoolSize = 1
	opt.MinIdleConns = 0

	client := redis.NewClient(opt)
	defer func() { _ = client.Close() }()

	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis probe: ping: %w", err)
	}
	return nil
}
