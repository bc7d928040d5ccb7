package storage

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Client wraps the shared Redis connection used for refresh tokens.
type Client struct {
	*redis.Client
}

func NewClient(addr, password string, db int) *Client {
	return &Client{
		Client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

// Wrap adopts an existing redis client, e.g. one produced by redismock.
func Wrap(rdb *redis.Client) *Client {
	return &Client{Client: rdb}
}

func (c *Client) HealthCheck(ctx context.Context) error {
	return c.Ping(ctx).Err()
}

func (c *Client) Close() error {
	return c.Client.Close()
}
