package redis

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config — кэш последних результатов. Переменные: CALCULATOR_REDIS_*.
type Config struct {
	Enabled   bool          `envconfig:"ENABLED" default:"false"`
	Host      string        `envconfig:"HOST" default:"localhost"`
	Port      string        `envconfig:"PORT" default:"6379"`
	Password  string        `envconfig:"PASSWORD" default:""`
	DB        int           `envconfig:"DB" default:"0"`
	KeyPrefix string        `envconfig:"KEY_PREFIX" default:"calc:"`
	TTL       time.Duration `envconfig:"TTL" default:"0"` // 0 — без срока жизни
}

// Validate проверяет включённый конфиг.
func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Host == "" || c.Port == "" {
		return errors.New("redis: host and port are required")
	}
	if c.KeyPrefix == "" {
		return errors.New("redis: empty key prefix")
	}
	if c.TTL < 0 {
		return fmt.Errorf("redis: negative ttl %s", c.TTL)
	}
	return nil
}

// Addr возвращает адрес "host:port".
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Client — подключение к Redis вместе с политикой ключей кэша: префикс и срок жизни.
type Client struct {
	*redis.Client
	prefix string
	ttl    time.Duration
}

// New подключается к Redis по конфигу и проверяет пингом.
func New(ctx context.Context, cfg *Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cli := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := cli.Ping(ctx).Err(); err != nil {
		_ = cli.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr(), err)
	}
	return &Client{Client: cli, prefix: cfg.KeyPrefix, ttl: cfg.TTL}, nil
}

// Key — полный ключ Redis для ключа операции ("10 addition 5" → "calc:10 addition 5").
func (c *Client) Key(op string) string {
	return c.prefix + op
}

// TTL — срок жизни записи кэша, 0 — бессрочно.
func (c *Client) TTL() time.Duration {
	return c.ttl
}

// Ping проверяет соединение (для readiness).
func (c *Client) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}
