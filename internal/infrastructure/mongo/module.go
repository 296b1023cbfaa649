package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// createdAtIndex — индекс под выборку журнала "последние сначала".
const createdAtIndex = "created_at_desc"

// Config — журнал вычислений в MongoDB (CALCULATOR_JOURNAL_DRIVER=mongo). Переменные: CALCULATOR_MONGO_*.
type Config struct {
	URI        string `envconfig:"URI" default:"mongodb://localhost:27017"`
	Database   string `envconfig:"DATABASE" default:"calculator"`
	Collection string `envconfig:"COLLECTION" default:"calculations"`
}

// Validate проверяет схему URI и имена базы и коллекции.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.URI, "mongodb://") && !strings.HasPrefix(c.URI, "mongodb+srv://") {
		return fmt.Errorf("mongo: uri %q must start with mongodb:// or mongodb+srv://", c.URI)
	}
	if c.Database == "" || c.Collection == "" {
		return errors.New("mongo: database and collection are required")
	}
	return nil
}

// Client — подключение к MongoDB и коллекция журнала.
type Client struct {
	*mongo.Client
	journal *mongo.Collection
}

// New подключается к MongoDB по конфигу. После использования вызови Close().
func New(ctx context.Context, cfg *Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	journal := client.Database(cfg.Database).Collection(cfg.Collection)
	return &Client{Client: client, journal: journal}, nil
}

// Coll возвращает коллекцию журнала.
func (c *Client) Coll() *mongo.Collection {
	return c.journal
}

// EnsureIndexes создаёт индекс по created_at, если его нет. Повторный вызов ничего не меняет.
func (c *Client) EnsureIndexes(ctx context.Context) error {
	_, err := c.journal.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "created_at", Value: -1}},
		Options: options.Index().SetName(createdAtIndex),
	})
	if err != nil {
		return fmt.Errorf("mongo index %s: %w", createdAtIndex, err)
	}
	return nil
}

// Close отключается от MongoDB.
func (c *Client) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return c.Disconnect(ctx)
}
