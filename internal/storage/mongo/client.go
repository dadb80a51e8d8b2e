package mongo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/news-lens/pkg/server"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const DefaultDatabase = "news_lens"

type Config struct {
	URI      string
	Database string
}

// Client wraps the MongoDB client and the database the repository writes to.
type Client struct {
	mongoClient *mongo.Client
	database    *mongo.Database
}

func Connect(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.Database == "" {
		cfg.Database = DefaultDatabase
	}

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := mongoClient.Ping(ctx, nil); err != nil {
		_ = mongoClient.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	slog.Info("Connected to mongo", "database", cfg.Database)
	return &Client{
		mongoClient: mongoClient,
		database:    mongoClient.Database(cfg.Database),
	}, nil
}

func (c *Client) Close(ctx context.Context) error {
	if c.mongoClient == nil {
		return nil
	}
	return c.mongoClient.Disconnect(ctx)
}

// Healthy reports whether the primary answers a ping.
func (c *Client) Healthy(ctx context.Context) bool {
	if c == nil || c.mongoClient == nil {
		return false
	}
	if err := c.mongoClient.Ping(ctx, nil); err != nil {
		slog.Warn("Mongo health check failed", "error", err)
		return false
	}
	return true
}

var _ server.HealthChecker = (*Client)(nil)
