package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/news-lens/internal/storage"
	"github.com/DjordjeVuckovic/news-lens/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/news-lens/internal/storage/mongo"
	"github.com/DjordjeVuckovic/news-lens/internal/storage/pg"
	"github.com/DjordjeVuckovic/news-lens/pkg/server"
)

// Storage bundles a repository with the resources behind it.
type Storage struct {
	Repository storage.Repository
	Health     server.HealthChecker
	close      func(ctx context.Context) error
}

func (s *Storage) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// NewRepository connects the backend selected by cfg.Type.
func NewRepository(ctx context.Context, cfg *StorageConfig) (*Storage, error) {
	switch cfg.Type {
	case storage.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("missing PostgreSQL configuration")
		}
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		return &Storage{
			Repository: pg.NewRepository(pool),
			Health:     pg.NewHealthChecker(pool),
			close: func(context.Context) error {
				pool.Close()
				return nil
			},
		}, nil

	case storage.Mongo:
		if cfg.Mongo == nil {
			return nil, fmt.Errorf("missing MongoDB configuration")
		}
		client, err := mongo.Connect(ctx, *cfg.Mongo)
		if err != nil {
			return nil, err
		}
		repo, err := mongo.NewRepository(ctx, client)
		if err != nil {
			_ = client.Close(ctx)
			return nil, err
		}
		return &Storage{
			Repository: repo,
			Health:     client,
			close:      client.Close,
		}, nil

	case storage.InMem:
		return &Storage{
			Repository: in_mem.NewRepository(),
			Health:     server.NewOkHealthChecker(),
		}, nil

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}
