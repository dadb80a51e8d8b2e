package factory

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/news-lens/internal/storage"
	"github.com/DjordjeVuckovic/news-lens/internal/storage/mongo"
	"github.com/DjordjeVuckovic/news-lens/internal/storage/pg"
)

type StorageConfig struct {
	storage.Type
	Pg    *pg.PoolConfig
	Mongo *mongo.Config
}

// LoadEnv reads the storage settings. STORAGE_TYPE defaults to in_mem.
func LoadEnv() (*StorageConfig, error) {
	storageType := storage.Type(os.Getenv("STORAGE_TYPE"))
	if storageType == "" {
		slog.Info("STORAGE_TYPE is not set, using in-memory storage")
		storageType = storage.InMem
	}
	if !storageType.Valid() {
		slog.Error("Invalid STORAGE_TYPE environment variable value", "value", storageType)
		return nil, fmt.Errorf(
			"invalid STORAGE_TYPE environment variable value: %s, expected one of %v",
			storageType,
			[]storage.Type{storage.InMem, storage.PG, storage.Mongo})
	}

	cfg := &StorageConfig{Type: storageType}

	switch storageType {
	case storage.PG:
		pgCfg := &pg.PoolConfig{
			ConnStr: os.Getenv("PG_CONNECTION_STRING"),
		}
		if pgCfg.ConnStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PG_CONNECTION_STRING is not set")
		}
		if v := os.Getenv("PG_MAX_CONNS"); v != "" {
			n, err := strconv.ParseInt(v, 10, 32)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("invalid PG_MAX_CONNS value: %s", v)
			}
			pgCfg.MaxConns = int32(n)
		}
		cfg.Pg = pgCfg

	case storage.Mongo:
		mongoCfg := &mongo.Config{
			URI:      os.Getenv("MONGO_URI"),
			Database: os.Getenv("MONGO_DATABASE"),
		}
		if mongoCfg.URI == "" {
			slog.Error("MongoDB uri is not set")
			return nil, fmt.Errorf("MONGO_URI is not set")
		}
		cfg.Mongo = mongoCfg
	}

	return cfg, nil
}
