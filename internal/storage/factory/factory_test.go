package factory

import (
	"context"
	"testing"

	"github.com/DjordjeVuckovic/news-lens/internal/storage"
	"github.com/DjordjeVuckovic/news-lens/internal/storage/in_mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv_DefaultsToInMem(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "")

	cfg, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, storage.InMem, cfg.Type)
	assert.Nil(t, cfg.Pg)
	assert.Nil(t, cfg.Mongo)
}

func TestLoadEnv_Invalid(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "es")

	_, err := LoadEnv()
	assert.Error(t, err)
}

func TestLoadEnv_PG(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "pg")
	t.Setenv("PG_CONNECTION_STRING", "")

	_, err := LoadEnv()
	require.Error(t, err)

	t.Setenv("PG_CONNECTION_STRING", "postgres://u:p@localhost/db")
	t.Setenv("PG_MAX_CONNS", "8")
	cfg, err := LoadEnv()
	require.NoError(t, err)
	require.NotNil(t, cfg.Pg)
	assert.Equal(t, int32(8), cfg.Pg.MaxConns)

	t.Setenv("PG_MAX_CONNS", "zero")
	_, err = LoadEnv()
	assert.Error(t, err)
}

func TestLoadEnv_Mongo(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "mongo")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("MONGO_DATABASE", "lens")

	cfg, err := LoadEnv()
	require.NoError(t, err)
	require.NotNil(t, cfg.Mongo)
	assert.Equal(t, "lens", cfg.Mongo.Database)
}

func TestNewRepository_InMem(t *testing.T) {
	ctx := context.Background()

	s, err := NewRepository(ctx, &StorageConfig{Type: storage.InMem})
	require.NoError(t, err)
	assert.IsType(t, &in_mem.Repository{}, s.Repository)
	assert.True(t, s.Health.Healthy(ctx))
	assert.NoError(t, s.Close(ctx))
}

func TestNewRepository_Unsupported(t *testing.T) {
	_, err := NewRepository(context.Background(), &StorageConfig{Type: "es"})
	assert.ErrorContains(t, err, "unsupported storage type: es")
}
