package pg

import (
	"context"
	"log/slog"

	"github.com/DjordjeVuckovic/news-lens/pkg/server"
)

type HealthChecker struct {
	pool *ConnectionPool
}

func NewHealthChecker(pool *ConnectionPool) *HealthChecker {
	return &HealthChecker{
		pool: pool,
	}
}

// Healthy reports whether a pooled connection answers a ping.
func (hc *HealthChecker) Healthy(ctx context.Context) bool {
	if hc.pool == nil {
		return false
	}

	if err := hc.pool.Ping(ctx); err != nil {
		slog.Warn("Postgres health check failed", "error", err)
		return false
	}
	return true
}

var _ server.HealthChecker = (*HealthChecker)(nil)
