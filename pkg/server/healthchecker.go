package server

import "context"

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

type OkHealthChecker struct {
}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(ctx context.Context) bool {
	return true
}

// AllHealthy is healthy only when every checker is. Nil entries are skipped.
type AllHealthy []HealthChecker

func (a AllHealthy) Healthy(ctx context.Context) bool {
	for _, hc := range a {
		if hc != nil && !hc.Healthy(ctx) {
			return false
		}
	}
	return true
}
