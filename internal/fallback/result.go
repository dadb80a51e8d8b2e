package fallback

import (
	"context"
	"errors"
	"log/slog"
)

// ErrDisabled marks a primary collaborator that is not configured.
var ErrDisabled = errors.New("collaborator disabled")

type Origin string

const (
	OriginPrimary  Origin = "primary"
	OriginFallback Origin = "fallback"
)

// Result carries a value together with the arm that produced it.
// Reason is the primary failure when Origin is OriginFallback.
type Result[T any] struct {
	Value  T
	Origin Origin
	Reason error
}

func (r Result[T]) UsedFallback() bool {
	return r.Origin == OriginFallback
}

// Primary is a single attempt at an external collaborator.
type Primary[T any] func(ctx context.Context) (T, error)

// Resolve attempts primary exactly once and falls back to the deterministic
// alternative on any error. A nil primary goes straight to the fallback.
func Resolve[T any](ctx context.Context, name string, primary Primary[T], alt func() T) Result[T] {
	if primary == nil {
		return Result[T]{Value: alt(), Origin: OriginFallback, Reason: ErrDisabled}
	}

	v, err := primary(ctx)
	if err == nil {
		return Result[T]{Value: v, Origin: OriginPrimary}
	}

	if errors.Is(err, ErrDisabled) {
		slog.Debug("Collaborator disabled, using fallback", "collaborator", name)
	} else {
		slog.Warn("Collaborator failed, using fallback", "collaborator", name, "error", err)
	}
	return Result[T]{Value: alt(), Origin: OriginFallback, Reason: err}
}
