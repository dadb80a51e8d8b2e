package fallback

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	t.Run("primary success", func(t *testing.T) {
		altCalled := false
		r := Resolve(ctx, "test", func(ctx context.Context) (string, error) {
			return "live", nil
		}, func() string {
			altCalled = true
			return "demo"
		})

		assert.Equal(t, "live", r.Value)
		assert.Equal(t, OriginPrimary, r.Origin)
		assert.False(t, r.UsedFallback())
		assert.NoError(t, r.Reason)
		assert.False(t, altCalled)
	})

	t.Run("primary failure", func(t *testing.T) {
		calls := 0
		r := Resolve(ctx, "test", func(ctx context.Context) (string, error) {
			calls++
			return "", boom
		}, func() string { return "demo" })

		assert.Equal(t, "demo", r.Value)
		assert.True(t, r.UsedFallback())
		assert.ErrorIs(t, r.Reason, boom)
		assert.Equal(t, 1, calls)
	})

	t.Run("nil primary", func(t *testing.T) {
		r := Resolve[int](ctx, "test", nil, func() int { return 42 })

		assert.Equal(t, 42, r.Value)
		assert.ErrorIs(t, r.Reason, ErrDisabled)
	})
}
