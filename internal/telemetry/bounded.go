package telemetry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hostpulse/internal/domain"
)

type result[T any] struct {
	val T
	err error
}

// bounded runs fn with a deadline of d. The call keeps running in the
// background if it ignores ctx, but its result is discarded.
func bounded[T any](ctx context.Context, d time.Duration, fn func(context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	ch := make(chan result[T], 1)
	go func() {
		v, err := fn(ctx)
		ch <- result[T]{val: v, err: err}
	}()

	var r result[T]
	select {
	case r = <-ch:
	case <-ctx.Done():
		r.err = ctx.Err()
	}

	if r.err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		var zero T
		return zero, fmt.Errorf("%w after %s", domain.ErrProbeTimeout, d)
	}
	return r.val, r.err
}
