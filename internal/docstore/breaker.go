package docstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"admindash/internal/backend"
	"admindash/internal/logging"

	"github.com/sony/gobreaker"
)

// Breaker guards a DocumentStore with a circuit breaker. Not-found and
// duplicate-key answers are healthy responses and never trip it.
type Breaker struct {
	inner backend.DocumentStore
	cb    *gobreaker.CircuitBreaker
}

func WithBreaker(inner backend.DocumentStore, name string) *Breaker {
	return &Breaker{
		inner: inner,
		cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        name,
			MaxRequests: 1,
			Timeout:     5 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures > 3
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logging.Logger.Infof("Event ID: CIRCUIT_BREAKER_STATE_CHANGE, Description: Circuit Breaker '%s' changed from '%s' to '%s'", name, from.String(), to.String())
			},
			IsSuccessful: func(err error) bool {
				return err == nil ||
					errors.Is(err, backend.ErrNotFound) ||
					errors.Is(err, backend.ErrDuplicate)
			},
		}),
	}
}

func (b *Breaker) run(fn func() error) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, fn()
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", backend.ErrUnavailable, err)
	}
	return err
}

func (b *Breaker) Get(ctx context.Context, collection, id string, out any) error {
	return b.run(func() error { return b.inner.Get(ctx, collection, id, out) })
}

func (b *Breaker) Query(ctx context.Context, collection string, q backend.Query, out any) error {
	return b.run(func() error { return b.inner.Query(ctx, collection, q, out) })
}

func (b *Breaker) Insert(ctx context.Context, collection string, doc any) (id string, err error) {
	err = b.run(func() error {
		id, err = b.inner.Insert(ctx, collection, doc)
		return err
	})
	return id, err
}

func (b *Breaker) InsertMany(ctx context.Context, collection string, docs []any) error {
	return b.run(func() error { return b.inner.InsertMany(ctx, collection, docs) })
}

func (b *Breaker) Update(ctx context.Context, collection, id string, patch backend.Patch) error {
	return b.run(func() error { return b.inner.Update(ctx, collection, id, patch) })
}

func (b *Breaker) Delete(ctx context.Context, collection, id string) error {
	return b.run(func() error { return b.inner.Delete(ctx, collection, id) })
}

func (b *Breaker) Count(ctx context.Context, collection string, filter backend.Filter) (n int64, err error) {
	err = b.run(func() error {
		n, err = b.inner.Count(ctx, collection, filter)
		return err
	})
	return n, err
}

func (b *Breaker) Subscribe(ctx context.Context, collection string, q backend.Query) (sub *backend.Subscription, err error) {
	err = b.run(func() error {
		sub, err = b.inner.Subscribe(ctx, collection, q)
		return err
	})
	return sub, err
}
