// Package dashboard holds the client-side state of the dashboard panels.
package dashboard

import (
	"context"
	"log/slog"
	"sync"
)

// Snapshot is a consistent read of a Panel.
type Snapshot[T any] struct {
	Data      T
	HasData   bool
	IsLoading bool
	Err       error
}

// Panel keeps the last successfully fetched value of one dashboard panel.
// A failed refresh keeps the previous value visible, records the error and
// clears the loading flag. The zero value is not usable; use NewPanel.
type Panel[T any] struct {
	name string
	log  *slog.Logger

	mu      sync.RWMutex
	data    T
	hasData bool
	loading bool
	err     error
}

// NewPanel creates an empty panel. Panels start in the loading state until
// their first refresh completes.
func NewPanel[T any](name string, logger *slog.Logger) *Panel[T] {
	return &Panel[T]{
		name:    name,
		log:     logger.With("panel", name),
		loading: true,
	}
}

// Refresh runs fetch and stores its result. On error the previous data is
// kept, the error is logged and returned. Loading is cleared either way.
func (p *Panel[T]) Refresh(ctx context.Context, fetch func(context.Context) (T, error)) error {
	p.mu.Lock()
	p.loading = true
	p.mu.Unlock()

	data, err := fetch(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()

	p.loading = false
	if err != nil {
		p.err = err
		p.log.ErrorContext(ctx, "refresh failed",
			slog.String("error", err.Error()),
			slog.Bool("stale_data", p.hasData),
		)
		return err
	}

	p.data = data
	p.hasData = true
	p.err = nil
	return nil
}

// Snapshot returns the current state.
func (p *Panel[T]) Snapshot() Snapshot[T] {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return Snapshot[T]{
		Data:      p.data,
		HasData:   p.hasData,
		IsLoading: p.loading,
		Err:       p.err,
	}
}

// Name returns the panel name.
func (p *Panel[T]) Name() string { return p.name }
