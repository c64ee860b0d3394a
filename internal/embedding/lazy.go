package embedding

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Lazy defers opening the underlying provider until the first embedding call.
// Concurrent first calls collapse into a single open; the resulting provider
// is shared for the lifetime of the process. A failed open is not cached, so
// a later call retries.
type Lazy struct {
	open  func(context.Context) (Provider, error)
	group singleflight.Group

	mu       sync.RWMutex
	provider Provider
}

// NewLazy wraps an open function in at-most-once initialization.
func NewLazy(open func(context.Context) (Provider, error)) *Lazy {
	return &Lazy{open: open}
}

func (l *Lazy) get(ctx context.Context) (Provider, error) {
	l.mu.RLock()
	p := l.provider
	l.mu.RUnlock()
	if p != nil {
		return p, nil
	}

	v, err, _ := l.group.Do("open", func() (interface{}, error) {
		l.mu.RLock()
		cached := l.provider
		l.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}
		opened, err := l.open(ctx)
		if err != nil {
			return nil, err
		}
		l.mu.Lock()
		l.provider = opened
		l.mu.Unlock()
		return opened, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(Provider), nil
}

// Embed opens the provider if needed and delegates.
func (l *Lazy) Embed(ctx context.Context, text string) ([]float32, error) {
	p, err := l.get(ctx)
	if err != nil {
		return nil, err
	}
	return p.Embed(ctx, text)
}

// EmbedBatch opens the provider if needed and delegates.
func (l *Lazy) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	p, err := l.get(ctx)
	if err != nil {
		return nil, err
	}
	return p.EmbedBatch(ctx, texts)
}

// Close closes the underlying provider if it was ever opened.
func (l *Lazy) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.provider == nil {
		return nil
	}
	err := l.provider.Close()
	l.provider = nil
	return err
}
