package geo

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"voltlink/internal/models"
)

// Provider resolves the user's approximate position.
type Provider interface {
	Locate(ctx context.Context) (models.Coordinates, error)
}

// StaticProvider always returns the configured coordinates.
type StaticProvider struct {
	Coords models.Coordinates
}

// Locate returns the fixed position.
func (p StaticProvider) Locate(context.Context) (models.Coordinates, error) {
	return p.Coords, nil
}

// Resolver obtains the user position once at startup and keeps the result.
// On failure the location is marked loaded with an error and the default
// coordinates are kept.
type Resolver struct {
	provider Provider
	logger   *zap.Logger

	mu        sync.RWMutex
	state     models.UserLocation
	resolving bool
}

// NewResolver builds a resolver with the given default coordinates.
func NewResolver(provider Provider, defaults models.Coordinates, logger *zap.Logger) *Resolver {
	return &Resolver{
		provider: provider,
		logger:   logger,
		state:    models.UserLocation{Coords: defaults},
	}
}

// Resolve performs the one-time lookup and returns the resulting state.
// The lookup itself runs outside the lock so Location reads stay
// responsive while the provider is slow; a concurrent Resolve returns the
// current state without starting a second lookup.
func (r *Resolver) Resolve(ctx context.Context) models.UserLocation {
	r.mu.Lock()
	if r.state.Loaded || r.resolving {
		state := r.state
		r.mu.Unlock()
		return state
	}
	r.resolving = true
	r.mu.Unlock()

	coords, err := r.provider.Locate(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.resolving = false
	if err != nil {
		r.logger.Warn("location lookup failed", zap.Error(err))
		r.state.Loaded = true
		r.state.Error = err.Error()
		return r.state
	}

	r.state = models.UserLocation{Coords: coords, Loaded: true}
	return r.state
}

// Location returns the current location state.
func (r *Resolver) Location() models.UserLocation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}
