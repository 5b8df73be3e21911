package binding

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/oshokin/config-property/internal/config"
	"github.com/oshokin/config-property/internal/logger"
	"github.com/oshokin/config-property/internal/property"
)

var (
	// ErrAlreadyBound is returned when a marker already has a value.
	ErrAlreadyBound = errors.New("property already bound")
	// ErrNotBound is returned when no value is bound to a marker.
	ErrNotBound = errors.New("property not bound")
)

// Registry maps property markers to raw values.
// It is safe for concurrent use.
type Registry struct {
	// values holds the bound values keyed by marker.
	values map[property.Property]string
	// mu protects values.
	mu sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		values: make(map[property.Property]string),
	}
}

// FromConfig creates a registry holding every property of cfg.
func FromConfig(ctx context.Context, cfg *config.Config) (*Registry, error) {
	r := NewRegistry()

	if cfg == nil {
		return r, nil
	}

	for name, value := range cfg.Properties {
		if err := r.Bind(ctx, property.New(name), value); err != nil {
			return nil, err
		}
	}

	logger.DebugKV(ctx, "Registry built from config", "properties", r.Len())

	return r, nil
}

// Bind stores value under key. A key can be bound only once.
func (r *Registry) Bind(ctx context.Context, key property.Property, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.values[key]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyBound, key)
	}

	r.values[key] = value

	logger.DebugKV(ctx, "Property bound", "property", key.Value(), "hash", key.HashCode())

	return nil
}

// Lookup returns the value bound to key.
func (r *Registry) Lookup(key property.Property) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.values[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotBound, key)
	}

	return value, nil
}

// Keys returns the bound markers sorted by name.
func (r *Registry) Keys() []property.Property {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]property.Property, 0, len(r.values))
	for key := range r.values {
		keys = append(keys, key)
	}

	slices.SortFunc(keys, func(a, b property.Property) int {
		return strings.Compare(a.Value(), b.Value())
	})

	return keys
}

// Len returns the number of bound markers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.values)
}
