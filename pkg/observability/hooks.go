// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about enumeration and lazy map growth.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetEnumerateHooks(&myEnumerateHooks{})
//	    observability.SetMapHooks(&myMapHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Enumerate().OnLayer(ctx, depth, discovered)
//	// ... breadth-first search ...
//	observability.Enumerate().OnComplete(ctx, processed, discovered, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Enumerate Hooks
// =============================================================================

// EnumerateHooks receives events from breadth-first enumeration of the
// Cayley graph.
type EnumerateHooks interface {
	// OnLayer is called when the search starts processing a new distance.
	OnLayer(ctx context.Context, depth, discovered int)

	// OnComplete is called once the node budget is spent or the search stops.
	OnComplete(ctx context.Context, processed, discovered int, duration time.Duration, err error)
}

// =============================================================================
// Map Hooks
// =============================================================================

// MapHooks receives events from lazily materialized maps.
type MapHooks interface {
	// OnStep records a neighbor request. created reports whether a new
	// node had to be allocated.
	OnStep(direction int, created bool)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopEnumerateHooks is a no-op implementation of EnumerateHooks.
type NoopEnumerateHooks struct{}

func (NoopEnumerateHooks) OnLayer(context.Context, int, int)                          {}
func (NoopEnumerateHooks) OnComplete(context.Context, int, int, time.Duration, error) {}

// NoopMapHooks is a no-op implementation of MapHooks.
type NoopMapHooks struct{}

func (NoopMapHooks) OnStep(int, bool) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	enumerateHooks EnumerateHooks = NoopEnumerateHooks{}
	mapHooks       MapHooks       = NoopMapHooks{}
	hooksMu        sync.RWMutex
)

// SetEnumerateHooks registers custom enumeration hooks.
// This should be called once at application startup before any enumeration.
func SetEnumerateHooks(h EnumerateHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		enumerateHooks = h
	}
}

// SetMapHooks registers custom map hooks.
// This should be called once at application startup before any map is built.
func SetMapHooks(h MapHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		mapHooks = h
	}
}

// Enumerate returns the registered enumeration hooks.
func Enumerate() EnumerateHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return enumerateHooks
}

// Map returns the registered map hooks.
func Map() MapHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return mapHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	enumerateHooks = NoopEnumerateHooks{}
	mapHooks = NoopMapHooks{}
}
