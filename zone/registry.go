// SPDX-License-Identifier: MIT
// Package: epochal/zone
//
// registry.go — the process-wide provider binding and the memoizing rules
// cache. The cache is keyed by identifier; concurrent first lookups for the
// same id collapse into one provider call via singleflight. Registering a
// provider invalidates the cache, so re-binding in tests is safe.

package zone

import (
	"errors"
	"sync"

	"golang.org/x/sync/singleflight"
)

var registry = struct {
	mu       sync.RWMutex
	provider Provider
	cache    map[string]RuleSet
	group    singleflight.Group
}{cache: make(map[string]RuleSet)}

// ErrNilProvider indicates RegisterProvider was called with nil.
var ErrNilProvider = errors.New("zone: nil provider")

// RegisterProvider binds p as the process-wide rules provider. IDs created
// before registration are served by p on their next lookup; a previous
// binding is replaced and the memoized rules are dropped.
func RegisterProvider(p Provider) error {
	if p == nil {
		return ErrNilProvider
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.provider = p
	registry.cache = make(map[string]RuleSet)

	return nil
}

// currentProvider returns the bound provider, if any.
func currentProvider() (Provider, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	return registry.provider, registry.provider != nil
}

// rulesFor resolves rules for id through the cache. Lookup misses hit the
// provider exactly once per id even under concurrent callers.
func rulesFor(id string) (RuleSet, error) {
	registry.mu.RLock()
	rs, hit := registry.cache[id]
	p := registry.provider
	registry.mu.RUnlock()
	if hit {
		return rs, nil
	}
	if p == nil {
		return nil, ErrNoProvider
	}

	v, err, _ := registry.group.Do(id, func() (interface{}, error) {
		got, err := p.Rules(id)
		if err != nil {
			return nil, err
		}

		registry.mu.Lock()
		// Keep the cache coherent with the provider that answered: a
		// re-registration during the flight discards this result.
		if registry.provider == p {
			registry.cache[id] = got
		}
		registry.mu.Unlock()

		return got, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(RuleSet), nil
}
