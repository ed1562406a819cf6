package strategy

import (
	"fmt"
	"sort"
	"sync"

	"github.com/financebook/backend/internal/domain/shared"
	"github.com/financebook/backend/internal/domain/strategy"
)

// Registry maps strategy discriminators to implementations. An unrecognized
// name is a configuration error, never a silent fallback to a default.
type Registry struct {
	mu           sync.RWMutex
	depreciation map[string]strategy.Depreciation
	tax          map[string]strategy.Tax
}

// NewRegistry creates an empty strategy registry.
func NewRegistry() *Registry {
	return &Registry{
		depreciation: make(map[string]strategy.Depreciation),
		tax:          make(map[string]strategy.Tax),
	}
}

// Default creates a registry pre-populated with the built-in strategies:
// straight-line and declining-balance depreciation, income and social tax.
func Default() *Registry {
	r := NewRegistry()
	// Built-ins have distinct names; registration cannot fail here.
	_ = r.RegisterDepreciation(strategy.NewStraightLine())
	_ = r.RegisterDepreciation(strategy.NewDecliningBalance())
	_ = r.RegisterTax(strategy.NewIncomeTax())
	_ = r.RegisterTax(strategy.NewSocialTax())
	return r
}

// RegisterDepreciation registers a depreciation strategy under its method
// name.
func (r *Registry) RegisterDepreciation(s strategy.Depreciation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := s.Method()
	if _, exists := r.depreciation[name]; exists {
		return fmt.Errorf("%w: depreciation strategy '%s' already registered", shared.ErrConfiguration, name)
	}
	r.depreciation[name] = s
	return nil
}

// Depreciation returns the depreciation strategy registered under name.
func (r *Registry) Depreciation(name string) (strategy.Depreciation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, exists := r.depreciation[name]
	if !exists {
		return nil, fmt.Errorf("%w: unknown depreciation method '%s'", shared.ErrConfiguration, name)
	}
	return s, nil
}

// ListDepreciation returns all registered depreciation method names.
func (r *Registry) ListDepreciation() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.depreciation))
	for name := range r.depreciation {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegisterTax registers a tax strategy under its tax type name.
func (r *Registry) RegisterTax(s strategy.Tax) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := s.TaxType()
	if _, exists := r.tax[name]; exists {
		return fmt.Errorf("%w: tax strategy '%s' already registered", shared.ErrConfiguration, name)
	}
	r.tax[name] = s
	return nil
}

// Tax returns the tax strategy registered under name.
func (r *Registry) Tax(name string) (strategy.Tax, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, exists := r.tax[name]
	if !exists {
		return nil, fmt.Errorf("%w: unknown tax type '%s'", shared.ErrConfiguration, name)
	}
	return s, nil
}

// ListTax returns all registered tax type names.
func (r *Registry) ListTax() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tax))
	for name := range r.tax {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
