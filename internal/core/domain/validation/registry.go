package validation

import (
	"fmt"
	"sort"
	"sync"
)

// Validator checks one attribute value. It returns nil when the value passes,
// otherwise a string, a []string or any other value describing the failure.
//
// Validators must be synchronous; returning a Deferred is a fatal error.
type Validator interface {
	Validate(value any, options any, key string, attrs Attributes) any
}

// ValidatorFunc adapts a plain function to Validator.
type ValidatorFunc func(value any, options any, key string, attrs Attributes) any

func (f ValidatorFunc) Validate(value any, options any, key string, attrs Attributes) any {
	return f(value, options, key, attrs)
}

// Registry maps validator names to implementations. It is meant to be
// populated at startup; mutating it while a validation is running is not
// supported.
type Registry struct {
	validators map[string]Validator
	mu         sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		validators: make(map[string]Validator),
	}
}

// Register adds or replaces the validator stored under name.
func (r *Registry) Register(name string, v Validator) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidValidator)
	}
	if v == nil {
		return fmt.Errorf("%w: nil validator for %q", ErrInvalidValidator, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.validators[name] = v
	return nil
}

func (r *Registry) RegisterFunc(name string, fn ValidatorFunc) error {
	if fn == nil {
		return fmt.Errorf("%w: nil validator for %q", ErrInvalidValidator, name)
	}
	return r.Register(name, fn)
}

// MustRegister is Register for static setup code.
func (r *Registry) MustRegister(name string, v Validator) {
	if err := r.Register(name, v); err != nil {
		panic(err)
	}
}

func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.validators, name)
}

func (r *Registry) Lookup(name string) (Validator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.validators[name]
	return v, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.validators))
	for name := range r.validators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.validators)
}

// Merge returns a new registry holding the validators of r followed by
// others; later registries override earlier entries with the same name.
func (r *Registry) Merge(others ...*Registry) *Registry {
	merged := NewRegistry()
	for _, src := range append([]*Registry{r}, others...) {
		if src == nil {
			continue
		}
		src.mu.RLock()
		for name, v := range src.validators {
			merged.validators[name] = v
		}
		src.mu.RUnlock()
	}
	return merged
}

// Missing returns the names from names that are not registered, preserving
// their order.
func (r *Registry) Missing(names []string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var missing []string
	for _, name := range names {
		if _, ok := r.validators[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}
