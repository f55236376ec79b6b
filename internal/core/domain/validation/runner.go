package validation

import (
	"sort"
)

// NotExpectedMessage is reported for keys of a nested object that its
// properties block does not declare.
const NotExpectedMessage = "was not expected"

// Entry is one raw validator outcome. Error is nil when the validator passed.
type Entry struct {
	Attribute string `json:"attribute"`
	Error     any    `json:"error"`
}

// Engine evaluates constraint trees against attributes using the validators
// of its registry.
type Engine struct {
	registry  *Registry
	formatter Formatter
}

type EngineOption func(*Engine)

// WithFormatter replaces the DefaultFormatter.
func WithFormatter(f Formatter) EngineOption {
	return func(e *Engine) {
		if f != nil {
			e.formatter = f
		}
	}
}

func NewEngine(registry *Registry, opts ...EngineOption) *Engine {
	if registry == nil {
		registry = NewRegistry()
	}
	e := &Engine{
		registry:  registry,
		formatter: DefaultFormatter{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Registry() *Registry {
	return e.registry
}

// RunValidations evaluates constraints against attrs and returns one entry per
// validator invocation, passing ones included, in evaluation order.
//
// The returned error is either an *UnknownValidatorError or a
// *DeferredResultError; no entries are returned with it.
func (e *Engine) RunValidations(attrs Attributes, constraints Constraints, opts Options) ([]Entry, error) {
	return e.run(attrs, constraints, opts, 0)
}

func (e *Engine) run(attrs Attributes, constraints Constraints, opts Options, depth int) ([]Entry, error) {
	var entries []Entry

	for _, constraint := range constraints {
		key := constraint.Attribute
		value, present := attrs[key]

		spec := constraint.Rule.Resolve(value, attrs, key)

		for _, check := range spec.Checks {
			validator, ok := e.registry.Lookup(check.Validator)
			if !ok {
				return nil, &UnknownValidatorError{Validator: check.Validator, Attribute: key}
			}

			options := check.Options.Resolve(value, attrs, key)
			if IsFalsy(options) {
				continue
			}

			result := validator.Validate(value, options, key, attrs)
			if _, deferred := result.(Deferred); deferred {
				return nil, &DeferredResultError{Validator: check.Validator, Attribute: key}
			}

			entries = append(entries, Entry{Attribute: key, Error: result})
		}

		if spec.Properties == nil {
			continue
		}

		nested, isObject := asObject(value)
		if !isObject {
			// A missing attribute is treated as an empty object only at the
			// top level of a run, so its declared children still get checked.
			if present || depth > 0 {
				continue
			}
			nested = Attributes{}
		}

		children, err := e.run(nested, spec.Properties, opts, depth+1)
		if err != nil {
			return nil, err
		}
		for _, child := range children {
			child.Attribute = key + "." + child.Attribute
			entries = append(entries, child)
		}

		for _, extra := range undeclared(nested, spec.Properties) {
			entries = append(entries, Entry{
				Attribute: key + "." + extra,
				Error:     NotExpectedMessage,
			})
		}
	}

	return entries, nil
}

func asObject(value any) (Attributes, bool) {
	switch v := value.(type) {
	case Attributes:
		return v, v != nil
	case map[string]any:
		return Attributes(v), v != nil
	}
	return nil, false
}

func undeclared(object Attributes, declared Constraints) []string {
	var extras []string
	for key := range object {
		if !declared.Has(key) {
			extras = append(extras, key)
		}
	}
	sort.Strings(extras)
	return extras
}
