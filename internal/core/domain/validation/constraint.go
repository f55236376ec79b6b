// Package validation runs declarative constraint trees against nested
// attribute maps and reports failures grouped by attribute path.
//
// Evaluation is synchronous and deterministic: attributes are visited in the
// order of the Constraints list, checks in the order of each Spec, and nested
// properties after the attribute's own checks, depth first.
package validation

import "sort"

// Attributes is the read-only input of a validation run. Nested objects are
// map[string]any (or Attributes) values.
type Attributes map[string]any

// SpecFunc computes the Spec of one attribute at evaluation time.
type SpecFunc func(value any, attrs Attributes, key string) Spec

// Rule is either a static Spec or a SpecFunc evaluated lazily, once per
// attribute evaluation.
type Rule struct {
	spec Spec
	fn   SpecFunc
}

func Static(spec Spec) Rule {
	return Rule{spec: spec}
}

func Dynamic(fn SpecFunc) Rule {
	return Rule{fn: fn}
}

func (r Rule) IsDynamic() bool {
	return r.fn != nil
}

// Resolve returns the concrete Spec for the attribute.
func (r Rule) Resolve(value any, attrs Attributes, key string) Spec {
	if r.fn != nil {
		return r.fn(value, attrs, key)
	}
	return r.spec
}

// Constraint binds a Rule to an attribute key.
type Constraint struct {
	Attribute string
	Rule      Rule
}

// Constraints is the ordered constraint mapping of one nesting level.
type Constraints []Constraint

// Keys returns the attribute keys in evaluation order.
func (c Constraints) Keys() []string {
	keys := make([]string, 0, len(c))
	for _, constraint := range c {
		keys = append(keys, constraint.Attribute)
	}
	return keys
}

// Has reports whether key is declared at this level.
func (c Constraints) Has(key string) bool {
	for _, constraint := range c {
		if constraint.Attribute == key {
			return true
		}
	}
	return false
}

// Validators returns the sorted, de-duplicated validator names referenced by
// static rules, nested properties included. Dynamic rules are not evaluated.
func (c Constraints) Validators() []string {
	set := make(map[string]struct{})
	c.collect(set)

	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c Constraints) collect(set map[string]struct{}) {
	for _, constraint := range c {
		if constraint.Rule.IsDynamic() {
			continue
		}
		spec := constraint.Rule.spec
		for _, check := range spec.Checks {
			set[check.Validator] = struct{}{}
		}
		spec.Properties.collect(set)
	}
}

// Spec is the resolved constraint of one attribute.
//
// Properties is nil when no nested block is declared. A non-nil, possibly
// empty, Properties triggers descent into the attribute's object value and
// reports any undeclared keys of that object.
type Spec struct {
	Checks     []Check
	Properties Constraints
}

// Check is one validator invocation: a registry name plus its options.
type Check struct {
	Validator string
	Options   OptionValue
}

// Attr is shorthand for a static constraint.
func Attr(key string, spec Spec) Constraint {
	return Constraint{Attribute: key, Rule: Static(spec)}
}

// AttrFunc is shorthand for a dynamic constraint.
func AttrFunc(key string, fn SpecFunc) Constraint {
	return Constraint{Attribute: key, Rule: Dynamic(fn)}
}

// On builds a Check. An OptionsFunc (or a func with the same signature)
// becomes a computed option, anything else a literal.
func On(validator string, options any) Check {
	switch fn := options.(type) {
	case OptionsFunc:
		return Check{Validator: validator, Options: Computed(fn)}
	case func(value any, attrs Attributes, key string) any:
		return Check{Validator: validator, Options: Computed(fn)}
	case OptionValue:
		return Check{Validator: validator, Options: fn}
	default:
		return Check{Validator: validator, Options: Literal(options)}
	}
}

// Checks builds a Spec without nested properties.
func Checks(checks ...Check) Spec {
	return Spec{Checks: checks}
}

// WithProperties returns a copy of s that declares the given nested
// constraints. Calling it with no arguments declares an empty block.
func (s Spec) WithProperties(properties ...Constraint) Spec {
	nested := make(Constraints, 0, len(properties))
	nested = append(nested, properties...)
	s.Properties = nested
	return s
}
