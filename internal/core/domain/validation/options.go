package validation

import (
	"math"
	"reflect"
)

// OptionsFunc computes validator options at evaluation time.
type OptionsFunc func(value any, attrs Attributes, key string) any

// OptionValue is either a literal options value or an OptionsFunc.
type OptionValue struct {
	value any
	fn    OptionsFunc
}

func Literal(value any) OptionValue {
	return OptionValue{value: value}
}

func Computed(fn OptionsFunc) OptionValue {
	return OptionValue{fn: fn}
}

func (o OptionValue) IsComputed() bool {
	return o.fn != nil
}

// Resolve returns the options handed to the validator. Computed options are
// invoked once per call.
func (o OptionValue) Resolve(value any, attrs Attributes, key string) any {
	if o.fn != nil {
		return o.fn(value, attrs, key)
	}
	return o.value
}

// IsFalsy reports whether resolved options disable a validator: nil, false,
// the empty string, numeric zero and NaN.
func IsFalsy(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case string:
		return t == ""
	case float64:
		return t == 0 || math.IsNaN(t)
	case float32:
		return t == 0 || math.IsNaN(float64(t))
	case int:
		return t == 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.IsZero()
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0 || math.IsNaN(rv.Float())
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// Options are the per-call options of Validate.
type Options struct {
	// Flatten returns a flat message list instead of messages grouped by
	// attribute.
	Flatten bool
	// FullMessages prefixes every message with the humanized attribute name.
	FullMessages bool
	// Extra carries caller-defined keys through to formatters untouched.
	Extra map[string]any
}

type Option func(*Options)

// NewOptions applies opts over the defaults (FullMessages enabled).
func NewOptions(opts ...Option) Options {
	o := Options{FullMessages: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func Flatten() Option {
	return func(o *Options) {
		o.Flatten = true
	}
}

func FullMessages(enabled bool) Option {
	return func(o *Options) {
		o.FullMessages = enabled
	}
}

func WithExtra(key string, value any) Option {
	return func(o *Options) {
		if o.Extra == nil {
			o.Extra = make(map[string]any)
		}
		o.Extra[key] = value
	}
}
