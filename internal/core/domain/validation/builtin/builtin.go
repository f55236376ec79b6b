// Package builtin provides the default validators of the engine.
//
// Options reach a validator either as true (defaults) or as a
// map[string]any decoded from a constraint document. Every validator except
// presence accepts a nil value.
package builtin

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"constraintsvc/internal/core/domain/validation"
)

// Registry returns a new registry holding every built-in validator.
func Registry() *validation.Registry {
	r := validation.NewRegistry()
	datetime := NewDatetime()

	r.MustRegister("presence", validation.ValidatorFunc(Presence))
	r.MustRegister("length", validation.ValidatorFunc(Length))
	r.MustRegister("numericality", validation.ValidatorFunc(Numericality))
	r.MustRegister("inclusion", validation.ValidatorFunc(Inclusion))
	r.MustRegister("exclusion", validation.ValidatorFunc(Exclusion))
	r.MustRegister("format", validation.ValidatorFunc(Format))
	r.MustRegister("email", validation.ValidatorFunc(Email))
	r.MustRegister("url", validation.ValidatorFunc(URL))
	r.MustRegister("equality", validation.ValidatorFunc(Equality))
	r.MustRegister("datetime", datetime)
	r.MustRegister("date", &Date{Datetime: datetime})

	return r
}

// Engine returns an engine over a fresh default registry.
func Engine(opts ...validation.EngineOption) *validation.Engine {
	return validation.NewEngine(Registry(), opts...)
}

type options map[string]any

func optionsOf(raw any) options {
	switch o := raw.(type) {
	case map[string]any:
		return o
	case options:
		return o
	}
	return options{}
}

func (o options) has(key string) bool {
	_, ok := o[key]
	return ok && o[key] != nil
}

func (o options) bool(key string) bool {
	b, _ := o[key].(bool)
	return b
}

func (o options) string(key string) string {
	switch v := o[key].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func (o options) number(key string) (float64, bool) {
	if !o.has(key) {
		return 0, false
	}
	return toNumber(o[key])
}

// message returns the custom message option or fallback.
func (o options) message(fallback string) string {
	if msg := o.string("message"); msg != "" {
		return msg
	}
	return fallback
}

func (o options) clone() options {
	out := make(options, len(o)+1)
	for k, v := range o {
		out[k] = v
	}
	return out
}

// toNumber converts Go numeric kinds and json.Number. Strings are not
// coerced.
func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, !math.IsNaN(n)
	case int:
		return float64(n), true
	case json.Number:
		f, err := strconv.ParseFloat(string(n), 64)
		return f, err == nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f, !math.IsNaN(f)
	}
	return 0, false
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// result collapses a list of failures, honouring a custom message.
func result(o options, errs []string) any {
	if len(errs) == 0 {
		return nil
	}
	if msg := o.string("message"); msg != "" {
		return msg
	}
	return errs
}
