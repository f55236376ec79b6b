package builtin

import (
	"fmt"
	"reflect"

	"constraintsvc/internal/core/domain/validation"
)

// Inclusion fails when value is not one of the within option. The option may
// also be the list itself.
func Inclusion(value any, raw any, _ string, _ validation.Attributes) any {
	if value == nil {
		return nil
	}
	within, o := withinOf(raw)
	if contains(within, value) {
		return nil
	}
	return o.message(fmt.Sprintf("^%v is not included in the list", value))
}

// Exclusion fails when value is one of the within option.
func Exclusion(value any, raw any, _ string, _ validation.Attributes) any {
	if value == nil {
		return nil
	}
	within, o := withinOf(raw)
	if !contains(within, value) {
		return nil
	}
	return o.message(fmt.Sprintf("^%v is restricted", value))
}

func withinOf(raw any) ([]any, options) {
	switch v := raw.(type) {
	case []any:
		return v, options{}
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, options{}
	}

	o := optionsOf(raw)
	switch w := o["within"].(type) {
	case []any:
		return w, o
	case []string:
		within, _ := withinOf(w)
		return within, o
	case map[string]any:
		keys := make([]any, 0, len(w))
		for k := range w {
			keys = append(keys, k)
		}
		return keys, o
	}
	return nil, o
}

func contains(within []any, value any) bool {
	n, numeric := toNumber(value)
	for _, candidate := range within {
		if reflect.DeepEqual(candidate, value) {
			return true
		}
		if numeric {
			if c, ok := toNumber(candidate); ok && c == n {
				return true
			}
		}
	}
	return false
}
