package builtin

import (
	"fmt"
	"reflect"
	"strings"

	"constraintsvc/internal/core/domain/validation"
)

// Equality fails when value differs from the attribute named by the option.
// The other attribute is read from the same nesting level.
func Equality(value any, raw any, _ string, attrs validation.Attributes) any {
	if value == nil {
		return nil
	}

	var o options
	var other string
	if s, ok := raw.(string); ok {
		o, other = options{}, s
	} else {
		o = optionsOf(raw)
		other = o.string("attribute")
	}
	if other == "" {
		return nil
	}

	if equal(value, attrs[other]) {
		return nil
	}
	return o.message(fmt.Sprintf("is not equal to %s", strings.ToLower(validation.Humanize(other))))
}

func equal(a, b any) bool {
	if reflect.DeepEqual(a, b) {
		return true
	}
	x, okA := toNumber(a)
	y, okB := toNumber(b)
	return okA && okB && x == y
}
