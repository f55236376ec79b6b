package builtin

import (
	"fmt"
	"reflect"
	"unicode/utf8"

	"constraintsvc/internal/core/domain/validation"
)

// Length checks the rune count of strings and the size of slices and maps
// against the is, minimum and maximum options.
func Length(value any, raw any, _ string, _ validation.Attributes) any {
	if value == nil {
		return nil
	}
	o := optionsOf(raw)

	n, ok := lengthOf(value)
	if !ok {
		return o.message("has an incorrect length")
	}

	var errs []string
	if is, ok := o.number("is"); ok && float64(n) != is {
		errs = append(errs, fmt.Sprintf("is the wrong length (should be %s characters)", formatNumber(is)))
	}
	if minimum, ok := o.number("minimum"); ok && float64(n) < minimum {
		errs = append(errs, fmt.Sprintf("is too short (minimum is %s characters)", formatNumber(minimum)))
	}
	if maximum, ok := o.number("maximum"); ok && float64(n) > maximum {
		errs = append(errs, fmt.Sprintf("is too long (maximum is %s characters)", formatNumber(maximum)))
	}

	return result(o, errs)
}

func lengthOf(value any) (int, bool) {
	if s, ok := value.(string); ok {
		return utf8.RuneCountInString(s), true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len(), true
	}
	return 0, false
}
