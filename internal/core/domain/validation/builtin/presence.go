package builtin

import (
	"reflect"
	"strings"

	"constraintsvc/internal/core/domain/validation"
)

const blankMessage = "can't be blank"

// Presence fails on nil values. Unless allowEmpty is set, blank strings and
// empty slices or maps fail too.
func Presence(value any, raw any, _ string, _ validation.Attributes) any {
	o := optionsOf(raw)

	if value == nil {
		return o.message(blankMessage)
	}
	if o.bool("allowEmpty") {
		return nil
	}
	if isEmpty(value) {
		return o.message(blankMessage)
	}
	return nil
}

func isEmpty(value any) bool {
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) == ""
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
