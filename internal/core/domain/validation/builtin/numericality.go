package builtin

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"constraintsvc/internal/core/domain/validation"
)

type comparison struct {
	option  string
	message string
	ok      func(value, bound float64) bool
}

var comparisons = []comparison{
	{option: "greaterThan", message: "must be greater than %s", ok: func(v, b float64) bool { return v > b }},
	{option: "greaterThanOrEqualTo", message: "must be greater than or equal to %s", ok: func(v, b float64) bool { return v >= b }},
	{option: "equalTo", message: "must be equal to %s", ok: func(v, b float64) bool { return v == b }},
	{option: "lessThanOrEqualTo", message: "must be less than or equal to %s", ok: func(v, b float64) bool { return v <= b }},
	{option: "lessThan", message: "must be less than %s", ok: func(v, b float64) bool { return v < b }},
	{option: "divisibleBy", message: "must be divisible by %s", ok: func(v, b float64) bool { return b != 0 && math.Mod(v, b) == 0 }},
}

// Numericality checks that value is a number and satisfies the comparison
// options. Numeric strings are accepted unless strict is set.
func Numericality(value any, raw any, _ string, _ validation.Attributes) any {
	if value == nil {
		return nil
	}
	o := optionsOf(raw)

	n, ok := toNumber(value)
	if !ok {
		if s, isString := value.(string); isString && !o.bool("strict") {
			n, ok = parseNumber(s)
		}
	}
	if !ok {
		return o.message("is not a number")
	}

	if o.bool("onlyInteger") && n != math.Trunc(n) {
		return o.message("must be an integer")
	}

	var errs []string
	for _, c := range comparisons {
		bound, ok := o.number(c.option)
		if ok && !c.ok(n, bound) {
			errs = append(errs, fmt.Sprintf(c.message, formatNumber(bound)))
		}
	}
	if o.bool("odd") && math.Mod(n, 2) == 0 {
		errs = append(errs, "must be odd")
	}
	if o.bool("even") && math.Mod(n, 2) != 0 {
		errs = append(errs, "must be even")
	}

	return result(o, errs)
}

func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
