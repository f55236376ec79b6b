package builtin

import (
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"constraintsvc/internal/core/domain/validation"
)

var (
	tags = validator.New()

	patternsMu sync.RWMutex
	patterns   = map[string]*regexp.Regexp{}
)

// Format fails when a string value does not fully match the pattern option.
// The option may be the pattern itself; flags "i", "m" and "s" are supported.
func Format(value any, raw any, _ string, _ validation.Attributes) any {
	if value == nil {
		return nil
	}

	var o options
	var pattern string
	if s, ok := raw.(string); ok {
		o, pattern = options{}, s
	} else {
		o = optionsOf(raw)
		pattern = o.string("pattern")
	}

	s, ok := value.(string)
	if !ok {
		return o.message("is invalid")
	}

	re, err := compile(pattern, o.string("flags"))
	if err != nil || !re.MatchString(s) {
		return o.message("is invalid")
	}
	return nil
}

func compile(pattern, flags string) (*regexp.Regexp, error) {
	var prefix strings.Builder
	for _, f := range flags {
		if strings.ContainsRune("ims", f) {
			prefix.WriteRune(f)
		}
	}
	expr := "^(?:" + pattern + ")$"
	if prefix.Len() > 0 {
		expr = "(?" + prefix.String() + ")" + expr
	}

	patternsMu.RLock()
	re, ok := patterns[expr]
	patternsMu.RUnlock()
	if ok {
		return re, nil
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}

	patternsMu.Lock()
	patterns[expr] = re
	patternsMu.Unlock()
	return re, nil
}

// Email checks the value with the email rule of go-playground/validator.
func Email(value any, raw any, _ string, _ validation.Attributes) any {
	return tagged(value, raw, "email", "is not a valid email")
}

// URL checks the value with the url rule of go-playground/validator.
func URL(value any, raw any, _ string, _ validation.Attributes) any {
	return tagged(value, raw, "url", "is not a valid url")
}

func tagged(value any, raw any, tag, fallback string) any {
	if value == nil {
		return nil
	}
	o := optionsOf(raw)

	s, ok := value.(string)
	if !ok {
		return o.message(fallback)
	}
	if err := tags.Var(s, tag); err != nil {
		return o.message(fallback)
	}
	return nil
}
