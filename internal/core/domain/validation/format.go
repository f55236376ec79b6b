package validation

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Formatter turns grouped raw messages into user-facing ones. It is called
// once per processed run, whatever the value of Options.FullMessages.
type Formatter interface {
	FullMessages(grouped *Grouped, opts Options) *Grouped
}

// FormatterFunc adapts a plain function to Formatter.
type FormatterFunc func(grouped *Grouped, opts Options) *Grouped

func (f FormatterFunc) FullMessages(grouped *Grouped, opts Options) *Grouped {
	return f(grouped, opts)
}

// DefaultFormatter prefixes each message with the humanized leaf name of its
// attribute when full messages are enabled. A message starting with "^" is
// never prefixed; the caret is stripped.
type DefaultFormatter struct{}

func (DefaultFormatter) FullMessages(grouped *Grouped, opts Options) *Grouped {
	out := NewGrouped()
	grouped.Each(func(attribute string, messages []string) {
		name := Humanize(attribute)
		formatted := make([]string, 0, len(messages))
		for _, msg := range messages {
			switch {
			case strings.HasPrefix(msg, "^"):
				formatted = append(formatted, msg[1:])
			case opts.FullMessages:
				formatted = append(formatted, name+" "+msg)
			default:
				formatted = append(formatted, msg)
			}
		}
		out.Add(attribute, formatted...)
	})
	return out
}

// Humanize converts the last segment of a dotted attribute path into a
// capitalized phrase: "address.postal_code" becomes "Postal code".
func Humanize(attribute string) string {
	if i := strings.LastIndexByte(attribute, '.'); i >= 0 {
		attribute = attribute[i+1:]
	}

	var b strings.Builder
	var prev rune
	for i, r := range attribute {
		switch {
		case r == '_' || r == '-':
			r = ' '
		case i > 0 && unicode.IsUpper(r) && unicode.IsLower(prev):
			b.WriteRune(' ')
		}
		b.WriteRune(unicode.ToLower(r))
		prev = r
	}

	words := strings.Join(strings.Fields(b.String()), " ")
	if words == "" {
		return ""
	}

	// cases.Caser is stateful, so each call gets its own.
	first, size := firstRune(words)
	return cases.Upper(language.Und).String(first) + words[size:]
}

func firstRune(s string) (string, int) {
	for i := range s {
		if i > 0 {
			return s[:i], i
		}
	}
	return s, len(s)
}
