package builtin

import (
	"fmt"
	"strings"
	"time"

	"constraintsvc/internal/core/domain/validation"
)

const (
	datetimeLayout = "2006-01-02 15:04:05"
	dateLayout     = "2006-01-02"
)

var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05Z0700",
	datetimeLayout,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	dateLayout,
}

// Datetime validates timestamps. Parse and Format are exposed so callers can
// swap the time handling without replacing the validator.
type Datetime struct {
	// Parse converts a value or a bound option into a time. It reports false
	// when the input is not a valid time.
	Parse func(value any, opts map[string]any) (time.Time, bool)
	// Format renders a bound in failure messages.
	Format func(t time.Time, opts map[string]any) string
}

var _ validation.Validator = (*Datetime)(nil)

func NewDatetime() *Datetime {
	return &Datetime{
		Parse:  ParseTime,
		Format: FormatTime,
	}
}

// Validate accepts the dateOnly, earliest, latest and message options.
func (d *Datetime) Validate(value any, raw any, _ string, _ validation.Attributes) any {
	if value == nil {
		return nil
	}
	o := optionsOf(raw)

	t, ok := d.Parse(value, o)
	if !ok || (o.bool("dateOnly") && !isMidnight(t)) {
		return o.message("must be a valid date")
	}

	var errs []string
	if o.has("earliest") {
		if earliest, ok := d.Parse(o["earliest"], o); ok && t.Before(earliest) {
			errs = append(errs, fmt.Sprintf("must be no earlier than %s", d.Format(earliest, o)))
		}
	}
	if o.has("latest") {
		if latest, ok := d.Parse(o["latest"], o); ok && t.After(latest) {
			errs = append(errs, fmt.Sprintf("must be no later than %s", d.Format(latest, o)))
		}
	}

	return result(o, errs)
}

// Date is Datetime with dateOnly forced on.
type Date struct {
	Datetime *Datetime
}

var _ validation.Validator = (*Date)(nil)

func (d *Date) Validate(value any, raw any, key string, attrs validation.Attributes) any {
	o := optionsOf(raw).clone()
	o["dateOnly"] = true
	return d.Datetime.Validate(value, map[string]any(o), key, attrs)
}

// ParseTime accepts time.Time values, milliseconds since the epoch and ISO
// 8601 like strings. Strings without a zone are read as UTC.
func ParseTime(value any, _ map[string]any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v.UTC(), true
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return v.UTC(), true
	case string:
		s := strings.TrimSpace(v)
		for _, layout := range layouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.UTC(), true
			}
		}
		return time.Time{}, false
	}

	if ms, ok := toNumber(value); ok {
		return time.UnixMilli(int64(ms)).UTC(), true
	}
	return time.Time{}, false
}

// FormatTime renders t in UTC as "2006-01-02 15:04:05", or as a date with
// dateOnly. A dateFormat option holds a custom Go layout.
func FormatTime(t time.Time, opts map[string]any) string {
	o := options(opts)
	if layout := o.string("dateFormat"); layout != "" {
		return t.UTC().Format(layout)
	}
	if o.bool("dateOnly") {
		return t.UTC().Format(dateLayout)
	}
	return t.UTC().Format(datetimeLayout)
}

func isMidnight(t time.Time) bool {
	return t.Equal(t.Truncate(24 * time.Hour))
}
