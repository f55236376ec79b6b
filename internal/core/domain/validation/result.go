package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Result is the outcome of Validate when at least one message was produced:
// either *Grouped or Flat.
type Result interface {
	Len() int
}

// Grouped maps attribute paths to messages, keeping the order in which paths
// were first reported.
type Grouped struct {
	keys     []string
	messages map[string][]string
}

var _ Result = (*Grouped)(nil)

func NewGrouped() *Grouped {
	return &Grouped{messages: make(map[string][]string)}
}

// Add appends messages to attribute, creating the group on first use.
func (g *Grouped) Add(attribute string, messages ...string) {
	if len(messages) == 0 {
		return
	}
	if _, ok := g.messages[attribute]; !ok {
		g.keys = append(g.keys, attribute)
	}
	g.messages[attribute] = append(g.messages[attribute], messages...)
}

func (g *Grouped) Get(attribute string) []string {
	return g.messages[attribute]
}

// Attributes returns the attribute paths in insertion order.
func (g *Grouped) Attributes() []string {
	keys := make([]string, len(g.keys))
	copy(keys, g.keys)
	return keys
}

// Len is the number of attributes with at least one message.
func (g *Grouped) Len() int {
	if g == nil {
		return 0
	}
	return len(g.keys)
}

// Count is the total number of messages.
func (g *Grouped) Count() int {
	if g == nil {
		return 0
	}
	n := 0
	for _, key := range g.keys {
		n += len(g.messages[key])
	}
	return n
}

// Each calls fn for every attribute in insertion order.
func (g *Grouped) Each(fn func(attribute string, messages []string)) {
	for _, key := range g.keys {
		fn(key, g.messages[key])
	}
}

// Flatten concatenates all messages in insertion order.
func (g *Grouped) Flatten() Flat {
	flat := make(Flat, 0, g.Count())
	for _, key := range g.keys {
		flat = append(flat, g.messages[key]...)
	}
	return flat
}

// Map returns a copy as a plain map.
func (g *Grouped) Map() map[string][]string {
	out := make(map[string][]string, len(g.keys))
	for _, key := range g.keys {
		out[key] = append([]string(nil), g.messages[key]...)
	}
	return out
}

// MarshalJSON encodes the groups as an object whose keys keep insertion order.
func (g *Grouped) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range g.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(g.messages[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Flat is the flattened form of a Grouped result.
type Flat []string

var _ Result = Flat(nil)

func (f Flat) Len() int {
	return len(f)
}

// Messages normalizes a raw validator result into message strings.
func Messages(raw any) []string {
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		return []string{v}
	case []string:
		return v
	case []any:
		var out []string
		for _, item := range v {
			out = append(out, Messages(item)...)
		}
		return out
	case error:
		return []string{v.Error()}
	case fmt.Stringer:
		return []string{v.String()}
	default:
		return []string{fmt.Sprint(v)}
	}
}

// ProcessValidationResults drops passing entries, groups the rest by
// attribute path and hands the groups to the formatter.
func (e *Engine) ProcessValidationResults(entries []Entry, opts Options) *Grouped {
	grouped := NewGrouped()
	for _, entry := range entries {
		if entry.Error == nil {
			continue
		}
		grouped.Add(entry.Attribute, Messages(entry.Error)...)
	}
	return e.formatter.FullMessages(grouped, opts)
}

// Validate runs constraints against attrs. It returns a nil Result when no
// messages were produced.
func (e *Engine) Validate(attrs Attributes, constraints Constraints, opts ...Option) (Result, error) {
	options := NewOptions(opts...)

	entries, err := e.RunValidations(attrs, constraints, options)
	if err != nil {
		return nil, err
	}

	grouped := e.ProcessValidationResults(entries, options)
	if grouped.Count() == 0 {
		return nil, nil
	}
	if options.Flatten {
		return grouped.Flatten(), nil
	}
	return grouped, nil
}
