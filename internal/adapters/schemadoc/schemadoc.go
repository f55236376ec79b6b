// Package schemadoc decodes constraint documents written in YAML or JSON.
//
//	name:
//	  presence: true
//	address:
//	  properties:
//	    postal_code:
//	      format: {pattern: "\\d{5}"}
//
// Key order of the document is the evaluation order of the constraints.
package schemadoc

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"constraintsvc/internal/core/domain/validation"
)

// PropertiesKey introduces a nested constraint block.
const PropertiesKey = "properties"

var ErrEmptyDocument = errors.New("empty constraint document")

// DecodeError points at the offending node of a document.
type DecodeError struct {
	Line   int
	Column int
	Msg    string
}

func (e *DecodeError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("constraint document: %s", e.Msg)
	}
	return fmt.Sprintf("constraint document: line %d, column %d: %s", e.Line, e.Column, e.Msg)
}

func nodeError(n *yaml.Node, format string, args ...any) *DecodeError {
	return &DecodeError{Line: n.Line, Column: n.Column, Msg: fmt.Sprintf(format, args...)}
}

// Decoder is the document decoder used by the schema use case.
type Decoder struct{}

func NewDecoder() *Decoder {
	return &Decoder{}
}

func (Decoder) Decode(doc []byte) (validation.Constraints, error) {
	return Decode(doc)
}

// Decode parses a document into constraints.
func Decode(doc []byte) (validation.Constraints, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(doc, &root); err != nil {
		return nil, &DecodeError{Msg: err.Error()}
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return nil, ErrEmptyDocument
	}

	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, nodeError(top, "top level must be a mapping of attributes")
	}
	return decodeConstraints(top)
}

func decodeConstraints(n *yaml.Node) (validation.Constraints, error) {
	constraints := make(validation.Constraints, 0, len(n.Content)/2)
	seen := make(map[string]bool, len(n.Content)/2)

	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode, valueNode := n.Content[i], n.Content[i+1]

		key := keyNode.Value
		if keyNode.Kind != yaml.ScalarNode || key == "" {
			return nil, nodeError(keyNode, "attribute names must be non-empty strings")
		}
		if seen[key] {
			return nil, nodeError(keyNode, "duplicate attribute %q", key)
		}
		seen[key] = true

		spec, err := decodeSpec(valueNode)
		if err != nil {
			return nil, err
		}
		constraints = append(constraints, validation.Attr(key, spec))
	}
	return constraints, nil
}

func decodeSpec(n *yaml.Node) (validation.Spec, error) {
	var spec validation.Spec
	if isNull(n) {
		return spec, nil
	}
	if n.Kind != yaml.MappingNode {
		return spec, nodeError(n, "constraints of an attribute must be a mapping of validators")
	}

	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode, valueNode := n.Content[i], n.Content[i+1]
		name := keyNode.Value

		if name == PropertiesKey {
			if spec.Properties != nil {
				return spec, nodeError(keyNode, "duplicate %s block", PropertiesKey)
			}
			nested := validation.Constraints{}
			if !isNull(valueNode) {
				if valueNode.Kind != yaml.MappingNode {
					return spec, nodeError(valueNode, "%s must be a mapping of attributes", PropertiesKey)
				}
				var err error
				if nested, err = decodeConstraints(valueNode); err != nil {
					return spec, err
				}
			}
			spec = spec.WithProperties(nested...)
			continue
		}

		if name == "" {
			return spec, nodeError(keyNode, "validator names must be non-empty strings")
		}
		value, err := decodeValue(valueNode)
		if err != nil {
			return spec, err
		}
		spec.Checks = append(spec.Checks, validation.Check{
			Validator: name,
			Options:   validation.Literal(value),
		})
	}
	return spec, nil
}

func decodeValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return decodeValue(n.Alias)
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, nodeError(n, "%v", err)
		}
		return v, nil
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := decodeValue(item)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.MappingNode:
		out := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := decodeValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			out[n.Content[i].Value] = v
		}
		return out, nil
	}
	return nil, nodeError(n, "unsupported value")
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Tag == "!!null"
}
