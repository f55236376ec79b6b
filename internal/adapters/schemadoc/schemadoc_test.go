package schemadoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"constraintsvc/internal/core/domain/validation"
)

const addressDoc = `
name:
  presence: true
  length: {minimum: 2, maximum: 10}
address:
  presence: true
  properties:
    postal_code:
      format:
        pattern: "\\d{5}"
    tags:
      inclusion: [home, work]
nickname:
`

func specOf(t *testing.T, c validation.Constraint) validation.Spec {
	t.Helper()
	require.False(t, c.Rule.IsDynamic())
	return c.Rule.Resolve(nil, nil, c.Attribute)
}

func TestDecode_YAML(t *testing.T) {
	constraints, err := Decode([]byte(addressDoc))
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "address", "nickname"}, constraints.Keys())

	name := specOf(t, constraints[0])
	require.Len(t, name.Checks, 2)
	assert.Equal(t, "presence", name.Checks[0].Validator)
	assert.Equal(t, true, name.Checks[0].Options.Resolve(nil, nil, ""))
	assert.Equal(t, "length", name.Checks[1].Validator)
	assert.Equal(t, map[string]any{"minimum": 2, "maximum": 10}, name.Checks[1].Options.Resolve(nil, nil, ""))
	assert.Nil(t, name.Properties)

	address := specOf(t, constraints[1])
	require.Len(t, address.Checks, 1)
	require.NotNil(t, address.Properties)
	assert.Equal(t, []string{"postal_code", "tags"}, address.Properties.Keys())

	postal := specOf(t, address.Properties[0])
	assert.Equal(t, map[string]any{"pattern": `\d{5}`}, postal.Checks[0].Options.Resolve(nil, nil, ""))
	tags := specOf(t, address.Properties[1])
	assert.Equal(t, []any{"home", "work"}, tags.Checks[0].Options.Resolve(nil, nil, ""))

	nickname := specOf(t, constraints[2])
	assert.Empty(t, nickname.Checks)
	assert.Nil(t, nickname.Properties)
}

func TestDecode_JSON(t *testing.T) {
	doc := `{"email": {"presence": true, "email": {"message": "looks wrong"}}, "meta": {"properties": {}}}`

	constraints, err := Decode([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{"email", "meta"}, constraints.Keys())
	meta := specOf(t, constraints[1])
	assert.NotNil(t, meta.Properties)
	assert.Empty(t, meta.Properties)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
		line    int
	}{
		{name: "empty", doc: "", wantErr: ErrEmptyDocument},
		{name: "comment only", doc: "# nothing\n", wantErr: ErrEmptyDocument},
		{name: "top level list", doc: "- a\n- b\n", line: 1},
		{name: "attribute scalar", doc: "name: true\n", line: 1},
		{name: "properties scalar", doc: "name:\n  properties: 3\n", line: 2},
		{name: "duplicate attribute", doc: "name: {}\nname: {}\n", line: 2},
		{name: "syntax", doc: "name: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			constraints, err := Decode([]byte(tt.doc))

			require.Error(t, err)
			assert.Nil(t, constraints)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			var decodeErr *DecodeError
			require.ErrorAs(t, err, &decodeErr)
			assert.Equal(t, tt.line, decodeErr.Line)
		})
	}
}

func TestConstraints_Validators(t *testing.T) {
	constraints, err := Decode([]byte(addressDoc))
	require.NoError(t, err)

	constraints = append(constraints, validation.AttrFunc("dynamic", func(any, validation.Attributes, string) validation.Spec {
		return validation.Checks(validation.On("ignored", true))
	}))

	assert.Equal(t, []string{"format", "inclusion", "length", "presence"}, constraints.Validators())
}

func TestDecoder_ValidatesDocument(t *testing.T) {
	registry := validation.NewRegistry()
	registry.MustRegister("presence", validation.ValidatorFunc(func(value any, _ any, _ string, _ validation.Attributes) any {
		if value == nil {
			return "can't be blank"
		}
		return nil
	}))
	engine := validation.NewEngine(registry)

	constraints, err := NewDecoder().Decode([]byte("home:\n  properties:\n    city: {presence: true}\n"))
	require.NoError(t, err)

	result, err := engine.Validate(validation.Attributes{"home": map[string]any{}}, constraints, validation.Flatten())
	require.NoError(t, err)
	assert.Equal(t, validation.Flat{"City can't be blank"}, result)
}
