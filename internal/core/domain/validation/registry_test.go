package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(any, any, string, Attributes) any { return nil }

func TestRegistry_Register(t *testing.T) {
	tests := []struct {
		name      string
		validator string
		fn        Validator
		wantErr   error
	}{
		{name: "valid", validator: "presence", fn: ValidatorFunc(noop)},
		{name: "empty name", validator: "", fn: ValidatorFunc(noop), wantErr: ErrInvalidValidator},
		{name: "nil validator", validator: "presence", fn: nil, wantErr: ErrInvalidValidator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()

			err := r.Register(tt.validator, tt.fn)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 0, r.Len())
				return
			}
			require.NoError(t, err)
			_, ok := r.Lookup(tt.validator)
			assert.True(t, ok)
		})
	}
}

func TestRegistry_Lifecycle(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.RegisterFunc("length", noop))
	require.NoError(t, r.RegisterFunc("email", noop))

	assert.Equal(t, []string{"email", "length"}, r.Names())
	assert.Equal(t, []string{"presence"}, r.Missing([]string{"email", "presence"}))

	r.Unregister("email")
	_, ok := r.Lookup("email")
	assert.False(t, ok)
	assert.Error(t, r.RegisterFunc("x", nil))
}

func TestRegistry_Merge(t *testing.T) {
	first := &spyValidator{result: "first"}
	second := &spyValidator{result: "second"}

	base := NewRegistry()
	base.MustRegister("check", first)
	base.MustRegister("presence", first)

	custom := NewRegistry()
	custom.MustRegister("check", second)

	merged := base.Merge(custom, nil)

	v, ok := merged.Lookup("check")
	require.True(t, ok)
	assert.Equal(t, "second", v.Validate(nil, true, "", nil))
	assert.Equal(t, []string{"check", "presence"}, merged.Names())

	custom.Unregister("check")
	_, ok = merged.Lookup("check")
	assert.True(t, ok, "merged registry must not share storage")
}

func TestRegistry_MustRegisterPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewRegistry().MustRegister("", ValidatorFunc(noop))
	})
}
