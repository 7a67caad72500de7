package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFragment(t *testing.T) {
	tests := []struct {
		name string
		in   TypeRef
		want string
	}{
		{"string", String(), "string"},
		{"int", Int(), "integer"},
		{"number", Number(), "number"},
		{"bool", Bool(), "boolean"},
		{"null", Null(), "null"},
		{"object", Object(), "object"},
		{"any falls back to object", Any(), "object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Fragment(tt.in)
			require.NotNil(t, s)
			assert.Equal(t, tt.want, s.Type)
			assert.Nil(t, s.Items)
		})
	}
}

func TestFragmentArray(t *testing.T) {
	t.Run("unparametrized", func(t *testing.T) {
		s := Fragment(Array(nil))
		assert.Equal(t, "array", s.Type)
		assert.Nil(t, s.Items)
	})

	t.Run("parametrized", func(t *testing.T) {
		s := Fragment(ArrayOf(Int()))
		assert.Equal(t, "array", s.Type)
		require.NotNil(t, s.Items)
		assert.Equal(t, "integer", s.Items.Type)
	})

	t.Run("nested", func(t *testing.T) {
		s := Fragment(ArrayOf(ArrayOf(String())))
		assert.Equal(t, "array", s.Type)
		require.NotNil(t, s.Items)
		assert.Equal(t, "array", s.Items.Type)
		require.NotNil(t, s.Items.Items)
		assert.Equal(t, "string", s.Items.Items.Type)
	})
}

func TestFragmentNullable(t *testing.T) {
	s := Fragment(Optional(String()))
	assert.Empty(t, s.Type)
	assert.Equal(t, []string{"string", "null"}, s.Types)

	s = Fragment(Optional(Int()))
	assert.Equal(t, []string{"integer", "null"}, s.Types)
}
