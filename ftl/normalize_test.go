package ftl

import (
	"testing"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wrappedSchema(inner string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"result": {Type: inner},
		},
	}
}

func TestNormalizeOutputNoSchema(t *testing.T) {
	got, err := normalizeOutput(42, nil)
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestNormalizeOutputMatchingTypes(t *testing.T) {
	tests := []struct {
		name   string
		raw    any
		schema *jsonschema.Schema
	}{
		{"string", "hi", &jsonschema.Schema{Type: "string"}},
		{"integer", 8, &jsonschema.Schema{Type: "integer"}},
		{"number", 2.5, &jsonschema.Schema{Type: "number"}},
		{"integer satisfies number", 8, &jsonschema.Schema{Type: "number"}},
		{"boolean", true, &jsonschema.Schema{Type: "boolean"}},
		{"object", map[string]any{"k": 1}, &jsonschema.Schema{Type: "object"}},
		{"array", []any{1, 2}, &jsonschema.Schema{Type: "array"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeOutput(tt.raw, tt.schema)
			require.NoError(t, err)
			assert.Equal(t, tt.raw, got)
		})
	}
}

func TestNormalizeOutputTypeMismatch(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		schema  *jsonschema.Schema
		message string
	}{
		{"string for integer", "8", &jsonschema.Schema{Type: "integer"}, "Expected integer, got string"},
		{"bool for integer", true, &jsonschema.Schema{Type: "integer"}, "Expected integer, got boolean"},
		{"int for boolean", 1, &jsonschema.Schema{Type: "boolean"}, "Expected boolean, got integer"},
		{"float for integer", 2.5, &jsonschema.Schema{Type: "integer"}, "Expected integer, got number"},
		{"array for object", []any{}, &jsonschema.Schema{Type: "object"}, "Expected object, got array"},
		{"nil for string", nil, &jsonschema.Schema{Type: "string"}, "Expected string, got null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := normalizeOutput(tt.raw, tt.schema)
			require.Error(t, err)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestNormalizeOutputShallow(t *testing.T) {
	// Only the top-level type is checked; nested properties are not.
	s := &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"count": {Type: "integer"},
			"label": {Type: "string"},
		},
	}
	raw := map[string]any{"count": "not an integer"}

	got, err := normalizeOutput(raw, s)
	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestNormalizeOutputWrapsPrimitive(t *testing.T) {
	got, err := normalizeOutput(8, wrappedSchema("integer"))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"result": 8}, got)
}

func TestNormalizeOutputWrappedMismatch(t *testing.T) {
	_, err := normalizeOutput("8", wrappedSchema("integer"))
	require.Error(t, err)
	assert.Equal(t, "Expected integer, got string", err.Error())
}

func TestNormalizeOutputAlreadyWrapped(t *testing.T) {
	// A mapping that already carries a "result" key is passed through rather
	// than double-wrapped.
	s := wrappedSchema("object")
	raw := map[string]any{"result": 8}

	got, err := normalizeOutput(raw, s)
	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestNormalizeOutputMultiPropertyObject(t *testing.T) {
	// Two properties means a plain object schema, even if one is "result".
	s := &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"result": {Type: "integer"},
			"status": {Type: "string"},
		},
	}

	_, err := normalizeOutput(8, s)
	require.Error(t, err)
	assert.Equal(t, "Expected object, got integer", err.Error())
}

func TestNormalizeOutputUnknownType(t *testing.T) {
	// Empty or unrecognized type names validate nothing.
	got, err := normalizeOutput(8, &jsonschema.Schema{})
	require.NoError(t, err)
	assert.Equal(t, 8, got)
}
