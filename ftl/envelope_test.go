package ftl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToResultText(t *testing.T) {
	r := ToResult("hello")
	require.Len(t, r.Content, 1)
	assert.Equal(t, "text", r.Content[0].Type)
	assert.Equal(t, "hello", r.Content[0].Text)
	assert.Nil(t, r.StructuredContent)
	assert.False(t, r.IsError)
}

func TestToResultNil(t *testing.T) {
	r := ToResult(nil)
	require.Len(t, r.Content, 1)
	assert.Equal(t, "", r.Content[0].Text)
}

func TestToResultEnvelopePassthrough(t *testing.T) {
	original := Errorf("boom")
	assert.Same(t, original, ToResult(original))

	// An envelope is a fixed point: converting twice changes nothing.
	assert.Same(t, original, ToResult(ToResult(original)))
}

func TestToResultScalars(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"int", 5, "5"},
		{"negative int", -3, "-3"},
		{"int64", int64(42), "42"},
		{"float", 2.5, "2.5"},
		{"whole float", float64(8), "8"},
		{"bool true", true, "true"},
		{"bool false", false, "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ToResult(tt.in)
			require.Len(t, r.Content, 1)
			assert.Equal(t, tt.want, r.Content[0].Text)
			assert.Nil(t, r.StructuredContent)
		})
	}
}

func TestToResultMap(t *testing.T) {
	value := map[string]any{"temperature": 21.5, "unit": "C"}
	r := ToResult(value)

	assert.Equal(t, value, r.StructuredContent)
	require.Len(t, r.Content, 1)
	assert.JSONEq(t, `{"temperature": 21.5, "unit": "C"}`, r.Content[0].Text)
	// Text rendering is pretty-printed.
	assert.Contains(t, r.Content[0].Text, "\n")
}

func TestToResultSlice(t *testing.T) {
	value := []any{"a", "b"}
	r := ToResult(value)

	assert.Equal(t, value, r.StructuredContent)
	require.Len(t, r.Content, 1)
	assert.JSONEq(t, `["a", "b"]`, r.Content[0].Text)
}

func TestToResultStruct(t *testing.T) {
	type point struct {
		X int `json:"x"`
		Y int `json:"y"`
	}
	r := ToResult(point{X: 1, Y: 2})

	assert.Equal(t, point{X: 1, Y: 2}, r.StructuredContent)
	assert.JSONEq(t, `{"x": 1, "y": 2}`, r.Content[0].Text)
}

func TestToResultWrappedValue(t *testing.T) {
	r := ToResult(map[string]any{"result": 8})

	assert.Equal(t, map[string]any{"result": 8}, r.StructuredContent)
	require.Len(t, r.Content, 1)
	assert.Equal(t, "8", r.Content[0].Text)
}

func TestToResultWrappedValueExtraKeys(t *testing.T) {
	// A "result" key alongside others is just a mapping, not a wrapper.
	value := map[string]any{"result": 8, "status": "ok"}
	r := ToResult(value)

	assert.Equal(t, value, r.StructuredContent)
	assert.JSONEq(t, `{"result": 8, "status": "ok"}`, r.Content[0].Text)
}

func TestToResultEnvelopeShapedMap(t *testing.T) {
	r := ToResult(map[string]any{
		"content": []any{
			map[string]any{"type": "text", "text": "from a map"},
		},
		"isError": true,
	})

	require.Len(t, r.Content, 1)
	assert.Equal(t, "from a map", r.Content[0].Text)
	assert.True(t, r.IsError)
}

func TestToResultPointer(t *testing.T) {
	n := 7
	r := ToResult(&n)
	assert.Equal(t, "7", r.Content[0].Text)

	var nilPtr *int
	r = ToResult(nilPtr)
	assert.Equal(t, "", r.Content[0].Text)
}
