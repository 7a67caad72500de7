package ftl

import (
	"reflect"

	"github.com/google/jsonschema-go/jsonschema"
)

// normalizeOutput validates a raw tool return value against its declared
// output schema and promotes bare primitives into the {result: value} wrapper
// when the schema calls for one. Validation is shallow: only the top-level
// type is checked, never nested properties or items.
func normalizeOutput(raw any, s *jsonschema.Schema) (any, error) {
	if s == nil {
		return raw, nil
	}

	if inner, ok := wrappedPrimitive(s); ok {
		if err := checkType(raw, inner.Type); err != nil {
			return nil, err
		}
		m, isMap := raw.(map[string]any)
		if !isMap {
			return map[string]any{"result": raw}, nil
		}
		if _, has := m["result"]; !has {
			return map[string]any{"result": raw}, nil
		}
	}

	if err := checkType(raw, s.Type); err != nil {
		return nil, err
	}
	return raw, nil
}

// wrappedPrimitive reports whether s describes a wrapped primitive: an object
// schema whose sole property is named "result". The inner schema describes
// the primitive being wrapped.
func wrappedPrimitive(s *jsonschema.Schema) (*jsonschema.Schema, bool) {
	if s.Type != "object" || len(s.Properties) != 1 {
		return nil, false
	}
	inner, ok := s.Properties["result"]
	return inner, ok && inner != nil
}

// checkType validates the runtime type of v against a JSON Schema type name.
// Types use exact identity: a boolean is never an integer and vice versa.
// Unknown or empty type names validate nothing.
func checkType(v any, schemaType string) error {
	actual := jsonTypeOf(v)
	switch schemaType {
	case "string":
		if actual != "string" {
			return &ValidationError{Expected: "string", Actual: actual}
		}
	case "integer":
		if actual != "integer" {
			return &ValidationError{Expected: "integer", Actual: actual}
		}
	case "number":
		if actual != "integer" && actual != "number" {
			return &ValidationError{Expected: "number", Actual: actual}
		}
	case "boolean":
		if actual != "boolean" {
			return &ValidationError{Expected: "boolean", Actual: actual}
		}
	case "object":
		if actual != "object" {
			return &ValidationError{Expected: "object", Actual: actual}
		}
	case "array":
		if actual != "array" {
			return &ValidationError{Expected: "array", Actual: actual}
		}
	}
	return nil
}

// jsonTypeOf classifies a Go value into its JSON type name. Structs and
// pointers to structs count as objects, matching how they serialize.
func jsonTypeOf(v any) string {
	if v == nil {
		return "null"
	}
	switch v.(type) {
	case bool:
		return "boolean"
	case string:
		return "string"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "integer"
	case float32, float64:
		return "number"
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "null"
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map, reflect.Struct:
		return "object"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	default:
		return rv.Kind().String()
	}
}
