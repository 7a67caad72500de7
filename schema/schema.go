package schema

import "github.com/google/jsonschema-go/jsonschema"

// Fragment maps a type descriptor to a JSON Schema fragment. It is total:
// every descriptor, including unrecognized kinds, yields a fragment.
func Fragment(t TypeRef) *jsonschema.Schema {
	s := fragment(t)
	if t.Nullable && s.Type != "" {
		// Nullable scalars become a two-element type list rather than a oneOf.
		s.Types = []string{s.Type, "null"}
		s.Type = ""
	}
	return s
}

func fragment(t TypeRef) *jsonschema.Schema {
	switch t.Kind {
	case KindString:
		return &jsonschema.Schema{Type: "string"}
	case KindInt:
		return &jsonschema.Schema{Type: "integer"}
	case KindNumber:
		return &jsonschema.Schema{Type: "number"}
	case KindBool:
		return &jsonschema.Schema{Type: "boolean"}
	case KindNull:
		return &jsonschema.Schema{Type: "null"}
	case KindArray:
		if t.Elem != nil {
			return &jsonschema.Schema{Type: "array", Items: Fragment(*t.Elem)}
		}
		return &jsonschema.Schema{Type: "array"}
	default:
		// Mappings and anything unrecognized carry no deeper inference.
		return &jsonschema.Schema{Type: "object"}
	}
}
