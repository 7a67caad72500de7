package schema

import "github.com/google/jsonschema-go/jsonschema"

// Param is one declared parameter of a tool function.
type Param struct {
	// Name is the parameter's name as it appears in the argument bag.
	Name string

	// Type is the declared parameter type.
	Type TypeRef

	// HasDefault reports whether the parameter carries a default value.
	// Parameters without a default are required.
	HasDefault bool
}

// Signature is the declared shape of a tool function: its parameters in
// declaration order and, optionally, its result type.
type Signature struct {
	Params []Param
	Result *TypeRef
}

// InputSchema builds the tool's input schema: an object schema whose
// properties mirror the declared parameters. Parameters without defaults are
// listed as required; the required list is omitted entirely when empty.
func (s Signature) InputSchema() *jsonschema.Schema {
	properties := make(map[string]*jsonschema.Schema, len(s.Params))
	var required []string
	for _, p := range s.Params {
		properties[p.Name] = Fragment(p.Type)
		if !p.HasDefault {
			required = append(required, p.Name)
		}
	}

	return &jsonschema.Schema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}

// OutputSchema builds the schema for the declared result type, or nil when
// no result type is declared.
func (s Signature) OutputSchema() *jsonschema.Schema {
	if s.Result == nil {
		return nil
	}
	return Fragment(*s.Result)
}
