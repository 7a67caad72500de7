// Package schema maps declared tool signatures to JSON Schema fragments.
package schema

// Kind identifies one of the closed set of value types a tool parameter or
// result may declare.
type Kind int

const (
	// KindAny is an unrecognized or unannotated type
	KindAny Kind = iota

	// KindString is a UTF-8 string
	KindString

	// KindInt is an integer
	KindInt

	// KindNumber is an integer or floating-point number
	KindNumber

	// KindBool is a boolean
	KindBool

	// KindNull is the null type
	KindNull

	// KindArray is a sequence, optionally parametrized by an element type
	KindArray

	// KindObject is a mapping
	KindObject
)

// TypeRef describes a declared value type. It replaces source-language type
// hints with an explicit descriptor that registration code constructs directly.
type TypeRef struct {
	Kind Kind

	// Elem is the element type of a parametrized array; nil for an
	// unparametrized array.
	Elem *TypeRef

	// Nullable marks an optional type (the value or null).
	Nullable bool
}

// String returns a string type descriptor.
func String() TypeRef { return TypeRef{Kind: KindString} }

// Int returns an integer type descriptor.
func Int() TypeRef { return TypeRef{Kind: KindInt} }

// Number returns a numeric type descriptor.
func Number() TypeRef { return TypeRef{Kind: KindNumber} }

// Bool returns a boolean type descriptor.
func Bool() TypeRef { return TypeRef{Kind: KindBool} }

// Null returns a null type descriptor.
func Null() TypeRef { return TypeRef{Kind: KindNull} }

// Any returns the descriptor for an unannotated value.
func Any() TypeRef { return TypeRef{Kind: KindAny} }

// Object returns a mapping type descriptor.
func Object() TypeRef { return TypeRef{Kind: KindObject} }

// Array returns a sequence type descriptor. A nil elem leaves the element
// type unspecified.
func Array(elem *TypeRef) TypeRef { return TypeRef{Kind: KindArray, Elem: elem} }

// ArrayOf returns a sequence type descriptor parametrized by elem.
func ArrayOf(elem TypeRef) TypeRef { return TypeRef{Kind: KindArray, Elem: &elem} }

// Optional marks t as nullable.
func Optional(t TypeRef) TypeRef {
	t.Nullable = true
	return t
}
