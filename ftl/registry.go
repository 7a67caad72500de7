package ftl

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/fastertools/ftl-sdk-go/schema"
)

// ToolFunc is a synchronous tool function: it receives the parsed request
// body as a named-argument bag and returns a raw value to be normalized into
// a response envelope.
type ToolFunc func(args map[string]any) (any, error)

// ToolFuncContext is a context-aware tool function. The dispatcher's only
// suspension point is awaiting this call; the request context is passed
// through so cancellation policy stays with the hosting runtime.
type ToolFuncContext func(ctx context.Context, args map[string]any) (any, error)

// Handler is a bound tool handler: argument bag in, response envelope out.
// It never lets a failure escape as a panic; failures surface as errors for
// the dispatcher to convert into an error envelope.
type Handler func(ctx context.Context, args map[string]any) (*Result, error)

// Tool describes a function being registered: its identity plus the declared
// signature the input and output schemas are inferred from.
type Tool struct {
	// Name is the unique tool identifier. Required.
	Name string

	// Title is an optional human-readable display name.
	Title string

	// Description defaults to empty.
	Description string

	// Annotations are free-form behavior hints, passed through unchanged.
	Annotations map[string]any

	// Meta is surfaced as _meta in tool listings.
	Meta map[string]any

	// Signature declares the function's parameters and result type.
	Signature schema.Signature
}

// Definition is the declarative registration form: the schemas are supplied
// rather than inferred.
type Definition struct {
	// Name overrides the registration key. When empty, the key is converted
	// from camelCase to snake_case.
	Name string

	Title       string
	Description string

	// InputSchema defaults to {"type": "object"} when nil.
	InputSchema  *jsonschema.Schema
	OutputSchema *jsonschema.Schema
	Annotations  map[string]any
	Meta         map[string]any

	// Handler is required. Ready-made envelopes returned by it bypass
	// output validation.
	Handler ToolFuncContext
}

// Descriptor is one registered tool. Descriptors are created at registration
// time and immutable afterwards; there is no deletion path.
type Descriptor struct {
	Name         string
	Title        string
	Description  string
	InputSchema  *jsonschema.Schema
	OutputSchema *jsonschema.Schema
	Annotations  map[string]any
	Meta         map[string]any
	Handler      Handler
}

// Registry is an insertion-ordered table of tool descriptors. It is built
// once at startup; registering a name twice overwrites the descriptor while
// keeping its original position. Once serving begins the registry is
// read-only and safe for concurrent readers.
type Registry struct {
	order  []string
	byName map[string]*Descriptor
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Descriptor)}
}

// Register adds a synchronous tool function, inferring its schemas from the
// declared signature. Registration errors are programming errors and panic;
// the registry is expected to be static and correct before serving traffic.
func (r *Registry) Register(t Tool, fn ToolFunc) {
	if fn == nil {
		panic(fmt.Sprintf("ftl: nil function for tool %q", t.Name))
	}
	r.RegisterContext(t, func(_ context.Context, args map[string]any) (any, error) {
		return fn(args)
	})
}

// RegisterContext adds a context-aware tool function.
func (r *Registry) RegisterContext(t Tool, fn ToolFuncContext) {
	if t.Name == "" {
		panic("ftl: tool name is required")
	}
	if fn == nil {
		panic(fmt.Sprintf("ftl: nil function for tool %q", t.Name))
	}

	out := t.Signature.OutputSchema()
	r.add(&Descriptor{
		Name:         t.Name,
		Title:        t.Title,
		Description:  t.Description,
		InputSchema:  t.Signature.InputSchema(),
		OutputSchema: out,
		Annotations:  t.Annotations,
		Meta:         t.Meta,
		Handler:      bind(fn, out),
	})
}

// RegisterDef adds a declaratively defined tool under the given key. The
// effective name is the definition's explicit Name, or the key converted
// from camelCase to snake_case.
func (r *Registry) RegisterDef(key string, def Definition) {
	name := def.Name
	if name == "" {
		name = camelToSnake(key)
	}
	if name == "" {
		panic("ftl: tool name is required")
	}
	if def.Handler == nil {
		panic(fmt.Sprintf("ftl: nil handler for tool %q", name))
	}

	in := def.InputSchema
	if in == nil {
		in = &jsonschema.Schema{Type: "object"}
	}
	r.add(&Descriptor{
		Name:         name,
		Title:        def.Title,
		Description:  def.Description,
		InputSchema:  in,
		OutputSchema: def.OutputSchema,
		Annotations:  def.Annotations,
		Meta:         def.Meta,
		Handler:      bind(def.Handler, def.OutputSchema),
	})
}

func (r *Registry) add(d *Descriptor) {
	if _, exists := r.byName[d.Name]; !exists {
		r.order = append(r.order, d.Name)
	}
	r.byName[d.Name] = d
}

// Get looks up a tool descriptor by name.
func (r *Registry) Get(name string) (*Descriptor, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	return len(r.order)
}

// List returns the metadata of every registered tool, in registration order.
func (r *Registry) List() []Metadata {
	metadata := make([]Metadata, 0, len(r.order))
	for _, name := range r.order {
		d := r.byName[name]
		metadata = append(metadata, Metadata{
			Name:         d.Name,
			Title:        d.Title,
			Description:  d.Description,
			InputSchema:  d.InputSchema,
			OutputSchema: d.OutputSchema,
			Annotations:  d.Annotations,
			Meta:         d.Meta,
		})
	}
	return metadata
}

// bind wraps a tool function into a Handler that normalizes and envelopes
// its return value. Panics and errors are captured rather than propagated.
func bind(fn ToolFuncContext, out *jsonschema.Schema) Handler {
	return func(ctx context.Context, args map[string]any) (result *Result, err error) {
		defer func() {
			if rec := recover(); rec != nil {
				result = nil
				err = &ExecutionError{Err: fmt.Errorf("%v", rec)}
			}
		}()

		raw, err := fn(ctx, args)
		if err != nil {
			return nil, &ExecutionError{Err: err}
		}

		// Ready-made envelopes skip output validation, matching the
		// declarative form's historical behavior.
		if r, ok := raw.(*Result); ok {
			return r, nil
		}

		normalized, err := normalizeOutput(raw, out)
		if err != nil {
			return nil, err
		}
		return ToResult(normalized), nil
	}
}

// camelToSnake inserts an underscore before every uppercase letter that is
// not the first character and lowercases the result: "wordCount" becomes
// "word_count".
func camelToSnake(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 2)
	for i, r := range name {
		if unicode.IsUpper(r) && i > 0 {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
