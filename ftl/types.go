// Package ftl implements the tool registry and request dispatcher of the FTL
// tool protocol: functions are registered as named tools with inferred JSON
// schemas, listed as metadata over GET /, and invoked over POST /{name}.
package ftl

import "github.com/google/jsonschema-go/jsonschema"

// Content is a tagged content block in a tool result. Type selects the
// variant: "text", "image", "audio", or "resource".
type Content struct {
	Type        string         `json:"type"`
	Text        string         `json:"text,omitempty"`
	Data        string         `json:"data,omitempty"`
	MimeType    string         `json:"mimeType,omitempty"`
	Resource    map[string]any `json:"resource,omitempty"`
	Annotations map[string]any `json:"annotations,omitempty"`
}

// TextContent creates a text content block.
func TextContent(text string) Content {
	return Content{Type: "text", Text: text}
}

// ImageContent creates an image content block from base64-encoded data.
func ImageContent(data, mimeType string) Content {
	return Content{Type: "image", Data: data, MimeType: mimeType}
}

// AudioContent creates an audio content block from base64-encoded data.
func AudioContent(data, mimeType string) Content {
	return Content{Type: "audio", Data: data, MimeType: mimeType}
}

// ResourceContent creates a resource content block.
func ResourceContent(resource map[string]any) Content {
	return Content{Type: "resource", Resource: resource}
}

// Result is the canonical response envelope: human-readable content blocks
// plus optional machine-readable structured data.
type Result struct {
	Content           []Content      `json:"content,omitempty"`
	StructuredContent any            `json:"structuredContent,omitempty"`
	IsError           bool           `json:"isError,omitempty"`
	Progress          *float64       `json:"progress,omitempty"`
	Meta              map[string]any `json:"_meta,omitempty"`
}

// Metadata is one entry in the tool listing. Optional fields are omitted
// when absent; the description is always present.
type Metadata struct {
	Name         string             `json:"name"`
	Title        string             `json:"title,omitempty"`
	Description  string             `json:"description"`
	InputSchema  *jsonschema.Schema `json:"inputSchema"`
	OutputSchema *jsonschema.Schema `json:"outputSchema,omitempty"`
	Annotations  map[string]any     `json:"annotations,omitempty"`
	Meta         map[string]any     `json:"_meta,omitempty"`
}

// Request is the inbound boundary consumed from the hosting layer.
type Request struct {
	Method string
	Path   string
	Body   []byte
}

// Response is the outbound boundary exposed to the hosting layer. Body is
// the UTF-8 JSON encoding of either a metadata list or a result envelope.
type Response struct {
	Status  int
	Headers map[string]string
	Body    []byte
}
