// Package openapi turns the operations of an OpenAPI v3 document into
// declarative tool definitions whose handlers proxy calls to the upstream
// API.
package openapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/pb33f/libopenapi"
	"github.com/pb33f/libopenapi/datamodel/high/base"
	v3 "github.com/pb33f/libopenapi/datamodel/high/v3"

	"github.com/fastertools/ftl-sdk-go/ftl"
)

// Option configures registration.
type Option func(*options)

type options struct {
	disabled map[string]bool
}

// WithDisabled skips operations whose registration key (operationId, or
// "<METHOD> <path>" when absent) is in the given list.
func WithDisabled(keys ...string) Option {
	return func(o *options) {
		if o.disabled == nil {
			o.disabled = make(map[string]bool, len(keys))
		}
		for _, key := range keys {
			o.disabled[key] = true
		}
	}
}

// Register parses an OpenAPI v3 specification and registers one tool per
// operation. Operation IDs become registration keys, so a camelCase
// operationId like "listPets" surfaces as the tool "list_pets"; operations
// without an ID are named "<METHOD> <path>" verbatim. The client is used for
// all proxied calls.
func Register(registry *ftl.Registry, specData []byte, baseURL string, client *http.Client, opts ...Option) error {
	doc, err := libopenapi.NewDocument(specData)
	if err != nil {
		return fmt.Errorf("parsing OpenAPI spec: %w", err)
	}

	model, errs := doc.BuildV3Model()
	if errs != nil {
		return fmt.Errorf("building OpenAPI model: %v", errs)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if client == nil {
		client = http.DefaultClient
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	for pair := model.Model.Paths.PathItems.First(); pair != nil; pair = pair.Next() {
		path := pair.Key()
		pathItem := pair.Value()
		if pathItem.Get != nil {
			register(registry, http.MethodGet, path, pathItem.Get, baseURL, client, o)
		}
		if pathItem.Post != nil {
			register(registry, http.MethodPost, path, pathItem.Post, baseURL, client, o)
		}
		if pathItem.Put != nil {
			register(registry, http.MethodPut, path, pathItem.Put, baseURL, client, o)
		}
		if pathItem.Delete != nil {
			register(registry, http.MethodDelete, path, pathItem.Delete, baseURL, client, o)
		}
		if pathItem.Patch != nil {
			register(registry, http.MethodPatch, path, pathItem.Patch, baseURL, client, o)
		}
	}
	return nil
}

func register(registry *ftl.Registry, method, path string, operation *v3.Operation, baseURL string, client *http.Client, o options) {
	key := operation.OperationId
	var name string
	if key == "" {
		// No conversion for synthesized names.
		key = fmt.Sprintf("%s %s", method, path)
		name = key
	}
	if o.disabled[key] {
		return
	}

	registry.RegisterDef(key, ftl.Definition{
		Name:        name,
		Description: description(operation),
		InputSchema: inputSchema(operation),
		Handler:     proxy(method, baseURL+path, client),
	})
}

func description(operation *v3.Operation) string {
	if operation.Description != "" {
		return operation.Description
	}
	return operation.Summary
}

// inputSchema collects the JSON request body's top-level properties and the
// operation's declared parameters into a flat object schema.
func inputSchema(operation *v3.Operation) *jsonschema.Schema {
	properties := map[string]*jsonschema.Schema{}
	var required []string

	if operation.RequestBody != nil && operation.RequestBody.Content != nil {
		if mediaType, ok := operation.RequestBody.Content.Get("application/json"); ok && mediaType != nil && mediaType.Schema != nil {
			if s := mediaType.Schema.Schema(); s != nil {
				if s.Properties != nil {
					for pair := s.Properties.First(); pair != nil; pair = pair.Next() {
						properties[pair.Key()] = fragment(pair.Value())
					}
				}
				required = append(required, s.Required...)
			}
		}
	}

	for _, param := range operation.Parameters {
		if param.Schema != nil {
			properties[param.Name] = fragment(param.Schema)
		}
	}

	return &jsonschema.Schema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}

// fragment reduces an OpenAPI schema proxy to a shallow type fragment.
func fragment(proxy *base.SchemaProxy) *jsonschema.Schema {
	s := proxy.Schema()
	if s == nil || len(s.Type) == 0 {
		return &jsonschema.Schema{Type: "object"}
	}
	return &jsonschema.Schema{Type: s.Type[0]}
}

// proxy builds a handler that forwards the argument bag to the upstream
// operation: as a JSON body for POST/PUT/PATCH, as query parameters
// otherwise. The upstream response is returned parsed when it is JSON, or as
// text when it is not.
func proxy(method, endpoint string, client *http.Client) ftl.ToolFuncContext {
	return func(ctx context.Context, args map[string]any) (any, error) {
		target := endpoint
		var body io.Reader

		switch method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
			if len(args) > 0 {
				jsonBody, err := json.Marshal(args)
				if err != nil {
					return nil, fmt.Errorf("encoding request body: %w", err)
				}
				body = bytes.NewReader(jsonBody)
			}
		default:
			if len(args) > 0 {
				query := url.Values{}
				for name, value := range args {
					query.Set(name, fmt.Sprint(value))
				}
				target += "?" + query.Encode()
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, target, body)
		if err != nil {
			return nil, err
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}

		var result any
		if err := json.Unmarshal(respBody, &result); err != nil {
			return string(respBody), nil
		}
		return result, nil
	}
}
