package ftl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/fastertools/ftl-sdk-go/jsonrpc"
)

// Server dispatches HTTP-shaped requests against a tool registry. The
// registry must be fully built before the first Handle call; after that the
// server is safe for concurrent use.
type Server struct {
	registry *Registry
	logger   *slog.Logger
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithLogger sets the logger used for request dispatch.
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a dispatcher over the given registry.
func NewServer(registry *Registry, opts ...ServerOption) *Server {
	s := &Server{
		registry: registry,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handle routes a single request: GET / lists tool metadata, POST /{name}
// invokes a tool, anything else is rejected with 405. Every failure during a
// request is converted into a response; none escape to the hosting layer.
func (s *Server) Handle(ctx context.Context, req Request) Response {
	switch {
	case req.Method == http.MethodGet && (req.Path == "/" || req.Path == ""):
		return s.handleList()
	case req.Method == http.MethodPost:
		return s.handleCall(ctx, req)
	default:
		return s.handleMethodNotAllowed(req)
	}
}

func (s *Server) handleList() Response {
	body, err := json.Marshal(s.registry.List())
	if err != nil {
		s.logger.Error("encoding tool metadata", "error", err)
		return jsonResponse(http.StatusInternalServerError, Errorf("Internal error"))
	}
	return Response{
		Status:  http.StatusOK,
		Headers: map[string]string{"content-type": "application/json"},
		Body:    body,
	}
}

func (s *Server) handleCall(ctx context.Context, req Request) Response {
	name := strings.TrimPrefix(req.Path, "/")

	tool, ok := s.registry.Get(name)
	if !ok {
		err := &NotFoundError{Tool: name}
		s.logger.Debug("tool not found", "tool", name)
		return jsonResponse(http.StatusNotFound, Errorf(err.Error()))
	}

	body := req.Body
	if len(body) == 0 {
		body = []byte("{}")
	}

	var args map[string]any
	if err := json.Unmarshal(body, &args); err != nil {
		return jsonResponse(http.StatusBadRequest, Errorf("Tool execution failed: "+err.Error()))
	}

	s.logger.Debug("invoking tool", "tool", name)
	result, err := tool.Handler(ctx, args)
	if err != nil {
		s.logger.Debug("tool failed", "tool", name, "error", err)
		return jsonResponse(http.StatusBadRequest, Errorf("Tool execution failed: "+err.Error()))
	}

	return jsonResponse(http.StatusOK, result)
}

func (s *Server) handleMethodNotAllowed(req Request) Response {
	s.logger.Debug("method not allowed", "method", req.Method, "path", req.Path)

	body, _ := json.Marshal(map[string]*jsonrpc.Error{
		"error": jsonrpc.NewErrorWithMessage(jsonrpc.ErrMethodNotFound, "Method not allowed"),
	})
	return Response{
		Status: http.StatusMethodNotAllowed,
		Headers: map[string]string{
			"content-type": "application/json",
			"allow":        "GET, POST",
		},
		Body: body,
	}
}

// jsonResponse encodes a result envelope as a response body. Encoding
// failures (an unserializable structured value) are reported like any other
// execution failure.
func jsonResponse(status int, result *Result) Response {
	body, err := json.Marshal(result)
	if err != nil {
		return jsonResponse(http.StatusBadRequest, Errorf("Tool execution failed: "+err.Error()))
	}
	return Response{
		Status:  status,
		Headers: map[string]string{"content-type": "application/json"},
		Body:    body,
	}
}
