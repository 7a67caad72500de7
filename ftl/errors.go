package ftl

import "fmt"

// ValidationError reports a tool output that does not match its declared
// output schema.
type ValidationError struct {
	Expected string
	Actual   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Expected %s, got %s", e.Expected, e.Actual)
}

// NotFoundError reports a request for a tool name that is not registered.
type NotFoundError struct {
	Tool string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Tool '%s' not found", e.Tool)
}

// MethodNotAllowedError reports a request with an unsupported HTTP verb.
type MethodNotAllowedError struct {
	Method string
}

func (e *MethodNotAllowedError) Error() string {
	return fmt.Sprintf("method %s not allowed", e.Method)
}

// ExecutionError wraps a failure raised by a wrapped tool function, including
// recovered panics. Its message is the underlying failure's message so that
// the dispatcher's "Tool execution failed: " prefix composes cleanly.
type ExecutionError struct {
	Err error
}

func (e *ExecutionError) Error() string {
	return e.Err.Error()
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}
