// Package handler defines the ToolHandler and PromptHandler contracts, the
// result-folding rules that turn an arbitrary handler return value into a
// wire-ready mcp.CallToolResult, and reflection-based builders that adapt
// plain Go functions into handlers.
package handler

import "fmt"

// ToolError is the taxonomy a ToolHandler can fail with. ExecutionError is
// special: it folds into a successful CallToolResult with IsError set,
// because a tool that ran and reported failure is a successful protocol
// exchange, not a malformed request. The other three variants propagate as
// JSON-RPC protocol errors.
type ToolError struct {
	kind toolErrKind
	msg  string
}

type toolErrKind int

const (
	toolErrExecution toolErrKind = iota
	toolErrInvalidParameters
	toolErrSchema
	toolErrNotFound
)

func NewExecutionError(msg string) *ToolError {
	return &ToolError{kind: toolErrExecution, msg: fmt.Sprintf("Execution failed: %s", msg)}
}

func NewInvalidParametersError(msg string) *ToolError {
	return &ToolError{kind: toolErrInvalidParameters, msg: fmt.Sprintf("Invalid parameters: %s", msg)}
}

func NewSchemaError(msg string) *ToolError {
	return &ToolError{kind: toolErrSchema, msg: fmt.Sprintf("Schema error: %s", msg)}
}

func NewToolNotFoundError(name string) *ToolError {
	return &ToolError{kind: toolErrNotFound, msg: fmt.Sprintf("Tool not found: %s", name)}
}

func (e *ToolError) Error() string { return e.msg }

// IsExecutionError reports whether err is a ToolError of the
// execution-failed kind, the only kind result folding converts into a
// successful, is-error content response rather than propagating.
func IsExecutionError(err error) (*ToolError, bool) {
	te, ok := err.(*ToolError)
	if !ok || te.kind != toolErrExecution {
		return nil, false
	}
	return te, true
}

// IsInvalidParameters reports whether err is a ToolError of the
// invalid-parameters kind.
func IsInvalidParameters(err error) bool {
	te, ok := err.(*ToolError)
	return ok && te.kind == toolErrInvalidParameters
}

// IsSchemaError reports whether err is a ToolError of the schema-error
// kind.
func IsSchemaError(err error) bool {
	te, ok := err.(*ToolError)
	return ok && te.kind == toolErrSchema
}

// IsToolNotFound reports whether err is a ToolError of the not-found kind.
func IsToolNotFound(err error) bool {
	te, ok := err.(*ToolError)
	return ok && te.kind == toolErrNotFound
}

// PromptError is the taxonomy a PromptHandler can fail with.
type PromptError struct {
	kind promptErrKind
	msg  string
}

type promptErrKind int

const (
	promptErrInvalidParameters promptErrKind = iota
	promptErrNotFound
	promptErrInternal
)

func NewPromptInvalidParametersError(msg string) *PromptError {
	return &PromptError{kind: promptErrInvalidParameters, msg: fmt.Sprintf("Invalid parameters: %s", msg)}
}

func NewPromptNotFoundError(name string) *PromptError {
	return &PromptError{kind: promptErrNotFound, msg: fmt.Sprintf("Not found: %s", name)}
}

func NewPromptInternalError(msg string) *PromptError {
	return &PromptError{kind: promptErrInternal, msg: fmt.Sprintf("Internal error: %s", msg)}
}

func (e *PromptError) Error() string { return e.msg }

func (e *PromptError) IsNotFound() bool             { return e.kind == promptErrNotFound }
func (e *PromptError) IsInvalidParameters() bool    { return e.kind == promptErrInvalidParameters }
func (e *PromptError) IsInternal() bool             { return e.kind == promptErrInternal }

// ResourceError is the taxonomy a resource read can fail with.
type ResourceError struct {
	kind resourceErrKind
	msg  string
}

type resourceErrKind int

const (
	resourceErrNotFound resourceErrKind = iota
	resourceErrExecution
)

func NewResourceNotFoundError(uri string) *ResourceError {
	return &ResourceError{kind: resourceErrNotFound, msg: fmt.Sprintf("Resource not found: %s", uri)}
}

func NewResourceExecutionError(msg string) *ResourceError {
	return &ResourceError{kind: resourceErrExecution, msg: msg}
}

func (e *ResourceError) Error() string { return e.msg }
func (e *ResourceError) IsNotFound() bool { return e.kind == resourceErrNotFound }
