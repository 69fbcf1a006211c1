package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/samestrin/mcpkit/mcp"
	"github.com/samestrin/mcpkit/mcpcontext"
)

// ToolHandler is the contract a registered tool implements. Call receives
// the shared-state Context alongside the standard context.Context used for
// cancellation, and the tool's arguments as still-encoded JSON; it decodes
// them itself (directly, or via the Func builder below).
type ToolHandler interface {
	Name() string
	Description() string
	Schema() json.RawMessage
	Call(ctx context.Context, shared *mcpcontext.Context, params json.RawMessage) (mcp.CallToolResult, error)
}

// PromptHandler is the contract a registered prompt implements.
type PromptHandler interface {
	Name() string
	Description() string
	Arguments() []mcp.PromptArgument
	Call(ctx context.Context, shared *mcpcontext.Context, args map[string]any) (string, error)
}

// Fold converts an arbitrary (value, error) pair returned by a handler
// body into a wire-ready mcp.CallToolResult, mirroring the reference
// engine's result-folding rules:
//
//   - err is an ExecutionError -> successful result, IsError true, text
//     content prefixed "Error: " (a tool that ran and reported failure is
//     still a successful protocol exchange)
//   - err is any other ToolError -> propagated as-is, so the message layer
//     turns it into a JSON-RPC protocol error
//   - err is nil and v is already an mcp.CallToolResult -> returned as-is
//   - err is nil and v is []mcp.Content -> wrapped with IsError false
//   - err is nil and v is a string or other scalar -> wrapped as a single
//     text content block
//   - err is nil and v is nil -> an empty, successful result
func Fold(v any, err error) (mcp.CallToolResult, error) {
	if err != nil {
		if te, ok := IsExecutionError(err); ok {
			return mcp.CallToolResult{
				Content: []mcp.Content{mcp.TextContent("Error: " + trimExecutionPrefix(te.msg))},
				IsError: true,
			}, nil
		}
		return mcp.CallToolResult{}, err
	}

	switch val := v.(type) {
	case nil:
		return mcp.CallToolResult{Content: []mcp.Content{}}, nil
	case mcp.CallToolResult:
		return val, nil
	case []mcp.Content:
		return mcp.CallToolResult{Content: val}, nil
	case mcp.Content:
		return mcp.CallToolResult{Content: []mcp.Content{val}}, nil
	case string:
		return mcp.CallToolResult{Content: []mcp.Content{mcp.TextContent(val)}}, nil
	default:
		return mcp.CallToolResult{Content: []mcp.Content{mcp.TextContent(stringify(val))}}, nil
	}
}

// trimExecutionPrefix strips the "Execution failed: " prefix NewExecutionError
// adds, since Fold supplies its own "Error: " prefix on the wire instead.
func trimExecutionPrefix(msg string) string {
	const prefix = "Execution failed: "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}

func stringify(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}
