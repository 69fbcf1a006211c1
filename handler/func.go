package handler

import (
	"context"
	"encoding/json"

	"github.com/samestrin/mcpkit/mcp"
	"github.com/samestrin/mcpkit/mcpcontext"
	"github.com/samestrin/mcpkit/schema"
)

// Body is the shape a tool's logic takes once adapted by Func: it receives
// the decoded, typed arguments and returns whatever Fold knows how to
// convert into a CallToolResult.
type Body[P any] func(ctx context.Context, shared *mcpcontext.Context, args P) (any, error)

// funcTool adapts a Body[P] plus static metadata into a ToolHandler,
// taking the place of the compile-time code generator a macro-based
// framework would use: argument decoding and result folding happen once,
// here, instead of being hand-written per tool.
type funcTool[P any] struct {
	name        string
	description string
	schema      json.RawMessage
	body        Body[P]
}

// Func builds a ToolHandler from a plain function. If producer is nil, the
// schema is generated via schema.Reflect[P].
func Func[P any](name, description string, producer schema.Producer[P], body Body[P]) ToolHandler {
	var raw json.RawMessage
	if producer == nil {
		producer = schema.Reflect[P]
	}
	if s, err := producer(); err == nil {
		raw = s
	} else {
		raw = json.RawMessage(`{"type":"object"}`)
	}
	return &funcTool[P]{name: name, description: description, schema: raw, body: body}
}

func (t *funcTool[P]) Name() string             { return t.name }
func (t *funcTool[P]) Description() string      { return t.description }
func (t *funcTool[P]) Schema() json.RawMessage  { return t.schema }

func (t *funcTool[P]) Call(ctx context.Context, shared *mcpcontext.Context, params json.RawMessage) (mcp.CallToolResult, error) {
	var args P
	if len(params) > 0 && string(params) != "null" {
		if err := json.Unmarshal(params, &args); err != nil {
			return mcp.CallToolResult{}, NewInvalidParametersError(err.Error())
		}
	}
	v, err := t.body(ctx, shared, args)
	return Fold(v, err)
}

// PromptBody is the shape a prompt's logic takes once adapted by
// PromptFunc.
type PromptBody func(ctx context.Context, shared *mcpcontext.Context, args map[string]any) (string, error)

type funcPrompt struct {
	name        string
	description string
	arguments   []mcp.PromptArgument
	body        PromptBody
}

// PromptFunc builds a PromptHandler from a plain function.
func PromptFunc(name, description string, arguments []mcp.PromptArgument, body PromptBody) PromptHandler {
	return &funcPrompt{name: name, description: description, arguments: arguments, body: body}
}

func (p *funcPrompt) Name() string                      { return p.name }
func (p *funcPrompt) Description() string                { return p.description }
func (p *funcPrompt) Arguments() []mcp.PromptArgument    { return p.arguments }

func (p *funcPrompt) Call(ctx context.Context, shared *mcpcontext.Context, args map[string]any) (string, error) {
	return p.body(ctx, shared, args)
}
