package mcpservice

import (
	"context"
	"encoding/json"

	"github.com/samestrin/mcpkit/handler"
	"github.com/samestrin/mcpkit/jsonrpc"
	"github.com/samestrin/mcpkit/mcp"
)

// Method names the message layer recognises.
const (
	MethodPing             = "ping"
	MethodInitialize       = "initialize"
	MethodInitialized      = "notifications/initialized"
	MethodToolsList        = "tools/list"
	MethodToolsCall        = "tools/call"
	MethodResourcesList    = "resources/list"
	MethodResourcesRead    = "resources/read"
	MethodPromptsList      = "prompts/list"
	MethodPromptsGet       = "prompts/get"
)

// MessageService dispatches one SendableMessage at a time against a
// Service. It never fails: every possible error is folded into an error
// ResponseItem before Handle returns, and a notification always yields a
// nil response.
type MessageService struct {
	svc *Service
}

func NewMessageService(svc *Service) *MessageService {
	return &MessageService{svc: svc}
}

// Handle dispatches a single message. It returns nil when no response is
// due: for notifications, and for well-formed notifications that were
// routed to the configured sink.
func (m *MessageService) Handle(ctx context.Context, msg jsonrpc.SendableMessage) *jsonrpc.ResponseItem {
	switch {
	case msg.Call != nil:
		return m.handleCall(ctx, msg.Call)
	case msg.Notification != nil:
		if m.svc.sink != nil {
			m.svc.sink.Observe(ctx, msg.Notification.Method, msg.Notification.Params)
		}
		return nil
	default:
		// Invalid envelope. If an id could be recovered, echo it in the
		// error response; otherwise use null, since there is nothing else
		// to echo.
		id := jsonrpc.NullID()
		if msg.Invalid.ID != nil {
			id = *msg.Invalid.ID
		}
		return jsonrpc.NewError(id, jsonrpc.NewErrorData(jsonrpc.InvalidRequest, msg.Invalid.Err.Error()))
	}
}

func (m *MessageService) handleCall(ctx context.Context, call *jsonrpc.MethodCall) *jsonrpc.ResponseItem {
	id := call.ID
	result, rerr := m.dispatch(ctx, call)
	if rerr != nil {
		return jsonrpc.NewError(id, rerr.ToErrorData())
	}
	return jsonrpc.NewSuccess(id, result)
}

func (m *MessageService) dispatch(ctx context.Context, call *jsonrpc.MethodCall) (json.RawMessage, *jsonrpc.RequestError) {
	switch call.Method {
	case MethodPing:
		return marshal(struct{}{})
	case MethodInitialize:
		return m.handleInitialize(call.Params)
	case MethodToolsList:
		return marshal(mcp.ListToolsResult{Tools: m.svc.ListTools()})
	case MethodToolsCall:
		return m.handleToolsCall(ctx, call.Params)
	case MethodResourcesList:
		return marshal(mcp.ListResourcesResult{Resources: m.svc.ListResources()})
	case MethodResourcesRead:
		return m.handleResourcesRead(ctx, call.Params)
	case MethodPromptsList:
		return marshal(mcp.ListPromptsResult{Prompts: m.svc.ListPrompts()})
	case MethodPromptsGet:
		return m.handlePromptsGet(ctx, call.Params)
	default:
		return nil, jsonrpc.ErrMethodNotFound(call.Method)
	}
}

func (m *MessageService) handleInitialize(raw json.RawMessage) (json.RawMessage, *jsonrpc.RequestError) {
	// initialize is allowed an empty/absent params object, unlike the
	// methods that go through namedParams: a client may initialize with
	// nothing but its version.
	var params mcp.InitializeParams
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &params); err != nil {
			return nil, jsonrpc.ErrInvalidParams(err.Error())
		}
	}
	return marshal(mcp.InitializeResult{
		ProtocolVersion: mcp.ProtocolVersion,
		Capabilities:    m.svc.Capabilities(),
		ServerInfo:      mcp.Implementation{Name: m.svc.name, Version: m.svc.version},
		Instructions:    m.svc.instructions,
	})
}

// namedParams enforces the shared parameter-validation taxonomy that
// tools/call, resources/read and prompts/get apply before touching a
// handler (ping and the list methods ignore params): params must be
// present and must be a map-like object, never an array or a bare scalar.
func namedParams(raw json.RawMessage) (map[string]json.RawMessage, *jsonrpc.RequestError) {
	if len(raw) == 0 {
		return nil, jsonrpc.ErrInvalidParams("The request was empty")
	}
	var p jsonrpc.Params
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, jsonrpc.ErrInvalidParams("Parameters must be a map-like object")
	}
	if !p.IsMap() {
		return nil, jsonrpc.ErrInvalidParams("Parameters must be a map-like object")
	}
	return p.Map(), nil
}

func (m *MessageService) handleToolsCall(ctx context.Context, raw json.RawMessage) (json.RawMessage, *jsonrpc.RequestError) {
	named, rerr := namedParams(raw)
	if rerr != nil {
		return nil, rerr
	}
	nameRaw, ok := named["name"]
	if !ok {
		return nil, jsonrpc.ErrInvalidParams("No tool name was provided")
	}
	var name string
	if err := json.Unmarshal(nameRaw, &name); err != nil {
		return nil, jsonrpc.ErrInvalidParams("No tool name was provided")
	}

	args := json.RawMessage("null")
	if a, ok := named["arguments"]; ok {
		args = a
	}

	result, err := m.svc.CallTool(ctx, name, args)
	if err != nil {
		return nil, toolErrToRequestError(name, err)
	}
	return marshal(result)
}

func toolErrToRequestError(name string, err error) *jsonrpc.RequestError {
	switch {
	case handler.IsToolNotFound(err):
		return jsonrpc.ErrToolNotFound(name)
	case handler.IsInvalidParameters(err), handler.IsSchemaError(err):
		return jsonrpc.ErrInvalidParams(err.Error())
	default:
		return jsonrpc.ErrInternal(err.Error())
	}
}

func (m *MessageService) handleResourcesRead(ctx context.Context, raw json.RawMessage) (json.RawMessage, *jsonrpc.RequestError) {
	named, rerr := namedParams(raw)
	if rerr != nil {
		return nil, rerr
	}
	uriRaw, ok := named["uri"]
	if !ok {
		return nil, jsonrpc.ErrInvalidParams("No resource uri was provided")
	}
	var uri string
	if err := json.Unmarshal(uriRaw, &uri); err != nil {
		return nil, jsonrpc.ErrInvalidParams("No resource uri was provided")
	}

	contents, err := m.svc.ReadResource(ctx, uri)
	if err != nil {
		if re, ok := err.(*handler.ResourceError); ok && re.IsNotFound() {
			return nil, jsonrpc.ErrResourceNotFound(uri)
		}
		return nil, jsonrpc.ErrInternal(err.Error())
	}
	return marshal(mcp.ReadResourceResult{Contents: []mcp.ResourceContents{contents}})
}

func (m *MessageService) handlePromptsGet(ctx context.Context, raw json.RawMessage) (json.RawMessage, *jsonrpc.RequestError) {
	named, rerr := namedParams(raw)
	if rerr != nil {
		return nil, rerr
	}
	nameRaw, ok := named["name"]
	if !ok {
		return nil, jsonrpc.ErrInvalidParams("No prompt name was provided")
	}
	var name string
	if err := json.Unmarshal(nameRaw, &name); err != nil {
		return nil, jsonrpc.ErrInvalidParams("No prompt name was provided")
	}

	// As with tools/call, a missing arguments object is tolerated here: not
	// every prompt requires arguments, so absence defaults to empty rather
	// than failing. (Whether that should depend on whether the prompt
	// itself declares required arguments is an open question left to
	// callers wrapping GetPrompt with their own validation.)
	args := map[string]any{}
	if a, ok := named["arguments"]; ok {
		if err := json.Unmarshal(a, &args); err != nil {
			return nil, jsonrpc.ErrInvalidParams("Missing arguments object")
		}
	}

	text, err := m.svc.GetPrompt(ctx, name, args)
	if err != nil {
		return nil, promptErrToRequestError(name, err)
	}
	return marshal(mcp.GetPromptResult{
		Messages: []mcp.PromptMessage{{Role: string(mcp.RoleUser), Content: mcp.TextContent(text)}},
	})
}

func promptErrToRequestError(name string, err error) *jsonrpc.RequestError {
	pe, ok := err.(*handler.PromptError)
	if !ok {
		return jsonrpc.ErrInternal(err.Error())
	}
	switch {
	case pe.IsNotFound():
		return jsonrpc.ErrPromptNotFound(name)
	case pe.IsInvalidParameters():
		return jsonrpc.ErrInvalidParams(err.Error())
	default:
		return jsonrpc.ErrInternal(err.Error())
	}
}

func marshal(v any) (json.RawMessage, *jsonrpc.RequestError) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, jsonrpc.ErrInternal(err.Error())
	}
	return data, nil
}
