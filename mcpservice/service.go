// Package mcpservice implements the Message Service and Request Service:
// the dispatch core that routes a parsed JSON-RPC message to the right
// tool, prompt, or resource handler and folds the outcome into a response.
package mcpservice

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/samestrin/mcpkit/handler"
	"github.com/samestrin/mcpkit/jsonrpc"
	"github.com/samestrin/mcpkit/mcp"
	"github.com/samestrin/mcpkit/mcpcontext"
)

// ResourceHandler serves resources/list and resources/read for one
// resource. Registering at least one makes the resources capability
// appear in initialize; an empty registry omits it entirely, matching the
// tools/prompts capabilities' own all-or-nothing presence rule.
type ResourceHandler interface {
	Meta() mcp.ResourceMeta
	Read(ctx context.Context, shared *mcpcontext.Context) (mcp.ResourceContents, error)
}

// NotificationSink observes well-formed notifications after the message
// layer decides no response is due. It never sees Invalid messages or
// MethodCalls, only the Notification branch of SendableMessage.
type NotificationSink interface {
	Observe(ctx context.Context, method string, params json.RawMessage)
}

// Service holds the immutable, shared-ownership state a running server
// dispatches against: its registered tools, prompts, resources, injected
// context, and identity. A Service's zero-cost Clone equivalent in Go is
// simply sharing the same *Service pointer; nothing here is mutated after
// Build.
type Service struct {
	name         string
	version      string
	instructions string
	tools        map[string]handler.ToolHandler
	prompts      map[string]handler.PromptHandler
	resources    map[string]ResourceHandler
	ctx          *mcpcontext.Context
	sink         NotificationSink
}

// Builder assembles a Service. Registration methods return the builder so
// calls can be chained.
type Builder struct {
	name, version, instructions string
	tools                       map[string]handler.ToolHandler
	prompts                     map[string]handler.PromptHandler
	resources                   map[string]ResourceHandler
	ctxBuilder                  *mcpcontext.Builder
	sink                        NotificationSink
}

func NewBuilder(name, version string) *Builder {
	return &Builder{
		name:       name,
		version:    version,
		tools:      make(map[string]handler.ToolHandler),
		prompts:    make(map[string]handler.PromptHandler),
		resources:  make(map[string]ResourceHandler),
		ctxBuilder: mcpcontext.NewBuilder(),
	}
}

func (b *Builder) WithInstructions(instructions string) *Builder {
	b.instructions = instructions
	return b
}

func (b *Builder) WithTool(t handler.ToolHandler) *Builder {
	b.tools[t.Name()] = t
	return b
}

func (b *Builder) WithPrompt(p handler.PromptHandler) *Builder {
	b.prompts[p.Name()] = p
	return b
}

func (b *Builder) WithResource(r ResourceHandler) *Builder {
	b.resources[r.Meta().URI] = r
	return b
}

func (b *Builder) WithNotificationSink(sink NotificationSink) *Builder {
	b.sink = sink
	return b
}

// WithState registers a value of type T into the service's shared Context.
func WithState[T any](b *Builder, v *T) *Builder {
	mcpcontext.Insert(b.ctxBuilder, v)
	return b
}

func (b *Builder) Build() *Service {
	return &Service{
		name:         b.name,
		version:      b.version,
		instructions: b.instructions,
		tools:        b.tools,
		prompts:      b.prompts,
		resources:    b.resources,
		ctx:          b.ctxBuilder.Build(),
		sink:         b.sink,
	}
}

// Capabilities reports which capability sections initialize should
// advertise: a section appears only if its registry is non-empty.
func (s *Service) Capabilities() mcp.ServerCapabilities {
	b := mcp.NewCapabilitiesBuilder()
	if len(s.tools) > 0 {
		b.WithTools(false)
	}
	if len(s.prompts) > 0 {
		b.WithPrompts(false)
	}
	if len(s.resources) > 0 {
		b.WithResources(false, false)
	}
	return b.Build()
}

func (s *Service) ListTools() []mcp.ToolMeta {
	out := make([]mcp.ToolMeta, 0, len(s.tools))
	for _, t := range s.tools {
		out = append(out, mcp.ToolMeta{Name: t.Name(), Description: t.Description(), InputSchema: t.Schema()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *Service) CallTool(ctx context.Context, name string, args json.RawMessage) (mcp.CallToolResult, error) {
	t, ok := s.tools[name]
	if !ok {
		return mcp.CallToolResult{}, handler.NewToolNotFoundError(name)
	}
	return t.Call(ctx, s.ctx, args)
}

func (s *Service) ListPrompts() []mcp.PromptMeta {
	out := make([]mcp.PromptMeta, 0, len(s.prompts))
	for _, p := range s.prompts {
		out = append(out, mcp.PromptMeta{Name: p.Name(), Description: p.Description(), Arguments: p.Arguments()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *Service) GetPrompt(ctx context.Context, name string, args map[string]any) (string, error) {
	p, ok := s.prompts[name]
	if !ok {
		return "", handler.NewPromptNotFoundError(name)
	}
	return p.Call(ctx, s.ctx, args)
}

func (s *Service) ListResources() []mcp.ResourceMeta {
	out := make([]mcp.ResourceMeta, 0, len(s.resources))
	for _, r := range s.resources {
		out = append(out, r.Meta())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].URI < out[j].URI })
	return out
}

func (s *Service) ReadResource(ctx context.Context, uri string) (mcp.ResourceContents, error) {
	r, ok := s.resources[uri]
	if !ok {
		return mcp.ResourceContents{}, handler.NewResourceNotFoundError(uri)
	}
	return r.Read(ctx, s.ctx)
}
