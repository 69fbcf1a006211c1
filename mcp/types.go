// Package mcp defines the Model Context Protocol domain types carried as
// JSON-RPC params/results: tool and prompt metadata, content blocks,
// resources, and the capability negotiation shapes used by initialize.
package mcp

import "encoding/json"

const ProtocolVersion = "2024-11-05"

// Implementation identifies either end of the connection.
type Implementation struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ClientCapabilities is what the client advertises during initialize. Its
// fields are opaque to the message layer; it exists only so initialize can
// round-trip it.
type ClientCapabilities struct {
	Experimental map[string]json.RawMessage `json:"experimental,omitempty"`
	Roots        *RootsCapability           `json:"roots,omitempty"`
	Sampling     json.RawMessage            `json:"sampling,omitempty"`
}

type RootsCapability struct {
	ListChanged *bool `json:"listChanged,omitempty"`
}

// ServerCapabilities is what the server advertises. Each field is present
// only when the corresponding registry is non-empty, built by
// CapabilitiesBuilder rather than hand-assembled.
type ServerCapabilities struct {
	Prompts   *PromptsCapability   `json:"prompts,omitempty"`
	Resources *ResourcesCapability `json:"resources,omitempty"`
	Tools     *ToolsCapability     `json:"tools,omitempty"`
}

type PromptsCapability struct {
	ListChanged *bool `json:"listChanged,omitempty"`
}

type ResourcesCapability struct {
	Subscribe   *bool `json:"subscribe,omitempty"`
	ListChanged *bool `json:"listChanged,omitempty"`
}

type ToolsCapability struct {
	ListChanged *bool `json:"listChanged,omitempty"`
}

// CapabilitiesBuilder assembles a ServerCapabilities value field by field,
// mirroring the builder a reference MCP engine uses so capability
// negotiation is never hand-rolled at each call site.
type CapabilitiesBuilder struct {
	caps ServerCapabilities
}

func NewCapabilitiesBuilder() *CapabilitiesBuilder { return &CapabilitiesBuilder{} }

func (b *CapabilitiesBuilder) WithTools(listChanged bool) *CapabilitiesBuilder {
	b.caps.Tools = &ToolsCapability{ListChanged: &listChanged}
	return b
}

func (b *CapabilitiesBuilder) WithPrompts(listChanged bool) *CapabilitiesBuilder {
	b.caps.Prompts = &PromptsCapability{ListChanged: &listChanged}
	return b
}

func (b *CapabilitiesBuilder) WithResources(subscribe, listChanged bool) *CapabilitiesBuilder {
	b.caps.Resources = &ResourcesCapability{Subscribe: &subscribe, ListChanged: &listChanged}
	return b
}

func (b *CapabilitiesBuilder) Build() ServerCapabilities { return b.caps }

// InitializeParams is what the client sends with the initialize call.
type InitializeParams struct {
	ProtocolVersion string             `json:"protocolVersion"`
	Capabilities    ClientCapabilities `json:"capabilities"`
	ClientInfo      Implementation     `json:"clientInfo"`
}

// InitializeResult is the server's reply.
type InitializeResult struct {
	ProtocolVersion string             `json:"protocolVersion"`
	Capabilities    ServerCapabilities `json:"capabilities"`
	ServerInfo      Implementation     `json:"serverInfo"`
	Instructions    string             `json:"instructions,omitempty"`
}

// ToolMeta describes a tool to a client via tools/list.
type ToolMeta struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"inputSchema"`
}

type ListToolsResult struct {
	Tools []ToolMeta `json:"tools"`
}

type CallToolParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

// CallToolResult is the folded outcome of a tool call. IsError is omitted
// when false, matching the wire contract: absence means success.
type CallToolResult struct {
	Content []Content `json:"content"`
	IsError bool      `json:"isError,omitempty"`
}

// PromptArgument describes one named argument a prompt accepts.
type PromptArgument struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required,omitempty"`
}

// PromptMeta describes a prompt to a client via prompts/list.
type PromptMeta struct {
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Arguments   []PromptArgument `json:"arguments,omitempty"`
}

type ListPromptsResult struct {
	Prompts []PromptMeta `json:"prompts"`
}

type GetPromptParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments,omitempty"`
}

type PromptMessage struct {
	Role    string  `json:"role"`
	Content Content `json:"content"`
}

type GetPromptResult struct {
	Description string          `json:"description,omitempty"`
	Messages    []PromptMessage `json:"messages"`
}

// ResourceMeta describes a resource via resources/list.
type ResourceMeta struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MimeType    string `json:"mimeType,omitempty"`
}

type ListResourcesResult struct {
	Resources []ResourceMeta `json:"resources"`
}

type ReadResourceParams struct {
	URI string `json:"uri"`
}

// ResourceContents is the untagged union of text or binary resource bodies.
// Exactly one of Text or Blob is set, mirrored by which field is non-empty
// on marshal and which is present on unmarshal.
type ResourceContents struct {
	URI      string `json:"uri"`
	MimeType string `json:"mimeType,omitempty"`
	Text     string `json:"text,omitempty"`
	Blob     string `json:"blob,omitempty"`
}

type ReadResourceResult struct {
	Contents []ResourceContents `json:"contents"`
}
