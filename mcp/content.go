package mcp

import "encoding/json"

// Role identifies who a piece of content is attributed to.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Annotations carries optional hints about a content block's intended
// audience and relative priority. A block with no annotations omits the
// field entirely on the wire.
type Annotations struct {
	Audience []Role   `json:"audience,omitempty"`
	Priority *float32 `json:"priority,omitempty"`
}

// Content is the tagged union of content block kinds a tool result,
// prompt message, or resource read can carry. Exactly one payload field is
// populated per Type.
type Content struct {
	Type        string          `json:"type"`
	Text        string          `json:"text,omitempty"`
	Data        string          `json:"data,omitempty"`
	MimeType    string          `json:"mimeType,omitempty"`
	Resource    json.RawMessage `json:"resource,omitempty"`
	Annotations *Annotations    `json:"annotations,omitempty"`
}

// TextContent builds an unannotated text content block.
func TextContent(text string) Content {
	return Content{Type: "text", Text: text}
}

// ImageContent builds an unannotated image content block.
func ImageContent(data, mimeType string) Content {
	return Content{Type: "image", Data: data, MimeType: mimeType}
}

// AudioContent builds an unannotated audio content block.
func AudioContent(data, mimeType string) Content {
	return Content{Type: "audio", Data: data, MimeType: mimeType}
}

// EmbeddedResource marshals resource and wraps the result as an
// embedded-resource content block.
func EmbeddedResource(resource ResourceContents) Content {
	raw, _ := json.Marshal(resource)
	return Content{Type: "resource", Resource: raw}
}

// WithAudience returns a copy of c annotated for the given audience,
// replacing any audience it already carried.
func (c Content) WithAudience(audience ...Role) Content {
	if c.Annotations == nil {
		c.Annotations = &Annotations{}
	} else {
		a := *c.Annotations
		c.Annotations = &a
	}
	c.Annotations.Audience = audience
	return c
}

// WithPriority returns a copy of c annotated with the given priority.
func (c Content) WithPriority(priority float32) Content {
	if c.Annotations == nil {
		c.Annotations = &Annotations{}
	} else {
		a := *c.Annotations
		c.Annotations = &a
	}
	c.Annotations.Priority = &priority
	return c
}

// Audience returns the content's audience annotation, or nil if none was
// set.
func (c Content) Audience() []Role {
	if c.Annotations == nil {
		return nil
	}
	return c.Annotations.Audience
}

// Unannotated returns a copy of c with all annotations stripped.
func (c Content) Unannotated() Content {
	c.Annotations = nil
	return c
}
