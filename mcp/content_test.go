package mcp

import (
	"encoding/json"
	"testing"
)

func TestContentWithAudienceSetsAndOverrides(t *testing.T) {
	c := TextContent("hello")
	if c.Audience() != nil {
		t.Fatalf("fresh content should have no audience")
	}

	annotated := c.WithAudience(RoleUser)
	if len(annotated.Audience()) != 1 || annotated.Audience()[0] != RoleUser {
		t.Fatalf("expected audience [user], got %v", annotated.Audience())
	}

	reannotated := annotated.WithAudience(RoleAssistant, RoleUser)
	if len(reannotated.Audience()) != 2 {
		t.Fatalf("expected audience overridden to 2 entries, got %v", reannotated.Audience())
	}

	// The original must be untouched by later mutation (value semantics).
	if len(c.Audience()) != 0 {
		t.Fatalf("original content must remain unannotated")
	}
}

func TestContentUnannotatedStripsAnnotations(t *testing.T) {
	c := TextContent("hi").WithAudience(RoleUser)
	stripped := c.Unannotated()
	if stripped.Annotations != nil {
		t.Fatalf("expected annotations stripped")
	}
}

func TestCallToolResultOmitsIsErrorWhenFalse(t *testing.T) {
	result := CallToolResult{Content: []Content{TextContent("ok")}}
	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"content":[{"type":"text","text":"ok"}]}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}

func TestCallToolResultIncludesIsErrorWhenTrue(t *testing.T) {
	result := CallToolResult{Content: []Content{TextContent("boom")}, IsError: true}
	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"content":[{"type":"text","text":"boom"}],"isError":true}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}

func TestCallToolResultAbsentIsErrorDeserialisesFalse(t *testing.T) {
	var result CallToolResult
	if err := json.Unmarshal([]byte(`{"content":[]}`), &result); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if result.IsError {
		t.Errorf("expected IsError false when absent from wire")
	}
}
