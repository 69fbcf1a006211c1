// Package schema provides the opaque schema-producer seam a ToolHandler's
// input schema is generated through. Generating JSON Schema from a Go type
// is treated as a pluggable concern: callers may substitute any Producer,
// and mcpkit ships exactly one concrete implementation, Reflect, backed by
// a real JSON Schema library rather than a hand-rolled reflector.
package schema

import (
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"
)

// Producer generates a JSON Schema document describing type T.
// Implementations are expected to be deterministic for a given type.
type Producer[T any] func() (json.RawMessage, error)

// Reflect generates a draft-07 JSON Schema for T by reflecting over its
// struct tags, the same mechanism the official Go MCP SDK uses to build
// tool input schemas from host types.
func Reflect[T any]() (json.RawMessage, error) {
	s, err := jsonschema.For[T](nil)
	if err != nil {
		return nil, err
	}
	return json.Marshal(s)
}

// Static wraps an already-authored schema document as a Producer, for
// tools whose input shape is easier to write by hand than to infer.
func Static[T any](doc json.RawMessage) Producer[T] {
	return func() (json.RawMessage, error) { return doc, nil }
}
