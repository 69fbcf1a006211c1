// Package id provides client-side correlation id generation for outbound
// requests. It has no role in dispatching an incoming request (the
// message layer only ever echoes an id it was given); it exists for hosts
// that also act as MCP clients and need fresh ids of their own.
package id

import (
	"github.com/google/uuid"

	"github.com/samestrin/mcpkit/jsonrpc"
)

// Generator produces a fresh RequestId for each outbound call.
type Generator interface {
	Next() jsonrpc.RequestId
}

// UUIDGenerator generates string ids from version-7 UUIDs, which sort
// lexically by creation time -- useful when ids double as a rough
// request-ordering signal in logs.
type UUIDGenerator struct{}

func NewUUIDGenerator() UUIDGenerator { return UUIDGenerator{} }

func (UUIDGenerator) Next() jsonrpc.RequestId {
	return jsonrpc.StrID(uuid.Must(uuid.NewV7()).String())
}

// SequentialGenerator generates small monotonically increasing numeric
// ids, useful for tests and for hosts that want compact, readable ids.
type SequentialGenerator struct {
	next uint64
}

func NewSequentialGenerator() *SequentialGenerator { return &SequentialGenerator{} }

func (g *SequentialGenerator) Next() jsonrpc.RequestId {
	g.next++
	return jsonrpc.NumID(g.next)
}
