// Package middleware implements the Layer composition the Message and
// Request Services are wrapped in: each layer sees the message on the way
// in and the response on the way out, composed outer-first on ingress and
// reverse on egress, same as any onion-style middleware stack.
package middleware

import (
	"context"

	"github.com/samestrin/mcpkit/jsonrpc"
)

// MessageHandlerFunc is the shape a Message Service call takes once
// flattened to a function, so layers can wrap it without depending on the
// concrete mcpservice.MessageService type.
type MessageHandlerFunc func(ctx context.Context, msg jsonrpc.SendableMessage) *jsonrpc.ResponseItem

// MessageLayer wraps a MessageHandlerFunc with additional behaviour.
type MessageLayer interface {
	Wrap(next MessageHandlerFunc) MessageHandlerFunc
}

// MessageLayerFunc adapts a plain function to MessageLayer.
type MessageLayerFunc func(next MessageHandlerFunc) MessageHandlerFunc

func (f MessageLayerFunc) Wrap(next MessageHandlerFunc) MessageHandlerFunc { return f(next) }

// ChainMessage composes layers outer-first: the first layer in the slice
// sees the message first on the way in, and the response last on the way
// out.
func ChainMessage(base MessageHandlerFunc, layers ...MessageLayer) MessageHandlerFunc {
	wrapped := base
	for i := len(layers) - 1; i >= 0; i-- {
		wrapped = layers[i].Wrap(wrapped)
	}
	return wrapped
}

// AsHandler adapts a MessageHandlerFunc to anything expecting a Handle
// method instead of a bare function value, e.g. mcpservice.NewRequestService.
type AsHandler MessageHandlerFunc

func (f AsHandler) Handle(ctx context.Context, msg jsonrpc.SendableMessage) *jsonrpc.ResponseItem {
	return f(ctx, msg)
}

// RequestHandlerFunc is the Request Service's flattened call shape.
type RequestHandlerFunc func(ctx context.Context, req jsonrpc.Request) *jsonrpc.Response

// RequestLayer wraps a RequestHandlerFunc with additional behaviour.
type RequestLayer interface {
	Wrap(next RequestHandlerFunc) RequestHandlerFunc
}

type RequestLayerFunc func(next RequestHandlerFunc) RequestHandlerFunc

func (f RequestLayerFunc) Wrap(next RequestHandlerFunc) RequestHandlerFunc { return f(next) }

func ChainRequest(base RequestHandlerFunc, layers ...RequestLayer) RequestHandlerFunc {
	wrapped := base
	for i := len(layers) - 1; i >= 0; i-- {
		wrapped = layers[i].Wrap(wrapped)
	}
	return wrapped
}
