package mcpservice

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/samestrin/mcpkit/jsonrpc"
)

// messageHandler is the method-set RequestService dispatches each message
// in a request (or batch) through. *MessageService satisfies it directly;
// a middleware chain built with middleware.ChainMessage can be adapted to
// it too, so request-level batching composes with message-level layers
// (tracing, metrics, auth, policy) without RequestService needing to know
// about any of them.
type messageHandler interface {
	Handle(ctx context.Context, msg jsonrpc.SendableMessage) *jsonrpc.ResponseItem
}

// RequestService adapts a MessageService to the wire-level Request shape:
// a single message, or a batch. It is the only layer that knows about
// batching; MessageService dispatches one message at a time and has no
// concept of a batch.
type RequestService struct {
	inner messageHandler
}

func NewRequestService(inner messageHandler) *RequestService {
	return &RequestService{inner: inner}
}

// Handle processes one wire Request and returns the Response to write, or
// nil if nothing should be written at all (a lone notification).
func (r *RequestService) Handle(ctx context.Context, req jsonrpc.Request) *jsonrpc.Response {
	if req.Single != nil {
		msg := jsonrpc.ParseMessage(*req.Single)
		item := r.inner.Handle(ctx, msg)
		if item == nil {
			return nil
		}
		return &jsonrpc.Response{Single: item}
	}

	if len(req.Batch) == 0 {
		// An empty batch is deliberately invalid, not an empty response: a
		// client that asks for a batch of nothing made a protocol error,
		// not a degenerate no-op.
		return &jsonrpc.Response{Single: jsonrpc.NewError(
			jsonrpc.NullID(),
			jsonrpc.NewErrorData(jsonrpc.InvalidRequest, "Batch must not be empty"),
		)}
	}

	items := make([]*jsonrpc.ResponseItem, len(req.Batch))
	g, gctx := errgroup.WithContext(ctx)
	for i, raw := range req.Batch {
		i, raw := i, raw
		g.Go(func() (err error) {
			msg := jsonrpc.ParseMessage(raw)
			defer func() {
				if rec := recover(); rec != nil {
					items[i] = jsonrpc.NewError(
						messageID(msg),
						jsonrpc.NewErrorData(jsonrpc.InternalError, "internal error"),
					)
				}
			}()
			items[i] = r.inner.Handle(gctx, msg)
			return nil
		})
	}
	// Dispatch errors are impossible here (Handle never returns an error;
	// it folds everything into a ResponseItem, and every closure returns
	// nil), so Wait always returns nil; it is called only to block until
	// every slot has been filled.
	_ = g.Wait()

	out := make([]*jsonrpc.ResponseItem, 0, len(items))
	for _, item := range items {
		if item != nil {
			out = append(out, item)
		}
	}
	return &jsonrpc.Response{Batch: out}
}

// messageID recovers whatever id a SendableMessage carries, for building an
// error response that still echoes it when a panic cuts a dispatch short.
func messageID(msg jsonrpc.SendableMessage) jsonrpc.RequestId {
	switch {
	case msg.Call != nil:
		return msg.Call.ID
	case msg.Invalid != nil && msg.Invalid.ID != nil:
		return *msg.Invalid.ID
	default:
		return jsonrpc.NullID()
	}
}
