package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/samestrin/mcpkit/jsonrpc"
)

// Tracing logs method, params, and duration around each message dispatch,
// the reference layer a host can model other layers on. It only observes
// MethodCall and Notification branches; an Invalid envelope has no method
// to span on, so it passes straight through unlogged.
type Tracing struct {
	logger *slog.Logger
}

func NewTracing(logger *slog.Logger) *Tracing {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracing{logger: logger}
}

func (t *Tracing) Wrap(next MessageHandlerFunc) MessageHandlerFunc {
	return func(ctx context.Context, msg jsonrpc.SendableMessage) *jsonrpc.ResponseItem {
		method, params, ok := methodAndParams(msg)
		if !ok {
			return next(ctx, msg)
		}

		start := time.Now()
		item := next(ctx, msg)
		t.logger.Debug("handled message",
			"method", method,
			"params", string(params),
			"duration", time.Since(start),
		)
		return item
	}
}

func methodAndParams(msg jsonrpc.SendableMessage) (string, []byte, bool) {
	switch {
	case msg.Call != nil:
		return msg.Call.Method, msg.Call.Params, true
	case msg.Notification != nil:
		return msg.Notification.Method, msg.Notification.Params, true
	default:
		return "", nil, false
	}
}
