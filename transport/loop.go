// Package transport implements the line-delimited byte transport the
// Request Service is served over: one JSON document per line, terminated
// by '\n'. A parse failure is logged and answered with a ParseError
// response, and the loop continues. A read error from the underlying
// reader, including a line longer than the configured maximum, is logged
// and ends the loop: Run returns it and does not resume reading.
package transport

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/samestrin/mcpkit/jsonrpc"
)

// DefaultMaxLineBytes is the line-size ceiling used when none is
// configured, well above the 8 KiB floor (minMaxLineBytes), so that large
// tool arguments or results fit in one line.
const DefaultMaxLineBytes = 1 << 20 // 1 MiB

const minMaxLineBytes = 8 << 10 // 8 KiB

// Handler is whatever processes one decoded Request and produces the
// Response to write back, or nil to write nothing. mcpservice.RequestService
// satisfies this.
type Handler interface {
	Handle(ctx context.Context, req jsonrpc.Request) *jsonrpc.Response
}

// Loop reads newline-framed JSON documents from a reader, dispatches each
// to a Handler, and writes back whatever Response (if any) results.
type Loop struct {
	r            io.Reader
	w            io.Writer
	handler      Handler
	maxLineBytes int
	logger       *slog.Logger
}

// Option configures a Loop.
type Option func(*Loop)

// WithMaxLineBytes overrides the scanner's buffer ceiling. Values below
// the 8 KiB floor are raised to it.
func WithMaxLineBytes(n int) Option {
	return func(l *Loop) {
		if n < minMaxLineBytes {
			n = minMaxLineBytes
		}
		l.maxLineBytes = n
	}
}

// WithLogger overrides the logger used to report parse and I/O errors.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loop) { l.logger = logger }
}

// NewLoop builds a Loop over r/w dispatching through handler.
func NewLoop(r io.Reader, w io.Writer, handler Handler, opts ...Option) *Loop {
	l := &Loop{
		r:            r,
		w:            w,
		handler:      handler,
		maxLineBytes: DefaultMaxLineBytes,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run reads until the underlying reader reaches EOF or ctx is cancelled,
// dispatching one message per line. It returns nil on clean EOF or
// context cancellation; any other terminal condition is returned as an
// error.
func (l *Loop) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(l.r)
	scanner.Buffer(make([]byte, 0, 64*1024), l.maxLineBytes)

	for {
		if ctx.Err() != nil {
			return nil
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				l.logger.Error("transport: read error, stopping", "error", err)
				return fmt.Errorf("transport: scanner error: %w", err)
			}
			// Scan returns false with a nil Err on clean EOF.
			return nil
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		req, err := jsonrpc.DecodeRequest(line)
		if err != nil {
			l.logger.Warn("transport: parse error, continuing", "error", err)
			l.writeResponse(&jsonrpc.Response{Single: jsonrpc.NewError(
				jsonrpc.NullID(),
				jsonrpc.NewErrorData(jsonrpc.ParseError, parseErrorMessage),
			)})
			continue
		}

		resp := l.dispatch(ctx, req)
		if resp == nil {
			continue
		}
		l.writeResponse(resp)
	}
}

// parseErrorMessage is the literal text the spec requires on the -32700
// response body; it intentionally does not leak the underlying decode
// error, which may quote attacker-controlled input.
const parseErrorMessage = "JSON parsing error when deserialising the message"

// dispatch hands req to the configured Handler, recovering a panic rather
// than letting it take the whole process down with it. A panicking handler
// is treated the same as one that failed internally.
func (l *Loop) dispatch(ctx context.Context, req jsonrpc.Request) (resp *jsonrpc.Response) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("transport: recovered from panic in handler", "panic", r)
			resp = &jsonrpc.Response{Single: jsonrpc.NewError(
				jsonrpc.NullID(),
				jsonrpc.NewErrorData(jsonrpc.InternalError, "internal error"),
			)}
		}
	}()
	return l.handler.Handle(ctx, req)
}

func (l *Loop) writeResponse(resp *jsonrpc.Response) {
	data, err := json.Marshal(resp)
	if err != nil {
		l.logger.Error("transport: failed to marshal response, continuing", "error", err)
		return
	}
	if _, err := l.w.Write(append(data, '\n')); err != nil {
		l.logger.Error("transport: write error, continuing", "error", err)
	}
}
