package transport

import (
	"context"
	"os"
)

// Stdio runs a Loop over the process's standard input and output. This is
// the one concrete transport device mcpkit ships; everything else (sockets,
// in-memory pipes for tests) is left to the host program, matching the
// out-of-scope boundary around concrete transport devices.
func Stdio(handler Handler, opts ...Option) *Loop {
	return NewLoop(os.Stdin, os.Stdout, handler, opts...)
}

// RunStdio is a convenience wrapper for the common case of serving forever
// on stdio until EOF or cancellation.
func RunStdio(ctx context.Context, handler Handler, opts ...Option) error {
	return Stdio(handler, opts...).Run(ctx)
}
