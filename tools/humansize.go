package tools

import (
	"context"

	"github.com/dustin/go-humanize"

	"github.com/samestrin/mcpkit/handler"
	"github.com/samestrin/mcpkit/mcpcontext"
)

// HumanSizeArgs is the argument shape for HumanSize.
type HumanSizeArgs struct {
	Bytes int64 `json:"bytes"`
}

// HumanSize renders a byte count in human-readable form, e.g. "1.2 MB".
func HumanSize() handler.ToolHandler {
	return handler.Func("human_size", "Formats a byte count as a human-readable size", nil,
		func(ctx context.Context, shared *mcpcontext.Context, args HumanSizeArgs) (any, error) {
			if args.Bytes < 0 {
				return nil, handler.NewInvalidParametersError("bytes must not be negative")
			}
			return humanize.Bytes(uint64(args.Bytes)), nil
		})
}
