package tools

import (
	"context"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/samestrin/mcpkit/handler"
	"github.com/samestrin/mcpkit/internal/support/gitignore"
	"github.com/samestrin/mcpkit/mcpcontext"
	"github.com/samestrin/mcpkit/pkg/pathvalidation"
)

// ListFilesArgs is the argument shape for ListFiles.
type ListFilesArgs struct {
	Root    string `json:"root"`
	Pattern string `json:"pattern"`
}

// ListFiles glob-matches files under Root, honoring a .gitignore at Root
// the same way a checkout-aware search would. Root is rejected up front
// if it still contains an unresolved template placeholder, a mistake
// that otherwise surfaces much later as a confusing "no such file" error.
func ListFiles() handler.ToolHandler {
	return handler.Func("list_files", "Lists files under a directory matching a glob pattern, honoring .gitignore", nil,
		func(ctx context.Context, shared *mcpcontext.Context, args ListFilesArgs) (any, error) {
			if err := pathvalidation.ValidatePathForCreation(args.Root); err != nil {
				return nil, handler.NewInvalidParametersError(err.Error())
			}

			pattern := args.Pattern
			if pattern == "" {
				pattern = "**/*"
			}

			root := args.Root
			if root == "" {
				root = "."
			}

			fsys := os.DirFS(root)
			matches, err := doublestar.Glob(fsys, pattern)
			if err != nil {
				return nil, handler.NewExecutionError(err.Error())
			}

			ignorer, err := gitignore.NewParser(root)
			if err != nil {
				return nil, handler.NewExecutionError(err.Error())
			}

			var out []string
			for _, m := range matches {
				if ignorer.IsIgnored(filepath.Join(root, m)) {
					continue
				}
				out = append(out, m)
			}
			return out, nil
		})
}
