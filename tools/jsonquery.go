package tools

import (
	"context"

	"github.com/tidwall/gjson"

	"github.com/samestrin/mcpkit/handler"
	"github.com/samestrin/mcpkit/mcpcontext"
)

// JSONQueryArgs is the argument shape for JSONQuery.
type JSONQueryArgs struct {
	Document string `json:"document"`
	Path     string `json:"path"`
}

// JSONQuery evaluates a gjson path expression against a JSON document and
// returns the matched value's raw text, letting a host inspect JSON tool
// output or stored state without round-tripping it through a full decode.
func JSONQuery() handler.ToolHandler {
	return handler.Func("json_query", "Evaluates a gjson path expression against a JSON document", nil,
		func(ctx context.Context, shared *mcpcontext.Context, args JSONQueryArgs) (any, error) {
			if !gjson.Valid(args.Document) {
				return nil, handler.NewInvalidParametersError("document is not valid JSON")
			}
			result := gjson.Get(args.Document, args.Path)
			if !result.Exists() {
				return nil, handler.NewExecutionError("path matched no value")
			}
			return result.String(), nil
		})
}
