// Package tools collects ready-to-register ToolHandlers that exercise the
// rest of the module's domain stack (glob and gitignore matching, JSON
// querying, human-readable sizes, stateful counters) and serve as worked
// examples for hosts wiring their own.
package tools

import (
	"context"
	"fmt"

	"github.com/samestrin/mcpkit/handler"
	"github.com/samestrin/mcpkit/mcpcontext"
)

// CalculatorArgs is the argument shape for Calculator.
type CalculatorArgs struct {
	Operation string  `json:"operation"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
}

// Calculator performs the four basic arithmetic operations. Division by
// zero is reported as an execution error rather than a protocol error:
// the request was well-formed, the tool simply could not complete it.
func Calculator() handler.ToolHandler {
	return handler.Func("calculator", "Performs add, subtract, multiply, or divide on two numbers", nil,
		func(ctx context.Context, shared *mcpcontext.Context, args CalculatorArgs) (any, error) {
			switch args.Operation {
			case "add":
				return args.X + args.Y, nil
			case "subtract":
				return args.X - args.Y, nil
			case "multiply":
				return args.X * args.Y, nil
			case "divide":
				if args.Y == 0 {
					return nil, handler.NewExecutionError("Division by zero")
				}
				return args.X / args.Y, nil
			default:
				return nil, handler.NewInvalidParametersError(fmt.Sprintf("unknown operation %q", args.Operation))
			}
		})
}
