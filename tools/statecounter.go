package tools

import (
	"context"

	"github.com/samestrin/mcpkit/handler"
	"github.com/samestrin/mcpkit/mcpcontext"
	"github.com/samestrin/mcpkit/statestore"
)

// StateCounterArgs is the argument shape for StateCounter.
type StateCounterArgs struct {
	Name  string `json:"name"`
	Delta int64  `json:"delta"`
}

// StateCounter increments a named, sqlite-persisted counter and returns
// its new value. It requires a *statestore.Store to have been registered
// into the service's mcpcontext.Context; calling it without one is a
// wiring error and panics via mcpcontext.From, same as any other
// undeclared dependency.
func StateCounter() handler.ToolHandler {
	return handler.Func("state_counter", "Increments a named persistent counter and returns its new value", nil,
		func(ctx context.Context, shared *mcpcontext.Context, args StateCounterArgs) (any, error) {
			if args.Name == "" {
				return nil, handler.NewInvalidParametersError("name must not be empty")
			}
			delta := args.Delta
			if delta == 0 {
				delta = 1
			}

			store := mcpcontext.From[statestore.Store](shared).Get()
			value, err := store.Increment(args.Name, delta)
			if err != nil {
				return nil, handler.NewExecutionError(err.Error())
			}
			return value, nil
		})
}
