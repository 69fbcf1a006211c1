package middleware

import (
	"context"
	"encoding/json"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/samestrin/mcpkit/jsonrpc"
)

// policyEnv is the evaluation environment a policy expression runs
// against: the method being called and its decoded params, exposed under
// short field names so policies stay readable (e.g. `method == "tools/call"
// && params.name != "dangerous_tool"`).
type policyEnv struct {
	Method string         `expr:"method"`
	Params map[string]any `expr:"params"`
}

// Policy evaluates a boolean expr-lang expression against each call and
// rejects it with InvalidRequest when the expression is false, answering
// the same "authorization belongs in middleware" requirement BearerAuth
// answers from the authentication side.
type Policy struct {
	program *vm.Program
}

// NewPolicy compiles expression once at construction time; a malformed
// expression is a wiring error and is returned immediately rather than
// deferred to the first call.
func NewPolicy(expression string) (*Policy, error) {
	program, err := expr.Compile(expression, expr.Env(policyEnv{}), expr.AsBool())
	if err != nil {
		return nil, err
	}
	return &Policy{program: program}, nil
}

func (p *Policy) Wrap(next MessageHandlerFunc) MessageHandlerFunc {
	return func(ctx context.Context, msg jsonrpc.SendableMessage) *jsonrpc.ResponseItem {
		if msg.Call == nil {
			return next(ctx, msg)
		}

		var params map[string]any
		if len(msg.Call.Params) > 0 {
			_ = json.Unmarshal(msg.Call.Params, &params)
		}

		out, err := expr.Run(p.program, policyEnv{Method: msg.Call.Method, Params: params})
		if err != nil {
			return jsonrpc.NewError(msg.Call.ID, jsonrpc.NewErrorData(jsonrpc.InternalError, "policy evaluation failed: "+err.Error()))
		}
		allowed, _ := out.(bool)
		if !allowed {
			return jsonrpc.NewError(msg.Call.ID, jsonrpc.NewErrorData(jsonrpc.InvalidRequest, "rejected by policy"))
		}

		return next(ctx, msg)
	}
}
