package middleware

import (
	"context"
	"encoding/json"

	"github.com/golang-jwt/jwt/v5"

	"github.com/samestrin/mcpkit/jsonrpc"
)

// authParams is the reserved params shape BearerAuth looks for: a bearer
// token carried in the message's own params rather than an HTTP header,
// since the transport below this layer is a byte stream, not HTTP.
type authParams struct {
	Auth string `json:"_auth"`
}

// BearerAuth validates a JWT bearer credential carried under the "_auth"
// params key before letting a call reach the inner handler. It demonstrates
// that authentication is expressible entirely as a layer: nothing in the
// core dispatch path has any notion of credentials.
type BearerAuth struct {
	keyFunc     jwt.Keyfunc
	requireFor  map[string]bool
}

// NewBearerAuth builds a layer that validates tokens with keyFunc for the
// given set of methods; ping and initialize are conventionally left
// unguarded so capability negotiation can happen before a client has a
// token.
func NewBearerAuth(keyFunc jwt.Keyfunc, methods ...string) *BearerAuth {
	require := make(map[string]bool, len(methods))
	for _, m := range methods {
		require[m] = true
	}
	return &BearerAuth{keyFunc: keyFunc, requireFor: require}
}

func (a *BearerAuth) Wrap(next MessageHandlerFunc) MessageHandlerFunc {
	return func(ctx context.Context, msg jsonrpc.SendableMessage) *jsonrpc.ResponseItem {
		if msg.Call == nil || !a.requireFor[msg.Call.Method] {
			return next(ctx, msg)
		}

		var params authParams
		if len(msg.Call.Params) > 0 {
			_ = json.Unmarshal(msg.Call.Params, &params)
		}
		if params.Auth == "" {
			return jsonrpc.NewError(msg.Call.ID, jsonrpc.NewErrorData(jsonrpc.InvalidRequest, "missing bearer credential"))
		}

		token, err := jwt.Parse(params.Auth, a.keyFunc, jwt.WithValidMethods([]string{"HS256", "RS256"}))
		if err != nil || !token.Valid {
			return jsonrpc.NewError(msg.Call.ID, jsonrpc.NewErrorData(jsonrpc.InvalidRequest, "invalid bearer credential"))
		}

		return next(ctx, msg)
	}
}
