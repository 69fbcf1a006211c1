package jsonrpc

import (
	"encoding/json"
	"fmt"
)

const Version = "2.0"

// MethodCall is a JSON-RPC request: it carries an id and expects exactly
// one response.
type MethodCall struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      RequestId       `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Notification is a JSON-RPC request with no id: it never produces a
// response.
type Notification struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// wireMessage is the shape used to sniff whether an incoming object is a
// MethodCall or a Notification before fully decoding it: presence of the
// "id" key is the only discriminator (its absence, not its value, decides
// the branch -- a literal `"id":null` is still a MethodCall with a null id).
type wireMessage struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
}

// SendableMessage is the result of parsing one line of input: it is either
// a well-formed MethodCall, a well-formed Notification, or an Invalid
// envelope that failed structural validation (wrong jsonrpc version, empty
// method, malformed JSON). Invalid carries the id if one could be
// recovered, so an error response can still echo it.
type SendableMessage struct {
	Call         *MethodCall
	Notification *Notification
	Invalid      *InvalidMessage
}

// InvalidMessage captures what could be salvaged from a malformed message:
// just enough to build an error response with the right id when possible.
type InvalidMessage struct {
	ID  *RequestId
	Err error
}

// IsNotification reports whether this is the no-response branch.
func (m SendableMessage) IsNotification() bool { return m.Notification != nil }

// ParseMessage decodes one JSON document into a SendableMessage, applying
// the structural validation every request must pass before a method name
// is ever looked up: jsonrpc must be the literal string "2.0" and method
// must be a non-empty string.
func ParseMessage(data []byte) SendableMessage {
	var w wireMessage
	if err := json.Unmarshal(data, &w); err != nil {
		return SendableMessage{Invalid: &InvalidMessage{Err: err}}
	}
	if w.JSONRPC != Version {
		id := recoverID(w.ID)
		return SendableMessage{Invalid: &InvalidMessage{ID: id, Err: errInvalidVersion(w.JSONRPC)}}
	}
	if w.Method == "" {
		id := recoverID(w.ID)
		return SendableMessage{Invalid: &InvalidMessage{ID: id, Err: errMissingMethod}}
	}
	if len(w.ID) == 0 {
		return SendableMessage{Notification: &Notification{JSONRPC: w.JSONRPC, Method: w.Method, Params: w.Params}}
	}
	var id RequestId
	if err := id.UnmarshalJSON(w.ID); err != nil {
		return SendableMessage{Invalid: &InvalidMessage{Err: err}}
	}
	return SendableMessage{Call: &MethodCall{JSONRPC: w.JSONRPC, ID: id, Method: w.Method, Params: w.Params}}
}

func recoverID(raw json.RawMessage) *RequestId {
	if len(raw) == 0 {
		return nil
	}
	var id RequestId
	if err := id.UnmarshalJSON(raw); err != nil {
		return nil
	}
	return &id
}

var errMissingMethod = structuralError("method must be a non-empty string")

func errInvalidVersion(got string) error {
	return structuralError(fmt.Sprintf("jsonrpc version must be %q, got %q", Version, got))
}

type structuralError string

func (e structuralError) Error() string { return string(e) }
