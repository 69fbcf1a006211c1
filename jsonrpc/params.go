package jsonrpc

import (
	"encoding/json"
	"fmt"
)

// Params is the union of the two legal parameter shapes in JSON-RPC 2.0: a
// positional array or a named map. A bare scalar is not a legal params
// value and is rejected at decode time.
type Params struct {
	array []json.RawMessage
	m     map[string]json.RawMessage
	isMap bool
}

// ArrayParams builds positional params.
func ArrayParams(items []json.RawMessage) Params { return Params{array: items} }

// MapParams builds named params.
func MapParams(m map[string]json.RawMessage) Params { return Params{m: m, isMap: true} }

// IsMap reports whether these params are the named-map shape.
func (p Params) IsMap() bool { return p.isMap }

// Map returns the named params, or nil if these are array params.
func (p Params) Map() map[string]json.RawMessage { return p.m }

// Array returns the positional params, or nil if these are map params.
func (p Params) Array() []json.RawMessage { return p.array }

func (p Params) MarshalJSON() ([]byte, error) {
	if p.isMap {
		return json.Marshal(p.m)
	}
	return json.Marshal(p.array)
}

func (p *Params) UnmarshalJSON(data []byte) error {
	var asMap map[string]json.RawMessage
	if err := json.Unmarshal(data, &asMap); err == nil {
		*p = MapParams(asMap)
		return nil
	}
	var asArray []json.RawMessage
	if err := json.Unmarshal(data, &asArray); err == nil {
		*p = ArrayParams(asArray)
		return nil
	}
	return fmt.Errorf("jsonrpc: params must be an array or an object")
}
