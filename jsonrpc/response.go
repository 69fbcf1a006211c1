package jsonrpc

import "encoding/json"

// ResponseItem is one entry of a JSON-RPC response: exactly one of Result
// or Error is set.
type ResponseItem struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      RequestId       `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *ErrorData      `json:"error,omitempty"`
}

// NewSuccess builds a successful response item from an already-marshalled
// result payload.
func NewSuccess(id RequestId, result json.RawMessage) *ResponseItem {
	return &ResponseItem{JSONRPC: Version, ID: id, Result: result}
}

// NewError builds an error response item.
func NewError(id RequestId, err ErrorData) *ResponseItem {
	return &ResponseItem{JSONRPC: Version, ID: id, Error: &err}
}

// Request is the wire envelope the transport hands to the Request Service:
// either a single message or a batch of them. Decoding chooses the shape by
// sniffing the first non-whitespace byte of the document.
type Request struct {
	Single *json.RawMessage
	Batch  []json.RawMessage
}

// DecodeRequest inspects a raw JSON document and classifies it as a single
// message or a batch without fully parsing either branch yet.
func DecodeRequest(data []byte) (Request, error) {
	trimmed := trimLeadingSpace(data)
	if len(trimmed) == 0 {
		return Request{}, structuralError("empty message")
	}
	if trimmed[0] == '[' {
		var batch []json.RawMessage
		if err := json.Unmarshal(data, &batch); err != nil {
			return Request{}, err
		}
		return Request{Batch: batch}, nil
	}
	if !json.Valid(data) {
		return Request{}, structuralError("malformed JSON document")
	}
	raw := json.RawMessage(data)
	return Request{Single: &raw}, nil
}

func trimLeadingSpace(data []byte) []byte {
	i := 0
	for i < len(data) {
		switch data[i] {
		case ' ', '\t', '\n', '\r':
			i++
			continue
		}
		break
	}
	return data[i:]
}

// Response is the wire envelope returned by the Request Service: a single
// item for a single request, or an array of items for a batch. A batch
// that produced zero response items (all notifications) serialises as an
// empty JSON array, never as nothing at all.
type Response struct {
	Single *ResponseItem
	Batch  []*ResponseItem
}

// MarshalJSON renders whichever branch is populated. A nil Response (no
// response at all, e.g. a lone notification) is never passed to the
// encoder by callers; they check for that case before writing.
func (r Response) MarshalJSON() ([]byte, error) {
	if r.Single != nil {
		return json.Marshal(r.Single)
	}
	if r.Batch == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(r.Batch)
}
