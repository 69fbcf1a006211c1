package jsonrpc

import (
	"encoding/json"
	"testing"
)

func TestDecodeRequestSingle(t *testing.T) {
	req, err := DecodeRequest([]byte(`{"jsonrpc":"2.0","id":1,"method":"ping"}`))
	if err != nil {
		t.Fatalf("DecodeRequest: %v", err)
	}
	if req.Single == nil || req.Batch != nil {
		t.Fatalf("expected a single message, got %+v", req)
	}
}

func TestDecodeRequestBatch(t *testing.T) {
	req, err := DecodeRequest([]byte(`[{"jsonrpc":"2.0","id":1,"method":"ping"},{"jsonrpc":"2.0","method":"notify"}]`))
	if err != nil {
		t.Fatalf("DecodeRequest: %v", err)
	}
	if req.Batch == nil || len(req.Batch) != 2 {
		t.Fatalf("expected a 2-element batch, got %+v", req)
	}
}

func TestDecodeRequestRejectsMalformedSingleDocument(t *testing.T) {
	_, err := DecodeRequest([]byte("not json at all"))
	if err == nil {
		t.Fatalf("expected an error for a malformed single document")
	}
}

func TestDecodeRequestWithLeadingWhitespace(t *testing.T) {
	req, err := DecodeRequest([]byte("  \n [{\"jsonrpc\":\"2.0\",\"method\":\"notify\"}]"))
	if err != nil {
		t.Fatalf("DecodeRequest: %v", err)
	}
	if req.Batch == nil {
		t.Fatalf("expected batch detection despite leading whitespace")
	}
}

func TestResponseSingleMarshalsBare(t *testing.T) {
	item := NewSuccess(NumID(1), json.RawMessage(`"pong"`))
	resp := Response{Single: item}
	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"jsonrpc":"2.0","id":1,"result":"pong"}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}

func TestResponseEmptyBatchMarshalsAsEmptyArray(t *testing.T) {
	resp := Response{Batch: []*ResponseItem{}}
	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("got %s, want []", data)
	}
}

func TestErrorDataOmitsDataWhenAbsent(t *testing.T) {
	item := NewError(NumID(1), NewErrorData(InvalidParams, "bad params"))
	data, err := json.Marshal(item)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"jsonrpc":"2.0","id":1,"error":{"code":-32602,"message":"bad params"}}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}

func TestRequestErrorTaxonomyMapping(t *testing.T) {
	cases := []struct {
		err  *RequestError
		code ErrorCode
	}{
		{ErrMethodNotFound("foo"), MethodNotFound},
		{ErrInvalidParams("bad"), InvalidParams},
		{ErrInternal("boom"), InternalError},
		{ErrToolNotFound("calc"), InvalidParams},
		{ErrResourceNotFound("file:///x"), InvalidParams},
		{ErrPromptNotFound("greet"), InvalidParams},
		{ErrUnsupported("resources/subscribe"), InvalidRequest},
	}
	for _, tc := range cases {
		got := tc.err.ToErrorData().Code
		if got != tc.code {
			t.Errorf("%v: got code %d, want %d", tc.err, got, tc.code)
		}
	}
}
