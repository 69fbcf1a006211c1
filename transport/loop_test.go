package transport

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/samestrin/mcpkit/jsonrpc"
)

type echoHandler struct{}

func (echoHandler) Handle(ctx context.Context, req jsonrpc.Request) *jsonrpc.Response {
	if req.Single == nil {
		return nil
	}
	msg := jsonrpc.ParseMessage(*req.Single)
	if msg.Call == nil {
		return nil
	}
	return &jsonrpc.Response{Single: jsonrpc.NewSuccess(msg.Call.ID, json.RawMessage(`"ok"`))}
}

func TestLoopDispatchesOneLinePerMessage(t *testing.T) {
	input := strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"ping"}` + "\n")
	var out bytes.Buffer
	loop := NewLoop(input, &out, echoHandler{})
	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), `"result":"ok"`) {
		t.Errorf("got %s", out.String())
	}
}

func TestLoopRecoversFromParseError(t *testing.T) {
	input := strings.NewReader("not json at all\n" + `{"jsonrpc":"2.0","id":2,"method":"ping"}` + "\n")
	var out bytes.Buffer
	loop := NewLoop(input, &out, echoHandler{})
	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 response lines (parse error + recovered ping), got %d: %v", len(lines), lines)
	}
	if !strings.Contains(lines[0], `"code":-32700`) {
		t.Errorf("expected first line to carry a ParseError, got %s", lines[0])
	}
	if !strings.Contains(lines[1], `"result":"ok"`) {
		t.Errorf("expected second line to be the recovered ping response, got %s", lines[1])
	}
}

type panicHandler struct{}

func (panicHandler) Handle(ctx context.Context, req jsonrpc.Request) *jsonrpc.Response {
	panic("boom")
}

func TestLoopRecoversFromHandlerPanic(t *testing.T) {
	input := strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"ping"}` + "\n")
	var out bytes.Buffer
	loop := NewLoop(input, &out, panicHandler{})
	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), `"code":-32603`) {
		t.Errorf("expected an InternalError response, got %s", out.String())
	}
}

func TestLoopEndsCleanlyOnEOF(t *testing.T) {
	input := strings.NewReader("")
	var out bytes.Buffer
	loop := NewLoop(input, &out, echoHandler{})
	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("expected clean EOF, got %v", err)
	}
}

func TestLoopNotificationProducesNoOutputLine(t *testing.T) {
	input := strings.NewReader(`{"jsonrpc":"2.0","method":"notifications/initialized"}` + "\n")
	var out bytes.Buffer
	loop := NewLoop(input, &out, echoHandler{})
	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output for a notification, got %q", out.String())
	}
}

func TestLoopRespectsMaxLineBytesFloor(t *testing.T) {
	loop := NewLoop(strings.NewReader(""), &bytes.Buffer{}, echoHandler{}, WithMaxLineBytes(1))
	if loop.maxLineBytes != minMaxLineBytes {
		t.Errorf("expected maxLineBytes raised to floor %d, got %d", minMaxLineBytes, loop.maxLineBytes)
	}
}

func TestLoopScannerAcceptsLinesUpToConfiguredMax(t *testing.T) {
	big := `{"jsonrpc":"2.0","id":1,"method":"ping","params":{"padding":"` + strings.Repeat("x", 20000) + `"}}`
	input := strings.NewReader(big + "\n")
	var out bytes.Buffer
	loop := NewLoop(input, &out, echoHandler{}, WithMaxLineBytes(64*1024))
	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), `"result":"ok"`) {
		t.Errorf("expected large line to be processed, got %d bytes out", out.Len())
	}
}

func TestScannerSplitOnNewlineOnly(t *testing.T) {
	// Sanity check that bufio.Scanner's default ScanLines split function
	// is what backs the loop: no LSP-style header framing is recognised.
	s := bufio.NewScanner(strings.NewReader("a\nb\n"))
	var lines []string
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
}
