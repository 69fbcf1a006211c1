package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/gofrs/flock"
)

// FileAuditSink implements mcpservice.NotificationSink by appending each
// observed notification as a JSONL line to a file, guarded by an advisory
// file lock so multiple server processes sharing one audit file never
// interleave partial lines.
type FileAuditSink struct {
	path string
	lock *flock.Flock
}

// NewFileAuditSink builds a sink writing to path. The file is created on
// first write if it does not already exist.
func NewFileAuditSink(path string) *FileAuditSink {
	return &FileAuditSink{path: path, lock: flock.New(path + ".lock")}
}

type auditRecord struct {
	Time   time.Time       `json:"time"`
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
}

// Observe appends one record. Lock, open, marshal and write failures are
// dropped silently (nothing is logged) rather than surfaced to the caller:
// an audit sink must never perturb message dispatch.
func (s *FileAuditSink) Observe(ctx context.Context, method string, params json.RawMessage) {
	locked, err := s.lock.TryLockContext(ctx, 50*time.Millisecond)
	if err != nil || !locked {
		return
	}
	defer s.lock.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()

	record := auditRecord{Time: time.Now(), Method: method, Params: params}
	data, err := json.Marshal(record)
	if err != nil {
		return
	}
	fmt.Fprintln(f, string(data))
}
