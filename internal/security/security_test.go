package security_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/cortexai/cosmosdb-mcp/internal/security"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })
	return &buf
}

// ─── HashArguments ────────────────────────────────────────────────────────────

func TestHashArgumentsStable(t *testing.T) {
	a := map[string]any{"containerName": "tasks", "id": "1"}
	b := map[string]any{"id": "1", "containerName": "tasks"}

	if security.HashArguments(a) != security.HashArguments(b) {
		t.Error("equal argument bags should hash equally regardless of insertion order")
	}
	if got := len(security.HashArguments(a)); got != 16 {
		t.Errorf("hash length = %d, want 16", got)
	}
}

func TestHashArgumentsDiffers(t *testing.T) {
	a := security.HashArguments(map[string]any{"secretName": "db-password"})
	b := security.HashArguments(map[string]any{"secretName": "api-key"})
	if a == b {
		t.Error("different argument bags should hash differently")
	}
}

// ─── AuditLogger ──────────────────────────────────────────────────────────────

func TestAuditLoggerNeverLogsRawArguments(t *testing.T) {
	buf := captureLog(t)

	security.NewAuditLogger(true).LogToolCall("get_secret",
		map[string]any{"secretName": "db-password"}, true, 12*time.Millisecond)

	if bytes.Contains(buf.Bytes(), []byte("db-password")) {
		t.Fatalf("audit line leaked a raw argument: %s", buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("audit line is not JSON: %v", err)
	}
	if entry["event"] != "tool_audit" || entry["tool"] != "get_secret" || entry["success"] != true {
		t.Errorf("unexpected audit entry: %v", entry)
	}
	if entry["args_hash"] == "" {
		t.Error("args_hash missing")
	}
}

func TestAuditLoggerDisabled(t *testing.T) {
	buf := captureLog(t)

	security.NewAuditLogger(false).LogToolCall("get_item", nil, true, 0)
	if buf.Len() != 0 {
		t.Errorf("disabled audit logger wrote %q", buf.String())
	}
}

func TestAuditLoggerNilSafe(t *testing.T) {
	var a *security.AuditLogger
	if a.Enabled() {
		t.Error("nil audit logger should report disabled")
	}
	a.LogToolCall("get_item", nil, false, 0)
}
