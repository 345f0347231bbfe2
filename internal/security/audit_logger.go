package security

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// AuditLogger logs tool invocations with hashed arguments
type AuditLogger struct {
	enabled bool
}

func NewAuditLogger(enabled bool) *AuditLogger {
	return &AuditLogger{enabled: enabled}
}

// Enabled reports whether audit events are emitted
func (a *AuditLogger) Enabled() bool {
	return a != nil && a.enabled
}

// LogToolCall records one tool invocation. Arguments are only ever logged
// as a hash since they may name secrets or carry document contents.
func (a *AuditLogger) LogToolCall(tool string, args map[string]any, success bool, duration time.Duration) {
	if !a.Enabled() {
		return
	}

	log.Info().
		Str("event", "tool_audit").
		Str("tool", tool).
		Str("args_hash", HashArguments(args)).
		Bool("success", success).
		Int64("duration_ms", duration.Milliseconds()).
		Msg("audit")
}

// HashArguments returns a short, stable fingerprint of an argument bag.
// Map keys are sorted by encoding/json, so equal bags hash equally.
func HashArguments(args map[string]any) string {
	b, err := json.Marshal(args)
	if err != nil {
		b = []byte(fmt.Sprintf("%v", args))
	}
	return hashStr(string(b))[:16]
}

func hashStr(s string) string {
	h := sha256.Sum256([]byte(s))
	return fmt.Sprintf("%x", h)
}
