package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/cortexai/cosmosdb-mcp/internal/models"
	"github.com/rs/zerolog/log"
)

// Recovery turns a panic in an HTTP handler into a 500 JSON error. Panics
// inside tool handlers never get here; the dispatcher recovers those.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			log.Error().
				Interface("panic", rec).
				Str("stack", string(debug.Stack())).
				Str("request_id", GetRequestID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("panic recovered")
			models.WriteError(w, http.StatusInternalServerError, "internal server error")
		}()
		next.ServeHTTP(w, r)
	})
}
