package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/cortexai/cosmosdb-mcp/internal/models"
	"golang.org/x/sync/errgroup"
)

const healthTimeout = 5 * time.Second

// HealthChecker is implemented by services that can report connectivity
type HealthChecker interface {
	TestConnection(ctx context.Context) error
}

// HealthHandler handles GET /health with dependency checks
type HealthHandler struct {
	version  string
	checkers map[string]HealthChecker
}

func NewHealthHandler(version string, checkers map[string]HealthChecker) *HealthHandler {
	return &HealthHandler{version: version, checkers: checkers}
}

// Health runs every dependency check concurrently and answers 503 when any
// of them fails.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	var (
		mu     sync.Mutex
		g      errgroup.Group
		checks = map[string]string{"server": "ok"}
		status = "healthy"
	)

	for name, checker := range h.checkers {
		if checker == nil {
			checks[name] = "disabled"
			continue
		}
		g.Go(func() error {
			err := checker.TestConnection(ctx)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				checks[name] = "unavailable: " + err.Error()
				status = "degraded"
			} else {
				checks[name] = "ok"
			}
			return nil
		})
	}
	_ = g.Wait()

	code := http.StatusOK
	if status == "degraded" {
		code = http.StatusServiceUnavailable
	}

	models.WriteJSON(w, code, models.HealthResponse{
		Status:  status,
		Version: h.version,
		Checks:  checks,
	})
}
