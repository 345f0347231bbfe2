package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cortexai/cosmosdb-mcp/internal/handler"
	"github.com/cortexai/cosmosdb-mcp/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct{ err error }

func (s stubChecker) TestConnection(context.Context) error { return s.err }

func serveHealth(t *testing.T, checkers map[string]handler.HealthChecker) (int, models.HealthResponse) {
	t.Helper()
	h := handler.NewHealthHandler("0.1.0", checkers)
	rr := httptest.NewRecorder()
	h.Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	var body models.HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return rr.Code, body
}

func TestHealthAllOK(t *testing.T) {
	code, body := serveHealth(t, map[string]handler.HealthChecker{
		"cosmosdb": stubChecker{},
		"keyvault": stubChecker{},
	})

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "0.1.0", body.Version)
	assert.Equal(t, map[string]string{"server": "ok", "cosmosdb": "ok", "keyvault": "ok"}, body.Checks)
}

func TestHealthDegraded(t *testing.T) {
	code, body := serveHealth(t, map[string]handler.HealthChecker{
		"cosmosdb": stubChecker{},
		"keyvault": stubChecker{err: errors.New("403 forbidden")},
	})

	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "degraded", body.Status)
	assert.Equal(t, "ok", body.Checks["cosmosdb"])
	assert.Equal(t, "unavailable: 403 forbidden", body.Checks["keyvault"])
}

func TestHealthDisabledChecker(t *testing.T) {
	code, body := serveHealth(t, map[string]handler.HealthChecker{"keyvault": nil})

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "disabled", body.Checks["keyvault"])
}
