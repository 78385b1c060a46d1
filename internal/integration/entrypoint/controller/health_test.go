package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func checkHealth(t *testing.T, checker func() bool) (int, HealthResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	NewHealthController(checker).Check(ctx)

	var payload HealthResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid health payload: %v", err)
	}
	return recorder.Code, payload
}

func TestHealthCheck(t *testing.T) {
	t.Run("healthy database", func(t *testing.T) {
		code, payload := checkHealth(t, func() bool { return true })
		if code != http.StatusOK {
			t.Fatalf("status = %d, want 200", code)
		}
		if payload.Service != serviceName || payload.Status != "ok" || payload.Database != "connected" {
			t.Errorf("payload = %+v", payload)
		}
	})

	t.Run("lost database reports degraded but stays 200", func(t *testing.T) {
		code, payload := checkHealth(t, func() bool { return false })
		if code != http.StatusOK {
			t.Fatalf("status = %d, want 200", code)
		}
		if payload.Status != "degraded" || payload.Database != "disconnected" {
			t.Errorf("payload = %+v", payload)
		}
	})
}
