// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const serviceName = "construction-tracker"

// HealthController answers liveness probes for the API and its database.
type HealthController struct {
	dbHealthChecker func() bool
}

// HealthResponse is the health probe payload.
type HealthResponse struct {
	Service   string `json:"service"`
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(dbHealthChecker func() bool) *HealthController {
	return &HealthController{
		dbHealthChecker: dbHealthChecker,
	}
}

// Check handles GET /health requests. The endpoint stays 200 while the
// process is serving; a lost database connection is reported in the payload
// so probes can distinguish degraded from down.
func (h *HealthController) Check(c *gin.Context) {
	status := "ok"
	dbStatus := "connected"
	if h.dbHealthChecker == nil || !h.dbHealthChecker() {
		status = "degraded"
		dbStatus = "disconnected"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Service:   serviceName,
		Status:    status,
		Database:  dbStatus,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
