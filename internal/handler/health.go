package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/ChainBot_Go/internal/agent"
	"github.com/osse101/ChainBot_Go/internal/database"
	"github.com/osse101/ChainBot_Go/internal/logger"
)

const readinessTimeout = 2 * time.Second

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// HandleHealth answers the plain health check chat front-ends poll
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func HandleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusHealthy})
	}
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}

// HandleReadyz reports whether the service can take traffic. dbPool is nil
// when chat tracking is disabled; the agent status is informational only.
// @Summary Readiness check
// @Description Returns OK if the database (when enabled) answers a ping
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(dbPool database.Pool, agentHandle *agent.Handle) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := map[string]string{
			CheckDatabase: StatusDisabled,
			CheckAgent:    agentHandle.Status(),
		}

		if dbPool != nil {
			ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
			defer cancel()

			if err := dbPool.Ping(ctx); err != nil {
				logger.FromContext(r.Context()).Error(LogMsgReadinessFailed, "error", err)
				checks[CheckDatabase] = StatusUnavailable
				respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
					Status:  StatusUnavailable,
					Message: MsgDatabaseUnavailable,
					Checks:  checks,
				})
				return
			}
			checks[CheckDatabase] = StatusOK
		}

		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK, Checks: checks})
	}
}
