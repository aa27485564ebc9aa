package handler

import (
	"net/http"
	"time"

	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/database"
)

// HealthHandler reports process and database health
type HealthHandler struct {
	db database.Database
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db database.Database) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	overall := "ok"
	dbStatus := "ok"
	if err := h.db.Ping(r.Context()); err != nil {
		status = http.StatusServiceUnavailable
		overall = "degraded"
		dbStatus = "unreachable"
	}

	WriteJSON(w, status, map[string]string{
		"status":   overall,
		"time":     time.Now().UTC().Format(time.RFC3339),
		"database": dbStatus,
	})
}
