package handler

import (
	"net/http"

	"github.com/farmstand/internal/domain"
	"github.com/go-chi/chi/v5"
)

// HealthHandler handles health-check endpoints.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

func (h *HealthHandler) Ping(w http.ResponseWriter, r *http.Request) error {
	if chi.URLParam(r, "action") != "ping" {
		return domain.NewApplicationError("unknown action", http.StatusBadRequest)
	}
	return writeJSON(w, http.StatusOK, MessageEnvelope{Message: "pong"})
}
