package fetchrun

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/networth/internal/fetch"
)

// Handler triggers one provider refresh cycle on demand.
type Handler struct {
	svc *fetch.Service
}

func NewHandler(svc *fetch.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.run)
}

func (h *Handler) run(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Run(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(result); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
