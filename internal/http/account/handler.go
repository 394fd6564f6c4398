package account

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/networth/internal/account"
)

type Handler struct {
	svc *account.Service
}

func NewHandler(svc *account.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Post("/{id}/deactivate", h.deactivate)
	r.Post("/{id}/activate", h.activate)
}

type createAccountRequest struct {
	ID              string                  `json:"id"`
	Institution     string                  `json:"institution"`
	DisplayName     string                  `json:"display_name"`
	Type            account.Type            `json:"type"`
	IsAsset         bool                    `json:"is_asset"`
	ExternalID      string                  `json:"external_id"`
	IngestionMethod account.IngestionMethod `json:"ingestion_method"`
}

type accountResponse struct {
	ID              string                  `json:"id"`
	Institution     string                  `json:"institution"`
	DisplayName     string                  `json:"display_name"`
	Type            account.Type            `json:"type"`
	IsAsset         bool                    `json:"is_asset"`
	ExternalID      string                  `json:"external_id,omitempty"`
	IngestionMethod account.IngestionMethod `json:"ingestion_method"`
	LastUpdated     *time.Time              `json:"last_updated,omitempty"`
	IsActive        bool                    `json:"is_active"`
	CreatedAt       time.Time               `json:"created_at"`
}

func toResponse(a *account.Account) accountResponse {
	return accountResponse{
		ID:              a.ID,
		Institution:     a.Institution,
		DisplayName:     a.DisplayName,
		Type:            a.Type,
		IsAsset:         a.IsAsset,
		ExternalID:      a.ExternalID,
		IngestionMethod: a.IngestionMethod,
		LastUpdated:     a.LastUpdated,
		IsActive:        a.IsActive,
		CreatedAt:       a.CreatedAt,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a, err := h.svc.Create(r.Context(), account.CreateParams{
		ID:              req.ID,
		Institution:     req.Institution,
		DisplayName:     req.DisplayName,
		Type:            req.Type,
		IsAsset:         req.IsAsset,
		ExternalID:      req.ExternalID,
		IngestionMethod: req.IngestionMethod,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(a)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := account.ListFilter{}

	if r.URL.Query().Get("active") == "true" {
		filter.ActiveOnly = true
	}

	if s := r.URL.Query().Get("method"); s != "" {
		filter.Method = new(account.IngestionMethod(s))
	}

	accounts, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	responses := make([]accountResponse, 0, len(accounts))
	for _, a := range accounts {
		responses = append(responses, toResponse(a))
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(responses); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			http.Error(w, "account not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(a)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateAccountRequest struct {
	Institution *string       `json:"institution,omitempty"`
	DisplayName *string       `json:"display_name,omitempty"`
	Type        *account.Type `json:"type,omitempty"`
	IsAsset     *bool         `json:"is_asset,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req updateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			http.Error(w, "account not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Institution != nil {
		a.Institution = *req.Institution
	}

	if req.DisplayName != nil {
		a.DisplayName = *req.DisplayName
	}

	if req.Type != nil {
		a.Type = *req.Type
	}

	if req.IsAsset != nil {
		a.IsAsset = *req.IsAsset
	}

	if err := h.svc.Update(r.Context(), a); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(a)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) deactivate(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Deactivate(r.Context(), chi.URLParam(r, "id")); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) activate(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Activate(r.Context(), chi.URLParam(r, "id")); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
