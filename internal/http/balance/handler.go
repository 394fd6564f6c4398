package balance

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/networth/internal/account"
	"github.com/MrJamesThe3rd/networth/internal/balance"
	"github.com/MrJamesThe3rd/networth/internal/reconcile"
)

// Handler records and lists balance readings. Manual entries run through
// the reconciler so the account's last_updated moves like any other
// source.
type Handler struct {
	accounts   *account.Service
	balances   *balance.Service
	reconciler *reconcile.Service
}

func NewHandler(accounts *account.Service, balances *balance.Service, reconciler *reconcile.Service) *Handler {
	return &Handler{
		accounts:   accounts,
		balances:   balances,
		reconciler: reconciler,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Delete("/", h.clear)
}

type createReadingRequest struct {
	AccountID string    `json:"account_id"`
	Amount    int64     `json:"amount"`
	Date      time.Time `json:"date"`
	Notes     string    `json:"notes"`
}

type readingResponse struct {
	ID        uuid.UUID      `json:"id"`
	AccountID string         `json:"account_id"`
	Date      time.Time      `json:"date"`
	Amount    int64          `json:"amount"`
	Source    balance.Source `json:"source"`
	Notes     string         `json:"notes,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

func toResponse(r *balance.Reading) readingResponse {
	return readingResponse{
		ID:        r.ID,
		AccountID: r.AccountID,
		Date:      r.Date,
		Amount:    r.Amount,
		Source:    r.Source,
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createReadingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.AccountID == "" {
		http.Error(w, "account_id is required", http.StatusBadRequest)
		return
	}

	acct, err := h.accounts.Get(r.Context(), req.AccountID)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			http.Error(w, "account not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	reading, err := h.reconciler.Apply(r.Context(), acct, reconcile.Reading{
		Source: balance.SourceManual,
		Amount: req.Amount,
		Date:   req.Date,
		Note:   req.Notes,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(reading)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	accountID := r.URL.Query().Get("account_id")
	if accountID == "" {
		http.Error(w, "account_id query parameter is required", http.StatusBadRequest)
		return
	}

	readings, err := h.balances.ListByAccount(r.Context(), accountID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	responses := make([]readingResponse, 0, len(readings))
	for _, reading := range readings {
		responses = append(responses, toResponse(reading))
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(responses); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) clear(w http.ResponseWriter, r *http.Request) {
	if err := h.balances.ClearAll(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
