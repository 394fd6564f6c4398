package importcsv

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/networth/internal/account"
	"github.com/MrJamesThe3rd/networth/internal/balance"
	"github.com/MrJamesThe3rd/networth/internal/extract"
	"github.com/MrJamesThe3rd/networth/internal/reconcile"
)

// Handler accepts a bank CSV export, extracts a balance from it and
// records the result against an account.
type Handler struct {
	accounts   *account.Service
	extractor  *extract.Service
	reconciler *reconcile.Service
}

func NewHandler(accounts *account.Service, extractor *extract.Service, reconciler *reconcile.Service) *Handler {
	return &Handler{
		accounts:   accounts,
		extractor:  extractor,
		reconciler: reconciler,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
}

type importSuccessResponse struct {
	AccountID   string    `json:"account_id"`
	Institution string    `json:"institution"`
	Balance     int64     `json:"balance"`
	Date        time.Time `json:"date"`
	Note        string    `json:"note,omitempty"`
}

type importFailureResponse struct {
	Institution string `json:"institution"`
	Error       string `json:"error"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	accountID := r.FormValue("account_id")
	if accountID == "" {
		http.Error(w, "account_id field is required", http.StatusBadRequest)
		return
	}

	acct, err := h.accounts.Get(r.Context(), accountID)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			http.Error(w, "account not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	// An explicit institution wins; otherwise infer it from the upload's
	// filename.
	inst := extract.Institution(r.FormValue("institution"))
	if inst == "" {
		inst = extract.DetectInstitution(header.Filename)
	}

	result := h.extractor.Extract(inst, file)
	if !result.Success {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)

		if err := json.NewEncoder(w).Encode(importFailureResponse{
			Institution: string(result.Institution),
			Error:       result.Error,
		}); err != nil {
			slog.Error("failed to encode response", "error", err)
		}

		return
	}

	reading, err := h.reconciler.Apply(r.Context(), acct, reconcile.Reading{
		Source: balance.SourceCSV,
		Amount: result.Balance,
		Date:   result.Date,
		Note:   result.Note,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(importSuccessResponse{
		AccountID:   acct.ID,
		Institution: string(result.Institution),
		Balance:     reading.Amount,
		Date:        reading.Date,
		Note:        reading.Notes,
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
