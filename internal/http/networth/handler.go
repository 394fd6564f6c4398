package networth

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/networth/internal/account"
	"github.com/MrJamesThe3rd/networth/internal/networth"
)

type Handler struct {
	svc                *networth.Service
	staleThresholdDays int
}

func NewHandler(svc *networth.Service, staleThresholdDays int) *Handler {
	return &Handler{svc: svc, staleThresholdDays: staleThresholdDays}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.summary)
	r.Get("/stale", h.stale)
}

type typeTotalResponse struct {
	Assets      int64 `json:"assets"`
	Liabilities int64 `json:"liabilities"`
}

type summaryResponse struct {
	NetWorth         int64                        `json:"net_worth"`
	TotalAssets      int64                        `json:"total_assets"`
	TotalLiabilities int64                        `json:"total_liabilities"`
	ByType           map[string]typeTotalResponse `json:"by_type"`
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Summary(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := summaryResponse{
		NetWorth:         summary.NetWorth,
		TotalAssets:      summary.TotalAssets,
		TotalLiabilities: summary.TotalLiabilities,
		ByType:           make(map[string]typeTotalResponse, len(summary.ByType)),
	}
	for typ, tt := range summary.ByType {
		resp.ByType[string(typ)] = typeTotalResponse{
			Assets:      tt.Assets,
			Liabilities: tt.Liabilities,
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type staleAccountResponse struct {
	ID          string       `json:"id"`
	Institution string       `json:"institution"`
	DisplayName string       `json:"display_name"`
	Type        account.Type `json:"type"`
	LastUpdated *time.Time   `json:"last_updated,omitempty"`
}

func (h *Handler) stale(w http.ResponseWriter, r *http.Request) {
	stale, err := h.svc.StaleAccounts(r.Context(), h.staleThresholdDays)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	responses := make([]staleAccountResponse, 0, len(stale))
	for _, a := range stale {
		responses = append(responses, staleAccountResponse{
			ID:          a.ID,
			Institution: a.Institution,
			DisplayName: a.DisplayName,
			Type:        a.Type,
			LastUpdated: a.LastUpdated,
		})
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(responses); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
