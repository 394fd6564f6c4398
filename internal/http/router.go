package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MrJamesThe3rd/networth/internal/http/account"
	"github.com/MrJamesThe3rd/networth/internal/http/balance"
	"github.com/MrJamesThe3rd/networth/internal/http/fetchrun"
	"github.com/MrJamesThe3rd/networth/internal/http/importcsv"
	"github.com/MrJamesThe3rd/networth/internal/http/networth"
)

func New(
	accountsV1 *account.Handler,
	balancesV1 *balance.Handler,
	networthV1 *networth.Handler,
	importV1 *importcsv.Handler,
	fetchV1 *fetchrun.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/accounts", func(r chi.Router) {
			accountsV1.Routes(r)
		})

		r.Route("/balances", func(r chi.Router) {
			balancesV1.Routes(r)
		})

		r.Route("/networth", func(r chi.Router) {
			networthV1.Routes(r)
		})

		r.Route("/import", importV1.Routes)

		r.Route("/fetch", func(r chi.Router) {
			fetchV1.Routes(r)
		})
	})

	return router
}
