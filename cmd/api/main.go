package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/MrJamesThe3rd/networth/internal/account"
	accountStore "github.com/MrJamesThe3rd/networth/internal/account/store"
	"github.com/MrJamesThe3rd/networth/internal/balance"
	balanceStore "github.com/MrJamesThe3rd/networth/internal/balance/store"
	"github.com/MrJamesThe3rd/networth/internal/config"
	"github.com/MrJamesThe3rd/networth/internal/database"
	"github.com/MrJamesThe3rd/networth/internal/extract"
	"github.com/MrJamesThe3rd/networth/internal/fetch"
	networthHttp "github.com/MrJamesThe3rd/networth/internal/http"
	accountHandler "github.com/MrJamesThe3rd/networth/internal/http/account"
	balanceHandler "github.com/MrJamesThe3rd/networth/internal/http/balance"
	fetchHandler "github.com/MrJamesThe3rd/networth/internal/http/fetchrun"
	importHandler "github.com/MrJamesThe3rd/networth/internal/http/importcsv"
	networthHandler "github.com/MrJamesThe3rd/networth/internal/http/networth"
	"github.com/MrJamesThe3rd/networth/internal/match"
	"github.com/MrJamesThe3rd/networth/internal/networth"
	"github.com/MrJamesThe3rd/networth/internal/provider/plaid"
	"github.com/MrJamesThe3rd/networth/internal/provider/simplefin"
	"github.com/MrJamesThe3rd/networth/internal/reconcile"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	accounts := accountStore.New(db)
	balances := balanceStore.New(db)

	var (
		accountService  = account.NewService(accounts)
		balanceService  = balance.NewService(balances)
		extractService  = extract.NewService()
		matchService    = match.NewService(accounts)
		reconcileSvc    = reconcile.NewService(accounts, balances)
		networthService = networth.NewService(accounts, balances)
	)

	sources := buildSources(cfg)
	fetchService := fetch.NewService(sources, matchService, reconcileSvc, slog.Default())

	var (
		accountH  = accountHandler.NewHandler(accountService)
		balanceH  = balanceHandler.NewHandler(accountService, balanceService, reconcileSvc)
		networthH = networthHandler.NewHandler(networthService, cfg.Refresh.StaleThresholdDays)
		importH   = importHandler.NewHandler(accountService, extractService, reconcileSvc)
		fetchH    = fetchHandler.NewHandler(fetchService)
	)

	router := networthHttp.New(accountH, balanceH, networthH, importH, fetchH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

// buildSources wires a source per configured provider. An unconfigured
// provider is simply skipped, so the fetch endpoint works with any
// subset of providers.
func buildSources(cfg *config.Config) []fetch.Source {
	var sources []fetch.Source

	if len(cfg.Plaid.AccessTokens) > 0 {
		client, err := plaid.NewClient(plaid.ClientConfig{
			Environment: cfg.Plaid.Environment,
			ClientID:    cfg.Plaid.ClientID,
			Secret:      cfg.Plaid.Secret,
			Timeout:     cfg.Plaid.Timeout,
		})
		if err != nil {
			slog.Error("skipping plaid provider", "error", err)
		} else {
			sources = append(sources, plaid.NewProvider(client, cfg.Plaid.AccessTokens))
		}
	}

	if len(cfg.SimpleFIN.AccessURLs) > 0 {
		sources = append(sources, simplefin.NewProvider(cfg.SimpleFIN.AccessURLs, cfg.SimpleFIN.Timeout))
	}

	return sources
}
