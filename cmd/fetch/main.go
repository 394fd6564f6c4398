// Command fetch runs one provider refresh cycle and prints the result as
// JSON. Meant for cron or manual runs alongside the API.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	accountStore "github.com/MrJamesThe3rd/networth/internal/account/store"
	balanceStore "github.com/MrJamesThe3rd/networth/internal/balance/store"
	"github.com/MrJamesThe3rd/networth/internal/config"
	"github.com/MrJamesThe3rd/networth/internal/database"
	"github.com/MrJamesThe3rd/networth/internal/fetch"
	"github.com/MrJamesThe3rd/networth/internal/match"
	"github.com/MrJamesThe3rd/networth/internal/provider/plaid"
	"github.com/MrJamesThe3rd/networth/internal/provider/simplefin"
	"github.com/MrJamesThe3rd/networth/internal/reconcile"
)

func main() {
	// Optional: a missing .env just means the environment is already set.
	_ = godotenv.Load()

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

	sources := buildSources(cfg)
	if len(sources) == 0 {
		slog.Error("no providers configured")
		os.Exit(1)
	}

	svc := fetch.NewService(
		sources,
		match.NewService(accounts),
		reconcile.NewService(accounts, balances),
		slog.Default(),
	)

	result, err := svc.Run(context.Background())
	if err != nil {
		slog.Error("fetch cycle failed", "error", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	if err := enc.Encode(result); err != nil {
		slog.Error("failed to encode result", "error", err)
		os.Exit(1)
	}

	if len(result.Errors) > 0 {
		os.Exit(1)
	}
}

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
