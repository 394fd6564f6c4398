package networth

import (
	"time"

	"github.com/MrJamesThe3rd/networth/internal/account"
)

// TypeTotal is the asset/liability split for one account type.
type TypeTotal struct {
	Assets      int64
	Liabilities int64
}

// Summary holds net-worth totals in cents. TotalAssets - TotalLiabilities
// always equals NetWorth exactly; the breakdown by type sums back to the
// same totals.
type Summary struct {
	NetWorth         int64
	TotalAssets      int64
	TotalLiabilities int64
	ByType           map[account.Type]TypeTotal
}

// Summarize folds the latest balance per account into totals. Only
// active accounts contribute; an account with no recorded balance
// contributes 0. Pure function over its inputs.
func Summarize(accounts []*account.Account, latest map[string]int64) Summary {
	s := Summary{ByType: make(map[account.Type]TypeTotal)}

	for _, a := range accounts {
		if !a.IsActive {
			continue
		}

		bal := latest[a.ID]

		tt := s.ByType[a.Type]

		if a.IsAsset {
			s.TotalAssets += bal
			tt.Assets += bal
		} else {
			s.TotalLiabilities += bal
			tt.Liabilities += bal
		}

		s.ByType[a.Type] = tt
	}

	s.NetWorth = s.TotalAssets - s.TotalLiabilities

	return s
}

// Stale returns the active accounts whose last update is older than the
// threshold. Accounts that were never updated are always stale.
func Stale(accounts []*account.Account, threshold time.Duration, now time.Time) []*account.Account {
	var stale []*account.Account

	cutoff := now.Add(-threshold)

	for _, a := range accounts {
		if !a.IsActive {
			continue
		}

		if a.LastUpdated == nil || a.LastUpdated.Before(cutoff) {
			stale = append(stale, a)
		}
	}

	return stale
}
