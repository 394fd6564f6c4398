package networth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/networth/internal/account"
	"github.com/MrJamesThe3rd/networth/internal/networth"
)

func active(id string, typ account.Type, isAsset bool) *account.Account {
	return &account.Account{ID: id, Type: typ, IsAsset: isAsset, IsActive: true}
}

func TestSummarize(t *testing.T) {
	accounts := []*account.Account{
		active("checking", account.TypeChecking, true),
		active("savings", account.TypeSavings, true),
		active("card", account.TypeCredit, false),
		active("mortgage", account.TypeLoan, false),
	}
	latest := map[string]int64{
		"checking": 250000,  // $2,500.00
		"savings":  1000000, // $10,000.00
		"card":     45000,   // $450.00 owed
		"mortgage": 20000000,
	}

	s := networth.Summarize(accounts, latest)

	assert.Equal(t, int64(1250000), s.TotalAssets)
	assert.Equal(t, int64(20045000), s.TotalLiabilities)
	assert.Equal(t, int64(-18795000), s.NetWorth)
	assert.Equal(t, s.TotalAssets-s.TotalLiabilities, s.NetWorth)

	assert.Equal(t, int64(250000), s.ByType[account.TypeChecking].Assets)
	assert.Equal(t, int64(45000), s.ByType[account.TypeCredit].Liabilities)
}

func TestSummarize_IdentityHoldsOverTypeBreakdown(t *testing.T) {
	accounts := []*account.Account{
		active("a1", account.TypeChecking, true),
		active("a2", account.TypeInvestment, true),
		active("l1", account.TypeCredit, false),
		active("l2", account.TypeLoan, false),
		active("other-asset", account.TypeOther, true),
		active("other-debt", account.TypeOther, false),
	}
	latest := map[string]int64{
		"a1": 12345, "a2": 9999999, "l1": 1, "l2": 765432,
		"other-asset": 31415, "other-debt": 27182,
	}

	s := networth.Summarize(accounts, latest)

	var assets, liabilities int64

	for _, tt := range s.ByType {
		assets += tt.Assets
		liabilities += tt.Liabilities
	}

	assert.Equal(t, s.TotalAssets, assets)
	assert.Equal(t, s.TotalLiabilities, liabilities)
	assert.Equal(t, assets-liabilities, s.NetWorth)
}

func TestSummarize_InactiveExcluded(t *testing.T) {
	closed := &account.Account{ID: "old", Type: account.TypeChecking, IsAsset: true}

	s := networth.Summarize([]*account.Account{
		active("live", account.TypeChecking, true),
		closed,
	}, map[string]int64{"live": 100, "old": 99999})

	assert.Equal(t, int64(100), s.NetWorth)
}

func TestSummarize_MissingBalanceContributesZero(t *testing.T) {
	s := networth.Summarize([]*account.Account{
		active("no-readings", account.TypeSavings, true),
		active("card", account.TypeCredit, false),
	}, map[string]int64{"card": 500})

	assert.Equal(t, int64(0), s.TotalAssets)
	assert.Equal(t, int64(-500), s.NetWorth)
}

func TestSummarize_Empty(t *testing.T) {
	s := networth.Summarize(nil, nil)

	assert.Equal(t, int64(0), s.NetWorth)
	assert.Empty(t, s.ByType)
}

func TestStale(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	fresh := now.Add(-24 * time.Hour)
	old := now.Add(-10 * 24 * time.Hour)

	accounts := []*account.Account{
		{ID: "fresh", IsActive: true, LastUpdated: &fresh},
		{ID: "old", IsActive: true, LastUpdated: &old},
		{ID: "never", IsActive: true},
		{ID: "closed-old", IsActive: false, LastUpdated: &old},
	}

	stale := networth.Stale(accounts, 7*24*time.Hour, now)

	ids := make([]string, 0, len(stale))
	for _, a := range stale {
		ids = append(ids, a.ID)
	}

	assert.Equal(t, []string{"old", "never"}, ids)
}
