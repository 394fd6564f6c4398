package match_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/networth/internal/account"
	"github.com/MrJamesThe3rd/networth/internal/match"
	"github.com/MrJamesThe3rd/networth/internal/provider"
)

func newMatcher(t *testing.T, accounts []*account.Account) *match.Service {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	registry := match.NewMockRegistry(ctrl)
	registry.EXPECT().
		ListAccounts(gomock.Any(), account.ListFilter{}).
		Return(accounts, nil).
		AnyTimes()

	return match.NewService(registry)
}

func TestService_Match_ExternalIDWins(t *testing.T) {
	// An established linkage must beat any institution-fuzzy candidate,
	// even when the fuzzy candidate's institution looks like a better fit.
	accounts := []*account.Account{
		{
			ID:              "chase-unlinked",
			Institution:     "Chase",
			IngestionMethod: account.MethodPlaid,
			IsActive:        true,
		},
		{
			ID:              "linked-elsewhere",
			Institution:     "Old Bank Name",
			ExternalID:      "plaid-acct-42",
			IngestionMethod: account.MethodPlaid,
			IsActive:        true,
		},
	}

	svc := newMatcher(t, accounts)

	got, err := svc.Match(context.Background(), "plaid", provider.Account{
		ProviderAccountID: "plaid-acct-42",
		InstitutionLabel:  "Chase",
		AccountName:       "Renamed Account",
	})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "linked-elsewhere", got.ID)
}

func TestService_Match_InstitutionFuzzy(t *testing.T) {
	type testCase struct {
		name       string
		accounts   []*account.Account
		pa         provider.Account
		providerTy string
		wantID     string
	}

	tests := []testCase{
		{
			name: "NormalizedSubstring",
			accounts: []*account.Account{
				{ID: "wf", Institution: "Wells Fargo", IngestionMethod: account.MethodSimpleFIN, IsActive: true},
			},
			pa:         provider.Account{ProviderAccountID: "sfin-1", InstitutionLabel: "wellsfargo.com"},
			providerTy: "simplefin",
			wantID:     "wf",
		},
		{
			name: "SubstringEitherDirection",
			accounts: []*account.Account{
				{ID: "boa", Institution: "Bank of America Premium Rewards", IngestionMethod: account.MethodPlaid, IsActive: true},
			},
			pa:         provider.Account{ProviderAccountID: "p-1", InstitutionLabel: "Bank of America"},
			providerTy: "plaid",
			wantID:     "boa",
		},
		{
			name: "SkipsLinkedAccounts",
			accounts: []*account.Account{
				{ID: "linked", Institution: "Chase", ExternalID: "other-id", IngestionMethod: account.MethodPlaid, IsActive: true},
				{ID: "unlinked", Institution: "Chase", IngestionMethod: account.MethodPlaid, IsActive: true},
			},
			pa:         provider.Account{ProviderAccountID: "p-2", InstitutionLabel: "Chase"},
			providerTy: "plaid",
			wantID:     "unlinked",
		},
		{
			name: "SkipsInactiveAccounts",
			accounts: []*account.Account{
				{ID: "closed", Institution: "Chase", IngestionMethod: account.MethodPlaid, IsActive: false},
			},
			pa:         provider.Account{ProviderAccountID: "p-3", InstitutionLabel: "Chase"},
			providerTy: "plaid",
			wantID:     "",
		},
		{
			name: "SkipsMethodMismatch",
			accounts: []*account.Account{
				{ID: "csv-acct", Institution: "Chase", IngestionMethod: account.MethodCSV, IsActive: true},
			},
			pa:         provider.Account{ProviderAccountID: "p-4", InstitutionLabel: "Chase"},
			providerTy: "plaid",
			wantID:     "",
		},
		{
			name: "FirstCandidateInRegistryOrderWins",
			accounts: []*account.Account{
				{ID: "chase-a", Institution: "Chase", IngestionMethod: account.MethodPlaid, IsActive: true},
				{ID: "chase-b", Institution: "Chase", IngestionMethod: account.MethodPlaid, IsActive: true},
			},
			pa:         provider.Account{ProviderAccountID: "p-5", InstitutionLabel: "Chase"},
			providerTy: "plaid",
			wantID:     "chase-a",
		},
		{
			name: "NoInstitutionOverlap",
			accounts: []*account.Account{
				{ID: "fid", Institution: "Fidelity", IngestionMethod: account.MethodPlaid, IsActive: true},
			},
			pa:         provider.Account{ProviderAccountID: "p-6", InstitutionLabel: "Vanguard"},
			providerTy: "plaid",
			wantID:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newMatcher(t, tt.accounts)

			got, err := svc.Match(context.Background(), tt.providerTy, tt.pa)
			require.NoError(t, err)

			if tt.wantID == "" {
				assert.Nil(t, got)
				return
			}

			require.NotNil(t, got)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestService_Match_EmptyInstitutionLabel(t *testing.T) {
	accounts := []*account.Account{
		{ID: "a", Institution: "Chase", IngestionMethod: account.MethodPlaid, IsActive: true},
	}

	svc := newMatcher(t, accounts)

	got, err := svc.Match(context.Background(), "plaid", provider.Account{
		ProviderAccountID: "p-7",
	})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestService_Match_RegistryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := match.NewMockRegistry(ctrl)
	registry.EXPECT().
		ListAccounts(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("store down"))

	svc := match.NewService(registry)

	_, err := svc.Match(context.Background(), "plaid", provider.Account{ProviderAccountID: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store down")
}
