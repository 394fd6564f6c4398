package balance_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/networth/internal/balance"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name       string
		params     balance.CreateParams
		wantAmount int64
		wantErr    string
	}

	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []testCase{
		{
			name: "PositiveAmount",
			params: balance.CreateParams{
				AccountID: "chase-checking",
				Date:      date,
				Amount:    123456,
				Source:    balance.SourceManual,
			},
			wantAmount: 123456,
		},
		{
			name: "NegativeAmountStoredAsMagnitude",
			params: balance.CreateParams{
				AccountID: "chase-card",
				Date:      date,
				Amount:    -50000,
				Source:    balance.SourcePlaid,
			},
			wantAmount: 50000,
		},
		{
			name: "MissingAccountID",
			params: balance.CreateParams{
				Amount: 100,
				Source: balance.SourceManual,
			},
			wantErr: "account id is required",
		},
		{
			name: "InvalidSource",
			params: balance.CreateParams{
				AccountID: "acct",
				Amount:    100,
				Source:    balance.Source("scraper"),
			},
			wantErr: "invalid reading source",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := balance.NewMockRepository(ctrl)
			if tt.wantErr == "" {
				repo.EXPECT().CreateReading(gomock.Any(), gomock.Any()).Return(nil)
			}

			svc := balance.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantAmount, got.Amount)
			assert.Equal(t, tt.params.Source, got.Source)
		})
	}
}

func TestService_Create_DefaultsDateToNow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := balance.NewMockRepository(ctrl)
	repo.EXPECT().CreateReading(gomock.Any(), gomock.Any()).Return(nil)

	svc := balance.NewService(repo)

	before := time.Now().UTC()
	got, err := svc.Create(context.Background(), balance.CreateParams{
		AccountID: "acct",
		Amount:    100,
		Source:    balance.SourceManual,
	})
	require.NoError(t, err)

	assert.False(t, got.Date.Before(before))
	assert.False(t, got.Date.After(time.Now().UTC()))
}
