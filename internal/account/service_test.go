package account_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/networth/internal/account"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    account.CreateParams
		setupMock func(m *account.MockRepository)
		wantErr   string
	}

	tests := []testCase{
		{
			name: "Success",
			params: account.CreateParams{
				ID:              "chase-checking",
				Institution:     "Chase",
				DisplayName:     "Chase Checking",
				Type:            account.TypeChecking,
				IsAsset:         true,
				IngestionMethod: account.MethodPlaid,
			},
			setupMock: func(m *account.MockRepository) {
				m.EXPECT().
					CreateAccount(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "MissingID",
			params: account.CreateParams{
				Type:            account.TypeChecking,
				IngestionMethod: account.MethodManual,
			},
			wantErr: "account id is required",
		},
		{
			name: "InvalidType",
			params: account.CreateParams{
				ID:              "acct",
				Type:            account.Type("mortgage"),
				IngestionMethod: account.MethodManual,
			},
			wantErr: "invalid account type",
		},
		{
			name: "InvalidMethod",
			params: account.CreateParams{
				ID:              "acct",
				Type:            account.TypeLoan,
				IngestionMethod: account.IngestionMethod("scraper"),
			},
			wantErr: "invalid ingestion method",
		},
		{
			name: "RepoError",
			params: account.CreateParams{
				ID:              "acct",
				Type:            account.TypeSavings,
				IngestionMethod: account.MethodCSV,
			},
			setupMock: func(m *account.MockRepository) {
				m.EXPECT().
					CreateAccount(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: "db error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := account.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := account.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.params.ID, got.ID)
			assert.True(t, got.IsActive)
		})
	}
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := account.NewMockRepository(ctrl)
	svc := account.NewService(repo)

	filter := account.ListFilter{ActiveOnly: true}
	repo.EXPECT().
		ListAccounts(gomock.Any(), filter).
		Return([]*account.Account{
			{ID: "a1"},
			{ID: "a2"},
		}, nil)

	got, err := svc.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestService_Deactivate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := account.NewMockRepository(ctrl)
	svc := account.NewService(repo)

	repo.EXPECT().SetActive(gomock.Any(), "a1", false).Return(nil)

	require.NoError(t, svc.Deactivate(context.Background(), "a1"))
}
