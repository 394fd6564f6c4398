package extract_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/networth/internal/extract"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestExtract_GenericFallback(t *testing.T) {
	csv := `Date,Description,Balance
2024-01-01,Test,1234.56
`

	svc := extract.NewService()
	result := svc.Extract(extract.InstitutionGeneric, strings.NewReader(csv))

	require.True(t, result.Success, result.Error)
	assert.Equal(t, int64(123456), result.Balance)
	assert.Equal(t, date(2024, 1, 1), result.Date)
}

func TestExtract_GenericNegativeIsMagnitude(t *testing.T) {
	csv := `Date,Description,Amount
2024-01-01,Card payment,-432.10
`

	svc := extract.NewService()
	result := svc.Extract(extract.InstitutionGeneric, strings.NewReader(csv))

	require.True(t, result.Success, result.Error)
	assert.Equal(t, int64(43210), result.Balance)
}

func TestExtract_GenericSkipsNonNumericRows(t *testing.T) {
	csv := `Date,Description,Balance
2024-01-01,Pending,--
2024-01-02,Cleared,88.00
`

	svc := extract.NewService()
	result := svc.Extract(extract.InstitutionGeneric, strings.NewReader(csv))

	require.True(t, result.Success, result.Error)
	assert.Equal(t, int64(8800), result.Balance)
	assert.Equal(t, date(2024, 1, 2), result.Date)
}

func TestExtract_GenericNoColumn(t *testing.T) {
	csv := `Date,Description,Category
2024-01-01,Test,Food
`

	svc := extract.NewService()
	result := svc.Extract(extract.InstitutionGeneric, strings.NewReader(csv))

	require.False(t, result.Success)
	assert.Contains(t, result.Error, "no balance, total, or amount column")
}

func TestExtract_SumStyle(t *testing.T) {
	csv := `Date,Amount
2024-01-01,-50.00
2024-01-02,-25.00
`

	svc := extract.NewService()
	result := svc.Extract(extract.InstitutionChase, strings.NewReader(csv))

	require.True(t, result.Success, result.Error)
	assert.Equal(t, int64(7500), result.Balance)
	assert.Equal(t, date(2024, 1, 2), result.Date)
	assert.Contains(t, result.Note, "not a point-in-time balance")
}

func TestExtract_SumStyleCurrencySymbolsAndJunk(t *testing.T) {
	// Non-numeric amounts count as zero; $ and commas are stripped.
	csv := `Transaction Date,Description,Amount
01/15/2024,Groceries,"-$1,200.50"
01/16/2024,Refund,$200.50
01/17/2024,Pending,n/a
`

	svc := extract.NewService()
	result := svc.Extract(extract.InstitutionApple, strings.NewReader(csv))

	require.True(t, result.Success, result.Error)
	assert.Equal(t, int64(100000), result.Balance)
	assert.Equal(t, date(2024, 1, 17), result.Date)
}

func TestExtract_SumStyleNoAmountColumn(t *testing.T) {
	csv := `Date,Description
2024-01-01,Test
`

	svc := extract.NewService()
	result := svc.Extract(extract.InstitutionChase, strings.NewReader(csv))

	require.False(t, result.Success)
	assert.Contains(t, result.Error, "no amount column")
}

func TestExtract_TrailingBalanceRow(t *testing.T) {
	csv := `Date,Description,Amount,Balance
01/02/2024,Deposit,100.00,
01/03/2024,Withdrawal,-20.00,
,,Ending Balance,2500.00
`

	svc := extract.NewService()
	result := svc.Extract(extract.InstitutionBofA, strings.NewReader(csv))

	require.True(t, result.Success, result.Error)
	assert.Equal(t, int64(250000), result.Balance)
}

func TestExtract_TrailingBalanceRowMissing(t *testing.T) {
	csv := `Date,Description,Amount
01/02/2024,Deposit,100.00
`

	svc := extract.NewService()
	result := svc.Extract(extract.InstitutionBofA, strings.NewReader(csv))

	require.False(t, result.Success)
	assert.Contains(t, result.Error, "no ending balance row")
}

func TestExtract_RunningBalanceColumn(t *testing.T) {
	csv := `Date,Amount,Running Balance
01/20/2024,-45.00,1850.25
01/18/2024,-10.00,1895.25
`

	svc := extract.NewService()
	result := svc.Extract(extract.InstitutionWellsFargo, strings.NewReader(csv))

	require.True(t, result.Success, result.Error)
	assert.Equal(t, int64(185025), result.Balance)
	assert.Equal(t, date(2024, 1, 20), result.Date)
}

func TestExtract_RunningBalanceNotPositive(t *testing.T) {
	csv := `Date,Amount,Balance
01/20/2024,-45.00,-120.00
`

	svc := extract.NewService()
	result := svc.Extract(extract.InstitutionWellsFargo, strings.NewReader(csv))

	require.False(t, result.Success)
	assert.Contains(t, result.Error, "not positive")
}

func TestExtract_HeaderOnly(t *testing.T) {
	csv := `Date,Description,Balance`

	svc := extract.NewService()
	result := svc.Extract(extract.InstitutionGeneric, strings.NewReader(csv))

	require.False(t, result.Success)
	assert.Contains(t, result.Error, "Empty or invalid CSV")
}

func TestExtract_EmptyInput(t *testing.T) {
	svc := extract.NewService()
	result := svc.Extract(extract.InstitutionChase, strings.NewReader(""))

	require.False(t, result.Success)
	assert.Contains(t, result.Error, "Empty or invalid CSV")
}

func TestExtract_UnknownInstitutionUsesGeneric(t *testing.T) {
	csv := `Date,Total
2024-02-01,42.00
`

	svc := extract.NewService()
	result := svc.Extract(extract.Institution("mysterybank"), strings.NewReader(csv))

	require.True(t, result.Success, result.Error)
	assert.Equal(t, extract.InstitutionGeneric, result.Institution)
	assert.Equal(t, int64(4200), result.Balance)
}

func TestDetectInstitution(t *testing.T) {
	tests := []struct {
		filename string
		want     extract.Institution
	}{
		{"Chase1234_Activity.CSV", extract.InstitutionChase},
		{"wellsfargo-export.csv", extract.InstitutionWellsFargo},
		{"checking_wells_fargo.csv", extract.InstitutionWellsFargo},
		{"bofa_statement.csv", extract.InstitutionBofA},
		{"BankOfAmerica-jan.csv", extract.InstitutionBofA},
		{"Apple Card Transactions.csv", extract.InstitutionApple},
		{"goldman-export.csv", extract.InstitutionApple},
		{"mycu-statement.csv", extract.InstitutionGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, extract.DetectInstitution(tt.filename))
		})
	}
}
