package account

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("account not found")

// Type classifies what kind of financial account is being tracked.
type Type string

const (
	TypeChecking   Type = "checking"
	TypeSavings    Type = "savings"
	TypeCredit     Type = "credit"
	TypeInvestment Type = "investment"
	TypeLoan       Type = "loan"
	TypeOther      Type = "other"
)

// IngestionMethod records how balances for an account are obtained.
type IngestionMethod string

const (
	MethodManual    IngestionMethod = "manual"
	MethodCSV       IngestionMethod = "csv"
	MethodPlaid     IngestionMethod = "plaid"
	MethodSimpleFIN IngestionMethod = "simplefin"
)

// Account is a tracked financial account. ID is user-assigned and stable.
// ExternalID links the account to a provider-side account; once set it is
// never overwritten automatically.
type Account struct {
	ID              string
	Institution     string
	DisplayName     string
	Type            Type
	IsAsset         bool
	ExternalID      string
	IngestionMethod IngestionMethod
	LastUpdated     *time.Time
	IsActive        bool
	CreatedAt       time.Time
}

// ValidType reports whether t is one of the known account types.
func ValidType(t Type) bool {
	switch t {
	case TypeChecking, TypeSavings, TypeCredit, TypeInvestment, TypeLoan, TypeOther:
		return true
	}

	return false
}

// ValidMethod reports whether m is one of the known ingestion methods.
func ValidMethod(m IngestionMethod) bool {
	switch m {
	case MethodManual, MethodCSV, MethodPlaid, MethodSimpleFIN:
		return true
	}

	return false
}
