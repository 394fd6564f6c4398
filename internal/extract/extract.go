package extract

import (
	"io"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/networth/internal/encoding"
)

// Institution tags a CSV export with the bank that produced it, which
// selects the extraction strategy. Unknown institutions route to the
// generic strategy.
type Institution string

const (
	InstitutionChase      Institution = "chase"
	InstitutionWellsFargo Institution = "wellsfargo"
	InstitutionBofA       Institution = "bofa"
	InstitutionApple      Institution = "apple"
	InstitutionGeneric    Institution = "generic"
)

// Result is the outcome of one extraction attempt. Extraction never
// returns a Go error: malformed input yields Success=false and a
// human-readable reason in Error.
type Result struct {
	Success     bool
	Institution Institution
	Balance     int64 // cents, non-negative magnitude
	Date        time.Time
	AccountHint string
	Note        string
	Error       string
}

// strategy turns parsed rows (header included) into a Result. The service
// fills in the Institution tag afterwards.
type strategy func(rows [][]string) Result

type Service struct {
	strategies map[Institution]strategy
}

// NewService builds the strategy registry. Chase and Apple Card exports
// are transaction lists, so their balance is a period-activity sum; Bank
// of America statements carry an ending-balance summary row; Wells Fargo
// exports carry a running balance column.
func NewService() *Service {
	return &Service{
		strategies: map[Institution]strategy{
			InstitutionChase:      transactionSum,
			InstitutionApple:      transactionSum,
			InstitutionBofA:       trailingBalanceRow,
			InstitutionWellsFargo: runningBalanceColumn,
			InstitutionGeneric:    genericColumn,
		},
	}
}

// Extract parses raw CSV content using the institution's strategy.
func (s *Service) Extract(inst Institution, r io.Reader) Result {
	strat, ok := s.strategies[inst]
	if !ok {
		inst, strat = InstitutionGeneric, genericColumn
	}

	utf8r, err := encoding.NewUTF8Reader(r)
	if err != nil {
		return failure(inst, "unreadable input: "+err.Error())
	}

	rows := readRows(utf8r)
	if len(rows) < 2 {
		return failure(inst, "Empty or invalid CSV")
	}

	result := strat(rows)
	result.Institution = inst

	return result
}

// DetectInstitution infers the institution tag from a filename, matching
// the substrings banks put in their export names. Case-insensitive.
func DetectInstitution(filename string) Institution {
	name := strings.ToLower(filename)

	switch {
	case strings.Contains(name, "chase"):
		return InstitutionChase
	case strings.Contains(name, "wellsfargo"), strings.Contains(name, "wells_fargo"):
		return InstitutionWellsFargo
	case strings.Contains(name, "bofa"), strings.Contains(name, "bankofamerica"):
		return InstitutionBofA
	case strings.Contains(name, "apple"), strings.Contains(name, "goldman"):
		return InstitutionApple
	}

	return InstitutionGeneric
}

func failure(inst Institution, reason string) Result {
	return Result{Institution: inst, Error: reason}
}
