package extract

import (
	"encoding/csv"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// readRows parses CSV text tolerantly: variable field counts and sloppy
// quoting are accepted. If structured parsing fails entirely, it falls
// back to a naive line/comma split so a mangled export still yields rows.
func readRows(r io.Reader) [][]string {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil
	}

	reader := csv.NewReader(strings.NewReader(string(raw)))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err == nil {
		return rows
	}

	var naive [][]string

	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}

		naive = append(naive, strings.Split(line, ","))
	}

	return naive
}

// normalizeHeader lower-cases and trims every header cell.
func normalizeHeader(row []string) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		out[i] = strings.ToLower(strings.TrimSpace(cell))
	}

	return out
}

// findColumn returns the index of the first header cell containing any of
// the given substrings, or -1. Header must already be normalized.
func findColumn(header []string, substrs ...string) int {
	for i, cell := range header {
		for _, sub := range substrs {
			if strings.Contains(cell, sub) {
				return i
			}
		}
	}

	return -1
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

// parseCents parses a money string into cents after stripping currency
// symbols and thousands separators. "$1,234.56" -> 123456.
func parseCents(s string) (int64, error) {
	clean := strings.ReplaceAll(s, "$", "")
	clean = strings.ReplaceAll(clean, ",", "")
	clean = strings.TrimSpace(clean)

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, err
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}

// dateLayouts covers the formats seen across US bank exports.
var dateLayouts = []string{
	"01/02/2006",
	"1/2/2006",
	"2006-01-02",
	"01-02-2006",
}

// parseDate tries the known layouts. Returns false for empty or
// unparseable values (summary rows, footers).
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}

	return n
}
