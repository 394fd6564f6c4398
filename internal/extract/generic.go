package extract

// genericColumn is the fallback for unknown institutions: find any column
// whose header mentions balance, total, or amount (first header match
// wins), then take the first data row with a numeric value in it, as a
// magnitude.
func genericColumn(rows [][]string) Result {
	header := normalizeHeader(rows[0])

	idx := findColumn(header, "balance", "total", "amount")
	if idx < 0 {
		return Result{Error: "no balance, total, or amount column found"}
	}

	for _, row := range rows[1:] {
		cents, err := parseCents(cellValue(row, idx))
		if err != nil {
			continue
		}

		result := Result{Success: true, Balance: abs(cents)}
		if d, ok := parseDate(cellValue(row, 0)); ok {
			result.Date = d
		}

		return result
	}

	return Result{Error: "no numeric value found in balance column"}
}
