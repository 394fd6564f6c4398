package extract

// runningBalanceColumn handles exports with a per-transaction balance
// column (Wells Fargo): the first data row is the most recent, so its
// balance cell is the current balance and its first cell is the date.
// Rows whose balance cell does not parse are skipped.
func runningBalanceColumn(rows [][]string) Result {
	header := normalizeHeader(rows[0])

	balIdx := findColumn(header, "balance", "running")
	if balIdx < 0 {
		return Result{Error: "no balance column found in running-balance export"}
	}

	for _, row := range rows[1:] {
		cents, err := parseCents(cellValue(row, balIdx))
		if err != nil {
			continue
		}

		if cents <= 0 {
			return Result{Error: "running balance is not positive"}
		}

		result := Result{Success: true, Balance: cents}
		if d, ok := parseDate(cellValue(row, 0)); ok {
			result.Date = d
		}

		return result
	}

	return Result{Error: "no parseable balance value found"}
}
