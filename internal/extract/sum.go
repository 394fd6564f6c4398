package extract

import "time"

// transactionSum handles card-transaction exports (Chase, Apple Card):
// a list of period transactions with no balance column. The "balance" is
// the absolute value of the summed amount column — period activity, not
// a point-in-time balance — and the Result notes that. Non-numeric cells
// count as 0. The latest parseable date in column 0 is carried as a
// secondary output.
func transactionSum(rows [][]string) Result {
	header := normalizeHeader(rows[0])

	amountIdx := findColumn(header, "amount")
	if amountIdx < 0 {
		return Result{Error: "no amount column found in transaction export"}
	}

	var total int64

	var latestDate time.Time

	for _, row := range rows[1:] {
		cents, err := parseCents(cellValue(row, amountIdx))
		if err != nil {
			cents = 0
		}

		total += cents

		if d, ok := parseDate(cellValue(row, 0)); ok && d.After(latestDate) {
			latestDate = d
		}
	}

	return Result{
		Success: true,
		Balance: abs(total),
		Date:    latestDate,
		Note:    "sum of period transactions, not a point-in-time balance",
	}
}
