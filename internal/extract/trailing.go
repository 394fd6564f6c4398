package extract

import "strings"

// trailingBalanceRow handles statement exports with a summary line (Bank
// of America): scan bottom-to-top for a row whose concatenated cells
// mention "ending balance" or "closing balance", then take that row's
// first cell that parses as a positive number.
func trailingBalanceRow(rows [][]string) Result {
	for i := len(rows) - 1; i >= 0; i-- {
		joined := strings.ToLower(strings.Join(rows[i], " "))
		if !strings.Contains(joined, "ending balance") && !strings.Contains(joined, "closing balance") {
			continue
		}

		for _, cell := range rows[i] {
			cents, err := parseCents(cell)
			if err != nil || cents <= 0 {
				continue
			}

			return Result{Success: true, Balance: cents}
		}

		return Result{Error: "ending balance row has no positive amount"}
	}

	return Result{Error: "no ending balance row found in statement export"}
}
