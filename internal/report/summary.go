package report

import (
	"fmt"
	"io"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatUSD renders a decimal amount as US dollars, e.g. "$1,234.56".
func FormatUSD(d decimal.Decimal) string {
	cents := d.Round(2).Shift(2).IntPart()
	return money.New(cents, money.USD).Display()
}

// WriteSummary prints the end-of-run summary: total interest paid across all
// loans and the reserve account's final balance.
func WriteSummary(w io.Writer, reserveName string, cumulativeInterest, reserveBalance decimal.Decimal) {
	fmt.Fprintf(w, "Cumulative Interest: %s\n", FormatUSD(cumulativeInterest))
	fmt.Fprintf(w, "%s Final Balance: %s\n", reserveName, FormatUSD(reserveBalance))
}
