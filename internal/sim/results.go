package sim

import (
	"time"

	"github.com/shopspring/decimal"
)

// Columns that lead every results row, before the per-account balances.
const (
	ColIncome  = "income"
	ColExpense = "expense"
)

// Results is the simulation output table: one row per simulated day with
// the day's income, expense, and every account's end-of-day balance.
type Results struct {
	Columns []string // income, expense, then account names in chart order
	Dates   []time.Time
	Rows    [][]decimal.Decimal
}

func newResults(accountNames []string) *Results {
	cols := append([]string{ColIncome, ColExpense}, accountNames...)
	return &Results{Columns: cols}
}

func (r *Results) add(day time.Time, row []decimal.Decimal) {
	r.Dates = append(r.Dates, day)
	r.Rows = append(r.Rows, row)
}

// Len returns the number of recorded days.
func (r *Results) Len() int { return len(r.Rows) }

// Column returns the named column's values across all recorded days.
func (r *Results) Column(name string) ([]decimal.Decimal, bool) {
	idx := -1
	for i, c := range r.Columns {
		if c == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, false
	}
	values := make([]decimal.Decimal, len(r.Rows))
	for i, row := range r.Rows {
		values[i] = row[idx]
	}
	return values, true
}
