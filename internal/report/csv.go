// Package report consumes the simulation's result table read-only and
// produces the CSV export, console summary, and balance charts.
package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/flowcast-dev/flowcast/internal/model"
	"github.com/flowcast-dev/flowcast/internal/sim"
)

// WriteResults writes the result table as CSV: a date column followed by
// income, expense, and one column per account.
func WriteResults(w io.Writer, res *sim.Results) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := append([]string{"date"}, res.Columns...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, row := range res.Rows {
		record := make([]string, 0, len(header))
		record = append(record, res.Dates[i].Format(model.DateFormat))
		for _, v := range row {
			record = append(record, v.StringFixed(2))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
