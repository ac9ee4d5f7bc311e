package chart

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/flowcast-dev/flowcast/internal/model"
)

const (
	numFields    = 11
	colName      = 0
	colType      = 1
	colBalance   = 2
	colRate      = 3
	colAmountDue = 4
	colNextDate  = 5
	colTimebase  = 6
	colFrequency = 7
	colEndDate   = 8
	colSellPrice = 9
	colTermYears = 10
)

// Header is the CSV header for accounts.csv.
const Header = "name,type,balance,rate,amount_due,next_date,timebase,frequency,end_date,sell_price,term_years"

// ReadAccounts reads accounts.csv.
func ReadAccounts(r io.Reader) ([]model.AccountSpec, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var specs []model.AccountSpec
	for i, rec := range records[1:] {
		spec, err := UnmarshalSpec(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// WriteAccounts writes accounts.csv.
func WriteAccounts(w io.Writer, specs []model.AccountSpec) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, spec := range specs {
		if err := cw.Write(MarshalSpec(spec)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalSpec converts an AccountSpec to a CSV row.
func MarshalSpec(spec model.AccountSpec) []string {
	row := make([]string, numFields)
	row[colName] = spec.Name
	row[colType] = spec.Type
	if !spec.Balance.IsZero() {
		row[colBalance] = spec.Balance.StringFixed(2)
	}
	if !spec.Rate.IsZero() {
		row[colRate] = spec.Rate.String()
	}
	if !spec.AmountDue.IsZero() {
		row[colAmountDue] = spec.AmountDue.StringFixed(2)
	}
	if !spec.NextDate.IsZero() {
		row[colNextDate] = spec.NextDate.Format(model.DateFormat)
	}
	row[colTimebase] = spec.Timebase
	if spec.Frequency != 0 {
		row[colFrequency] = strconv.Itoa(spec.Frequency)
	}
	if !spec.EndDate.IsZero() {
		row[colEndDate] = spec.EndDate.Format(model.DateFormat)
	}
	if !spec.SellPrice.IsZero() {
		row[colSellPrice] = spec.SellPrice.StringFixed(2)
	}
	if !spec.TermYears.IsZero() {
		row[colTermYears] = spec.TermYears.String()
	}
	return row
}

// UnmarshalSpec converts a CSV row to an AccountSpec.
func UnmarshalSpec(record []string) (model.AccountSpec, error) {
	if len(record) != numFields {
		return model.AccountSpec{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	spec := model.AccountSpec{
		Name:     strings.TrimSpace(record[colName]),
		Type:     strings.TrimSpace(record[colType]),
		Timebase: strings.TrimSpace(record[colTimebase]),
	}

	var err error
	if spec.Balance, err = parseAmount(record[colBalance]); err != nil {
		return model.AccountSpec{}, fmt.Errorf("parsing balance %q: %w", record[colBalance], err)
	}
	if spec.AmountDue, err = parseAmount(record[colAmountDue]); err != nil {
		return model.AccountSpec{}, fmt.Errorf("parsing amount_due %q: %w", record[colAmountDue], err)
	}
	if spec.SellPrice, err = parseAmount(record[colSellPrice]); err != nil {
		return model.AccountSpec{}, fmt.Errorf("parsing sell_price %q: %w", record[colSellPrice], err)
	}

	if record[colRate] != "" {
		if spec.Rate, err = decimal.NewFromString(strings.TrimSpace(record[colRate])); err != nil {
			return model.AccountSpec{}, fmt.Errorf("parsing rate %q: %w", record[colRate], err)
		}
	}
	if record[colTermYears] != "" {
		if spec.TermYears, err = decimal.NewFromString(strings.TrimSpace(record[colTermYears])); err != nil {
			return model.AccountSpec{}, fmt.Errorf("parsing term_years %q: %w", record[colTermYears], err)
		}
	}

	if record[colFrequency] != "" {
		if spec.Frequency, err = strconv.Atoi(strings.TrimSpace(record[colFrequency])); err != nil {
			return model.AccountSpec{}, fmt.Errorf("parsing frequency %q: %w", record[colFrequency], err)
		}
	}

	if record[colNextDate] != "" {
		if spec.NextDate, err = model.ParseDate(strings.TrimSpace(record[colNextDate])); err != nil {
			return model.AccountSpec{}, fmt.Errorf("parsing next_date %q: %w", record[colNextDate], err)
		}
	}
	if record[colEndDate] != "" {
		if spec.EndDate, err = model.ParseDate(strings.TrimSpace(record[colEndDate])); err != nil {
			return model.AccountSpec{}, fmt.Errorf("parsing end_date %q: %w", record[colEndDate], err)
		}
	}

	return spec, nil
}

// parseAmount parses a money column, tolerating dollar strings such as
// "$1,234.56". Empty means zero.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
