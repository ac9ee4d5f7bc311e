package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the calendar-date layout used in config files, the chart of
// accounts, and the results table. There is no time-of-day component anywhere
// in the system.
const DateFormat = "2006-01-02"

// ParseDate parses a calendar date in DateFormat, normalized to midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}

// AccountSpec is a row in accounts.csv describing one account to build.
// Which fields are meaningful depends on Type; unused fields stay zero.
type AccountSpec struct {
	Name      string
	Type      string          // CASH, SAVINGS, ASSET, EXPENSE, REVENUE, SIMPLE LOAN
	Balance   decimal.Decimal // opening balance, loan principal, or asset purchase price
	Rate      decimal.Decimal // annual percent rate (savings, loans)
	AmountDue decimal.Decimal // recurring amount or loan installment
	NextDate  time.Time       // first/next due date
	Timebase  string          // "w" or "m"
	Frequency int
	EndDate   time.Time // recurring accounts only
	SellPrice decimal.Decimal
	TermYears decimal.Decimal
}

// ScheduledPayment is a one-off transfer between two named accounts,
// executed on Date and then consumed.
type ScheduledPayment struct {
	Date   time.Time
	From   string
	To     string
	Amount decimal.Decimal
}

// ScheduledExpense is a one-off charge against the buffer account,
// executed on Date and then consumed.
type ScheduledExpense struct {
	Date   time.Time
	Amount decimal.Decimal
}
