// Package account implements the account variants and the transfer protocol
// that the daily simulation settles money through. Balance carries the amount
// owed by the account to the system: a debit increases it, a credit decreases
// it, so liabilities and pending expenses grow via debit while revenue drains
// via credit.
package account

import (
	"time"

	"github.com/shopspring/decimal"
)

// Result is the outcome of a credit or debit.
type Result int

const (
	Accepted Result = iota
	Declined
)

func (r Result) String() string {
	if r == Accepted {
		return "accepted"
	}
	return "declined"
}

// Kind tags each account variant so callers can filter by behavior without
// runtime type inspection.
type Kind string

const (
	KindChecking Kind = "checking"
	KindSavings  Kind = "savings"
	KindAsset    Kind = "asset"
	KindExpense  Kind = "expense"
	KindRevenue  Kind = "revenue"
	KindLoan     Kind = "loan"
)

// Account is the contract every variant satisfies. Accrue is called exactly
// once per simulated day per account; calling it twice for the same day
// double-accrues.
type Account interface {
	Name() string
	Rename(name string)
	Kind() Kind
	Balance() decimal.Decimal
	ResetBalance()
	Credit(amount decimal.Decimal) Result
	Debit(amount decimal.Decimal) Result
	Accrue(day time.Time)
}

// percent × days per year; annual percent rates normalize to daily by this.
var percentDays = decimal.NewFromInt(100 * 365)

func dailyRate(annualPercent decimal.Decimal) decimal.Decimal {
	return annualPercent.Div(percentDays)
}

// base holds the name and signed running balance shared by all variants.
type base struct {
	name    string
	balance decimal.Decimal
}

func (b *base) Name() string             { return b.name }
func (b *base) Rename(name string)       { b.name = name }
func (b *base) Balance() decimal.Decimal { return b.balance }
func (b *base) ResetBalance()            { b.balance = decimal.Zero }

func (b *base) credit(amount decimal.Decimal) Result {
	b.balance = b.balance.Sub(amount)
	return Accepted
}

func (b *base) debit(amount decimal.Decimal) Result {
	b.balance = b.balance.Add(amount)
	return Accepted
}

// boundedCredit declines any credit that would not leave a strictly positive
// balance. Shared by the checking-style variants.
func (b *base) boundedCredit(amount decimal.Decimal) Result {
	if !b.balance.Sub(amount).IsPositive() {
		return Declined
	}
	return b.credit(amount)
}
