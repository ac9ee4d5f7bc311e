package account

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Step is a calendar increment between recurring due dates.
type Step struct {
	Weeks  int
	Months int
}

// NewStep builds a Step from a timebase code ("w" or "m") and a frequency
// multiplier.
func NewStep(timebase string, frequency int) (Step, error) {
	switch timebase {
	case "w":
		return Step{Weeks: frequency}, nil
	case "m":
		return Step{Months: frequency}, nil
	default:
		return Step{}, fmt.Errorf("unknown timebase %q", timebase)
	}
}

// Next returns the day advanced by the step using real calendar arithmetic.
func (s Step) Next(day time.Time) time.Time {
	return day.AddDate(0, s.Months, 7*s.Weeks)
}

// Recurring is a periodic expense or revenue line. Its balance is the
// currently due, unsettled amount; once the end date passes, any remaining
// obligation lapses to zero.
type Recurring struct {
	base
	kind    Kind // KindExpense or KindRevenue
	amount  decimal.Decimal
	step    Step
	nextDue time.Time
	endDate time.Time
	lastDue time.Time
}

// NewRecurring creates a recurring line of the given kind. The balance
// starts at zero; the first obligation lands when nextDue arrives.
func NewRecurring(name string, amount decimal.Decimal, kind Kind, nextDue time.Time, step Step, endDate time.Time) *Recurring {
	return &Recurring{
		base:    base{name: name},
		kind:    kind,
		amount:  amount,
		step:    step,
		nextDue: nextDue,
		endDate: endDate,
	}
}

func (r *Recurring) Kind() Kind { return r.kind }

// Accrue lands the recurring amount on each due date and advances the next
// due date by the configured step. On or after the end date the obligation
// lapses and the balance is forced to zero.
func (r *Recurring) Accrue(day time.Time) {
	if day.Before(r.endDate) {
		if day.Equal(r.nextDue) {
			r.debit(r.amount)
			r.lastDue = r.nextDue
			r.nextDue = r.step.Next(day)
		}
		return
	}
	if !r.balance.IsZero() {
		r.ResetBalance()
	}
}

// Debit settles part of the outstanding obligation. The sign is inverted
// relative to the base convention: paying a recurring line reduces what it
// is owed.
func (r *Recurring) Debit(amount decimal.Decimal) Result { return r.credit(amount) }

func (r *Recurring) Credit(amount decimal.Decimal) Result { return r.credit(amount) }

// NextDueDate returns the next date the recurring amount lands.
func (r *Recurring) NextDueDate() time.Time { return r.nextDue }

// RecurringAmount returns the amount that lands each due date.
func (r *Recurring) RecurringAmount() decimal.Decimal { return r.amount }

// AdjustRecurringAmount scales the recurring amount, e.g. an annual raise.
func (r *Recurring) AdjustRecurringAmount(factor decimal.Decimal) {
	r.amount = r.amount.Mul(factor)
}
