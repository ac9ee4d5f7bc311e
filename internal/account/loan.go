package account

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loan is an amortizing liability. Simple interest accrues daily on the
// outstanding principal into interestDue; payments retire interest first and
// amortize the remainder against principal.
type Loan struct {
	base
	payment     decimal.Decimal
	rate        decimal.Decimal // daily
	nextDue     time.Time
	frequency   int
	timebase    string
	interestDue decimal.Decimal
	cumInterest decimal.Decimal
	amountDue   decimal.Decimal
}

// NewLoan creates a loan with the given principal, annual percent rate,
// fixed installment, and payment schedule.
func NewLoan(name string, payment, annualPercent, principal decimal.Decimal, firstDue time.Time, frequency int, timebase string) *Loan {
	l := &Loan{
		base:      base{name: name},
		payment:   payment,
		rate:      dailyRate(annualPercent),
		nextDue:   firstDue,
		frequency: frequency,
		timebase:  timebase,
	}
	l.debit(principal)
	return l
}

func (l *Loan) Kind() Kind { return KindLoan }

// Accrue adds one day of simple interest on the outstanding principal, then
// on or after the due date recomputes the installment obligation and
// advances the schedule.
func (l *Loan) Accrue(day time.Time) {
	l.interestDue = l.interestDue.Add(l.rate.Mul(l.balance))

	if !day.Before(l.nextDue) {
		l.updateAmountDue()
		l.advanceDueDate()
	}
}

// Debit applies a payment. Declined once the loan is paid off. A payment
// below the current installment reduces the installment and is absorbed as
// interest first; anything at or above the installment retires all accrued
// interest and amortizes the rest against principal.
func (l *Loan) Debit(amount decimal.Decimal) Result {
	if l.IsPaid() {
		return Declined
	}

	if amount.LessThan(l.amountDue) {
		l.applyPartialPayment(amount)
		return Accepted
	}

	l.applyFullPayment(amount)
	return Accepted
}

// Credit refuses additions to principal; it only clears an accidentally
// negative balance.
func (l *Loan) Credit(decimal.Decimal) Result {
	if l.balance.IsNegative() {
		l.ResetBalance()
		return Accepted
	}
	return Declined
}

// Payoff returns outstanding principal plus unapplied accrued interest.
func (l *Loan) Payoff() decimal.Decimal { return l.balance.Add(l.interestDue) }

// IsPaid reports whether the payoff has reached zero.
func (l *Loan) IsPaid() bool { return !l.Payoff().IsPositive() }

// IsPaymentDue reports whether an installment is currently owed.
func (l *Loan) IsPaymentDue() bool { return l.amountDue.IsPositive() }

// AmountDue returns the installment currently owed.
func (l *Loan) AmountDue() decimal.Decimal { return l.amountDue }

// CumulativeInterest returns all interest ever applied to the loan.
func (l *Loan) CumulativeInterest() decimal.Decimal { return l.cumInterest }

func (l *Loan) applyPartialPayment(payment decimal.Decimal) {
	l.amountDue = l.amountDue.Sub(payment)
	if l.interestDue.GreaterThan(payment) && l.interestDue.IsPositive() {
		l.cumInterest = l.cumInterest.Add(payment)
		l.interestDue = l.interestDue.Sub(payment)
		return
	}
	l.debit(l.interestDue.Sub(payment))
	l.cumInterest = l.cumInterest.Add(l.interestDue)
	l.interestDue = decimal.Zero
}

func (l *Loan) applyFullPayment(payment decimal.Decimal) {
	l.debit(l.interestDue.Sub(payment))
	l.cumInterest = l.cumInterest.Add(l.interestDue)
	l.interestDue = decimal.Zero
	l.amountDue = decimal.Zero
}

func (l *Loan) updateAmountDue() {
	if payoff := l.Payoff(); payoff.LessThanOrEqual(l.payment) {
		l.amountDue = payoff
	} else {
		l.amountDue = l.payment
	}
}

// advanceDueDate steps weekly schedules by frequency weeks. Any other
// timebase steps exactly one month; the frequency multiplier is not applied
// on the monthly path.
func (l *Loan) advanceDueDate() {
	if l.timebase == "w" {
		l.nextDue = l.nextDue.AddDate(0, 0, 7*l.frequency)
	} else {
		l.nextDue = l.nextDue.AddDate(0, 1, 0)
	}
}
