// Package sim drives the day-by-day cash-flow simulation: accrual on every
// account, settlement of revenue and expenses through a checking-like buffer
// account with a savings-like reserve as fallback, scheduled one-off items,
// and an end-of-day rebalance between buffer and reserve.
package sim

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/flowcast-dev/flowcast/internal/account"
	"github.com/flowcast-dev/flowcast/internal/chart"
	"github.com/flowcast-dev/flowcast/internal/logging"
	"github.com/flowcast-dev/flowcast/internal/model"
)

// The buffer account is topped back up to this floor from the reserve at the
// end of every day.
var bufferFloor = decimal.NewFromInt(1000)

// Annual raise applied to the employer account's recurring amount every
// April 1st after 2026.
var annualRaise = decimal.RequireFromString("1.05")

// ShortfallError is the fatal outcome of a mandatory expense that neither
// the buffer nor the reserve account could cover. The run halts; rows
// recorded before the failing day remain available.
type ShortfallError struct {
	Account string
	Day     time.Time
	Amount  decimal.Decimal
	Buffer  decimal.Decimal // buffer balance at the time of failure
	Leg     account.Leg
}

func (e *ShortfallError) Error() string {
	return fmt.Sprintf("unresolvable shortfall: %s of %s due on %s, buffer holds %s (%s leg declined)",
		e.Account, e.Amount.StringFixed(2), e.Day.Format(model.DateFormat), e.Buffer.StringFixed(2), e.Leg)
}

// Options configures a simulation run. Start is inclusive, End exclusive.
type Options struct {
	Start           time.Time
	End             time.Time
	BufferAccount   string
	ReserveAccount  string
	EmployerAccount string
	FastPayoff      bool
	BufferCeiling   decimal.Decimal
	Log             *logging.Logger // nil for silent
}

// Engine owns the chart of accounts and the schedule lists for the duration
// of a run. The named buffer and reserve accounts must exist in the chart;
// that is a precondition, not something the engine validates up front.
type Engine struct {
	chart    *chart.Registry
	opts     Options
	payments []model.ScheduledPayment
	expenses []model.ScheduledExpense
	results  *Results
	log      *logging.Logger

	buffer  account.Account
	reserve account.Account
}

// New creates an engine over the given chart.
func New(registry *chart.Registry, opts Options) *Engine {
	if opts.Log == nil {
		opts.Log = logging.NewSilent()
	}
	return &Engine{
		chart:   registry,
		opts:    opts,
		results: newResults(registry.Names()),
		log:     opts.Log,
	}
}

// SchedulePayment registers a one-off transfer between two named accounts,
// executed when its date is reached. Both accounts must already be in the
// chart.
func (e *Engine) SchedulePayment(from, to string, amount decimal.Decimal, day time.Time) error {
	if _, ok := e.chart.Get(from); !ok {
		return fmt.Errorf("scheduling payment: no account %q", from)
	}
	if _, ok := e.chart.Get(to); !ok {
		return fmt.Errorf("scheduling payment: no account %q", to)
	}
	e.payments = append(e.payments, model.ScheduledPayment{Date: day, From: from, To: to, Amount: amount})
	return nil
}

// ScheduleExpense registers a one-off charge against the buffer account,
// executed when its date is reached.
func (e *Engine) ScheduleExpense(amount decimal.Decimal, day time.Time) {
	e.expenses = append(e.expenses, model.ScheduledExpense{Date: day, Amount: amount})
}

// Results returns the rows recorded so far.
func (e *Engine) Results() *Results { return e.results }

// CumulativeInterest sums the interest ever applied across all loans.
func (e *Engine) CumulativeInterest() decimal.Decimal {
	total := decimal.Zero
	for _, loan := range e.chart.Loans() {
		total = total.Add(loan.CumulativeInterest())
	}
	return total
}

// Run walks the calendar from start (inclusive) to end (exclusive). Each
// day: accrue every account, collect revenue into the buffer, settle
// expenses and loan installments, execute scheduled items, rebalance buffer
// against reserve, and record the day's row. On an unresolvable shortfall
// the run halts, returning the rows accumulated so far together with the
// error.
func (e *Engine) Run() (*Results, error) {
	var ok bool
	if e.buffer, ok = e.chart.Get(e.opts.BufferAccount); !ok {
		return e.results, fmt.Errorf("buffer account %q not in chart", e.opts.BufferAccount)
	}
	if e.reserve, ok = e.chart.Get(e.opts.ReserveAccount); !ok {
		return e.results, fmt.Errorf("reserve account %q not in chart", e.opts.ReserveAccount)
	}

	e.log.Info().
		Str("start", e.opts.Start.Format(model.DateFormat)).
		Str("end", e.opts.End.Format(model.DateFormat)).
		Int("accounts", len(e.chart.Names())).
		Msg("simulation starting")

	for day := e.opts.Start; day.Before(e.opts.End); day = day.AddDate(0, 0, 1) {
		e.accrueAll(day)

		income := e.collectIncome(day)

		expense, err := e.settleExpenses(day)
		if err != nil {
			return e.results, err
		}

		expense = expense.Add(e.executeScheduledPayments(day))

		oneOff, err := e.executeScheduledExpenses(day)
		expense = expense.Add(oneOff)
		if err != nil {
			return e.results, err
		}

		e.rebalance()

		e.record(day, income, expense)
	}

	e.log.Info().Int("days", e.results.Len()).Msg("simulation finished")
	return e.results, nil
}

func (e *Engine) accrueAll(day time.Time) {
	for _, a := range e.chart.Accounts() {
		a.Accrue(day)
	}
}

// collectIncome sweeps every revenue account's outstanding balance into the
// buffer and returns the day's total income. On April 1st of any year after
// 2026 the employer account's recurring amount gets its annual raise first.
func (e *Engine) collectIncome(day time.Time) decimal.Decimal {
	if day.Month() == time.April && day.Day() == 1 && day.Year() > 2026 {
		if a, ok := e.chart.Get(e.opts.EmployerAccount); ok {
			if rec, ok := a.(*account.Recurring); ok {
				rec.AdjustRecurringAmount(annualRaise)
				e.log.Debug().Str("account", rec.Name()).Msg("applied annual raise")
			}
		}
	}

	income := decimal.Zero
	for _, a := range e.chart.ByKind(account.KindRevenue) {
		bal := a.Balance()
		if !bal.IsPositive() {
			continue
		}
		income = income.Add(bal)
		account.Transfer(a, e.buffer, bal)
	}
	return income
}

// settleExpenses pays every due expense account from the buffer (falling
// back to the reserve) and every due loan installment from the buffer (no
// fallback). Returns the day's total expense.
func (e *Engine) settleExpenses(day time.Time) (decimal.Decimal, error) {
	expense := decimal.Zero

	for _, a := range e.chart.ByKind(account.KindExpense) {
		bal := a.Balance()
		if !bal.IsPositive() {
			continue
		}
		expense = expense.Add(bal)
		res, leg := account.Transfer(e.buffer, a, bal)
		if res == account.Declined {
			if e.reserve.Balance().GreaterThanOrEqual(bal) {
				account.Transfer(e.reserve, a, bal)
				e.log.Debug().Str("account", a.Name()).Str("amount", bal.StringFixed(2)).Msg("expense covered from reserve")
				continue
			}
			return expense, &ShortfallError{Account: a.Name(), Day: day, Amount: bal, Buffer: e.buffer.Balance(), Leg: leg}
		}
	}

	oneshot := false
	for _, loan := range e.chart.Loans() {
		if loan.IsPaid() {
			continue
		}
		if e.opts.FastPayoff && !oneshot {
			if payoff := loan.Payoff(); payoff.IsPositive() && payoff.LessThan(e.reserve.Balance()) {
				account.Transfer(e.reserve, loan, payoff)
				e.log.Info().Str("loan", loan.Name()).Str("payoff", payoff.StringFixed(2)).Msg("loan paid off from reserve")
			}
		}
		oneshot = true

		due := loan.AmountDue()
		if !due.IsPositive() {
			continue
		}
		expense = expense.Add(due)
		res, leg := account.Transfer(e.buffer, loan, due)
		if res == account.Declined {
			return expense, &ShortfallError{Account: loan.Name(), Day: day, Amount: due, Buffer: e.buffer.Balance(), Leg: leg}
		}
	}

	return expense, nil
}

// executeScheduledPayments runs every pending payment whose date has
// arrived, consuming it from the list. Payments are assumed to succeed.
func (e *Engine) executeScheduledPayments(day time.Time) decimal.Decimal {
	total := decimal.Zero
	pending := e.payments[:0]
	for _, p := range e.payments {
		if !p.Date.Equal(day) {
			pending = append(pending, p)
			continue
		}
		src, _ := e.chart.Get(p.From)
		dst, _ := e.chart.Get(p.To)
		account.Transfer(src, dst, p.Amount)
		total = total.Add(p.Amount)
		e.log.Debug().Str("from", p.From).Str("to", p.To).Str("amount", p.Amount.StringFixed(2)).Msg("scheduled payment executed")
	}
	e.payments = pending
	return total
}

// executeScheduledExpenses charges every pending expense whose date has
// arrived against the buffer, splitting reserve-then-buffer when the buffer
// alone declines. A charge neither account combined can absorb is fatal.
func (e *Engine) executeScheduledExpenses(day time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	pending := e.expenses[:0]
	var fatal error
	for _, p := range e.expenses {
		if fatal != nil {
			pending = append(pending, p)
			continue
		}
		if !p.Date.Equal(day) {
			pending = append(pending, p)
			continue
		}
		if e.buffer.Credit(p.Amount) == account.Declined {
			reserveBal := e.reserve.Balance()
			if p.Amount.GreaterThan(reserveBal.Add(e.buffer.Balance())) {
				pending = append(pending, p)
				fatal = &ShortfallError{Account: e.buffer.Name(), Day: day, Amount: p.Amount, Buffer: e.buffer.Balance(), Leg: account.LegSource}
				continue
			}
			if p.Amount.GreaterThan(reserveBal) {
				remainder := p.Amount.Sub(reserveBal)
				e.reserve.ResetBalance()
				e.buffer.Credit(remainder)
			} else {
				e.reserve.Credit(p.Amount)
			}
		}
		total = total.Add(p.Amount)
		e.log.Debug().Str("amount", p.Amount.StringFixed(2)).Msg("scheduled expense executed")
	}
	e.expenses = pending
	return total, fatal
}

// rebalance sweeps buffer excess above the ceiling into the reserve and
// pulls the buffer back up to the floor from the reserve, capping the pull
// at whatever the reserve holds. Draining the reserve to zero is not an
// error.
func (e *Engine) rebalance() {
	bal := e.buffer.Balance()
	switch {
	case bal.GreaterThan(e.opts.BufferCeiling):
		account.Transfer(e.buffer, e.reserve, bal.Sub(e.opts.BufferCeiling))
	case bal.LessThan(bufferFloor):
		need := bufferFloor.Sub(bal)
		reserveBal := e.reserve.Balance()
		if reserveBal.GreaterThan(need) {
			account.Transfer(e.reserve, e.buffer, need)
		} else if reserveBal.IsPositive() {
			e.reserve.ResetBalance()
			e.buffer.Debit(reserveBal)
		}
	}
}

// record appends the day's row: income, expense, then every account's
// end-of-day balance in chart order, rounded to cents.
func (e *Engine) record(day time.Time, income, expense decimal.Decimal) {
	row := make([]decimal.Decimal, 0, 2+len(e.chart.Names()))
	row = append(row, income.Round(2), expense.Round(2))
	for _, a := range e.chart.Accounts() {
		row = append(row, a.Balance().Round(2))
	}
	e.results.add(day, row)
}
