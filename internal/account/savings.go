package account

import (
	"time"

	"github.com/shopspring/decimal"
)

// Savings is an interest-bearing cash account. It starts at zero and
// compounds daily from an annual percent rate.
type Savings struct {
	base
	rate decimal.Decimal // daily
}

// NewSavings creates an empty savings account earning annualPercent per year.
func NewSavings(name string, annualPercent decimal.Decimal) *Savings {
	return &Savings{
		base: base{name: name},
		rate: dailyRate(annualPercent),
	}
}

func (s *Savings) Kind() Kind { return KindSavings }

func (s *Savings) Credit(amount decimal.Decimal) Result { return s.boundedCredit(amount) }

func (s *Savings) Debit(amount decimal.Decimal) Result { return s.debit(amount) }

// Accrue compounds one day of interest on the current balance.
func (s *Savings) Accrue(time.Time) {
	s.debit(s.rate.Mul(s.balance))
}
