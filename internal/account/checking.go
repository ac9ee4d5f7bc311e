package account

import (
	"time"

	"github.com/shopspring/decimal"
)

// Checking is a transactional cash account. Credits that would overdraw it
// are declined; it is seeded with an opening debit at construction.
type Checking struct {
	base
}

// NewChecking creates a checking account holding the opening amount.
func NewChecking(name string, opening decimal.Decimal) *Checking {
	c := &Checking{base{name: name}}
	c.debit(opening)
	return c
}

func (c *Checking) Kind() Kind { return KindChecking }

func (c *Checking) Credit(amount decimal.Decimal) Result { return c.boundedCredit(amount) }

func (c *Checking) Debit(amount decimal.Decimal) Result { return c.debit(amount) }

// Accrue is a no-op; cash neither earns nor decays.
func (c *Checking) Accrue(time.Time) {}
