package account

import "github.com/shopspring/decimal"

// Leg identifies which side of a transfer declined.
type Leg int

const (
	LegNone Leg = iota
	LegSource
	LegDestination
)

func (l Leg) String() string {
	switch l {
	case LegSource:
		return "source"
	case LegDestination:
		return "destination"
	default:
		return "none"
	}
}

// Transfer moves amount from src to dst using each account's own
// credit/debit rules. The source is credited first; if that declines the
// destination is untouched. A destination-side decline does NOT roll back
// the already-applied source credit — callers that care must handle the
// reported leg themselves.
func Transfer(src, dst Account, amount decimal.Decimal) (Result, Leg) {
	if src.Credit(amount) == Declined {
		return Declined, LegSource
	}
	if dst.Debit(amount) == Declined {
		return Declined, LegDestination
	}
	return Accepted, LegNone
}
