package account

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepreciatingAsset is a capital asset that declines linearly from its
// purchase price toward its sell price and stops accruing once it reaches
// the floor.
type DepreciatingAsset struct {
	base
	sellPrice    decimal.Decimal
	depreciation decimal.Decimal // (sell - purchase) / term years, negative while depreciating
}

// NewDepreciatingAsset creates an asset bought at purchasePrice that
// depreciates to sellPrice over termYears.
func NewDepreciatingAsset(name string, purchasePrice, sellPrice, termYears decimal.Decimal) *DepreciatingAsset {
	a := &DepreciatingAsset{
		base:      base{name: name},
		sellPrice: sellPrice,
	}
	a.debit(purchasePrice)
	a.depreciation = sellPrice.Sub(purchasePrice).Div(termYears)
	return a
}

func (a *DepreciatingAsset) Kind() Kind { return KindAsset }

func (a *DepreciatingAsset) Credit(amount decimal.Decimal) Result { return a.boundedCredit(amount) }

func (a *DepreciatingAsset) Debit(amount decimal.Decimal) Result { return a.debit(amount) }

// Accrue applies one depreciation step while the balance is above the floor.
func (a *DepreciatingAsset) Accrue(time.Time) {
	if a.balance.GreaterThan(a.sellPrice) {
		a.debit(a.depreciation)
	}
}
