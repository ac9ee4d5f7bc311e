package chart

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/flowcast-dev/flowcast/internal/model"
)

// DefaultChart returns a small sample chart of accounts for a new project:
// a checking buffer, a savings reserve, a paycheck, the usual recurring
// bills, a car loan, and the car itself.
func DefaultChart() []model.AccountSpec {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	amt := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }

	return []model.AccountSpec{
		{Name: "CHGF", Type: TypeCash, Balance: amt("5000")},
		{Name: "FGIF", Type: TypeSavings, Rate: amt("3.5")},
		{Name: "CA_EMPLOYER", Type: TypeRevenue, AmountDue: amt("2600"), NextDate: day(2026, time.January, 9), Timebase: "w", Frequency: 2, EndDate: day(2036, time.January, 1)},
		{Name: "RENT", Type: TypeExpense, AmountDue: amt("1800"), NextDate: day(2026, time.January, 1), Timebase: "m", Frequency: 1, EndDate: day(2036, time.January, 1)},
		{Name: "UTILITIES", Type: TypeExpense, AmountDue: amt("220"), NextDate: day(2026, time.January, 15), Timebase: "m", Frequency: 1, EndDate: day(2036, time.January, 1)},
		{Name: "CAR_LOAN", Type: TypeLoan, Balance: amt("18500"), Rate: amt("6.9"), AmountDue: amt("410"), NextDate: day(2026, time.January, 20), Timebase: "m", Frequency: 1},
		{Name: "CAR", Type: TypeAsset, Balance: amt("24000"), SellPrice: amt("9000"), TermYears: amt("8")},
	}
}
