package account

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monthlyRent(t *testing.T) *Recurring {
	t.Helper()
	step, err := NewStep("m", 1)
	require.NoError(t, err)
	return NewRecurring("rent", dec("1500"), KindExpense,
		date(2026, time.February, 1), step, date(2027, time.January, 1))
}

func TestNewStepUnknownTimebase(t *testing.T) {
	_, err := NewStep("d", 1)
	assert.Error(t, err)
}

func TestStepNext(t *testing.T) {
	tests := []struct {
		name string
		step Step
		day  time.Time
		want time.Time
	}{
		{"one month", Step{Months: 1}, date(2026, time.January, 15), date(2026, time.February, 15)},
		{"three months", Step{Months: 3}, date(2026, time.November, 10), date(2027, time.February, 10)},
		{"two weeks", Step{Weeks: 2}, date(2026, time.January, 30), date(2026, time.February, 13)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.step.Next(tt.day))
		})
	}
}

func TestRecurringAccrueLandsOnDueDate(t *testing.T) {
	r := monthlyRent(t)

	r.Accrue(date(2026, time.January, 31))
	assert.True(t, r.Balance().IsZero(), "nothing due before the due date")

	r.Accrue(date(2026, time.February, 1))
	assert.True(t, r.Balance().Equal(dec("1500")))
	assert.Equal(t, date(2026, time.March, 1), r.NextDueDate())

	// Days between due dates leave the obligation alone.
	r.Accrue(date(2026, time.February, 2))
	assert.True(t, r.Balance().Equal(dec("1500")))

	r.Accrue(date(2026, time.March, 1))
	assert.True(t, r.Balance().Equal(dec("3000")), "unsettled obligations stack")
}

func TestRecurringInvertedDebit(t *testing.T) {
	r := monthlyRent(t)
	r.Accrue(date(2026, time.February, 1))

	assert.Equal(t, Accepted, r.Debit(dec("1500")))
	assert.True(t, r.Balance().IsZero(), "settling the obligation zeroes the balance")
}

func TestRecurringLapsesAfterEndDate(t *testing.T) {
	step, err := NewStep("w", 2)
	require.NoError(t, err)
	r := NewRecurring("gym", dec("40"), KindExpense,
		date(2026, time.January, 5), step, date(2026, time.January, 10))

	r.Accrue(date(2026, time.January, 5))
	assert.True(t, r.Balance().Equal(dec("40")))

	// On/after the end date any unpaid obligation is forced to zero.
	r.Accrue(date(2026, time.January, 10))
	assert.True(t, r.Balance().IsZero())

	r.Accrue(date(2026, time.January, 19))
	assert.True(t, r.Balance().IsZero(), "no further obligations after the end date")
}

func TestAdjustRecurringAmount(t *testing.T) {
	r := monthlyRent(t)
	r.AdjustRecurringAmount(dec("1.05"))
	assert.True(t, r.RecurringAmount().Equal(dec("1575")))
}
