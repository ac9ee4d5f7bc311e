package chart

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

const sampleCSV = `name,type,balance,rate,amount_due,next_date,timebase,frequency,end_date,sell_price,term_years
CHGF,CASH,"$5,000.00",,,,,,,,
FGIF,SAVINGS,,3.5,,,,,,,
RENT,EXPENSE,,,$1800,2026-02-01,m,1,2030-01-01,,
CAR_LOAN,SIMPLE LOAN,"$18,500.00",6.9,$410.00,2026-01-20,m,1,,,
CAR,ASSET,$24000,,,,,,,$9000,8
`

func TestReadAccounts(t *testing.T) {
	specs, err := ReadAccounts(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, specs, 5)

	assert.Equal(t, "CHGF", specs[0].Name)
	assert.True(t, specs[0].Balance.Equal(dec("5000")), "dollar string parses")

	assert.Equal(t, TypeSavings, specs[1].Type)
	assert.True(t, specs[1].Rate.Equal(dec("3.5")))

	rent := specs[2]
	assert.True(t, rent.AmountDue.Equal(dec("1800")))
	assert.Equal(t, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), rent.NextDate)
	assert.Equal(t, "m", rent.Timebase)
	assert.Equal(t, 1, rent.Frequency)

	loan := specs[3]
	assert.True(t, loan.Balance.Equal(dec("18500")))
	assert.True(t, loan.AmountDue.Equal(dec("410")))

	car := specs[4]
	assert.True(t, car.SellPrice.Equal(dec("9000")))
	assert.True(t, car.TermYears.Equal(dec("8")))
}

func TestReadAccountsBadRow(t *testing.T) {
	csv := "name,type,balance,rate,amount_due,next_date,timebase,frequency,end_date,sell_price,term_years\n" +
		"X,CASH,not-money,,,,,,,,\n"
	_, err := ReadAccounts(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestWriteReadRoundTrip(t *testing.T) {
	specs := DefaultChart()

	var sb strings.Builder
	require.NoError(t, WriteAccounts(&sb, specs))

	got, err := ReadAccounts(strings.NewReader(sb.String()))
	require.NoError(t, err)
	require.Len(t, got, len(specs))
	for i := range specs {
		assert.Equal(t, specs[i].Name, got[i].Name)
		assert.Equal(t, specs[i].Type, got[i].Type)
		assert.True(t, specs[i].Balance.Equal(got[i].Balance), "%s balance", specs[i].Name)
		assert.Equal(t, specs[i].NextDate, got[i].NextDate)
	}
}
