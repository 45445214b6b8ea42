package billing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

func TestProrateFirstMonth_FullMonth(t *testing.T) {
	moveIn := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	got := ProrateFirstMonth(d("1500.00"), moveIn)
	assert.True(t, got.Equal(d("1500.00")), "move-in on the 1st owes full rent, got %s", got)
}

func TestProrateFirstMonth_MidMonth(t *testing.T) {
	// March has 31 days; moving in on the 17th occupies 15 days.
	moveIn := time.Date(2026, time.March, 17, 0, 0, 0, 0, time.UTC)
	got := ProrateFirstMonth(d("1550.00"), moveIn)
	// 1550/31 = 50.00 per day * 15 days
	assert.True(t, got.Equal(d("750.00")), "got %s", got)
}

func TestProrateFirstMonth_RoundsToCents(t *testing.T) {
	// February 2026 has 28 days; move in on the 15th -> 14 days.
	moveIn := time.Date(2026, time.February, 15, 0, 0, 0, 0, time.UTC)
	got := ProrateFirstMonth(d("1000.00"), moveIn)
	// 1000/28*14 = 500 exactly
	assert.True(t, got.Equal(d("500.00")), "got %s", got)

	// An amount that does not divide evenly still lands on two decimals.
	got = ProrateFirstMonth(d("997.97"), moveIn)
	assert.Equal(t, int32(-2), got.Exponent())
}

func TestProrateFirstMonth_LastDay(t *testing.T) {
	moveIn := time.Date(2026, time.April, 30, 0, 0, 0, 0, time.UTC)
	got := ProrateFirstMonth(d("900.00"), moveIn)
	// one day of a 30-day month
	assert.True(t, got.Equal(d("30.00")), "got %s", got)
}

func TestPeriodHelpers(t *testing.T) {
	ts := time.Date(2026, time.December, 12, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-12", Period(ts))

	next := NextPeriodStart(ts)
	assert.Equal(t, 2027, next.Year())
	assert.Equal(t, time.January, next.Month())
	assert.Equal(t, 1, next.Day())
}
