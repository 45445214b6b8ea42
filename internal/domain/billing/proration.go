// Package billing holds pure rent-math domain services.
package billing

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProrateFirstMonth computes the rent owed for a mid-month move-in:
// monthly rent divided by the actual days in the move-in month, times the
// days from move-in through month end (inclusive), rounded to cents.
// A move-in on the 1st owes the full rent.
func ProrateFirstMonth(rent decimal.Decimal, moveIn time.Time) decimal.Decimal {
	daysInMonth := time.Date(moveIn.Year(), moveIn.Month()+1, 0, 0, 0, 0, 0, moveIn.Location()).Day()
	if moveIn.Day() == 1 {
		return rent.Round(2)
	}
	occupied := daysInMonth - moveIn.Day() + 1
	daily := rent.Div(decimal.NewFromInt(int64(daysInMonth)))
	return daily.Mul(decimal.NewFromInt(int64(occupied))).Round(2)
}

// Period formats t as the invoice period key ("YYYY-MM").
func Period(t time.Time) string {
	return t.Format("2006-01")
}

// NextPeriodStart returns the first day of the month after t.
func NextPeriodStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, t.Location())
}
