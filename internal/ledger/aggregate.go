package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary holds the sector totals of a transaction list. All sums are
// in integer minor units, conversion to display units happens only at
// the API boundary.
type Summary struct {
	TotalInflow  int64
	TotalOutflow int64
}

// Summarize sums all recognized transactions by sector. Transactions
// with an unrecognized sector contribute to neither total.
func Summarize(transactions []Transaction) Summary {
	var s Summary

	for _, t := range transactions {
		switch t.Sector {
		case SectorInflow:
			s.TotalInflow += t.AmountMinorUnits
		case SectorOutflow:
			s.TotalOutflow += t.AmountMinorUnits
		}
	}

	return s
}

// Balance returns the net balance in minor units.
func (s Summary) Balance() int64 {
	return s.TotalInflow - s.TotalOutflow
}

// ExpensePercentage returns the outflow total as a percentage of the
// inflow total, rounded to one decimal place.
//
// When there is no inflow the percentage is defined as 0. The division
// must never be performed unguarded here: rendering NaN on a dashboard
// is not an acceptable failure mode.
func (s Summary) ExpensePercentage() decimal.Decimal {
	if s.TotalInflow == 0 {
		return decimal.Zero
	}

	return decimal.NewFromInt(s.TotalOutflow).
		Div(decimal.NewFromInt(s.TotalInflow)).
		Mul(decimal.NewFromInt(100)).
		Round(1)
}

// PeriodSums is the sector sums of a single period bucket.
type PeriodSums struct {
	Period  string
	Inflow  int64
	Outflow int64
}

// SumByPeriod buckets transactions by the period key of their
// timestamp. Buckets are returned in the order the periods are first
// seen in the list, not in chronological order. Consumers that need
// chronological buckets sort them as a presentation concern.
func SumByPeriod(transactions []Transaction, key func(time.Time) string) []PeriodSums {
	sums := make([]PeriodSums, 0)
	index := make(map[string]int)

	for _, t := range transactions {
		if !t.Sector.Recognized() {
			continue
		}

		period := key(t.Timestamp)
		i, ok := index[period]
		if !ok {
			i = len(sums)
			index[period] = i
			sums = append(sums, PeriodSums{Period: period})
		}

		if t.Sector == SectorInflow {
			sums[i].Inflow += t.AmountMinorUnits
		} else {
			sums[i].Outflow += t.AmountMinorUnits
		}
	}

	return sums
}

// CategorySum is the outflow total of a single category.
type CategorySum struct {
	Category string
	Outflow  int64
}

// SumByCategory sums outflow transactions by category name, in the
// order the categories are first seen. Inflows are never categorized
// and do not contribute.
func SumByCategory(transactions []Transaction) []CategorySum {
	sums := make([]CategorySum, 0)
	index := make(map[string]int)

	for _, t := range transactions {
		if t.Sector != SectorOutflow || t.Category == "" {
			continue
		}

		i, ok := index[t.Category]
		if !ok {
			i = len(sums)
			index[t.Category] = i
			sums = append(sums, CategorySum{Category: t.Category})
		}

		sums[i].Outflow += t.AmountMinorUnits
	}

	return sums
}
