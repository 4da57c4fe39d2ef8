package analytics

import "github.com/shopspring/decimal"

// Change is the movement of one figure between two months.
type Change struct {
	Current       decimal.Decimal
	Previous      decimal.Decimal
	Delta         decimal.Decimal
	PercentChange decimal.Decimal
}

// MonthComparison is the current month measured against the previous one.
type MonthComparison struct {
	Current  MonthBucket
	Previous MonthBucket
	Income   Change
	Expense  Change
	Net      Change
	// SavingsRate is the current month's net as a percentage of its income.
	SavingsRate decimal.Decimal
}

func compare(previous, current MonthBucket) *MonthComparison {
	return &MonthComparison{
		Current:     current,
		Previous:    previous,
		Income:      newChange(current.Income, previous.Income),
		Expense:     newChange(current.Expense, previous.Expense),
		Net:         newChange(current.Net, previous.Net),
		SavingsRate: percentage(current.Net, current.Income),
	}
}

// newChange measures the delta against the magnitude of the previous value so
// that a negative base still yields a meaningful sign.
func newChange(current, previous decimal.Decimal) Change {
	delta := current.Sub(previous)
	return Change{
		Current:       current,
		Previous:      previous,
		Delta:         delta,
		PercentChange: percentage(delta, previous.Abs()),
	}
}
