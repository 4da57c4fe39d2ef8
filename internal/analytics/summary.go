package analytics

import (
	"sort"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Summary rolls up a month series.
type Summary struct {
	TotalIncome    decimal.Decimal
	TotalExpense   decimal.Decimal
	NetAmount      decimal.Decimal
	AverageIncome  decimal.Decimal
	AverageExpense decimal.Decimal
	NetPercentage  decimal.Decimal
}

// Summarize computes totals and per-month averages. An empty series yields
// all zeros.
func Summarize(buckets []MonthBucket) Summary {
	totalIncome, totalExpense := decimal.Zero, decimal.Zero
	for _, b := range buckets {
		totalIncome = totalIncome.Add(b.Income)
		totalExpense = totalExpense.Add(b.Expense)
	}
	net := totalIncome.Sub(totalExpense)

	summary := Summary{
		TotalIncome:    totalIncome,
		TotalExpense:   totalExpense,
		NetAmount:      net,
		AverageIncome:  decimal.Zero,
		AverageExpense: decimal.Zero,
		NetPercentage:  percentage(net, totalIncome),
	}
	if count := decimal.NewFromInt(int64(len(buckets))); len(buckets) > 0 {
		summary.AverageIncome = totalIncome.Div(count)
		summary.AverageExpense = totalExpense.Div(count)
	}
	return summary
}

// rankCategories fills in percentages and orders by amount descending, then
// by name so equal amounts come out in a stable order.
func rankCategories(buckets map[string]*CategoryBucket) ([]CategoryBucket, decimal.Decimal) {
	total := decimal.Zero
	for _, b := range buckets {
		total = total.Add(b.Amount)
	}

	ranked := make([]CategoryBucket, 0, len(buckets))
	for _, b := range buckets {
		b.Percentage = percentage(b.Amount, total)
		ranked = append(ranked, *b)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if c := ranked[i].Amount.Cmp(ranked[j].Amount); c != 0 {
			return c > 0
		}
		return ranked[i].Category.Name() < ranked[j].Category.Name()
	})
	return ranked, total
}

// percentage is part/total*100, or zero when total is zero.
func percentage(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Mul(hundred).Div(total)
}
