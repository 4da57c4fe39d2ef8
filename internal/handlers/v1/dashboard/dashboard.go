// Package dashboard serves the aggregated views of a user's transactions.
package dashboard

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/analytics"
)

const dateLayout = "2006-01-02"

// RangeQuery selects the dates a dashboard view covers.
type RangeQuery struct {
	Start string `query:"start" doc:"First day of the range (YYYY-MM-DD); requires end"`
	End   string `query:"end" doc:"Last day of the range (YYYY-MM-DD); requires start"`
}

// window parses the explicit range. Neither bound set yields the zero window.
func (q RangeQuery) window() (analytics.Window, error) {
	if q.Start == "" && q.End == "" {
		return analytics.Window{}, nil
	}
	if q.Start == "" || q.End == "" {
		return analytics.Window{}, huma.NewError(http.StatusBadRequest, "start and end must be given together")
	}
	start, err := time.Parse(dateLayout, q.Start)
	if err != nil {
		return analytics.Window{}, huma.NewError(http.StatusBadRequest, "invalid start", err)
	}
	end, err := time.Parse(dateLayout, q.End)
	if err != nil {
		return analytics.Window{}, huma.NewError(http.StatusBadRequest, "invalid end", err)
	}
	return analytics.Between(start, end), nil
}

func amount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func percent(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// Month is one bucket of the monthly series.
type Month struct {
	Key     string `json:"key" doc:"Month key (YYYY-MM)"`
	Label   string `json:"label" doc:"Display label, e.g. Jan 2024"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Net     string `json:"net"`
}

func toAPIMonth(b analytics.MonthBucket) Month {
	return Month{
		Key:     b.Key,
		Label:   b.Label,
		Income:  amount(b.Income),
		Expense: amount(b.Expense),
		Net:     amount(b.Net),
	}
}
