// Package analytics computes the dashboard aggregates: monthly income/expense
// series with roll-up statistics, and per-category expense breakdowns.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-server/internal/ledger"
)

// Repository is the read side of the transaction store the engine needs.
type Repository interface {
	// FindTransactionsInRange returns every transaction of the user dated
	// within [start, end] inclusive, in no particular order.
	FindTransactionsInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]Record, error)
	// FindExpensesInMonth returns the user's EXPENSE transactions for one month.
	FindExpensesInMonth(ctx context.Context, userID uuid.UUID, year int, month time.Month) ([]Record, error)
}

// SeriesResult is the monthly series plus its roll-up.
type SeriesResult struct {
	Months  []MonthBucket
	Summary Summary
	Skipped int
}

// BreakdownResult is the category breakdown for a window.
type BreakdownResult struct {
	Start      time.Time
	End        time.Time
	Categories []CategoryBucket
	Total      decimal.Decimal
	Skipped    int
}

// Engine runs aggregations against a Repository. It keeps no state between
// calls.
type Engine struct {
	repo   Repository
	logger logrus.FieldLogger
	now    func() time.Time
}

// NewEngine creates an Engine. A nil now uses time.Now.
func NewEngine(repo Repository, logger logrus.FieldLogger, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{repo: repo, logger: logger, now: now}
}

// MonthlySeries returns one bucket per month of the window, zero-filled, and
// the summary over all of them. A zero window means the trailing six months.
func (e *Engine) MonthlySeries(ctx context.Context, userID uuid.UUID, window Window) (*SeriesResult, error) {
	if userID == uuid.Nil {
		return nil, ledger.ErrUnauthenticated
	}
	if window.IsZero() {
		window = Trailing(DefaultTrailingMonths)
	}

	start, end, err := window.Resolve(e.now())
	if err != nil {
		return nil, err
	}
	periods, err := Months(start, end)
	if err != nil {
		return nil, err
	}

	records, err := e.repo.FindTransactionsInRange(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("find transactions in range: %w", err)
	}

	buckets := newMonthBuckets(periods)
	skipped := aggregator{logger: e.logger}.accumulateMonths(buckets, records)

	return &SeriesResult{
		Months:  buckets,
		Summary: Summarize(buckets),
		Skipped: skipped,
	}, nil
}

// CategoryBreakdown returns expense totals per category, largest first. A zero
// window means the current calendar month.
func (e *Engine) CategoryBreakdown(ctx context.Context, userID uuid.UUID, window Window) (*BreakdownResult, error) {
	if userID == uuid.Nil {
		return nil, ledger.ErrUnauthenticated
	}
	if window.IsZero() {
		window = CurrentMonth()
	}

	start, end, err := window.Resolve(e.now())
	if err != nil {
		return nil, err
	}

	var records []Record
	if singleMonth(start, end) {
		records, err = e.repo.FindExpensesInMonth(ctx, userID, start.Year(), start.Month())
		if err != nil {
			return nil, fmt.Errorf("find expenses in month: %w", err)
		}
	} else {
		records, err = e.repo.FindTransactionsInRange(ctx, userID, start, end)
		if err != nil {
			return nil, fmt.Errorf("find transactions in range: %w", err)
		}
	}

	buckets, skipped := aggregator{logger: e.logger}.accumulateCategories(records, start, end)
	ranked, total := rankCategories(buckets)

	return &BreakdownResult{
		Start:      start,
		End:        end,
		Categories: ranked,
		Total:      total,
		Skipped:    skipped,
	}, nil
}

// CompareMonths compares the current calendar month with the previous one
// using the stored transactions of both months.
func (e *Engine) CompareMonths(ctx context.Context, userID uuid.UUID) (*MonthComparison, error) {
	series, err := e.MonthlySeries(ctx, userID, Trailing(2))
	if err != nil {
		return nil, err
	}
	return compare(series.Months[0], series.Months[1]), nil
}
