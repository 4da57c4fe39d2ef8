package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/finance-server/internal/analytics"
)

// DashboardStats is the headline block of the dashboard.
type DashboardStats struct {
	Comparison *analytics.MonthComparison
	Balances   *BalanceSummary
}

type balanceTotaler interface {
	TotalBalance(ctx context.Context, userID uuid.UUID) (*BalanceSummary, error)
}

// DashboardService exposes the analytics engine to the handlers.
type DashboardService struct {
	engine   *analytics.Engine
	balances balanceTotaler
}

func NewDashboardService(engine *analytics.Engine, balances balanceTotaler) *DashboardService {
	return &DashboardService{engine: engine, balances: balances}
}

func (s *DashboardService) MonthlySeries(ctx context.Context, userID uuid.UUID, window analytics.Window) (*analytics.SeriesResult, error) {
	return s.engine.MonthlySeries(ctx, userID, window)
}

func (s *DashboardService) CategoryBreakdown(ctx context.Context, userID uuid.UUID, window analytics.Window) (*analytics.BreakdownResult, error) {
	return s.engine.CategoryBreakdown(ctx, userID, window)
}

// Stats loads the month comparison and the balance totals concurrently.
func (s *DashboardService) Stats(ctx context.Context, userID uuid.UUID) (*DashboardStats, error) {
	stats := &DashboardStats{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		comparison, err := s.engine.CompareMonths(gctx, userID)
		stats.Comparison = comparison
		return err
	})
	g.Go(func() error {
		balances, err := s.balances.TotalBalance(gctx, userID)
		stats.Balances = balances
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}
