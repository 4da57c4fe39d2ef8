package dashboard

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/analytics"
	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/handlers/httperr"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

// Change is one figure compared with the previous month.
type Change struct {
	Current       string  `json:"current"`
	Previous      string  `json:"previous"`
	Delta         string  `json:"delta"`
	PercentChange float64 `json:"percentChange" doc:"Delta relative to the previous value, 0 when it was 0"`
}

func toAPIChange(c analytics.Change) Change {
	return Change{
		Current:       amount(c.Current),
		Previous:      amount(c.Previous),
		Delta:         amount(c.Delta),
		PercentChange: percent(c.PercentChange),
	}
}

type StatsResponse struct {
	CurrentMonth  Month   `json:"currentMonth"`
	PreviousMonth Month   `json:"previousMonth"`
	Income        Change  `json:"income"`
	Expense       Change  `json:"expense"`
	Net           Change  `json:"net"`
	SavingsRate   float64 `json:"savingsRate" doc:"Current month net as a percentage of its income"`
	TotalBalance  string  `json:"totalBalance" doc:"Sum of all account balances"`
	AccountCount  int     `json:"accountCount"`
}

type StatsOutput struct {
	Body StatsResponse
}

type statsBuilder interface {
	Stats(ctx context.Context, userID uuid.UUID) (*service.DashboardStats, error)
}

// StatsHandler handles GET /v1/dashboard/stats.
type StatsHandler struct {
	DashboardService statsBuilder
}

func NewStatsHandler(svc statsBuilder) *StatsHandler {
	return &StatsHandler{DashboardService: svc}
}

func (h *StatsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "dashboard-stats",
		Method:      http.MethodGet,
		Path:        "/v1/dashboard/stats",
		Summary:     "Headline statistics",
		Description: "Compares the current month with the previous one and totals the account balances.",
		Tags:        []string{"Dashboard"},
	}, h.handle)
}

func (h *StatsHandler) handle(ctx context.Context, _ *struct{}) (*StatsOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := auth.RequireUserID(ctx)
	if err != nil {
		return nil, httperr.From(err, "")
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("statsMs")
	}
	stats, err := h.DashboardService.Stats(ctx, userID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.From(err, "failed to build dashboard stats")
	}

	c := stats.Comparison
	return &StatsOutput{Body: StatsResponse{
		CurrentMonth:  toAPIMonth(c.Current),
		PreviousMonth: toAPIMonth(c.Previous),
		Income:        toAPIChange(c.Income),
		Expense:       toAPIChange(c.Expense),
		Net:           toAPIChange(c.Net),
		SavingsRate:   percent(c.SavingsRate),
		TotalBalance:  amount(stats.Balances.Total),
		AccountCount:  stats.Balances.AccountCount,
	}}, nil
}
