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
)

type MonthlyInput struct {
	RangeQuery
	Months int `query:"months" minimum:"0" maximum:"120" doc:"Trailing month count including the current month, default 6"`
}

// Summary is the roll-up of the monthly series.
type Summary struct {
	TotalIncome    string  `json:"totalIncome"`
	TotalExpense   string  `json:"totalExpense"`
	NetAmount      string  `json:"netAmount"`
	AverageIncome  string  `json:"averageIncome"`
	AverageExpense string  `json:"averageExpense"`
	NetPercentage  float64 `json:"netPercentage" doc:"Net as a percentage of income, 0 without income"`
}

type MonthlyResponse struct {
	Months  []Month `json:"months"`
	Summary Summary `json:"summary"`
	Skipped int     `json:"skipped" doc:"Transactions left out because their amount was malformed"`
}

type MonthlyOutput struct {
	Body MonthlyResponse
}

type seriesBuilder interface {
	MonthlySeries(ctx context.Context, userID uuid.UUID, window analytics.Window) (*analytics.SeriesResult, error)
}

// MonthlyHandler handles GET /v1/dashboard/monthly.
type MonthlyHandler struct {
	DashboardService seriesBuilder
}

func NewMonthlyHandler(svc seriesBuilder) *MonthlyHandler {
	return &MonthlyHandler{DashboardService: svc}
}

func (h *MonthlyHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "dashboard-monthly",
		Method:      http.MethodGet,
		Path:        "/v1/dashboard/monthly",
		Summary:     "Monthly income and expenses",
		Description: "Returns income, expense and net per month, with months lacking transactions filled with zeros.",
		Tags:        []string{"Dashboard"},
	}, h.handle)
}

func parseMonthlyInput(input *MonthlyInput) (analytics.Window, error) {
	window, err := input.window()
	if err != nil {
		return window, err
	}
	if !window.IsZero() {
		if input.Months != 0 {
			return window, huma.NewError(http.StatusBadRequest, "months cannot be combined with start and end")
		}
		return window, nil
	}
	if input.Months > 0 {
		return analytics.Trailing(input.Months), nil
	}
	return analytics.Window{}, nil
}

func (h *MonthlyHandler) handle(ctx context.Context, input *MonthlyInput) (*MonthlyOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := auth.RequireUserID(ctx)
	if err != nil {
		return nil, httperr.From(err, "")
	}
	window, err := parseMonthlyInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("monthlySeriesMs")
	}
	result, err := h.DashboardService.MonthlySeries(ctx, userID, window)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.From(err, "failed to build monthly series")
	}
	if logData != nil && result.Skipped > 0 {
		logData.AddData("skippedRecords", result.Skipped)
	}

	resp := MonthlyResponse{
		Months: make([]Month, len(result.Months)),
		Summary: Summary{
			TotalIncome:    amount(result.Summary.TotalIncome),
			TotalExpense:   amount(result.Summary.TotalExpense),
			NetAmount:      amount(result.Summary.NetAmount),
			AverageIncome:  amount(result.Summary.AverageIncome),
			AverageExpense: amount(result.Summary.AverageExpense),
			NetPercentage:  percent(result.Summary.NetPercentage),
		},
		Skipped: result.Skipped,
	}
	for i, b := range result.Months {
		resp.Months[i] = toAPIMonth(b)
	}
	return &MonthlyOutput{Body: resp}, nil
}
