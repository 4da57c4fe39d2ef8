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

type CategoriesInput struct {
	RangeQuery
}

// CategoryShare is one category's part of the expenses.
type CategoryShare struct {
	Category   string  `json:"category"`
	System     bool    `json:"system"`
	Amount     string  `json:"amount"`
	Percentage float64 `json:"percentage" doc:"Share of the total expenses"`
}

type CategoriesResponse struct {
	Start      string          `json:"start" doc:"First day covered (YYYY-MM-DD)"`
	End        string          `json:"end" doc:"Last day covered (YYYY-MM-DD)"`
	Total      string          `json:"total"`
	Categories []CategoryShare `json:"categories" doc:"Largest first"`
	Skipped    int             `json:"skipped"`
}

type CategoriesOutput struct {
	Body CategoriesResponse
}

type breakdownBuilder interface {
	CategoryBreakdown(ctx context.Context, userID uuid.UUID, window analytics.Window) (*analytics.BreakdownResult, error)
}

// CategoriesHandler handles GET /v1/dashboard/categories.
type CategoriesHandler struct {
	DashboardService breakdownBuilder
}

func NewCategoriesHandler(svc breakdownBuilder) *CategoriesHandler {
	return &CategoriesHandler{DashboardService: svc}
}

func (h *CategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "dashboard-categories",
		Method:      http.MethodGet,
		Path:        "/v1/dashboard/categories",
		Summary:     "Expenses by category",
		Description: "Returns expense totals per category for a range, the current month by default.",
		Tags:        []string{"Dashboard"},
	}, h.handle)
}

func (h *CategoriesHandler) handle(ctx context.Context, input *CategoriesInput) (*CategoriesOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := auth.RequireUserID(ctx)
	if err != nil {
		return nil, httperr.From(err, "")
	}
	window, err := input.window()
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("categoryBreakdownMs")
	}
	result, err := h.DashboardService.CategoryBreakdown(ctx, userID, window)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.From(err, "failed to build category breakdown")
	}

	resp := CategoriesResponse{
		Start:      result.Start.Format(dateLayout),
		End:        result.End.Format(dateLayout),
		Total:      amount(result.Total),
		Categories: make([]CategoryShare, len(result.Categories)),
		Skipped:    result.Skipped,
	}
	for i, c := range result.Categories {
		resp.Categories[i] = CategoryShare{
			Category:   c.Category.Name(),
			System:     c.Category.IsSystem(),
			Amount:     amount(c.Amount),
			Percentage: percent(c.Percentage),
		}
	}
	return &CategoriesOutput{Body: resp}, nil
}
