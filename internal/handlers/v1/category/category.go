package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/handlers/httperr"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

// Category is one entry of the category list. System categories have no ID
// and carry the transaction type they usually apply to.
type Category struct {
	ID          string `json:"id,omitempty" doc:"Custom category UUID, absent for system categories"`
	Name        string `json:"name" doc:"System category key or custom category name"`
	System      bool   `json:"system" doc:"Whether the category is built in"`
	DefaultType string `json:"defaultType,omitempty" enum:"INCOME,EXPENSE" doc:"Usual transaction type of a system category"`
}

func toAPICategory(c service.CategoryInfo) Category {
	out := Category{
		Name:        c.Category.Name(),
		System:      c.Category.IsSystem(),
		DefaultType: string(c.DefaultType),
	}
	if c.ID != uuid.Nil {
		out.ID = c.ID.String()
	}
	return out
}

// CategoryPathInput addresses a single custom category.
type CategoryPathInput struct {
	ID string `path:"id" format:"uuid" doc:"Category UUID"`
}

type ListCategoriesOutput struct {
	Body struct {
		Categories []Category `json:"categories" doc:"System categories followed by custom ones"`
	}
}

type categoryLister interface {
	ListCategories(ctx context.Context, userID uuid.UUID) ([]service.CategoryInfo, error)
}

// ListCategoriesHandler handles GET /v1/categories.
type ListCategoriesHandler struct {
	CategoryService categoryLister
}

func NewListCategoriesHandler(svc categoryLister) *ListCategoriesHandler {
	return &ListCategoriesHandler{CategoryService: svc}
}

func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/v1/categories",
		Summary:     "List categories",
		Description: "Returns the built-in categories and the caller's custom categories.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(ctx context.Context, _ *struct{}) (*ListCategoriesOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := auth.RequireUserID(ctx)
	if err != nil {
		return nil, httperr.From(err, "")
	}

	categories, err := h.CategoryService.ListCategories(ctx, userID)
	if err != nil {
		return nil, httperr.From(err, "failed to list categories")
	}
	if logData != nil {
		logData.AddData("categoryCount", len(categories))
	}

	out := &ListCategoriesOutput{}
	out.Body.Categories = make([]Category, len(categories))
	for i, c := range categories {
		out.Body.Categories[i] = toAPICategory(c)
	}
	return out, nil
}
