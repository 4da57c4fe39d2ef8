package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/handlers/httperr"
	"github.com/carson-networks/finance-server/internal/logging"
)

// CategoryNameBody carries a custom category name.
type CategoryNameBody struct {
	Name string `json:"name" minLength:"1" maxLength:"50" doc:"Custom category name"`
}

type CreateCategoryInput struct {
	Body CategoryNameBody
}

type CreateCategoryOutput struct {
	Status int
	Body   struct {
		ID string `json:"id" doc:"Created category UUID"`
	}
}

type categoryCreator interface {
	CreateCategory(ctx context.Context, userID uuid.UUID, name string) (uuid.UUID, error)
}

// CreateCategoryHandler handles POST /v1/category.
type CreateCategoryHandler struct {
	CategoryService categoryCreator
}

func NewCreateCategoryHandler(svc categoryCreator) *CreateCategoryHandler {
	return &CreateCategoryHandler{CategoryService: svc}
}

func (h *CreateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-category",
		Method:      http.MethodPost,
		Path:        "/v1/category",
		Summary:     "Create category",
		Description: "Adds a custom category. Names are unique per user and may not shadow a built-in category.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := auth.RequireUserID(ctx)
	if err != nil {
		return nil, httperr.From(err, "")
	}

	id, err := h.CategoryService.CreateCategory(ctx, userID, input.Body.Name)
	if err != nil {
		return nil, httperr.From(err, "failed to create category")
	}
	if logData != nil {
		logData.AddData("categoryID", id.String())
	}

	out := &CreateCategoryOutput{Status: http.StatusCreated}
	out.Body.ID = id.String()
	return out, nil
}
