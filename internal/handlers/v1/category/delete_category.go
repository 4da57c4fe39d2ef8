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

type DeleteCategoryOutput struct {
	Body struct {
		Reassigned int64 `json:"reassigned" doc:"Number of transactions moved to OTHER"`
	}
}

type categoryDeleter interface {
	DeleteCategory(ctx context.Context, userID, id uuid.UUID) (int64, error)
}

// DeleteCategoryHandler handles DELETE /v1/category/{id}.
type DeleteCategoryHandler struct {
	CategoryService categoryDeleter
}

func NewDeleteCategoryHandler(svc categoryDeleter) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{CategoryService: svc}
}

func (h *DeleteCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-category",
		Method:      http.MethodDelete,
		Path:        "/v1/category/{id}",
		Summary:     "Delete category",
		Description: "Deletes a custom category and moves its transactions to OTHER.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *DeleteCategoryHandler) handle(ctx context.Context, input *CategoryPathInput) (*DeleteCategoryOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := auth.RequireUserID(ctx)
	if err != nil {
		return nil, httperr.From(err, "")
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid category id", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("deleteCategoryMs")
	}
	reassigned, err := h.CategoryService.DeleteCategory(ctx, userID, id)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.From(err, "failed to delete category")
	}
	if logData != nil {
		logData.AddData("categoryID", id.String())
		logData.AddData("reassigned", reassigned)
	}

	out := &DeleteCategoryOutput{}
	out.Body.Reassigned = reassigned
	return out, nil
}
