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

type RenameCategoryInput struct {
	ID   string `path:"id" format:"uuid" doc:"Category UUID"`
	Body CategoryNameBody
}

type categoryRenamer interface {
	RenameCategory(ctx context.Context, userID, id uuid.UUID, name string) error
}

// RenameCategoryHandler handles PATCH /v1/category/{id}.
type RenameCategoryHandler struct {
	CategoryService categoryRenamer
}

func NewRenameCategoryHandler(svc categoryRenamer) *RenameCategoryHandler {
	return &RenameCategoryHandler{CategoryService: svc}
}

func (h *RenameCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "rename-category",
		Method:        http.MethodPatch,
		Path:          "/v1/category/{id}",
		Summary:       "Rename category",
		Description:   "Renames a custom category. Transactions in the category keep it under the new name.",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *RenameCategoryHandler) handle(ctx context.Context, input *RenameCategoryInput) (*struct{}, error) {
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
		stopTimer = logData.AddTiming("renameCategoryMs")
		logData.AddData("categoryID", id.String())
	}
	err = h.CategoryService.RenameCategory(ctx, userID, id, input.Body.Name)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.From(err, "failed to rename category")
	}
	return nil, nil
}
