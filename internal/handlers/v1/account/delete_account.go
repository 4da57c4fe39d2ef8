package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/handlers/httperr"
	"github.com/carson-networks/finance-server/internal/logging"
)

type accountDeleter interface {
	DeleteAccount(ctx context.Context, userID, id uuid.UUID) error
}

// DeleteAccountHandler handles DELETE /v1/account/{id}.
type DeleteAccountHandler struct {
	AccountService accountDeleter
}

func NewDeleteAccountHandler(svc accountDeleter) *DeleteAccountHandler {
	return &DeleteAccountHandler{AccountService: svc}
}

func (h *DeleteAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-account",
		Method:        http.MethodDelete,
		Path:          "/v1/account/{id}",
		Summary:       "Delete an account",
		Description:   "Deletes an account and every transaction recorded on it.",
		Tags:          []string{"Accounts"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteAccountHandler) handle(ctx context.Context, input *AccountPathInput) (*struct{}, error) {
	logData := logging.GetLogData(ctx)

	userID, err := auth.RequireUserID(ctx)
	if err != nil {
		return nil, httperr.From(err, "")
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid account id", err)
	}

	if logData != nil {
		logData.AddData("accountID", id.String())
	}
	if err = h.AccountService.DeleteAccount(ctx, userID, id); err != nil {
		return nil, httperr.From(err, "failed to delete account")
	}
	return nil, nil
}
