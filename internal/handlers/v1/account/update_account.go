package account

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/handlers/httperr"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

// UpdateAccountBody lists the fields that can change. Absent fields are kept.
// The balance is moved only by transactions.
type UpdateAccountBody struct {
	Name    *string `json:"name,omitempty" minLength:"1" maxLength:"100" doc:"Account name"`
	Type    *int    `json:"type,omitempty" minimum:"0" maximum:"4" doc:"Account type"`
	SubType *string `json:"subType,omitempty" maxLength:"100" doc:"Account sub-type"`
}

type UpdateAccountInput struct {
	ID   string `path:"id" format:"uuid" doc:"Account UUID"`
	Body UpdateAccountBody
}

type accountUpdater interface {
	UpdateAccount(ctx context.Context, userID, id uuid.UUID, update service.AccountUpdate) error
}

// UpdateAccountHandler handles PATCH /v1/account/{id}.
type UpdateAccountHandler struct {
	AccountService accountUpdater
}

func NewUpdateAccountHandler(svc accountUpdater) *UpdateAccountHandler {
	return &UpdateAccountHandler{AccountService: svc}
}

func (h *UpdateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "update-account",
		Method:        http.MethodPatch,
		Path:          "/v1/account/{id}",
		Summary:       "Update an account",
		Description:   "Changes the name, type or sub-type of an account.",
		Tags:          []string{"Accounts"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func parseUpdateAccountInput(input *UpdateAccountInput) service.AccountUpdate {
	update := service.AccountUpdate{}
	if input.Body.Name != nil {
		update.Name = omit.From(*input.Body.Name)
	}
	if input.Body.Type != nil {
		update.Type = omit.From(service.AccountType(*input.Body.Type))
	}
	if input.Body.SubType != nil {
		update.SubType = omit.From(*input.Body.SubType)
	}
	return update
}

func (h *UpdateAccountHandler) handle(ctx context.Context, input *UpdateAccountInput) (*struct{}, error) {
	logData := logging.GetLogData(ctx)

	userID, err := auth.RequireUserID(ctx)
	if err != nil {
		return nil, httperr.From(err, "")
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid account id", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("updateAccountMs")
		logData.AddData("accountID", id.String())
	}
	err = h.AccountService.UpdateAccount(ctx, userID, id, parseUpdateAccountInput(input))
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.From(err, "failed to update account")
	}
	return nil, nil
}
