package transaction

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/handlers/httperr"
	"github.com/carson-networks/finance-server/internal/ledger"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

// UpdateTransactionBody lists the fields that can change. Absent fields are kept.
type UpdateTransactionBody struct {
	AccountID       *string `json:"accountID,omitempty" format:"uuid" doc:"Move the transaction to this account"`
	Type            *string `json:"type,omitempty" enum:"INCOME,EXPENSE" doc:"Transaction type"`
	Category        *string `json:"category,omitempty" maxLength:"50" doc:"System category key or custom category name"`
	Amount          *string `json:"amount,omitempty" minLength:"1" doc:"Non-negative decimal amount"`
	TransactionName *string `json:"transactionName,omitempty" minLength:"1" maxLength:"200" doc:"Name of the transaction"`
	TransactionDate *string `json:"transactionDate,omitempty" doc:"Transaction date (YYYY-MM-DD or RFC3339)"`
}

type UpdateTransactionInput struct {
	ID   string `path:"id" format:"uuid" doc:"Transaction UUID"`
	Body UpdateTransactionBody
}

type transactionUpdater interface {
	UpdateTransaction(ctx context.Context, userID, id uuid.UUID, update service.TransactionUpdate) error
}

// UpdateTransactionHandler handles PATCH /v1/transaction/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionUpdater
}

func NewUpdateTransactionHandler(svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "update-transaction",
		Method:        http.MethodPatch,
		Path:          "/v1/transaction/{id}",
		Summary:       "Update a transaction",
		Description:   "Changes a transaction and moves the affected account balances to match.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

// parseUpdateTransactionInput parses and validates the API input.
func parseUpdateTransactionInput(input *UpdateTransactionInput) (service.TransactionUpdate, error) {
	body := input.Body
	update := service.TransactionUpdate{}

	if body.AccountID != nil {
		accountID, err := uuid.FromString(*body.AccountID)
		if err != nil {
			return update, huma.NewError(http.StatusBadRequest, "invalid accountID", err)
		}
		update.AccountID = omit.From(accountID)
	}
	if body.Type != nil {
		txType, err := ledger.ParseTransactionType(*body.Type)
		if err != nil {
			return update, huma.NewError(http.StatusBadRequest, "invalid type", err)
		}
		update.Type = omit.From(txType)
	}
	if body.Category != nil {
		update.Category = omit.From(*body.Category)
	}
	if body.Amount != nil {
		amount, err := decimal.NewFromString(*body.Amount)
		if err != nil {
			return update, huma.NewError(http.StatusBadRequest, "invalid amount", err)
		}
		if amount.IsNegative() {
			return update, huma.NewError(http.StatusBadRequest, "amount must not be negative")
		}
		update.Amount = omit.From(amount)
	}
	if body.TransactionName != nil {
		update.TransactionName = omit.From(*body.TransactionName)
	}
	if body.TransactionDate != nil {
		transactionDate, err := parseDate(*body.TransactionDate)
		if err != nil {
			return update, huma.NewError(http.StatusBadRequest, "invalid transactionDate", err)
		}
		update.TransactionDate = omit.From(transactionDate)
	}

	return update, nil
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*struct{}, error) {
	logData := logging.GetLogData(ctx)

	userID, err := auth.RequireUserID(ctx)
	if err != nil {
		return nil, httperr.From(err, "")
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transaction id", err)
	}
	update, err := parseUpdateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("updateTransactionMs")
		logData.AddData("transactionID", id.String())
	}
	err = h.TransactionService.UpdateTransaction(ctx, userID, id, update)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.From(err, "failed to update transaction")
	}
	return nil, nil
}
