package transaction

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/ledger"
	"github.com/carson-networks/finance-server/internal/service"
)

func TestParseDate(t *testing.T) {
	got, err := parseDate("2024-02-29")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), got)

	got, err = parseDate("2024-02-29T23:59:59+02:00")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), got)

	_, err = parseDate("29/02/2024")
	assert.Error(t, err)
}

func TestHTTP_GetTransaction(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	tx := sampleTransaction()
	tx.Category = ledger.Custom("Pets")

	mockSvc := new(mockTransactionService)
	mockSvc.On("GetTransaction", mock.Anything, userID, tx.ID).Return(&tx, nil)

	resp := newTestAPI(t, mockSvc, userID).Get("/v1/transaction/" + tx.ID.String())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Transaction
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Pets", body.Category)
	assert.False(t, body.SystemCategory)
}

func TestHTTP_GetTransaction_NotFound(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	mockSvc := new(mockTransactionService)
	mockSvc.On("GetTransaction", mock.Anything, userID, mock.Anything).
		Return(nil, ledger.ErrTransactionNotFound)

	resp := newTestAPI(t, mockSvc, userID).Get("/v1/transaction/" + uuid.Must(uuid.NewV4()).String())

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_UpdateTransaction_PartialUpdate(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	id := uuid.Must(uuid.NewV4())
	amount := "19.99"
	category := "HEALTH"

	mockSvc := new(mockTransactionService)
	mockSvc.On("UpdateTransaction", mock.Anything, userID, id, mock.MatchedBy(func(u service.TransactionUpdate) bool {
		got, ok := u.Amount.Get()
		return ok && got.Equal(decimal.RequireFromString("19.99")) &&
			u.Category.GetOrZero() == "HEALTH" &&
			u.Type.IsUnset() &&
			u.AccountID.IsUnset() &&
			u.TransactionName.IsUnset() &&
			u.TransactionDate.IsUnset()
	})).Return(nil)

	resp := newTestAPI(t, mockSvc, userID).Patch("/v1/transaction/"+id.String(), UpdateTransactionBody{
		Amount:   &amount,
		Category: &category,
	})

	assert.Equal(t, http.StatusNoContent, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateTransaction_NegativeAmount(t *testing.T) {
	amount := "-1"
	mockSvc := new(mockTransactionService)

	resp := newTestAPI(t, mockSvc, uuid.Must(uuid.NewV4())).Patch("/v1/transaction/"+uuid.Must(uuid.NewV4()).String(), UpdateTransactionBody{
		Amount: &amount,
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "UpdateTransaction")
}

func TestHTTP_DeleteTransaction(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	id := uuid.Must(uuid.NewV4())
	mockSvc := new(mockTransactionService)
	mockSvc.On("DeleteTransaction", mock.Anything, userID, id).Return(nil)

	resp := newTestAPI(t, mockSvc, userID).Delete("/v1/transaction/" + id.String())

	assert.Equal(t, http.StatusNoContent, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_DeleteTransaction_Unauthenticated(t *testing.T) {
	mockSvc := new(mockTransactionService)

	resp := newTestAPI(t, mockSvc, uuid.Nil).Delete("/v1/transaction/" + uuid.Must(uuid.NewV4()).String())

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSvc.AssertNotCalled(t, "DeleteTransaction")
}
