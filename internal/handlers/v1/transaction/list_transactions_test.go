package transaction

import (
	"encoding/json"
	"errors"
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

func sampleTransaction() service.Transaction {
	return service.Transaction{
		ID:              uuid.Must(uuid.NewV4()),
		AccountID:       uuid.Must(uuid.NewV4()),
		Type:            ledger.TransactionTypeExpense,
		Category:        ledger.System(ledger.CategoryFood),
		Amount:          decimal.RequireFromString("42.5"),
		TransactionName: "Dinner",
		TransactionDate: time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
		CreatedAt:       time.Date(2025, 6, 14, 20, 15, 0, 0, time.UTC),
	}
}

// -- parseListTransactionsInput unit tests --

func TestParseListTransactionsInput_NoCursor(t *testing.T) {
	input := &ListTransactionsInput{
		Body: ListTransactionsBody{},
	}

	filter, cursor, err := parseListTransactionsInput(input)
	assert.NoError(t, err)
	assert.Nil(t, cursor)
	assert.Equal(t, service.TransactionFilter{}, filter)
}

func TestParseListTransactionsInput_WithCursor(t *testing.T) {
	input := &ListTransactionsInput{
		Body: ListTransactionsBody{
			Cursor: &ListTransactionsCursor{
				Position:        40,
				Limit:           10,
				MaxCreationTime: "2025-06-15T08:00:00.123456Z",
			},
		},
	}

	_, cursor, err := parseListTransactionsInput(input)
	assert.NoError(t, err)
	assert.Equal(t, 40, cursor.Position)
	assert.Equal(t, 10, cursor.Limit)
	assert.Equal(t, time.Date(2025, 6, 15, 8, 0, 0, 123456000, time.UTC), cursor.MaxCreationTime.UTC())
}

func TestParseListTransactionsInput_Filter(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())
	input := &ListTransactionsInput{
		Body: ListTransactionsBody{
			Filter: &ListTransactionsFilter{
				AccountID: accountID.String(),
				Type:      "INCOME",
				Category:  " SALARY ",
				StartDate: "2025-01-01",
				EndDate:   "2025-01-31",
				Search:    "acme",
			},
		},
	}

	filter, _, err := parseListTransactionsInput(input)
	assert.NoError(t, err)
	assert.Equal(t, accountID, *filter.AccountID)
	assert.Equal(t, ledger.TransactionTypeIncome, *filter.Type)
	assert.Equal(t, "SALARY", *filter.Category)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), *filter.StartDate)
	assert.Equal(t, time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), *filter.EndDate)
	assert.Equal(t, "acme", filter.Search)
}

func TestParseListTransactionsInput_InvertedDates(t *testing.T) {
	input := &ListTransactionsInput{
		Body: ListTransactionsBody{
			Filter: &ListTransactionsFilter{StartDate: "2025-02-01", EndDate: "2025-01-01"},
		},
	}

	_, _, err := parseListTransactionsInput(input)
	assert.Error(t, err)
}

func TestParseListTransactionsInput_InvalidCursorMaxCreationTime(t *testing.T) {
	input := &ListTransactionsInput{
		Body: ListTransactionsBody{
			Cursor: &ListTransactionsCursor{Position: 20, Limit: 20, MaxCreationTime: "yesterday"},
		},
	}

	_, cursor, err := parseListTransactionsInput(input)
	assert.Error(t, err)
	assert.Nil(t, cursor)
}

// -- HTTP integration tests --

func TestHTTP_ListTransactions_SinglePage(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	tx := sampleTransaction()

	mockSvc := new(mockTransactionService)
	mockSvc.On("ListTransactions", mock.Anything, userID, service.TransactionFilter{}, (*service.TransactionCursor)(nil)).
		Return([]service.Transaction{tx}, nil, nil)

	resp := newTestAPI(t, mockSvc, userID).Post("/v1/transaction/list", ListTransactionsBody{})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Transactions, 1)
	assert.Nil(t, body.NextCursor)
	got := body.Transactions[0]
	assert.Equal(t, tx.ID.String(), got.ID)
	assert.Equal(t, "EXPENSE", got.Type)
	assert.Equal(t, "FOOD", got.Category)
	assert.True(t, got.SystemCategory)
	assert.Equal(t, "42.50", got.Amount)
	assert.Equal(t, "2025-06-14", got.TransactionDate)
	assert.Equal(t, "2025-06-14T20:15:00Z", got.CreatedAt)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_NextCursorEchoesMaxCreationTime(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	locked := time.Date(2025, 6, 15, 8, 0, 0, 500000000, time.UTC)

	mockSvc := new(mockTransactionService)
	mockSvc.On("ListTransactions", mock.Anything, userID, mock.Anything, mock.MatchedBy(func(c *service.TransactionCursor) bool {
		return c != nil && c.Position == 2 && c.Limit == 2 && c.MaxCreationTime.Equal(locked)
	})).Return(
		[]service.Transaction{sampleTransaction(), sampleTransaction()},
		&service.TransactionCursor{Position: 4, Limit: 2, MaxCreationTime: locked},
		nil,
	)

	resp := newTestAPI(t, mockSvc, userID).Post("/v1/transaction/list", ListTransactionsBody{
		Cursor: &ListTransactionsCursor{Position: 2, Limit: 2, MaxCreationTime: locked.Format(time.RFC3339Nano)},
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Transactions, 2)
	assert.NotNil(t, body.NextCursor)
	assert.Equal(t, 4, body.NextCursor.Position)
	assert.Equal(t, locked.Format(time.RFC3339Nano), body.NextCursor.MaxCreationTime)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_PassesFilter(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionService)
	mockSvc.On("ListTransactions", mock.Anything, userID, mock.MatchedBy(func(f service.TransactionFilter) bool {
		return f.Type != nil && *f.Type == ledger.TransactionTypeExpense && f.Search == "coffee"
	}), mock.Anything).Return([]service.Transaction{}, nil, nil)

	resp := newTestAPI(t, mockSvc, userID).Post("/v1/transaction/list", ListTransactionsBody{
		Filter: &ListTransactionsFilter{Type: "EXPENSE", Search: "coffee"},
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_NoResults(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	mockSvc := new(mockTransactionService)
	mockSvc.On("ListTransactions", mock.Anything, userID, mock.Anything, mock.Anything).
		Return([]service.Transaction{}, nil, nil)

	resp := newTestAPI(t, mockSvc, userID).Post("/v1/transaction/list", ListTransactionsBody{})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Transactions)
	assert.Nil(t, body.NextCursor)
}

func TestHTTP_ListTransactions_Unauthenticated(t *testing.T) {
	mockSvc := new(mockTransactionService)

	resp := newTestAPI(t, mockSvc, uuid.Nil).Post("/v1/transaction/list", ListTransactionsBody{})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSvc.AssertNotCalled(t, "ListTransactions")
}

func TestHTTP_ListTransactions_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("ListTransactions", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil, errors.New("connection reset"))

	resp := newTestAPI(t, mockSvc, uuid.Must(uuid.NewV4())).Post("/v1/transaction/list", ListTransactionsBody{})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestHTTP_ListTransactions_InvalidCursorMaxCreationTime(t *testing.T) {
	mockSvc := new(mockTransactionService)

	// format:"date-time" rejects the cursor during schema validation.
	resp := newTestAPI(t, mockSvc, uuid.Must(uuid.NewV4())).Post("/v1/transaction/list", ListTransactionsBody{
		Cursor: &ListTransactionsCursor{Position: 20, Limit: 20, MaxCreationTime: "not-a-time"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "ListTransactions")
}
