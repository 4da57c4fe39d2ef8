package account

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/ledger"
	"github.com/carson-networks/finance-server/internal/service"
)

type mockAccountService struct {
	mock.Mock
}

func (m *mockAccountService) CreateAccount(ctx context.Context, userID uuid.UUID, account service.Account) (uuid.UUID, error) {
	args := m.Called(ctx, userID, account)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockAccountService) GetAccount(ctx context.Context, userID, id uuid.UUID) (*service.Account, error) {
	args := m.Called(ctx, userID, id)
	acc, _ := args.Get(0).(*service.Account)
	return acc, args.Error(1)
}

func (m *mockAccountService) ListAccounts(ctx context.Context, userID uuid.UUID, cursor *service.AccountCursor) ([]service.Account, *service.AccountCursor, error) {
	args := m.Called(ctx, userID, cursor)
	accounts, _ := args.Get(0).([]service.Account)
	next, _ := args.Get(1).(*service.AccountCursor)
	return accounts, next, args.Error(2)
}

func (m *mockAccountService) UpdateAccount(ctx context.Context, userID, id uuid.UUID, update service.AccountUpdate) error {
	return m.Called(ctx, userID, id, update).Error(0)
}

func (m *mockAccountService) DeleteAccount(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

// newTestAPI registers every account handler. A nil userID leaves the request
// unauthenticated.
func newTestAPI(t *testing.T, svc *mockAccountService, userID uuid.UUID) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	if userID != uuid.Nil {
		api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
			next(huma.WithContext(ctx, auth.WithUserID(ctx.Context(), userID)))
		})
	}
	NewCreateAccountHandler(svc).Register(api)
	NewListAccountsHandler(svc).Register(api)
	NewGetAccountHandler(svc).Register(api)
	NewUpdateAccountHandler(svc).Register(api)
	NewDeleteAccountHandler(svc).Register(api)
	return api
}

func TestCreateAccount_Success(t *testing.T) {
	svc := new(mockAccountService)
	userID := uuid.Must(uuid.NewV4())
	createdID := uuid.Must(uuid.NewV4())
	api := newTestAPI(t, svc, userID)

	svc.On("CreateAccount", mock.Anything, userID, mock.MatchedBy(func(a service.Account) bool {
		return a.Name == "Checking" &&
			a.Type == service.AccountTypeCash &&
			a.StartingBalance.Equal(decimal.RequireFromString("250.10"))
	})).Return(createdID, nil)

	resp := api.Post("/v1/account", map[string]any{
		"name":            "Checking",
		"type":            0,
		"startingBalance": "250.10",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body CreateAccountResponse
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, createdID.String(), body.ID)
	svc.AssertExpectations(t)
}

func TestCreateAccount_DefaultsStartingBalance(t *testing.T) {
	svc := new(mockAccountService)
	userID := uuid.Must(uuid.NewV4())
	api := newTestAPI(t, svc, userID)

	svc.On("CreateAccount", mock.Anything, userID, mock.MatchedBy(func(a service.Account) bool {
		return a.StartingBalance.IsZero()
	})).Return(uuid.Must(uuid.NewV4()), nil)

	resp := api.Post("/v1/account", map[string]any{"name": "Wallet", "type": 0})

	assert.Equal(t, http.StatusCreated, resp.Code)
}

func TestCreateAccount_InvalidBalance(t *testing.T) {
	svc := new(mockAccountService)
	api := newTestAPI(t, svc, uuid.Must(uuid.NewV4()))

	resp := api.Post("/v1/account", map[string]any{"name": "Wallet", "type": 0, "startingBalance": "lots"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	svc.AssertNotCalled(t, "CreateAccount")
}

func TestCreateAccount_TypeOutOfRange(t *testing.T) {
	svc := new(mockAccountService)
	api := newTestAPI(t, svc, uuid.Must(uuid.NewV4()))

	resp := api.Post("/v1/account", map[string]any{"name": "Wallet", "type": 7})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestCreateAccount_Unauthenticated(t *testing.T) {
	svc := new(mockAccountService)
	api := newTestAPI(t, svc, uuid.Nil)

	resp := api.Post("/v1/account", map[string]any{"name": "Wallet", "type": 0})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	svc.AssertNotCalled(t, "CreateAccount")
}

func TestCreateAccount_ServiceError(t *testing.T) {
	svc := new(mockAccountService)
	userID := uuid.Must(uuid.NewV4())
	api := newTestAPI(t, svc, userID)

	svc.On("CreateAccount", mock.Anything, userID, mock.Anything).Return(uuid.Nil, errors.New("queue full"))

	resp := api.Post("/v1/account", map[string]any{"name": "Wallet", "type": 0})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "failed to create account")
}

func TestListAccounts_WithNextCursor(t *testing.T) {
	svc := new(mockAccountService)
	userID := uuid.Must(uuid.NewV4())
	api := newTestAPI(t, svc, userID)

	accounts := []service.Account{{
		ID:        uuid.Must(uuid.NewV4()),
		Name:      "Checking",
		Type:      service.AccountTypeCreditCards,
		Balance:   decimal.RequireFromString("12.5"),
		CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}}
	svc.On("ListAccounts", mock.Anything, userID, &service.AccountCursor{Position: 1, Limit: 1}).
		Return(accounts, &service.AccountCursor{Position: 2, Limit: 1}, nil)

	resp := api.Get("/v1/accounts?position=1&limit=1")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListAccountsResponseBody
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Len(t, body.Accounts, 1)
	assert.Equal(t, "12.50", body.Accounts[0].Balance)
	assert.Equal(t, "Credit Cards", body.Accounts[0].TypeName)
	assert.Equal(t, "2025-01-02T03:04:05Z", body.Accounts[0].CreatedAt)
	assert.Equal(t, 2, body.NextCursor.Position)
}

func TestListAccounts_Empty(t *testing.T) {
	svc := new(mockAccountService)
	userID := uuid.Must(uuid.NewV4())
	api := newTestAPI(t, svc, userID)

	svc.On("ListAccounts", mock.Anything, userID, (*service.AccountCursor)(nil)).Return(nil, nil, nil)

	resp := api.Get("/v1/accounts")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListAccountsResponseBody
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.NotNil(t, body.Accounts, "rendered as an empty list")
	assert.Empty(t, body.Accounts)
	assert.Nil(t, body.NextCursor)
}

func TestGetAccount_NotFound(t *testing.T) {
	svc := new(mockAccountService)
	userID := uuid.Must(uuid.NewV4())
	id := uuid.Must(uuid.NewV4())
	api := newTestAPI(t, svc, userID)

	svc.On("GetAccount", mock.Anything, userID, id).Return(nil, ledger.ErrAccountNotFound)

	resp := api.Get("/v1/account/" + id.String())

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestUpdateAccount_PartialBody(t *testing.T) {
	svc := new(mockAccountService)
	userID := uuid.Must(uuid.NewV4())
	id := uuid.Must(uuid.NewV4())
	api := newTestAPI(t, svc, userID)

	svc.On("UpdateAccount", mock.Anything, userID, id, mock.MatchedBy(func(u service.AccountUpdate) bool {
		return u.Name.GetOrZero() == "Savings" && u.Type.IsUnset() && u.SubType.IsUnset()
	})).Return(nil)

	resp := api.Patch("/v1/account/"+id.String(), map[string]any{"name": "Savings"})

	assert.Equal(t, http.StatusNoContent, resp.Code)
	svc.AssertExpectations(t)
}

func TestDeleteAccount(t *testing.T) {
	svc := new(mockAccountService)
	userID := uuid.Must(uuid.NewV4())
	id := uuid.Must(uuid.NewV4())
	api := newTestAPI(t, svc, userID)

	svc.On("DeleteAccount", mock.Anything, userID, id).Return(nil)

	resp := api.Delete("/v1/account/" + id.String())

	assert.Equal(t, http.StatusNoContent, resp.Code)
	svc.AssertExpectations(t)
}
