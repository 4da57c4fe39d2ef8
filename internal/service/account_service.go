package service

import (
	"context"
	"errors"
	"strings"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/ledger"
	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

const defaultAccountLimit = 20

// AccountService handles account business logic.
type AccountService struct {
	storage  *storage.Storage
	operator actionProcessor
}

// NewAccountService creates a new AccountService.
func NewAccountService(store *storage.Storage, processor actionProcessor) *AccountService {
	return &AccountService{storage: store, operator: processor}
}

// CreateAccount creates a new account and returns its ID. The balance starts
// at the starting balance.
func (s *AccountService) CreateAccount(ctx context.Context, userID uuid.UUID, account Account) (uuid.UUID, error) {
	if userID == uuid.Nil {
		return uuid.Nil, ledger.ErrUnauthenticated
	}
	name := strings.TrimSpace(account.Name)
	if name == "" {
		return uuid.Nil, ledger.ErrInvalidName
	}
	if !account.Type.Valid() {
		return uuid.Nil, ledger.ErrInvalidAccountType
	}

	action := &actions.CreateAccount{
		UserID:          userID,
		Name:            name,
		Type:            accountTypeToStorage(account.Type),
		SubType:         strings.TrimSpace(account.SubType),
		StartingBalance: account.StartingBalance,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}
	return action.CreatedID, nil
}

// GetAccount retrieves an account owned by userID.
func (s *AccountService) GetAccount(ctx context.Context, userID, id uuid.UUID) (*Account, error) {
	if userID == uuid.Nil {
		return nil, ledger.ErrUnauthenticated
	}
	row, err := s.storage.Accounts.FindByID(ctx, id)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return nil, ledger.ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	if row.UserID != userID {
		return nil, ledger.ErrAccountNotFound
	}
	account := accountFromStorage(row)
	return &account, nil
}

// ListAccounts returns a page of accounts using cursor pagination.
func (s *AccountService) ListAccounts(ctx context.Context, userID uuid.UUID, cursor *AccountCursor) ([]Account, *AccountCursor, error) {
	if userID == uuid.Nil {
		return nil, nil, ledger.ErrUnauthenticated
	}
	limit := defaultAccountLimit
	offset := 0
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
	}

	filter := &sqlconfig.AccountFilter{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	}

	var nextCursor *AccountCursor
	accounts, err := s.storage.Accounts.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	if len(accounts) == 0 {
		return nil, nil, nil
	}

	if len(accounts) > limit {
		accounts = accounts[:limit]
		nextCursor = &AccountCursor{
			Position: offset + limit,
			Limit:    limit,
		}
	}

	convertedAccounts := make([]Account, len(accounts))
	for i, account := range accounts {
		convertedAccounts[i] = accountFromStorage(account)
	}

	return convertedAccounts, nextCursor, nil
}

// UpdateAccount changes the name, type or sub-type of an account.
func (s *AccountService) UpdateAccount(ctx context.Context, userID, id uuid.UUID, update AccountUpdate) error {
	if userID == uuid.Nil {
		return ledger.ErrUnauthenticated
	}

	storageUpdate := sqlconfig.AccountUpdate{}
	if name, ok := update.Name.Get(); ok {
		name = strings.TrimSpace(name)
		if name == "" {
			return ledger.ErrInvalidName
		}
		storageUpdate.Name = omit.From(name)
	}
	if accountType, ok := update.Type.Get(); ok {
		if !accountType.Valid() {
			return ledger.ErrInvalidAccountType
		}
		storageUpdate.Type = omit.From(accountTypeToStorage(accountType))
	}
	if subType, ok := update.SubType.Get(); ok {
		storageUpdate.SubType = omit.From(strings.TrimSpace(subType))
	}

	return s.operator.Process(ctx, &actions.UpdateAccount{
		UserID:    userID,
		AccountID: id,
		Update:    storageUpdate,
	})
}

// DeleteAccount removes an account and every transaction recorded on it.
func (s *AccountService) DeleteAccount(ctx context.Context, userID, id uuid.UUID) error {
	if userID == uuid.Nil {
		return ledger.ErrUnauthenticated
	}
	return s.operator.Process(ctx, &actions.DeleteAccount{UserID: userID, AccountID: id})
}

// TotalBalance sums the balances of all accounts of the user.
func (s *AccountService) TotalBalance(ctx context.Context, userID uuid.UUID) (*BalanceSummary, error) {
	if userID == uuid.Nil {
		return nil, ledger.ErrUnauthenticated
	}
	rows, err := s.storage.Accounts.List(ctx, &sqlconfig.AccountFilter{UserID: userID})
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.Balance)
	}
	return &BalanceSummary{Total: total, AccountCount: len(rows)}, nil
}
