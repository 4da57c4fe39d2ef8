package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/ledger"
	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

const defaultLimit = 20

// categoryResolver maps submitted category names onto categories.
type categoryResolver interface {
	ResolveCategory(ctx context.Context, userID uuid.UUID, name string) (ledger.Category, error)
}

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage    *storage.Storage
	operator   actionProcessor
	categories categoryResolver
	now        func() time.Time
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, processor actionProcessor, categories categoryResolver) *TransactionService {
	return &TransactionService{
		storage:    store,
		operator:   processor,
		categories: categories,
		now:        time.Now,
	}
}

// CreateTransaction records a transaction, applies it to the account balance
// and returns its ID.
func (s *TransactionService) CreateTransaction(ctx context.Context, userID uuid.UUID, transaction TransactionCreate) (uuid.UUID, error) {
	if userID == uuid.Nil {
		return uuid.Nil, ledger.ErrUnauthenticated
	}
	if !transaction.Type.Valid() {
		return uuid.Nil, ledger.ErrInvalidTransactionType
	}
	if err := checkAmount(transaction.Amount); err != nil {
		return uuid.Nil, err
	}
	name := strings.TrimSpace(transaction.TransactionName)
	if name == "" {
		return uuid.Nil, ledger.ErrInvalidName
	}
	category, err := s.categories.ResolveCategory(ctx, userID, transaction.Category)
	if err != nil {
		return uuid.Nil, err
	}

	txDate := transaction.TransactionDate
	if txDate.IsZero() {
		txDate = s.now().UTC().Truncate(24 * time.Hour)
	}

	action := &actions.CreateTransaction{
		UserID:          userID,
		AccountID:       transaction.AccountID,
		Type:            transaction.Type,
		Category:        category,
		Amount:          transaction.Amount,
		TransactionName: name,
		TransactionDate: txDate,
	}
	if err = s.operator.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}
	return action.CreatedID, nil
}

// GetTransaction retrieves a transaction owned by userID.
func (s *TransactionService) GetTransaction(ctx context.Context, userID, id uuid.UUID) (*Transaction, error) {
	if userID == uuid.Nil {
		return nil, ledger.ErrUnauthenticated
	}
	row, err := s.storage.Transactions.FindByID(ctx, id)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return nil, ledger.ErrTransactionNotFound
	}
	if err != nil {
		return nil, err
	}
	if row.UserID != userID {
		return nil, ledger.ErrTransactionNotFound
	}
	transaction := transactionFromStorage(row)
	return &transaction, nil
}

// ListTransactions returns a page of transactions using cursor-based pagination.
// The first page locks in the current time as the creation bound so that rows
// inserted while paging do not shift later pages.
func (s *TransactionService) ListTransactions(ctx context.Context, userID uuid.UUID, filter TransactionFilter, cursor *TransactionCursor) ([]Transaction, *TransactionCursor, error) {
	if userID == uuid.Nil {
		return nil, nil, ledger.ErrUnauthenticated
	}
	limit := defaultLimit
	offset := 0
	maxCreationTime := s.now().UTC()
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
		maxCreationTime = cursor.MaxCreationTime
	}

	storageFilter := &sqlconfig.TransactionFilter{
		UserID:          userID,
		AccountID:       filter.AccountID,
		StartDate:       filter.StartDate,
		EndDate:         filter.EndDate,
		Search:          strings.TrimSpace(filter.Search),
		Limit:           limit,
		Offset:          offset,
		MaxCreationTime: &maxCreationTime,
	}
	if filter.Type != nil {
		txType := string(*filter.Type)
		storageFilter.Type = &txType
	}
	if filter.Category != nil {
		category := ledger.ParseCategory(*filter.Category).Name()
		storageFilter.Category = &category
	}

	rows, err := s.storage.Transactions.List(ctx, storageFilter)
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *TransactionCursor
	if len(rows) > limit {
		rows = rows[:limit]
		nextCursor = &TransactionCursor{
			Position:        offset + limit,
			Limit:           limit,
			MaxCreationTime: maxCreationTime,
		}
	}

	convertedTransactions := make([]Transaction, len(rows))
	for i, row := range rows {
		convertedTransactions[i] = transactionFromStorage(row)
	}

	return convertedTransactions, nextCursor, nil
}

// UpdateTransaction applies a partial update and moves the balance effect
// accordingly.
func (s *TransactionService) UpdateTransaction(ctx context.Context, userID, id uuid.UUID, update TransactionUpdate) error {
	if userID == uuid.Nil {
		return ledger.ErrUnauthenticated
	}

	action := &actions.UpdateTransaction{
		UserID:          userID,
		TransactionID:   id,
		AccountID:       update.AccountID,
		Amount:          update.Amount,
		TransactionDate: update.TransactionDate,
	}
	if txType, ok := update.Type.Get(); ok {
		if !txType.Valid() {
			return ledger.ErrInvalidTransactionType
		}
		action.Type = omit.From(txType)
	}
	if amount, ok := update.Amount.Get(); ok {
		if err := checkAmount(amount); err != nil {
			return err
		}
	}
	if name, ok := update.TransactionName.Get(); ok {
		name = strings.TrimSpace(name)
		if name == "" {
			return ledger.ErrInvalidName
		}
		action.TransactionName = omit.From(name)
	}
	if categoryName, ok := update.Category.Get(); ok {
		category, err := s.categories.ResolveCategory(ctx, userID, categoryName)
		if err != nil {
			return err
		}
		action.Category = omit.From(category)
	}

	return s.operator.Process(ctx, action)
}

// DeleteTransaction removes a transaction and reverts its balance effect.
func (s *TransactionService) DeleteTransaction(ctx context.Context, userID, id uuid.UUID) error {
	if userID == uuid.Nil {
		return ledger.ErrUnauthenticated
	}
	return s.operator.Process(ctx, &actions.DeleteTransaction{UserID: userID, TransactionID: id})
}

func checkAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ledger.ErrNegativeAmount
	}
	return nil
}
