package actions

import (
	"bytes"
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/ledger"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// IAction is a unit of work the operator runs inside one database transaction.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}

// lockAccount takes the row lock on an account owned by userID.
func lockAccount(ctx context.Context, writer *storage.Writer, userID, accountID uuid.UUID) (*sqlconfig.Account, error) {
	account, err := writer.Accounts.FindByIDForUpdate(ctx, accountID)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return nil, ledger.ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	if account.UserID != userID {
		return nil, ledger.ErrAccountNotFound
	}
	return account, nil
}

// lockAccountPair locks two distinct accounts in a fixed order so concurrent
// transfers between the same pair cannot deadlock.
func lockAccountPair(ctx context.Context, writer *storage.Writer, userID, a, b uuid.UUID) (*sqlconfig.Account, *sqlconfig.Account, error) {
	if bytes.Compare(a.Bytes(), b.Bytes()) > 0 {
		second, first, err := lockAccountPair(ctx, writer, userID, b, a)
		return first, second, err
	}
	first, err := lockAccount(ctx, writer, userID, a)
	if err != nil {
		return nil, nil, err
	}
	second, err := lockAccount(ctx, writer, userID, b)
	if err != nil {
		return nil, nil, err
	}
	return first, second, nil
}

func adjustBalance(ctx context.Context, writer *storage.Writer, account *sqlconfig.Account, delta decimal.Decimal) error {
	if delta.IsZero() {
		return nil
	}
	account.Balance = account.Balance.Add(delta)
	return writer.Accounts.UpdateBalance(ctx, account.ID, account.Balance)
}

// findTransaction loads a transaction owned by userID.
func findTransaction(ctx context.Context, writer *storage.Writer, userID, transactionID uuid.UUID) (*sqlconfig.Transaction, error) {
	tx, err := writer.Transactions.FindByID(ctx, transactionID)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return nil, ledger.ErrTransactionNotFound
	}
	if err != nil {
		return nil, err
	}
	if tx.UserID != userID {
		return nil, ledger.ErrTransactionNotFound
	}
	return tx, nil
}

// findCategory loads a custom category owned by userID.
func findCategory(ctx context.Context, writer *storage.Writer, userID, categoryID uuid.UUID) (*sqlconfig.Category, error) {
	category, err := writer.Categories.FindByID(ctx, categoryID)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return nil, ledger.ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	if category.UserID != userID {
		return nil, ledger.ErrCategoryNotFound
	}
	return category, nil
}
