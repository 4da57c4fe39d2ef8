package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// Transactor is an open database transaction.
type Transactor interface {
	bob.Executor
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer exposes the tables bound to a single database transaction.
type Writer struct {
	tx Transactor

	Accounts       sqlconfig.IAccountTable
	Transactions   sqlconfig.ITransactionTable
	Categories     sqlconfig.ICategoryTable
	Users          sqlconfig.IUserTable
	Sessions       sqlconfig.ISessionTable
	RecoveryTokens sqlconfig.IRecoveryTokenTable
}

func NewWriter(tx Transactor) *Writer {
	return &Writer{
		tx:             tx,
		Accounts:       sqlconfig.NewAccountsTable(tx),
		Transactions:   sqlconfig.NewTransactionsTable(tx),
		Categories:     sqlconfig.NewCategoriesTable(tx),
		Users:          sqlconfig.NewUsersTable(tx),
		Sessions:       sqlconfig.NewSessionsTable(tx),
		RecoveryTokens: sqlconfig.NewRecoveryTokensTable(tx),
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.tx.Rollback(ctx)
}
