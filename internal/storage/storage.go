package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-server/internal/config"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// Storage holds the table accessors bound to the connection pool. Writes
// that span several tables go through Write instead.
type Storage struct {
	sqlDB *sql.DB
	db    bob.DB

	Accounts       sqlconfig.IAccountTable
	Transactions   sqlconfig.ITransactionTable
	Categories     sqlconfig.ICategoryTable
	Users          sqlconfig.IUserTable
	Sessions       sqlconfig.ISessionTable
	RecoveryTokens sqlconfig.IRecoveryTokenTable
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	exec := bob.NewDB(db)
	return &Storage{
		sqlDB:          db,
		db:             exec,
		Accounts:       sqlconfig.NewAccountsTable(exec),
		Transactions:   sqlconfig.NewTransactionsTable(exec),
		Categories:     sqlconfig.NewCategoriesTable(exec),
		Users:          sqlconfig.NewUsersTable(exec),
		Sessions:       sqlconfig.NewSessionsTable(exec),
		RecoveryTokens: sqlconfig.NewRecoveryTokensTable(exec),
	}, nil
}

// Write opens a database transaction and returns a Writer bound to it. The
// caller must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return NewWriter(tx), nil
}

// Ping checks that the database is reachable.
func (s *Storage) Ping(ctx context.Context) error {
	return s.sqlDB.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.sqlDB.Close()
}
