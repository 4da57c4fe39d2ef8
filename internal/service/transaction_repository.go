package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/analytics"
	"github.com/carson-networks/finance-server/internal/ledger"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// TransactionRepository serves the analytics engine from the transactions table.
type TransactionRepository struct {
	storage *storage.Storage
}

func NewTransactionRepository(store *storage.Storage) *TransactionRepository {
	return &TransactionRepository{storage: store}
}

func (r *TransactionRepository) FindTransactionsInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]analytics.Record, error) {
	return r.find(ctx, &sqlconfig.TransactionFilter{
		UserID:    userID,
		StartDate: &start,
		EndDate:   &end,
	})
}

func (r *TransactionRepository) FindExpensesInMonth(ctx context.Context, userID uuid.UUID, year int, month time.Month) ([]analytics.Record, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	expense := string(ledger.TransactionTypeExpense)

	return r.find(ctx, &sqlconfig.TransactionFilter{
		UserID:    userID,
		Type:      &expense,
		StartDate: &start,
		EndDate:   &end,
	})
}

func (r *TransactionRepository) find(ctx context.Context, filter *sqlconfig.TransactionFilter) ([]analytics.Record, error) {
	rows, err := r.storage.Transactions.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	records := make([]analytics.Record, len(rows))
	for i, row := range rows {
		records[i] = analytics.Record{
			ID:        row.ID,
			UserID:    row.UserID,
			AccountID: row.AccountID,
			Type:      ledger.TransactionType(row.Type),
			Amount:    row.Amount.String(),
			Category:  ledger.ParseCategory(row.Category),
			Date:      row.TransactionDate,
		}
	}
	return records, nil
}
