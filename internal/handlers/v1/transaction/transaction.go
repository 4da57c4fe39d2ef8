package transaction

import (
	"time"

	"github.com/carson-networks/finance-server/internal/service"
)

const dateLayout = "2006-01-02"

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID              string `json:"id" doc:"Transaction UUID"`
	AccountID       string `json:"accountID" doc:"Account UUID"`
	Type            string `json:"type" enum:"INCOME,EXPENSE" doc:"Transaction type"`
	Category        string `json:"category" doc:"System category key or custom category name"`
	SystemCategory  bool   `json:"systemCategory" doc:"Whether the category is a built-in one"`
	Amount          string `json:"amount" doc:"Decimal amount, always non-negative"`
	TransactionName string `json:"transactionName" doc:"Name of the transaction"`
	TransactionDate string `json:"transactionDate" doc:"Transaction date (YYYY-MM-DD)"`
	CreatedAt       string `json:"createdAt" doc:"RFC3339 creation time"`
}

func toAPITransaction(tx service.Transaction) Transaction {
	return Transaction{
		ID:              tx.ID.String(),
		AccountID:       tx.AccountID.String(),
		Type:            string(tx.Type),
		Category:        tx.Category.Name(),
		SystemCategory:  tx.Category.IsSystem(),
		Amount:          tx.Amount.StringFixed(2),
		TransactionName: tx.TransactionName,
		TransactionDate: tx.TransactionDate.Format(dateLayout),
		CreatedAt:       tx.CreatedAt.Format(time.RFC3339),
	}
}

// parseDate accepts a plain date or an RFC3339 timestamp and keeps only the
// calendar date.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// TransactionPathInput addresses a single transaction.
type TransactionPathInput struct {
	ID string `path:"id" format:"uuid" doc:"Transaction UUID"`
}
