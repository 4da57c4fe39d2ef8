package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction represents a transaction record. Type and Category hold the
// stored text; the service layer parses them.
type Transaction struct {
	ID              uuid.UUID       `db:"id"`
	UserID          uuid.UUID       `db:"user_id"`
	AccountID       uuid.UUID       `db:"account_id"`
	Type            string          `db:"type"`
	Category        string          `db:"category"`
	Amount          decimal.Decimal `db:"amount"`
	TransactionName string          `db:"transaction_name"`
	TransactionDate time.Time       `db:"transaction_date"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	UserID          uuid.UUID
	AccountID       uuid.UUID
	Type            string
	Category        string
	Amount          decimal.Decimal
	TransactionName string
	TransactionDate time.Time // defaults to today if zero
}

// TransactionUpdate holds the columns to change. Unset fields are left alone.
type TransactionUpdate struct {
	AccountID       omit.Val[uuid.UUID]
	Type            omit.Val[string]
	Category        omit.Val[string]
	Amount          omit.Val[decimal.Decimal]
	TransactionName omit.Val[string]
	TransactionDate omit.Val[time.Time]
}

// TransactionFilter specifies filters for listing transactions. Nil fields
// do not constrain the result. StartDate and EndDate are inclusive.
type TransactionFilter struct {
	UserID          uuid.UUID
	AccountID       *uuid.UUID
	Type            *string
	Category        *string
	StartDate       *time.Time
	EndDate         *time.Time
	Search          string
	Limit           int
	Offset          int
	MaxCreationTime *time.Time
}

// ITransactionTable defines the interface for transaction storage operations.
//
//go:generate mockery --name ITransactionTable --inpackage --with-expecter --filename mock_ITransactionTable.go
type ITransactionTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, update *TransactionUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	// ReassignCategory moves every transaction of the user tagged from onto
	// to and returns how many rows changed.
	ReassignCategory(ctx context.Context, userID uuid.UUID, from, to string) (int64, error)
}
