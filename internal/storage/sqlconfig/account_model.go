package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Account represents an account record.
type Account struct {
	ID              uuid.UUID       `db:"id"`
	UserID          uuid.UUID       `db:"user_id"`
	Name            string          `db:"name"`
	Type            AccountType     `db:"type"`
	SubType         string          `db:"sub_type"`
	Balance         decimal.Decimal `db:"balance"`
	StartingBalance decimal.Decimal `db:"starting_balance"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

// AccountCreate is the input for creating a new account. The balance starts
// at the starting balance.
type AccountCreate struct {
	UserID          uuid.UUID
	Name            string
	Type            AccountType
	SubType         string
	StartingBalance decimal.Decimal
}

// AccountUpdate holds the columns to change. Unset fields are left alone.
type AccountUpdate struct {
	Name    omit.Val[string]
	Type    omit.Val[AccountType]
	SubType omit.Val[string]
}

// AccountFilter specifies filters for listing accounts. A zero Limit returns
// every matching row.
type AccountFilter struct {
	UserID uuid.UUID
	Limit  int
	Offset int
}

// IAccountTable defines the interface for account storage operations.
//
//go:generate mockery --name IAccountTable --inpackage --with-expecter --filename mock_IAccountTable.go
type IAccountTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Account, error)
	// FindByIDForUpdate locks the row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Account, error)
	Insert(ctx context.Context, create *AccountCreate) (uuid.UUID, error)
	List(ctx context.Context, filter *AccountFilter) ([]*Account, error)
	Update(ctx context.Context, id uuid.UUID, update *AccountUpdate) error
	UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error
	Delete(ctx context.Context, id uuid.UUID) error
}
