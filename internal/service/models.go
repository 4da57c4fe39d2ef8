package service

import (
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/ledger"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// AccountType represents an account type in the service layer.
type AccountType int8

const (
	AccountTypeCash AccountType = iota
	AccountTypeCreditCards
	AccountTypeInvestments
	AccountTypeLoans
	AccountTypeAssets
)

func (t AccountType) Valid() bool {
	return accountTypeToStorage(t).Valid()
}

func (t AccountType) String() string {
	return accountTypeToStorage(t).String()
}

// Account represents an account in the service layer.
type Account struct {
	ID              uuid.UUID
	Name            string
	Type            AccountType
	SubType         string
	Balance         decimal.Decimal
	StartingBalance decimal.Decimal
	CreatedAt       time.Time
}

// AccountUpdate holds the fields to change on an account.
type AccountUpdate struct {
	Name    omit.Val[string]
	Type    omit.Val[AccountType]
	SubType omit.Val[string]
}

// AccountCursor identifies a position in a paginated result set.
type AccountCursor struct {
	Position int
	Limit    int
}

// BalanceSummary totals the balances of every account of a user.
type BalanceSummary struct {
	Total        decimal.Decimal
	AccountCount int
}

func accountTypeToStorage(t AccountType) sqlconfig.AccountType {
	return sqlconfig.AccountType(t)
}

func accountTypeFromStorage(t sqlconfig.AccountType) AccountType {
	return AccountType(t)
}

func accountFromStorage(row *sqlconfig.Account) Account {
	return Account{
		ID:              row.ID,
		Name:            row.Name,
		Type:            accountTypeFromStorage(row.Type),
		SubType:         row.SubType,
		Balance:         row.Balance,
		StartingBalance: row.StartingBalance,
		CreatedAt:       row.CreatedAt,
	}
}

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID              uuid.UUID
	AccountID       uuid.UUID
	Type            ledger.TransactionType
	Category        ledger.Category
	Amount          decimal.Decimal
	TransactionName string
	TransactionDate time.Time
	CreatedAt       time.Time
}

// TransactionUpdate holds the fields to change on a transaction. Category is
// the submitted name and is resolved against the user's categories.
type TransactionUpdate struct {
	AccountID       omit.Val[uuid.UUID]
	Type            omit.Val[ledger.TransactionType]
	Category        omit.Val[string]
	Amount          omit.Val[decimal.Decimal]
	TransactionName omit.Val[string]
	TransactionDate omit.Val[time.Time]
}

// TransactionFilter narrows a transaction listing. Nil fields do not filter.
type TransactionFilter struct {
	AccountID *uuid.UUID
	Type      *ledger.TransactionType
	Category  *string
	StartDate *time.Time
	EndDate   *time.Time
	Search    string
}

// TransactionCursor identifies a position in a paginated result set
// and carries the limit and maxCreationTime so subsequent pages are consistent.
type TransactionCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
}

func transactionFromStorage(row *sqlconfig.Transaction) Transaction {
	return Transaction{
		ID:              row.ID,
		AccountID:       row.AccountID,
		Type:            ledger.TransactionType(row.Type),
		Category:        ledger.ParseCategory(row.Category),
		Amount:          row.Amount,
		TransactionName: row.TransactionName,
		TransactionDate: row.TransactionDate,
		CreatedAt:       row.CreatedAt,
	}
}

// CategoryInfo is one entry of a user's category list.
type CategoryInfo struct {
	// ID is nil for system categories.
	ID       uuid.UUID
	Category ledger.Category
	// DefaultType is only set for system categories.
	DefaultType ledger.TransactionType
}

// User is the public view of a registered user.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	CreatedAt time.Time
}

func userFromStorage(row *sqlconfig.User) *User {
	return &User{
		ID:        row.ID,
		Email:     row.Email,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
	}
}

// Session is returned once at login. Token is never stored.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *User
}

// TransactionCreate is the input for recording a transaction. Category is the
// submitted name; an empty one means OTHER.
type TransactionCreate struct {
	AccountID       uuid.UUID
	Type            ledger.TransactionType
	Category        string
	Amount          decimal.Decimal
	TransactionName string
	// TransactionDate defaults to today when zero.
	TransactionDate time.Time
}
