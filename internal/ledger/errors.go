// Package ledger holds the vocabulary shared by the storage, service, analytics
// and handler layers: transaction types, categories and cross-cutting errors.
package ledger

import "errors"

var (
	// ErrUnauthenticated means no valid user context was supplied.
	ErrUnauthenticated = errors.New("unauthenticated")

	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrNegativeAmount         = errors.New("amount must not be negative")

	// Rows owned by another user are reported with the same errors as
	// missing rows.
	ErrAccountNotFound     = errors.New("account not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrCategoryNotFound    = errors.New("category not found")

	ErrCategoryExists     = errors.New("category already exists")
	ErrSystemCategory     = errors.New("system categories cannot be changed")
	ErrInvalidCategory    = errors.New("invalid category")
	ErrInvalidAccountType = errors.New("invalid account type")
	ErrInvalidName        = errors.New("name must not be empty")
)
