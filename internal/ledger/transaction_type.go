package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a transaction. Amounts are always stored
// as non-negative magnitudes; the type carries the sign.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// ParseTransactionType accepts the type case-insensitively.
func ParseTransactionType(value string) (TransactionType, error) {
	switch TransactionType(strings.ToUpper(strings.TrimSpace(value))) {
	case TransactionTypeIncome:
		return TransactionTypeIncome, nil
	case TransactionTypeExpense:
		return TransactionTypeExpense, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTransactionType, value)
}

func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// SignedAmount returns the effect of amount on an account balance.
func (t TransactionType) SignedAmount(amount decimal.Decimal) decimal.Decimal {
	if t == TransactionTypeExpense {
		return amount.Neg()
	}
	return amount
}
