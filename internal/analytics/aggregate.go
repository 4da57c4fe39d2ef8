package analytics

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-server/internal/ledger"
)

// Record is one ledger entry as the engine sees it. Amount is kept as the raw
// decimal text so that a bad row can be skipped instead of failing the request.
type Record struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	AccountID uuid.UUID
	Type      ledger.TransactionType
	Amount    string
	Category  ledger.Category
	Date      time.Time
}

// MalformedRecordWarning describes a record excluded from aggregation.
type MalformedRecordWarning struct {
	RecordID uuid.UUID
	Amount   string
	Err      error
}

func (w *MalformedRecordWarning) Error() string {
	return fmt.Sprintf("malformed record %s (amount %q): %v", w.RecordID, w.Amount, w.Err)
}

func (w *MalformedRecordWarning) Unwrap() error {
	return w.Err
}

var errUnparseableAmount = errors.New("amount is not a decimal number")

// MonthBucket accumulates one calendar month.
type MonthBucket struct {
	Period
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}

func (b *MonthBucket) add(txType ledger.TransactionType, amount decimal.Decimal) {
	switch txType {
	case ledger.TransactionTypeIncome:
		b.Income = b.Income.Add(amount)
	case ledger.TransactionTypeExpense:
		b.Expense = b.Expense.Add(amount)
	}
	b.Net = b.Income.Sub(b.Expense)
}

// CategoryBucket accumulates expenses for one category.
type CategoryBucket struct {
	Category   ledger.Category
	Amount     decimal.Decimal
	Percentage decimal.Decimal
}

func newMonthBuckets(periods []Period) []MonthBucket {
	buckets := make([]MonthBucket, len(periods))
	for i, p := range periods {
		buckets[i] = MonthBucket{
			Period:  p,
			Income:  decimal.Zero,
			Expense: decimal.Zero,
			Net:     decimal.Zero,
		}
	}
	return buckets
}

// aggregator folds records into buckets, logging and skipping bad rows.
type aggregator struct {
	logger logrus.FieldLogger
}

// accumulateMonths adds every record to the bucket of its month. Records that
// fall outside the buckets are ignored. Returns the number of malformed records.
func (a aggregator) accumulateMonths(buckets []MonthBucket, records []Record) int {
	index := make(map[string]int, len(buckets))
	for i := range buckets {
		index[buckets[i].Key] = i
	}

	skipped := 0
	for _, rec := range records {
		amount, ok := a.validate(rec)
		if !ok {
			skipped++
			continue
		}
		i, found := index[MonthKey(rec.Date)]
		if !found {
			continue
		}
		buckets[i].add(rec.Type, amount)
	}
	return skipped
}

// accumulateCategories sums EXPENSE records dated within [start, end] per
// category name. Returns the buckets keyed by name and the malformed count.
func (a aggregator) accumulateCategories(records []Record, start, end time.Time) (map[string]*CategoryBucket, int) {
	buckets := make(map[string]*CategoryBucket)

	skipped := 0
	for _, rec := range records {
		amount, ok := a.validate(rec)
		if !ok {
			skipped++
			continue
		}
		if rec.Type != ledger.TransactionTypeExpense {
			continue
		}
		day := civilDate(rec.Date)
		if day.Before(start) || day.After(end) {
			continue
		}

		category := rec.Category
		if category.IsZero() {
			category = ledger.System(ledger.CategoryOther)
		}
		bucket, found := buckets[category.Name()]
		if !found {
			bucket = &CategoryBucket{Category: category, Amount: decimal.Zero}
			buckets[category.Name()] = bucket
		}
		bucket.Amount = bucket.Amount.Add(amount)
	}
	return buckets, skipped
}

func (a aggregator) validate(rec Record) (decimal.Decimal, bool) {
	amount, err := parseAmount(rec.Amount)
	if err == nil && !rec.Type.Valid() {
		err = ledger.ErrInvalidTransactionType
	}
	if err != nil {
		warning := &MalformedRecordWarning{RecordID: rec.ID, Amount: rec.Amount, Err: err}
		a.logger.WithError(warning).
			WithField("transactionID", rec.ID.String()).
			Warn("Analytics.aggregate.malformed record skipped")
		return decimal.Zero, false
	}
	return amount, true
}

func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, errUnparseableAmount
	}
	if amount.IsNegative() {
		return decimal.Zero, ledger.ErrNegativeAmount
	}
	return amount, nil
}
