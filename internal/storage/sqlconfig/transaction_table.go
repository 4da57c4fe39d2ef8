package sqlconfig

import (
	"context"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

const transactionsTableName = "transactions"

var transactionColumns = []any{
	"id", "user_id", "account_id", "type", "category", "amount",
	"transaction_name", "transaction_date", "created_at", "updated_at",
}

var _ ITransactionTable = (*TransactionsTable)(nil)

// TransactionsTable provides access to the transactions table.
type TransactionsTable struct {
	exec bob.Executor
}

func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

// FindByID retrieves a transaction by primary key.
func (t *TransactionsTable) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	q := psql.Select(
		sm.Columns(transactionColumns...),
		sm.From(transactionsTableName),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Transaction]())
	if err != nil {
		return nil, translateError(err)
	}
	return row, nil
}

// Insert creates a new transaction and returns its generated ID.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	columns := []string{"user_id", "account_id", "type", "category", "amount", "transaction_name"}
	values := []any{create.UserID, create.AccountID, create.Type, create.Category, create.Amount, create.TransactionName}
	if !create.TransactionDate.IsZero() {
		columns = append(columns, "transaction_date")
		values = append(values, create.TransactionDate)
	}

	q := psql.Insert(
		im.Into(transactionsTableName, columns...),
		im.Values(psql.Arg(values...)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, translateError(err)
	}
	return id, nil
}

// Update applies the set fields of update.
func (t *TransactionsTable) Update(ctx context.Context, id uuid.UUID, update *TransactionUpdate) error {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table(transactionsTableName),
		um.SetCol("updated_at").To(psql.Raw("now()")),
	}
	if v, ok := update.AccountID.Get(); ok {
		queryMods = append(queryMods, um.SetCol("account_id").ToArg(v))
	}
	if v, ok := update.Type.Get(); ok {
		queryMods = append(queryMods, um.SetCol("type").ToArg(v))
	}
	if v, ok := update.Category.Get(); ok {
		queryMods = append(queryMods, um.SetCol("category").ToArg(v))
	}
	if v, ok := update.Amount.Get(); ok {
		queryMods = append(queryMods, um.SetCol("amount").ToArg(v))
	}
	if v, ok := update.TransactionName.Get(); ok {
		queryMods = append(queryMods, um.SetCol("transaction_name").ToArg(v))
	}
	if v, ok := update.TransactionDate.Get(); ok {
		queryMods = append(queryMods, um.SetCol("transaction_date").ToArg(v))
	}
	queryMods = append(queryMods, um.Where(psql.Quote("id").EQ(psql.Arg(id))))

	return requireAffected(bob.Exec(ctx, t.exec, psql.Update(queryMods...)))
}

// Delete removes a transaction.
func (t *TransactionsTable) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From(transactionsTableName),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return requireAffected(bob.Exec(ctx, t.exec, q))
}

// List returns transactions matching the filter, newest first. Nil filter
// returns all. When Limit is set one extra row is fetched so callers can
// detect a following page.
func (t *TransactionsTable) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(transactionColumns...),
		sm.From(transactionsTableName),
	}
	if filter != nil {
		queryMods = append(queryMods, transactionFilterMods(filter)...)
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit+1))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("transaction_date")).Desc(),
		sm.OrderBy(psql.Quote("created_at")).Desc(),
		sm.OrderBy(psql.Quote("id")).Desc(),
	)

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Transaction]())
	if err != nil {
		return nil, translateError(err)
	}
	return rows, nil
}

func transactionFilterMods(filter *TransactionFilter) []bob.Mod[*dialect.SelectQuery] {
	var whereMods []bob.Mod[*dialect.SelectQuery]
	if filter.UserID != uuid.Nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("user_id").EQ(psql.Arg(filter.UserID))))
	}
	if filter.AccountID != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("account_id").EQ(psql.Arg(*filter.AccountID))))
	}
	if filter.Type != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("type").EQ(psql.Arg(*filter.Type))))
	}
	if filter.Category != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("category").EQ(psql.Arg(*filter.Category))))
	}
	if filter.StartDate != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("transaction_date").GTE(psql.Arg(*filter.StartDate))))
	}
	if filter.EndDate != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("transaction_date").LTE(psql.Arg(*filter.EndDate))))
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		whereMods = append(whereMods, sm.Where(psql.Raw("transaction_name ILIKE ?", "%"+escapeLike(search)+"%")))
	}
	if filter.MaxCreationTime != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("created_at").LTE(psql.Arg(*filter.MaxCreationTime))))
	}
	return whereMods
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// ReassignCategory moves every transaction of the user from one category to another.
func (t *TransactionsTable) ReassignCategory(ctx context.Context, userID uuid.UUID, from, to string) (int64, error) {
	q := psql.Update(
		um.Table(transactionsTableName),
		um.SetCol("category").ToArg(to),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		um.Where(psql.Quote("category").EQ(psql.Arg(from))),
	)
	result, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return 0, translateError(err)
	}
	return result.RowsAffected()
}
