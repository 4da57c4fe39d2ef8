package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

const accountsTableName = "accounts"

var accountColumns = []any{
	"id", "user_id", "name", "type", "sub_type",
	"balance", "starting_balance", "created_at", "updated_at",
}

// AccountsTable provides access to the accounts table.
type AccountsTable struct {
	exec bob.Executor
}

// Ensure AccountsTable implements IAccountTable at compile time.
var _ IAccountTable = (*AccountsTable)(nil)

// NewAccountsTable creates an AccountsTable on the given executor, either the
// pool or an open transaction.
func NewAccountsTable(exec bob.Executor) *AccountsTable {
	return &AccountsTable{exec: exec}
}

// FindByID retrieves an account by primary key.
func (t *AccountsTable) FindByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	return t.findOne(ctx, id)
}

// FindByIDForUpdate retrieves an account and takes a row lock on it.
func (t *AccountsTable) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Account, error) {
	return t.findOne(ctx, id, sm.ForUpdate())
}

func (t *AccountsTable) findOne(ctx context.Context, id uuid.UUID, extra ...bob.Mod[*dialect.SelectQuery]) (*Account, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(accountColumns...),
		sm.From(accountsTableName),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	}
	queryMods = append(queryMods, extra...)

	row, err := bob.One(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Account]())
	if err != nil {
		return nil, translateError(err)
	}
	return row, nil
}

// Insert creates a new account and returns its generated ID.
func (t *AccountsTable) Insert(ctx context.Context, create *AccountCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into(accountsTableName, "user_id", "name", "type", "sub_type", "balance", "starting_balance"),
		im.Values(psql.Arg(
			create.UserID,
			create.Name,
			int16(create.Type),
			create.SubType,
			create.StartingBalance,
			create.StartingBalance,
		)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, translateError(err)
	}
	return id, nil
}

// List returns the user's accounts ordered by name. One extra row is fetched
// past Limit so callers can tell whether another page exists.
func (t *AccountsTable) List(ctx context.Context, filter *AccountFilter) ([]*Account, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(accountColumns...),
		sm.From(accountsTableName),
	}
	if filter != nil {
		if filter.UserID != uuid.Nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("user_id").EQ(psql.Arg(filter.UserID))))
		}
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit+1))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("name")).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	)

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Account]())
	if err != nil {
		return nil, translateError(err)
	}
	return rows, nil
}

// Update applies the set fields of update.
func (t *AccountsTable) Update(ctx context.Context, id uuid.UUID, update *AccountUpdate) error {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table(accountsTableName),
		um.SetCol("updated_at").To(psql.Raw("now()")),
	}
	if name, ok := update.Name.Get(); ok {
		queryMods = append(queryMods, um.SetCol("name").ToArg(name))
	}
	if accountType, ok := update.Type.Get(); ok {
		queryMods = append(queryMods, um.SetCol("type").ToArg(int16(accountType)))
	}
	if subType, ok := update.SubType.Get(); ok {
		queryMods = append(queryMods, um.SetCol("sub_type").ToArg(subType))
	}
	queryMods = append(queryMods, um.Where(psql.Quote("id").EQ(psql.Arg(id))))

	return requireAffected(bob.Exec(ctx, t.exec, psql.Update(queryMods...)))
}

// UpdateBalance updates the balance for a given account.
func (t *AccountsTable) UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	q := psql.Update(
		um.Table(accountsTableName),
		um.SetCol("balance").ToArg(balance),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return requireAffected(bob.Exec(ctx, t.exec, q))
}

// Delete removes the account. Its transactions go with it through the
// foreign key cascade.
func (t *AccountsTable) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From(accountsTableName),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return requireAffected(bob.Exec(ctx, t.exec, q))
}
