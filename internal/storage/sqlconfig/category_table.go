package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

const categoriesTableName = "categories"

var categoryColumns = []any{"id", "user_id", "name", "created_at"}

var _ ICategoryTable = (*CategoriesTable)(nil)

// CategoriesTable provides access to the categories table.
type CategoriesTable struct {
	exec bob.Executor
}

func NewCategoriesTable(exec bob.Executor) *CategoriesTable {
	return &CategoriesTable{exec: exec}
}

func (t *CategoriesTable) FindByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	q := psql.Select(
		sm.Columns(categoryColumns...),
		sm.From(categoriesTableName),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Category]())
	if err != nil {
		return nil, translateError(err)
	}
	return row, nil
}

func (t *CategoriesTable) FindByName(ctx context.Context, userID uuid.UUID, name string) (*Category, error) {
	q := psql.Select(
		sm.Columns(categoryColumns...),
		sm.From(categoriesTableName),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Raw("lower(name) = lower(?)", name)),
		sm.Limit(1),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Category]())
	if err != nil {
		return nil, translateError(err)
	}
	return row, nil
}

func (t *CategoriesTable) Insert(ctx context.Context, create *CategoryCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into(categoriesTableName, "user_id", "name"),
		im.Values(psql.Arg(create.UserID, create.Name)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, translateError(err)
	}
	return id, nil
}

// List returns the user's custom categories ordered by name.
func (t *CategoriesTable) List(ctx context.Context, userID uuid.UUID) ([]*Category, error) {
	q := psql.Select(
		sm.Columns(categoryColumns...),
		sm.From(categoriesTableName),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy(psql.Quote("name")).Asc(),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[*Category]())
	if err != nil {
		return nil, translateError(err)
	}
	return rows, nil
}

func (t *CategoriesTable) Rename(ctx context.Context, id uuid.UUID, name string) error {
	q := psql.Update(
		um.Table(categoriesTableName),
		um.SetCol("name").ToArg(name),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return requireAffected(bob.Exec(ctx, t.exec, q))
}

func (t *CategoriesTable) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From(categoriesTableName),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return requireAffected(bob.Exec(ctx, t.exec, q))
}
