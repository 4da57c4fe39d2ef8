package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/ledger"
	"github.com/carson-networks/finance-server/internal/storage"
)

// RenameCategory renames a custom category and retags its transactions.
type RenameCategory struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Name       string
}

func (r *RenameCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	category, err := findCategory(ctx, writer, r.UserID, r.CategoryID)
	if err != nil {
		return err
	}
	if err = writer.Categories.Rename(ctx, r.CategoryID, r.Name); err != nil {
		return err
	}
	_, err = writer.Transactions.ReassignCategory(ctx, r.UserID, category.Name, r.Name)
	return err
}

// DeleteCategory removes a custom category. Its transactions move to OTHER.
type DeleteCategory struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID

	// Reassigned is the number of transactions moved to OTHER.
	Reassigned int64
}

func (d *DeleteCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	category, err := findCategory(ctx, writer, d.UserID, d.CategoryID)
	if err != nil {
		return err
	}

	moved, err := writer.Transactions.ReassignCategory(ctx, d.UserID, category.Name, string(ledger.CategoryOther))
	if err != nil {
		return err
	}
	if err = writer.Categories.Delete(ctx, d.CategoryID); err != nil {
		return err
	}

	d.Reassigned = moved
	return nil
}
