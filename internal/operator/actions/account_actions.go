package actions

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/ledger"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// CreateAccount inserts an account whose balance starts at StartingBalance.
type CreateAccount struct {
	UserID          uuid.UUID
	Name            string
	Type            sqlconfig.AccountType
	SubType         string
	StartingBalance decimal.Decimal

	// CreatedID is set once Perform succeeds.
	CreatedID uuid.UUID
}

func (c *CreateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.Accounts.Insert(ctx, &sqlconfig.AccountCreate{
		UserID:          c.UserID,
		Name:            c.Name,
		Type:            c.Type,
		SubType:         c.SubType,
		StartingBalance: c.StartingBalance,
	})
	if err != nil {
		return err
	}

	c.CreatedID = id
	return nil
}

// UpdateAccount changes the descriptive fields of an account. The balance is
// only ever moved by transactions.
type UpdateAccount struct {
	UserID    uuid.UUID
	AccountID uuid.UUID
	Update    sqlconfig.AccountUpdate
}

func (u *UpdateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	if _, err := lockAccount(ctx, writer, u.UserID, u.AccountID); err != nil {
		return err
	}
	return writer.Accounts.Update(ctx, u.AccountID, &u.Update)
}

// DeleteAccount removes an account together with its transactions.
type DeleteAccount struct {
	UserID    uuid.UUID
	AccountID uuid.UUID
}

func (d *DeleteAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	if _, err := lockAccount(ctx, writer, d.UserID, d.AccountID); err != nil {
		return err
	}
	err := writer.Accounts.Delete(ctx, d.AccountID)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return ledger.ErrAccountNotFound
	}
	return err
}
