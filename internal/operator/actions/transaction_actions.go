package actions

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/ledger"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// CreateTransaction records a transaction and applies it to the account balance.
type CreateTransaction struct {
	UserID          uuid.UUID
	AccountID       uuid.UUID
	Type            ledger.TransactionType
	Category        ledger.Category
	Amount          decimal.Decimal
	TransactionName string
	TransactionDate time.Time

	CreatedID uuid.UUID
}

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	account, err := lockAccount(ctx, writer, t.UserID, t.AccountID)
	if err != nil {
		return err
	}

	id, err := writer.Transactions.Insert(ctx, &sqlconfig.TransactionCreate{
		UserID:          t.UserID,
		AccountID:       t.AccountID,
		Type:            string(t.Type),
		Category:        t.Category.Name(),
		Amount:          t.Amount,
		TransactionName: t.TransactionName,
		TransactionDate: t.TransactionDate,
	})
	if err != nil {
		return err
	}

	if err = adjustBalance(ctx, writer, account, t.Type.SignedAmount(t.Amount)); err != nil {
		return err
	}

	t.CreatedID = id
	return nil
}

// UpdateTransaction changes a transaction. The old effect is reverted on the
// old account and the new effect applied on the target account, which may be
// a different one.
type UpdateTransaction struct {
	UserID          uuid.UUID
	TransactionID   uuid.UUID
	AccountID       omit.Val[uuid.UUID]
	Type            omit.Val[ledger.TransactionType]
	Category        omit.Val[ledger.Category]
	Amount          omit.Val[decimal.Decimal]
	TransactionName omit.Val[string]
	TransactionDate omit.Val[time.Time]
}

func (u *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := findTransaction(ctx, writer, u.UserID, u.TransactionID)
	if err != nil {
		return err
	}

	oldType := ledger.TransactionType(existing.Type)
	oldEffect := oldType.SignedAmount(existing.Amount)
	newType := u.Type.GetOr(oldType)
	newEffect := newType.SignedAmount(u.Amount.GetOr(existing.Amount))
	targetID := u.AccountID.GetOr(existing.AccountID)

	if targetID == existing.AccountID {
		account, err := lockAccount(ctx, writer, u.UserID, targetID)
		if err != nil {
			return err
		}
		if err = adjustBalance(ctx, writer, account, newEffect.Sub(oldEffect)); err != nil {
			return err
		}
	} else {
		source, target, err := lockAccountPair(ctx, writer, u.UserID, existing.AccountID, targetID)
		if err != nil {
			return err
		}
		if err = adjustBalance(ctx, writer, source, oldEffect.Neg()); err != nil {
			return err
		}
		if err = adjustBalance(ctx, writer, target, newEffect); err != nil {
			return err
		}
	}

	update := &sqlconfig.TransactionUpdate{
		AccountID:       u.AccountID,
		Amount:          u.Amount,
		TransactionName: u.TransactionName,
		TransactionDate: u.TransactionDate,
	}
	if v, ok := u.Type.Get(); ok {
		update.Type = omit.From(string(v))
	}
	if v, ok := u.Category.Get(); ok {
		update.Category = omit.From(v.Name())
	}
	return writer.Transactions.Update(ctx, u.TransactionID, update)
}

// DeleteTransaction removes a transaction and reverts its balance effect.
type DeleteTransaction struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
}

func (d *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := findTransaction(ctx, writer, d.UserID, d.TransactionID)
	if err != nil {
		return err
	}

	account, err := lockAccount(ctx, writer, d.UserID, existing.AccountID)
	if err != nil {
		return err
	}
	effect := ledger.TransactionType(existing.Type).SignedAmount(existing.Amount)
	if err = adjustBalance(ctx, writer, account, effect.Neg()); err != nil {
		return err
	}

	return writer.Transactions.Delete(ctx, d.TransactionID)
}
