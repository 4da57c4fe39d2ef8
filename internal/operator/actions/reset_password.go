package actions

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// ErrRecoveryTokenUsed is returned when the token was consumed concurrently.
var ErrRecoveryTokenUsed = errors.New("recovery token already used")

// ResetPassword consumes a recovery token, stores the new password hash and
// revokes every session of the user.
type ResetPassword struct {
	UserID       uuid.UUID
	TokenID      uuid.UUID
	PasswordHash string
	UsedAt       time.Time
}

func (r *ResetPassword) Perform(ctx context.Context, writer *storage.Writer) error {
	err := writer.RecoveryTokens.MarkUsed(ctx, r.TokenID, r.UsedAt)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return ErrRecoveryTokenUsed
	}
	if err != nil {
		return err
	}
	if err = writer.Users.UpdatePassword(ctx, r.UserID, r.PasswordHash); err != nil {
		return err
	}
	return writer.Sessions.DeleteForUser(ctx, r.UserID)
}
