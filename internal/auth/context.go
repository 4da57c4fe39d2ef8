package auth

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/ledger"
)

type userIDKey struct{}

func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserID returns the authenticated user, if any.
func UserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	return userID, ok && userID != uuid.Nil
}

// RequireUserID returns ledger.ErrUnauthenticated when the request carries no
// valid session.
func RequireUserID(ctx context.Context) (uuid.UUID, error) {
	userID, ok := UserID(ctx)
	if !ok {
		return uuid.Nil, ledger.ErrUnauthenticated
	}
	return userID, nil
}
