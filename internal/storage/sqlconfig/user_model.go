package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// User is a registered user. PasswordHash is a bcrypt hash.
type User struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type UserCreate struct {
	Email        string
	Name         string
	PasswordHash string
}

// Session is a login session. Only the SHA-256 hash of the bearer token is stored.
type Session struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	TokenHash string    `db:"token_hash"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}

type SessionCreate struct {
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
}

// RecoveryToken is a single-use password reset token.
type RecoveryToken struct {
	ID        uuid.UUID  `db:"id"`
	UserID    uuid.UUID  `db:"user_id"`
	TokenHash string     `db:"token_hash"`
	ExpiresAt time.Time  `db:"expires_at"`
	UsedAt    *time.Time `db:"used_at"`
	CreatedAt time.Time  `db:"created_at"`
}

type RecoveryTokenCreate struct {
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
}

// IUserTable defines the interface for user storage operations.
//
//go:generate mockery --name IUserTable --inpackage --with-expecter --filename mock_IUserTable.go
type IUserTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Insert(ctx context.Context, create *UserCreate) (uuid.UUID, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// ISessionTable defines the interface for session storage operations.
//
//go:generate mockery --name ISessionTable --inpackage --with-expecter --filename mock_ISessionTable.go
type ISessionTable interface {
	Insert(ctx context.Context, create *SessionCreate) (uuid.UUID, error)
	FindByTokenHash(ctx context.Context, tokenHash string) (*Session, error)
	DeleteByTokenHash(ctx context.Context, tokenHash string) error
	DeleteForUser(ctx context.Context, userID uuid.UUID) error
}

// IRecoveryTokenTable defines the interface for recovery token storage.
//
//go:generate mockery --name IRecoveryTokenTable --inpackage --with-expecter --filename mock_IRecoveryTokenTable.go
type IRecoveryTokenTable interface {
	Insert(ctx context.Context, create *RecoveryTokenCreate) (uuid.UUID, error)
	FindByTokenHash(ctx context.Context, tokenHash string) (*RecoveryToken, error)
	MarkUsed(ctx context.Context, id uuid.UUID, usedAt time.Time) error
}
