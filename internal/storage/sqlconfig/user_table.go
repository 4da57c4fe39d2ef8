package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var (
	_ IUserTable          = (*UsersTable)(nil)
	_ ISessionTable       = (*SessionsTable)(nil)
	_ IRecoveryTokenTable = (*RecoveryTokensTable)(nil)
)

var (
	userColumns          = []any{"id", "email", "name", "password_hash", "created_at", "updated_at"}
	sessionColumns       = []any{"id", "user_id", "token_hash", "expires_at", "created_at"}
	recoveryTokenColumns = []any{"id", "user_id", "token_hash", "expires_at", "used_at", "created_at"}
)

// UsersTable provides access to the users table.
type UsersTable struct {
	exec bob.Executor
}

func NewUsersTable(exec bob.Executor) *UsersTable {
	return &UsersTable{exec: exec}
}

func (t *UsersTable) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	q := psql.Select(
		sm.Columns(userColumns...),
		sm.From("users"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*User]())
	if err != nil {
		return nil, translateError(err)
	}
	return row, nil
}

// FindByEmail expects an already normalized address.
func (t *UsersTable) FindByEmail(ctx context.Context, email string) (*User, error) {
	q := psql.Select(
		sm.Columns(userColumns...),
		sm.From("users"),
		sm.Where(psql.Quote("email").EQ(psql.Arg(email))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*User]())
	if err != nil {
		return nil, translateError(err)
	}
	return row, nil
}

func (t *UsersTable) Insert(ctx context.Context, create *UserCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into("users", "email", "name", "password_hash"),
		im.Values(psql.Arg(create.Email, create.Name, create.PasswordHash)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, translateError(err)
	}
	return id, nil
}

func (t *UsersTable) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	q := psql.Update(
		um.Table("users"),
		um.SetCol("password_hash").ToArg(passwordHash),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return requireAffected(bob.Exec(ctx, t.exec, q))
}

// SessionsTable provides access to the sessions table.
type SessionsTable struct {
	exec bob.Executor
}

func NewSessionsTable(exec bob.Executor) *SessionsTable {
	return &SessionsTable{exec: exec}
}

func (t *SessionsTable) Insert(ctx context.Context, create *SessionCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into("sessions", "user_id", "token_hash", "expires_at"),
		im.Values(psql.Arg(create.UserID, create.TokenHash, create.ExpiresAt)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, translateError(err)
	}
	return id, nil
}

func (t *SessionsTable) FindByTokenHash(ctx context.Context, tokenHash string) (*Session, error) {
	q := psql.Select(
		sm.Columns(sessionColumns...),
		sm.From("sessions"),
		sm.Where(psql.Quote("token_hash").EQ(psql.Arg(tokenHash))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Session]())
	if err != nil {
		return nil, translateError(err)
	}
	return row, nil
}

func (t *SessionsTable) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	q := psql.Delete(
		dm.From("sessions"),
		dm.Where(psql.Quote("token_hash").EQ(psql.Arg(tokenHash))),
	)
	return requireAffected(bob.Exec(ctx, t.exec, q))
}

// DeleteForUser revokes every session of the user. Having none is not an error.
func (t *SessionsTable) DeleteForUser(ctx context.Context, userID uuid.UUID) error {
	q := psql.Delete(
		dm.From("sessions"),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return translateError(err)
}

// RecoveryTokensTable provides access to the recovery_tokens table.
type RecoveryTokensTable struct {
	exec bob.Executor
}

func NewRecoveryTokensTable(exec bob.Executor) *RecoveryTokensTable {
	return &RecoveryTokensTable{exec: exec}
}

func (t *RecoveryTokensTable) Insert(ctx context.Context, create *RecoveryTokenCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into("recovery_tokens", "user_id", "token_hash", "expires_at"),
		im.Values(psql.Arg(create.UserID, create.TokenHash, create.ExpiresAt)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, translateError(err)
	}
	return id, nil
}

func (t *RecoveryTokensTable) FindByTokenHash(ctx context.Context, tokenHash string) (*RecoveryToken, error) {
	q := psql.Select(
		sm.Columns(recoveryTokenColumns...),
		sm.From("recovery_tokens"),
		sm.Where(psql.Quote("token_hash").EQ(psql.Arg(tokenHash))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*RecoveryToken]())
	if err != nil {
		return nil, translateError(err)
	}
	return row, nil
}

// MarkUsed consumes the token. A token that was already used is reported as
// not found.
func (t *RecoveryTokensTable) MarkUsed(ctx context.Context, id uuid.UUID, usedAt time.Time) error {
	q := psql.Update(
		um.Table("recovery_tokens"),
		um.SetCol("used_at").ToArg(usedAt),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("used_at").IsNull()),
	)
	return requireAffected(bob.Exec(ctx, t.exec, q))
}
