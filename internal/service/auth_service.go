package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/ledger"
	"github.com/carson-networks/finance-server/internal/notify"
	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

const (
	minPasswordLength = 8
	// bcrypt ignores input past 72 bytes.
	maxPasswordLength = 72
)

// AuthOptions tunes session and recovery token lifetimes.
type AuthOptions struct {
	SessionTTL       time.Duration
	RecoveryTokenTTL time.Duration
	BcryptCost       int
}

// AuthService registers users and manages their sessions and password
// recovery.
type AuthService struct {
	storage  *storage.Storage
	operator actionProcessor
	notifier notify.RecoveryNotifier
	options  AuthOptions
	logger   logrus.FieldLogger
	now      func() time.Time
}

func NewAuthService(store *storage.Storage, processor actionProcessor, notifier notify.RecoveryNotifier, options AuthOptions, logger logrus.FieldLogger) *AuthService {
	if options.BcryptCost == 0 {
		options.BcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		storage:  store,
		operator: processor,
		notifier: notifier,
		options:  options,
		logger:   logger,
		now:      time.Now,
	}
}

// Register creates a user. Emails are compared case-insensitively.
func (s *AuthService) Register(ctx context.Context, email, name, password string) (*User, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ledger.ErrInvalidName
	}
	hash, err := s.hashPassword(password)
	if err != nil {
		return nil, err
	}

	id, err := s.storage.Users.Insert(ctx, &sqlconfig.UserCreate{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	})
	if errors.Is(err, sqlconfig.ErrDuplicate) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, err
	}

	return &User{ID: id, Email: email, Name: name, CreatedAt: s.now()}, nil
}

// Login checks the credentials and opens a session. The returned token is
// the only copy; only its hash is stored.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.storage.Users.FindByEmail(ctx, email)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := auth.GenerateToken()
	if err != nil {
		return nil, err
	}
	expiresAt := s.now().Add(s.options.SessionTTL)
	_, err = s.storage.Sessions.Insert(ctx, &sqlconfig.SessionCreate{
		UserID:    user.ID,
		TokenHash: auth.HashToken(token),
		ExpiresAt: expiresAt,
	})
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}

	return &Session{Token: token, ExpiresAt: expiresAt, User: userFromStorage(user)}, nil
}

// Logout ends the session of token. Ending an unknown session is not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	err := s.storage.Sessions.DeleteByTokenHash(ctx, auth.HashToken(token))
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return nil
	}
	return err
}

// Authenticate resolves a bearer token to its user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (uuid.UUID, error) {
	session, err := s.storage.Sessions.FindByTokenHash(ctx, auth.HashToken(token))
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return uuid.Nil, ErrInvalidSession
	}
	if err != nil {
		return uuid.Nil, err
	}
	if !s.now().Before(session.ExpiresAt) {
		return uuid.Nil, ErrInvalidSession
	}
	return session.UserID, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, userID uuid.UUID) (*User, error) {
	if userID == uuid.Nil {
		return nil, ledger.ErrUnauthenticated
	}
	user, err := s.storage.Users.FindByID(ctx, userID)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return nil, ledger.ErrUnauthenticated
	}
	if err != nil {
		return nil, err
	}
	return userFromStorage(user), nil
}

// RequestRecovery issues a recovery token and hands it to the notifier. An
// unknown email succeeds silently so that callers cannot probe for accounts.
func (s *AuthService) RequestRecovery(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.storage.Users.FindByEmail(ctx, email)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		s.logger.Info("AuthService.RequestRecovery.unknown email")
		return nil
	}
	if err != nil {
		return err
	}

	token, err := auth.GenerateToken()
	if err != nil {
		return err
	}
	expiresAt := s.now().Add(s.options.RecoveryTokenTTL)
	_, err = s.storage.RecoveryTokens.Insert(ctx, &sqlconfig.RecoveryTokenCreate{
		UserID:    user.ID,
		TokenHash: auth.HashToken(token),
		ExpiresAt: expiresAt,
	})
	if err != nil {
		return fmt.Errorf("insert recovery token: %w", err)
	}

	return s.notifier.NotifyRecovery(ctx, notify.RecoveryMessage{
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Token:     token,
		ExpiresAt: expiresAt,
	})
}

// VerifyRecoveryToken reports whether token can still be used.
func (s *AuthService) VerifyRecoveryToken(ctx context.Context, token string) error {
	_, err := s.findRecoveryToken(ctx, token)
	return err
}

// ResetPassword consumes the recovery token, sets the new password and ends
// every session of the user.
func (s *AuthService) ResetPassword(ctx context.Context, token, password string) error {
	hash, err := s.hashPassword(password)
	if err != nil {
		return err
	}
	recovery, err := s.findRecoveryToken(ctx, token)
	if err != nil {
		return err
	}

	err = s.operator.Process(ctx, &actions.ResetPassword{
		UserID:       recovery.UserID,
		TokenID:      recovery.ID,
		PasswordHash: hash,
		UsedAt:       s.now(),
	})
	if errors.Is(err, actions.ErrRecoveryTokenUsed) {
		return ErrInvalidRecoveryToken
	}
	if err != nil {
		return err
	}

	s.logger.WithField("userID", recovery.UserID.String()).Info("AuthService.ResetPassword.complete")
	return nil
}

func (s *AuthService) findRecoveryToken(ctx context.Context, token string) (*sqlconfig.RecoveryToken, error) {
	recovery, err := s.storage.RecoveryTokens.FindByTokenHash(ctx, auth.HashToken(token))
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return nil, ErrInvalidRecoveryToken
	}
	if err != nil {
		return nil, err
	}
	if recovery.UsedAt != nil || !s.now().Before(recovery.ExpiresAt) {
		return nil, ErrInvalidRecoveryToken
	}
	return recovery, nil
}

func (s *AuthService) hashPassword(password string) (string, error) {
	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		return "", ErrWeakPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.options.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", ErrInvalidEmail
	}
	return email, nil
}
