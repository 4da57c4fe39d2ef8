package service

import "errors"

var (
	ErrEmailTaken   = errors.New("email is already registered")
	ErrInvalidEmail = errors.New("invalid email address")
	ErrWeakPassword = errors.New("password must be between 8 and 72 bytes")

	// ErrInvalidCredentials covers both an unknown email and a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrInvalidSession = errors.New("session is invalid or expired")

	// ErrInvalidRecoveryToken covers unknown, expired and used tokens.
	ErrInvalidRecoveryToken = errors.New("recovery token is invalid or expired")
)
