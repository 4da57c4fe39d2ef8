// Package httperr maps domain errors onto huma status errors.
package httperr

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/analytics"
	"github.com/carson-networks/finance-server/internal/ledger"
	"github.com/carson-networks/finance-server/internal/service"
)

var statusByError = []struct {
	err    error
	status int
}{
	{ledger.ErrUnauthenticated, http.StatusUnauthorized},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrInvalidSession, http.StatusUnauthorized},

	{ledger.ErrAccountNotFound, http.StatusNotFound},
	{ledger.ErrTransactionNotFound, http.StatusNotFound},
	{ledger.ErrCategoryNotFound, http.StatusNotFound},

	{ledger.ErrCategoryExists, http.StatusConflict},
	{service.ErrEmailTaken, http.StatusConflict},

	{analytics.ErrInvalidRange, http.StatusBadRequest},
	{ledger.ErrInvalidTransactionType, http.StatusBadRequest},
	{ledger.ErrNegativeAmount, http.StatusBadRequest},
	{ledger.ErrSystemCategory, http.StatusBadRequest},
	{ledger.ErrInvalidCategory, http.StatusBadRequest},
	{ledger.ErrInvalidAccountType, http.StatusBadRequest},
	{ledger.ErrInvalidName, http.StatusBadRequest},
	{service.ErrInvalidEmail, http.StatusBadRequest},
	{service.ErrWeakPassword, http.StatusBadRequest},
	{service.ErrInvalidRecoveryToken, http.StatusBadRequest},
}

// Status returns the HTTP status for err, or 500 when err is not a known
// domain error.
func Status(err error) int {
	for _, e := range statusByError {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// From wraps err in a huma error. Known domain errors keep their own message;
// anything else is reported with failureMessage.
func From(err error, failureMessage string) error {
	status := Status(err)
	if status >= http.StatusInternalServerError {
		return huma.NewError(status, failureMessage, err)
	}
	return huma.NewError(status, err.Error())
}
