package httperr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/finance-server/internal/analytics"
	"github.com/carson-networks/finance-server/internal/ledger"
	"github.com/carson-networks/finance-server/internal/service"
)

func TestStatus(t *testing.T) {
	_, rangeErr := analytics.Months(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	cases := []struct {
		err  error
		want int
	}{
		{ledger.ErrUnauthenticated, http.StatusUnauthorized},
		{fmt.Errorf("lock: %w", ledger.ErrAccountNotFound), http.StatusNotFound},
		{service.ErrEmailTaken, http.StatusConflict},
		{rangeErr, http.StatusBadRequest},
		{fmt.Errorf("%w: %q", ledger.ErrInvalidCategory, "Boats"), http.StatusBadRequest},
		{context.DeadlineExceeded, http.StatusServiceUnavailable},
		{errors.New("connection refused"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Status(c.err), c.err.Error())
	}
}

func TestFrom_KnownErrorKeepsMessage(t *testing.T) {
	err := From(ledger.ErrAccountNotFound, "failed to load account")

	var statusErr huma.StatusError
	assert.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.GetStatus())
	assert.Contains(t, err.Error(), "account not found")
}

func TestFrom_UnknownErrorUsesFailureMessage(t *testing.T) {
	err := From(errors.New("pq: relation does not exist"), "failed to load account")

	var statusErr huma.StatusError
	assert.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.GetStatus())
	assert.Contains(t, err.Error(), "failed to load account")
}
