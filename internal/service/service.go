package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-server/internal/analytics"
	"github.com/carson-networks/finance-server/internal/config"
	"github.com/carson-networks/finance-server/internal/notify"
	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
)

// actionProcessor runs a write action in its own database transaction.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Auth        *AuthService
	Account     *AccountService
	Category    *CategoryService
	Transaction *TransactionService
	Dashboard   *DashboardService
}

// NewService creates a new Service with the given storage. Writes are queued
// on processor.
func NewService(store *storage.Storage, processor actionProcessor, notifier notify.RecoveryNotifier, env *config.Config, logger logrus.FieldLogger) *Service {
	account := NewAccountService(store, processor)
	category := NewCategoryService(store, processor)
	engine := analytics.NewEngine(NewTransactionRepository(store), logger.WithField("component", "analytics"), time.Now)

	return &Service{
		Auth: NewAuthService(store, processor, notifier, AuthOptions{
			SessionTTL:       env.SessionTTL,
			RecoveryTokenTTL: env.RecoveryTokenTTL,
			BcryptCost:       env.BcryptCost,
		}, logger.WithField("component", "auth")),
		Account:     account,
		Category:    category,
		Transaction: NewTransactionService(store, processor, category),
		Dashboard:   NewDashboardService(engine, account),
	}
}
