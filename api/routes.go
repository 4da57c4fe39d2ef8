package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/handlers/v1/account"
	"github.com/carson-networks/finance-server/internal/handlers/v1/category"
	"github.com/carson-networks/finance-server/internal/handlers/v1/dashboard"
	"github.com/carson-networks/finance-server/internal/handlers/v1/status"
	"github.com/carson-networks/finance-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/finance-server/internal/handlers/v1/user"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
	"github.com/carson-networks/finance-server/internal/storage"
)

const shutdownTimeout = 15 * time.Second

type registrar interface {
	Register(api huma.API)
}

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Storage *storage.Storage
	Service *service.Service
}

// Router builds the chi router with every v1 operation registered on it.
func (r *Rest) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)

	statusHandler := status.NewHandler(r.Storage)
	router.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	config := huma.DefaultConfig("Finance Server", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}
	api := humachi.New(router, config)
	api.UseMiddleware(logging.Middleware(r.Logger))
	api.UseMiddleware(auth.Middleware(r.Service.Auth))

	svc := r.Service
	handlers := []registrar{
		user.NewRegisterHandler(svc.Auth),
		user.NewLoginHandler(svc.Auth),
		user.NewLogoutHandler(svc.Auth),
		user.NewMeHandler(svc.Auth),
		user.NewRecoveryHandler(svc.Auth),

		account.NewCreateAccountHandler(svc.Account),
		account.NewListAccountsHandler(svc.Account),
		account.NewGetAccountHandler(svc.Account),
		account.NewUpdateAccountHandler(svc.Account),
		account.NewDeleteAccountHandler(svc.Account),

		transaction.NewCreateTransactionHandler(svc.Transaction),
		transaction.NewListTransactionsHandler(svc.Transaction),
		transaction.NewGetTransactionHandler(svc.Transaction),
		transaction.NewUpdateTransactionHandler(svc.Transaction),
		transaction.NewDeleteTransactionHandler(svc.Transaction),

		category.NewListCategoriesHandler(svc.Category),
		category.NewCreateCategoryHandler(svc.Category),
		category.NewRenameCategoryHandler(svc.Category),
		category.NewDeleteCategoryHandler(svc.Category),

		dashboard.NewMonthlyHandler(svc.Dashboard),
		dashboard.NewCategoriesHandler(svc.Dashboard),
		dashboard.NewStatsHandler(svc.Dashboard),
	}
	for _, h := range handlers {
		h.Register(api)
	}

	return router
}

// Serve listens until ctx is cancelled and then drains open requests.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Router(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		return err
	}
	return nil
}
