package storefront

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/demo-storefront/internal/catalog"
	"github.com/magabrotheeeer/demo-storefront/internal/config"
	"github.com/magabrotheeeer/demo-storefront/internal/lib/chaos"
	authservice "github.com/magabrotheeeer/demo-storefront/internal/services/auth"
	checkoutservice "github.com/magabrotheeeer/demo-storefront/internal/services/checkout"
	supportservice "github.com/magabrotheeeer/demo-storefront/internal/services/support"
	"github.com/magabrotheeeer/demo-storefront/internal/storage/memory"
)

// App — собранное приложение с HTTP-сервером.
type App struct {
	server *http.Server
	logger *slog.Logger
}

// New собирает приложение: хранилища в памяти, сервисы, маршруты и
// HTTP-сервер. Демо-аккаунт заводится сразу, чтобы по свежему
// процессу можно было войти без регистрации.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	users := memory.NewUserStore()
	sessions := memory.NewSessionStore()
	tickets := memory.NewTicketStore()

	authService := authservice.New(users, sessions, logger)
	authService.SeedDemoUser(ctx)

	injector := chaos.New(config.CheckoutFailRate)
	checkoutService := checkoutservice.New(authService, injector, logger)
	supportService := supportservice.New(authService, tickets, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, cfg, logger, catalog.Default(), authService, checkoutService, supportService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его по отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		return a.server.Shutdown(timeoutCtx)
	}
}
