// Package storefront собирает приложение демо-магазина: маршруты,
// middleware и жизненный цикл HTTP-сервера.
package storefront

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/demo-storefront/internal/catalog"
	"github.com/magabrotheeeer/demo-storefront/internal/config"
	"github.com/magabrotheeeer/demo-storefront/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/demo-storefront/internal/http/handlers/auth/register"
	checkouthandler "github.com/magabrotheeeer/demo-storefront/internal/http/handlers/checkout"
	"github.com/magabrotheeeer/demo-storefront/internal/http/handlers/health"
	productlist "github.com/magabrotheeeer/demo-storefront/internal/http/handlers/product/list"
	supportcreate "github.com/magabrotheeeer/demo-storefront/internal/http/handlers/support/create"
	supportlist "github.com/magabrotheeeer/demo-storefront/internal/http/handlers/support/list"
	"github.com/magabrotheeeer/demo-storefront/internal/http/middlewarectx"

	authservice "github.com/magabrotheeeer/demo-storefront/internal/services/auth"
	checkoutservice "github.com/magabrotheeeer/demo-storefront/internal/services/checkout"
	supportservice "github.com/magabrotheeeer/demo-storefront/internal/services/support"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, cfg *config.Config, logger *slog.Logger, products *catalog.Catalog, authService *authservice.Service, checkoutService *checkoutservice.Service, supportService *supportservice.Service) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		middlewarectx.MetricsMiddleware(),
		middlewarectx.DelayMiddleware(config.RequestDelay),
	)
	if cfg.RateLimitRPS > 0 {
		r.Use(middlewarectx.RateLimitMiddleware(logger, cfg.RateLimitRPS, cfg.RateLimitBurst))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", health.New(logger).ServeHTTP)
		r.Post("/auth/register", register.New(logger, authService).ServeHTTP)
		r.Post("/auth/login", login.New(logger, authService).ServeHTTP)
		r.Get("/products", productlist.New(logger, products).ServeHTTP)
		// Токен сессии приходит в теле либо в query: проверка выполняется
		// внутри сервисов, отдельного auth-middleware здесь нет.
		r.Post("/checkout", checkouthandler.New(logger, checkoutService).ServeHTTP)
		r.Post("/support", supportcreate.New(logger, supportService).ServeHTTP)
		r.Get("/support", supportlist.New(logger, supportService).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
