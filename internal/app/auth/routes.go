package auth

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/wix-messenger/backend/internal/http/handlers/account"
	"github.com/wix-messenger/backend/internal/http/middlewarectx"
)

// RegisterRoutes регистрирует все маршруты аккаунт-сервиса.
func RegisterRoutes(r chi.Router, logger *slog.Logger, accountService account.Service) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middlewarectx.CORS("POST, GET, OPTIONS"),
		middlewarectx.Metrics("auth"),
	)

	r.HandleFunc("/", account.New(logger, accountService).ServeHTTP)

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
