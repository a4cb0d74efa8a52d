package payment

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	paymenthandler "github.com/wix-messenger/backend/internal/http/handlers/payment"
	"github.com/wix-messenger/backend/internal/http/middlewarectx"
)

// RegisterRoutes регистрирует все маршруты платёжного сервиса.
func RegisterRoutes(r chi.Router, logger *slog.Logger, paymentService paymenthandler.Service) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middlewarectx.CORS("POST, OPTIONS"),
		middlewarectx.Metrics("payment"),
	)

	r.HandleFunc("/", paymenthandler.New(logger, paymentService).ServeHTTP)

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
