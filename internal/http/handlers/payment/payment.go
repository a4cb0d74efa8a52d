// Package payment реализует HTTP-обработчик платёжного сервиса.
// Один запрос — одна попытка платежа: запись о платеже и выдача
// премиума фиксируются атомарно.
package payment

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/wix-messenger/backend/internal/http/response"
	"github.com/wix-messenger/backend/internal/lib/apperr"
	"github.com/wix-messenger/backend/internal/lib/sl"
	"github.com/wix-messenger/backend/internal/models"
	paymentservice "github.com/wix-messenger/backend/internal/services/payment"
)

// successMessage — продуктовый текст успешного ответа.
const successMessage = "Платёж успешно обработан! Премиум активирован на 30 дней"

// Request — тело запроса на оплату премиум-подписки.
// Amount опционален: при отсутствии подставляется стандартная цена.
type Request struct {
	UserID        int64    `json:"user_id" validate:"required"`
	PaymentMethod string   `json:"payment_method" validate:"required,oneof=sbp card"`
	Amount        *float64 `json:"amount" validate:"omitempty,gt=0"`
}

// Service описывает интерфейс бизнес-логики платежей.
type Service interface {
	ProcessPayment(ctx context.Context, userID int64, method string, amount float64) (*paymentservice.Receipt, error)
}

// Handler обрабатывает HTTP-запросы платёжного сервиса.
type Handler struct {
	log      *slog.Logger        // Логгер для записи операций и ошибок
	payments Service             // Бизнес-логика обработки платежей
	validate *validator.Validate // Валидатор структуры входящих данных
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, payments Service) *Handler {
	return &Handler{
		log:      log,
		payments: payments,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Оплата премиум-подписки
// @Description Записывает платёж со статусом completed и включает премиум пользователю на 30 дней.
// @Tags Payment
// @Accept  json
// @Produce  json
// @Param request body Request true "Данные платежа"
// @Success 200 {object} response.PaymentResponse "Платёж обработан"
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 405 {object} response.ErrorResponse "Метод не поддерживается"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router / [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	switch r.Method {
	case http.MethodPost:
	case http.MethodOptions:
		w.WriteHeader(http.StatusOK)
		return
	default:
		log.Error("method not allowed", slog.String("method", r.Method))
		w.WriteHeader(http.StatusMethodNotAllowed)
		render.JSON(w, r, response.Error("method not allowed"))
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Int64("user_id", req.UserID))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	amount := models.DefaultPaymentAmount
	if req.Amount != nil {
		amount = *req.Amount
	}

	receipt, err := h.payments.ProcessPayment(r.Context(), req.UserID, req.PaymentMethod, amount)
	if err != nil {
		log.Error("payment processing failed", sl.Err(err))
		w.WriteHeader(apperr.HTTPStatus(err))
		render.JSON(w, r, response.Error(err.Error()))
		return
	}

	log.Info("payment success", slog.String("transaction_id", receipt.TransactionID))
	render.JSON(w, r, response.PaymentResponse{
		Success:          true,
		PaymentID:        receipt.PaymentID,
		TransactionID:    receipt.TransactionID,
		Status:           receipt.Status,
		PremiumExpiresAt: receipt.PremiumExpiresAt.Format(time.RFC3339),
		Message:          successMessage,
	})
}
