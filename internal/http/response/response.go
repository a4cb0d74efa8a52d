// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON‑ответов HTTP‑обработчиков. Формат зафиксирован
// контрактом с фронтендом мессенджера: успешные ответы несут "success": true,
// ошибки — единственный ключ "error" с человекочитаемым текстом.
package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"

	"github.com/wix-messenger/backend/internal/models"
)

// ErrorResponse описывает тело ответа с ошибкой.
// Ключ "error" обязателен для фронтенда и не меняется.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid request body"`
}

// UserResponse описывает успешный ответ аккаунт-сервиса.
type UserResponse struct {
	Success bool         `json:"success" example:"true"`
	User    *models.User `json:"user"`
}

// PaymentResponse описывает успешный ответ платёжного сервиса.
type PaymentResponse struct {
	Success          bool   `json:"success" example:"true"`
	PaymentID        int64  `json:"payment_id"`
	TransactionID    string `json:"transaction_id"`
	Status           string `json:"status" example:"completed"`
	PremiumExpiresAt string `json:"premium_expires_at"` // RFC 3339
	Message          string `json:"message"`
}

// Error возвращает тело ответа с переданным сообщением об ошибке.
func Error(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

// OKUser возвращает успешный ответ с данными пользователя.
func OKUser(user *models.User) UserResponse {
	return UserResponse{Success: true, User: user}
}

// ValidationError формирует текст ошибки на основе нарушений валидации.
// Каждое нарушение формируется в человеко‑читаемый текст, объединённый через запятую.
func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "oneof":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be one of: %s", err.Field(), err.Param()))
		case "gt":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be greater than %s", err.Field(), err.Param()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return ErrorResponse{Error: strings.Join(errsMsgs, ", ")}
}
