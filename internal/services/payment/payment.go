// Package payment содержит бизнес-логику платёжного сервиса.
// Платёж фиксируется как завершённый без обращения к платёжному шлюзу,
// после чего пользователю включается премиум на 30 дней.
package payment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/wix-messenger/backend/internal/lib/apperr"
	"github.com/wix-messenger/backend/internal/lib/txid"
	"github.com/wix-messenger/backend/internal/models"
)

// PaymentRepository описывает контракт для атомарной записи платежа
// с одновременной выдачей премиум-статуса.
type PaymentRepository interface {
	CreatePaymentWithPremium(ctx context.Context, payment models.Payment, expiresAt time.Time) (int64, error)
}

// Receipt — результат успешно обработанного платежа.
type Receipt struct {
	PaymentID        int64
	TransactionID    string
	Status           string
	PremiumExpiresAt time.Time
}

// Service отвечает за обработку платежей за премиум-подписку.
type Service struct {
	payments PaymentRepository
	log      *slog.Logger
	now      func() time.Time
}

// New создает новый экземпляр Service.
func New(payments PaymentRepository, log *slog.Logger) *Service {
	return &Service{
		payments: payments,
		log:      log,
		now:      time.Now,
	}
}

// ProcessPayment записывает платёж со статусом completed и включает премиум
// до now+30 дней. Дата окончания перезаписывается, а не продлевается.
// Существование пользователя не проверяется.
func (s *Service) ProcessPayment(ctx context.Context, userID int64, method string, amount float64) (*Receipt, error) {
	const op = "services.payment.ProcessPayment"

	transactionID, err := txid.New()
	if err != nil {
		return nil, apperr.Server("failed to generate transaction id", fmt.Errorf("%s: %w", op, err))
	}

	expiresAt := s.now().UTC().Add(models.PremiumDuration)
	paymentID, err := s.payments.CreatePaymentWithPremium(ctx, models.Payment{
		UserID:        userID,
		Amount:        amount,
		PaymentMethod: method,
		Status:        models.PaymentStatusCompleted,
		TransactionID: transactionID,
	}, expiresAt)
	if err != nil {
		return nil, apperr.Server("failed to process payment", fmt.Errorf("%s: %w", op, err))
	}

	s.log.Info("payment processed",
		slog.Int64("payment_id", paymentID),
		slog.String("transaction_id", transactionID),
		slog.Int64("user_id", userID))

	return &Receipt{
		PaymentID:        paymentID,
		TransactionID:    transactionID,
		Status:           models.PaymentStatusCompleted,
		PremiumExpiresAt: expiresAt,
	}, nil
}
