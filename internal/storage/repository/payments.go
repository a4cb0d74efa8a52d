package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/wix-messenger/backend/internal/models"
)

// InsertPayment сохраняет запись о платеже и возвращает её ID.
// Принимает Querier, чтобы вставка могла выполняться внутри транзакции.
func (s *Storage) InsertPayment(ctx context.Context, q Querier, payment models.Payment) (int64, error) {
	const op = "storage.InsertPayment"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO payments (user_id, amount, payment_method, status, transaction_id)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	var newID int64
	if err := q.QueryRowContext(ctx, query,
		payment.UserID, payment.Amount, payment.PaymentMethod,
		payment.Status, payment.TransactionID).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// UpdateUserPremium включает премиум-статус пользователя и перезаписывает
// дату его окончания. Существование пользователя не проверяется: обновление
// нуля строк не считается ошибкой.
func (s *Storage) UpdateUserPremium(ctx context.Context, q Querier, userID int64, expiresAt time.Time) error {
	const op = "storage.UpdateUserPremium"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET is_premium = TRUE,
			      premium_expires_at = $1
			  WHERE id = $2`
	if _, err := q.ExecContext(ctx, query, expiresAt, userID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// CreatePaymentWithPremium атомарно сохраняет платёж и выдаёт премиум:
// обе записи фиксируются одной транзакцией, либо не фиксируется ни одна.
func (s *Storage) CreatePaymentWithPremium(ctx context.Context, payment models.Payment, expiresAt time.Time) (int64, error) {
	const op = "storage.CreatePaymentWithPremium"

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	paymentID, err := s.InsertPayment(ctx, tx, payment)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if err = s.UpdateUserPremium(ctx, tx, payment.UserID, expiresAt); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return paymentID, nil
}
