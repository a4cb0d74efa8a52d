package models

import "time"

// Способы оплаты, принимаемые платёжным обработчиком.
const (
	PaymentMethodSBP  = "sbp"
	PaymentMethodCard = "card"
)

// PaymentStatusCompleted — единственный статус платежа в текущей модели:
// платёж фиксируется как завершённый без обращения к платёжному шлюзу.
const PaymentStatusCompleted = "completed"

// DefaultPaymentAmount — цена премиум-подписки, если сумма не передана.
const DefaultPaymentAmount float64 = 299

// PremiumDuration — срок действия премиума, выдаваемого одним платежом.
const PremiumDuration = 30 * 24 * time.Hour

// Payment представляет неизменяемую запись о платеже.
// UserID не проверяется на существование перед вставкой.
type Payment struct {
	ID            int64
	UserID        int64
	Amount        float64
	PaymentMethod string
	Status        string
	TransactionID string
	CreatedAt     time.Time
}
