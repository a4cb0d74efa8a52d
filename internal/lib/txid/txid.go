// Package txid генерирует идентификаторы транзакций для платежей.
// Идентификатор человекочитаемый: префикс продукта плюс случайный
// hex-суффикс, не зависит от внешнего платёжного провайдера.
package txid

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// Prefix — тег продукта в начале каждого идентификатора транзакции.
const Prefix = "WIX-"

// размер случайного суффикса в байтах, даёт 16 hex-символов
const suffixBytes = 8

// New возвращает новый идентификатор вида WIX-9F86D081884C7D65.
func New() (string, error) {
	buf := make([]byte, suffixBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("txid.New: %w", err)
	}
	return Prefix + strings.ToUpper(hex.EncodeToString(buf)), nil
}
