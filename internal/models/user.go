// Package models содержит доменные структуры мессенджера:
// пользователя с премиум-статусом и запись о платеже.
package models

import "time"

// DefaultAvatar — аватар по умолчанию, если при регистрации он не указан.
const DefaultAvatar = "👤"

// User представляет зарегистрированного пользователя мессенджера.
// Телефон выступает учётными данными для входа, username уникален.
type User struct {
	ID               int64      `json:"id"`
	Phone            string     `json:"phone"`
	Nickname         string     `json:"nickname"`
	Username         string     `json:"username"`
	Avatar           string     `json:"avatar"`
	IsPremium        bool       `json:"is_premium"`
	PremiumExpiresAt *time.Time `json:"-"` // nil — премиум не оформлялся
	CreatedAt        time.Time  `json:"-"`
}
