package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wix-messenger/backend/internal/models"
)

const userColumns = `id, phone, nickname, username, avatar, is_premium, premium_expires_at, created_at`

func scanUser(row *sql.Row) (*models.User, error) {
	u := &models.User{}
	var premiumExpiresAt sql.NullTime
	if err := row.Scan(&u.ID, &u.Phone, &u.Nickname, &u.Username, &u.Avatar,
		&u.IsPremium, &premiumExpiresAt, &u.CreatedAt); err != nil {
		return nil, err
	}
	if premiumExpiresAt.Valid {
		u.PremiumExpiresAt = &premiumExpiresAt.Time
	}
	return u, nil
}

// FindUserByPhoneOrUsername возвращает пользователя, у которого совпадает
// телефон или username. Используется для проверки уникальности при регистрации.
func (s *Storage) FindUserByPhoneOrUsername(ctx context.Context, phone, username string) (*models.User, bool, error) {
	const op = "storage.FindUserByPhoneOrUsername"
	select {
	case <-ctx.Done():
		return nil, false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + userColumns + `
			  FROM users
			  WHERE phone = $1 OR username = $2
			  LIMIT 1`
	u, err := scanUser(s.DB.QueryRowContext(ctx, query, phone, username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}
	return u, true, nil
}

// InsertUser сохраняет нового пользователя и возвращает запись целиком,
// включая сгенерированный ID и значения по умолчанию.
func (s *Storage) InsertUser(ctx context.Context, user models.User) (*models.User, error) {
	const op = "storage.InsertUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO users (phone, nickname, username, avatar)
			  VALUES ($1, $2, $3, $4)
			  RETURNING ` + userColumns
	u, err := scanUser(s.DB.QueryRowContext(ctx, query,
		user.Phone, user.Nickname, user.Username, user.Avatar))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// FindUserByPhone возвращает пользователя по номеру телефона.
func (s *Storage) FindUserByPhone(ctx context.Context, phone string) (*models.User, bool, error) {
	const op = "storage.FindUserByPhone"
	select {
	case <-ctx.Done():
		return nil, false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + userColumns + `
			  FROM users
			  WHERE phone = $1`
	u, err := scanUser(s.DB.QueryRowContext(ctx, query, phone))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}
	return u, true, nil
}
