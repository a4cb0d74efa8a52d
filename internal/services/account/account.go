// Package account содержит бизнес-логику аккаунт-сервиса: регистрацию
// нового пользователя и вход по номеру телефона. Пароли и токены в модели
// отсутствуют — учётными данными выступает сам номер телефона.
package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wix-messenger/backend/internal/lib/apperr"
	"github.com/wix-messenger/backend/internal/models"
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// FindUserByPhoneOrUsername возвращает пользователя с совпадающим
	// телефоном или username, если такой есть.
	FindUserByPhoneOrUsername(ctx context.Context, phone, username string) (*models.User, bool, error)

	// InsertUser сохраняет нового пользователя и возвращает запись целиком.
	InsertUser(ctx context.Context, user models.User) (*models.User, error)

	// FindUserByPhone возвращает пользователя по номеру телефона, если он есть.
	FindUserByPhone(ctx context.Context, phone string) (*models.User, bool, error)
}

// Service отвечает за регистрацию и вход пользователей.
type Service struct {
	users UserRepository
	log   *slog.Logger
}

// New создает новый экземпляр Service.
func New(users UserRepository, log *slog.Logger) *Service {
	return &Service{
		users: users,
		log:   log,
	}
}

// Register создаёт нового пользователя. Коллизия по телефону ИЛИ username
// отклоняется до вставки. Пустой avatar заменяется значением по умолчанию.
func (s *Service) Register(ctx context.Context, phone, nickname, username, avatar string) (*models.User, error) {
	const op = "services.account.Register"

	_, exists, err := s.users.FindUserByPhoneOrUsername(ctx, phone, username)
	if err != nil {
		return nil, apperr.Server("failed to check user existence", fmt.Errorf("%s: %w", op, err))
	}
	if exists {
		return nil, apperr.Conflict("user with this phone or username already exists")
	}

	if avatar == "" {
		avatar = models.DefaultAvatar
	}
	user, err := s.users.InsertUser(ctx, models.User{
		Phone:    phone,
		Nickname: nickname,
		Username: username,
		Avatar:   avatar,
	})
	if err != nil {
		return nil, apperr.Server("failed to create user", fmt.Errorf("%s: %w", op, err))
	}

	s.log.Info("user registered",
		slog.Int64("user_id", user.ID),
		slog.String("username", user.Username))
	return user, nil
}

// Login возвращает пользователя по номеру телефона.
// Отсутствие пользователя — NotFound, хранилище не изменяется.
func (s *Service) Login(ctx context.Context, phone string) (*models.User, error) {
	const op = "services.account.Login"

	user, found, err := s.users.FindUserByPhone(ctx, phone)
	if err != nil {
		return nil, apperr.Server("failed to find user", fmt.Errorf("%s: %w", op, err))
	}
	if !found {
		return nil, apperr.NotFound("user not found")
	}
	return user, nil
}
