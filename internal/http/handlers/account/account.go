// Package account реализует HTTP-обработчик аккаунт-сервиса.
//
// Обработчик принимает POST-запрос с полем action в теле и выполняет
// регистрацию либо вход по номеру телефона. Неизвестное действие и
// неполные данные отклоняются со статусом 400, коллизии уникальных
// полей — 409, отсутствующий пользователь при входе — 404.
package account

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/wix-messenger/backend/internal/http/response"
	"github.com/wix-messenger/backend/internal/lib/apperr"
	"github.com/wix-messenger/backend/internal/lib/sl"
	"github.com/wix-messenger/backend/internal/models"
)

// Action — закрытый набор действий аккаунт-сервиса.
type Action string

const (
	// ActionRegister — регистрация нового пользователя.
	ActionRegister Action = "register"
	// ActionLogin — вход по номеру телефона.
	ActionLogin Action = "login"
)

// Request — общая структура тела запроса. Набор обязательных полей
// зависит от действия и проверяется после диспетчеризации.
type Request struct {
	Action   string `json:"action"`
	Phone    string `json:"phone"`
	Nickname string `json:"nickname"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

type registerRequest struct {
	Phone    string `validate:"required"`
	Nickname string `validate:"required"`
	Username string `validate:"required"`
}

type loginRequest struct {
	Phone string `validate:"required"`
}

// Service описывает интерфейс бизнес-логики аккаунтов.
type Service interface {
	Register(ctx context.Context, phone, nickname, username, avatar string) (*models.User, error)
	Login(ctx context.Context, phone string) (*models.User, error)
}

// Handler обрабатывает HTTP-запросы аккаунт-сервиса.
type Handler struct {
	log      *slog.Logger        // Логгер для записи операций и ошибок
	accounts Service             // Бизнес-логика регистрации и входа
	validate *validator.Validate // Валидатор для проверки входных данных
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, accounts Service) *Handler {
	return &Handler{
		log:      log,
		accounts: accounts,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Регистрация и вход пользователя
// @Description Диспетчеризует по полю action: register создаёт пользователя, login возвращает его по номеру телефона.
// @Tags Account
// @Accept  json
// @Produce  json
// @Param request body Request true "Действие и данные пользователя"
// @Success 200 {object} response.UserResponse "Успешный вход"
// @Success 201 {object} response.UserResponse "Пользователь создан"
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 405 {object} response.ErrorResponse "Метод не поддерживается"
// @Failure 409 {object} response.ErrorResponse "Телефон или username заняты"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router / [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.account"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	switch r.Method {
	case http.MethodPost:
	case http.MethodOptions:
		// preflight закрывает CORS middleware; на случай прямого
		// вызова обработчика отвечаем так же
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
	log.Info("request body decoded", slog.String("action", req.Action))

	switch Action(req.Action) {
	case ActionRegister:
		h.register(w, r, log, req)
	case ActionLogin:
		h.login(w, r, log, req)
	default:
		log.Error("unknown action", slog.String("action", req.Action))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("action must be register or login"))
	}
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request, log *slog.Logger, req Request) {
	if err := h.validate.Struct(registerRequest{
		Phone:    req.Phone,
		Nickname: req.Nickname,
		Username: req.Username,
	}); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	user, err := h.accounts.Register(r.Context(), req.Phone, req.Nickname, req.Username, req.Avatar)
	if err != nil {
		log.Error("registration failed", sl.Err(err))
		w.WriteHeader(apperr.HTTPStatus(err))
		render.JSON(w, r, response.Error(err.Error()))
		return
	}

	log.Info("registration success", slog.String("username", user.Username))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKUser(user))
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request, log *slog.Logger, req Request) {
	if err := h.validate.Struct(loginRequest{Phone: req.Phone}); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	user, err := h.accounts.Login(r.Context(), req.Phone)
	if err != nil {
		log.Error("login failed", sl.Err(err))
		w.WriteHeader(apperr.HTTPStatus(err))
		render.JSON(w, r, response.Error(err.Error()))
		return
	}

	log.Info("login success", slog.String("username", user.Username))
	render.JSON(w, r, response.OKUser(user))
}
