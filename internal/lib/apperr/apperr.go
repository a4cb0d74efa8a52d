// Package apperr определяет классификацию ошибок уровня приложения.
// Каждая ошибка несёт вид (Kind), который на границе HTTP-обработчика
// однозначно отображается в статус-код. Бизнес-логика оперирует только
// видами ошибок и не знает о HTTP.
package apperr

import (
	"errors"
	"net/http"
)

// Kind — вид ошибки приложения.
type Kind int

const (
	// KindServer — непредвиденная ошибка (БД недоступна и т.п.).
	KindServer Kind = iota
	// KindValidation — некорректные или неполные входные данные.
	KindValidation
	// KindNotFound — запрошенная запись не найдена.
	KindNotFound
	// KindConflict — нарушение уникальности (телефон или username заняты).
	KindConflict
	// KindMethodNotAllowed — неподдерживаемый HTTP-метод.
	KindMethodNotAllowed
)

// Error — ошибка приложения с видом и человекочитаемым сообщением.
type Error struct {
	Kind Kind
	Msg  string

	cause error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Validation возвращает ошибку некорректных входных данных.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Msg: msg}
}

// NotFound возвращает ошибку отсутствующей записи.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

// Conflict возвращает ошибку нарушения уникальности.
func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Msg: msg}
}

// MethodNotAllowed возвращает ошибку неподдерживаемого метода.
func MethodNotAllowed(msg string) *Error {
	return &Error{Kind: KindMethodNotAllowed, Msg: msg}
}

// Server оборачивает непредвиденную ошибку, сохраняя причину для логов.
func Server(msg string, cause error) *Error {
	return &Error{Kind: KindServer, Msg: msg, cause: cause}
}

// KindOf извлекает вид ошибки. Любая ошибка без явного вида
// считается серверной.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindServer
}

// HTTPStatus отображает вид ошибки в статус-код ответа.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindMethodNotAllowed:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}
