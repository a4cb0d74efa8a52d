// Package sl содержит помощники для структурированного логирования
// сервисов мессенджера через slog.
package sl

import "log/slog"

// Err возвращает slog.Attr с ключом "error" и текстом ошибки,
// чтобы ошибки во всех сервисах логировались единообразно.
//
// Пример:
//
//	log.Error("failed to process payment", sl.Err(err))
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
