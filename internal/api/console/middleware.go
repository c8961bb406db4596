package console

import (
	"context"
	"errors"
	"io"
	"time"

	"go.uber.org/zap"
)

// HandlerFunc выполняет одну команду меню и возвращает сообщение для пользователя
type HandlerFunc func(ctx context.Context, p *Prompter) (string, error)

// Middleware оборачивает обработчик команды
type Middleware func(command string, next HandlerFunc) HandlerFunc

// Chain применяет middleware в порядке перечисления: первый оказывается внешним
func Chain(middlewares ...Middleware) Middleware {
	return func(command string, next HandlerFunc) HandlerFunc {
		for i := len(middlewares) - 1; i >= 0; i-- {
			next = middlewares[i](command, next)
		}
		return next
	}
}

// LoggingMiddleware логирует информацию о каждой команде:
// - начало выполнения (имя команды)
// - результат и затраченное время
// Ошибки пользовательского ввода пишутся на уровне Debug, остальные на уровне Error.
func LoggingMiddleware(logger *zap.Logger) Middleware {
	return func(command string, next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, p *Prompter) (string, error) {
			logger.Debug("incoming command", zap.String("command", command))

			start := time.Now()
			result, err := next(ctx, p)
			duration := time.Since(start)

			fields := []zap.Field{zap.String("command", command), zap.Duration("duration", duration)}
			switch {
			case err == nil:
				logger.Debug("command completed", fields...)
			case errors.Is(err, ErrCancelled), errors.Is(err, io.EOF):
				logger.Debug("command interrupted", append(fields, zap.Error(err))...)
			case isUserError(err):
				logger.Debug("command rejected", append(fields, zap.Error(err))...)
			default:
				logger.Error("command failed", append(fields, zap.Error(err))...)
			}

			return result, err
		}
	}
}
