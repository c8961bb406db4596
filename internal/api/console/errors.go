package console

import (
	"errors"
	"strings"

	"assistant-bot/internal/model"
	"assistant-bot/internal/repository/memory"
)

// isUserError сообщает, вызвана ли ошибка вводом пользователя, а не сбоем программы
func isUserError(err error) bool {
	return errors.Is(err, model.ErrValidation) ||
		errors.Is(err, model.ErrNotFound) ||
		errors.Is(err, memory.ErrAlreadyExists)
}

// userMessage конвертирует внутренние ошибки в сообщения для пользователя
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, ErrCancelled) {
		return "Command has been canceled"
	}

	var notFound *model.NotFoundError
	if errors.As(err, &notFound) {
		entity := notFound.Entity
		if entity != "" {
			entity = strings.ToUpper(entity[:1]) + entity[1:]
		}
		return entity + " " + notFound.Key + " not found."
	}

	var invalid *model.ValidationError
	if errors.As(err, &invalid) {
		msg := "Invalid " + invalid.Kind.String()
		if invalid.Message != "" {
			msg += ": " + invalid.Message
		}
		return msg + ". Try again."
	}

	if errors.Is(err, memory.ErrAlreadyExists) {
		return "Already exists: " + err.Error()
	}

	return "Error: " + err.Error()
}
