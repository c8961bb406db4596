package model

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation базовая ошибка для всех ошибок валидации полей
	ErrValidation = errors.New("validation failed")

	// ErrNotFound возвращается, когда запись, телефон, email или тег не найдены
	ErrNotFound = errors.New("not found")
)

// ValidationError описывает некорректный ввод для конкретного типа поля
type ValidationError struct {
	Kind    Kind
	Message string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Message == "" {
		return fmt.Sprintf("invalid %s", e.Kind)
	}
	return fmt.Sprintf("invalid %s: %s", e.Kind, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NotFoundError описывает ссылку на несуществующий ключ
type NotFoundError struct {
	Entity string // contact, note, phone, email, tag
	Key    string
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s %q not found", e.Entity, e.Key)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

func invalidf(kind Kind, format string, args ...any) error {
	return &ValidationError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NotFound создает ошибку NotFoundError
func NotFound(entity, key string) error {
	return &NotFoundError{Entity: entity, Key: key}
}
