package domain

import (
	"fmt"

	"git.appkode.ru/pub/go/failure"
)

// AppError представляет доменную ошибку приложения. Message уходит клиенту,
// cause остаётся для логов и поля error в ответе.
type AppError struct {
	Code    failure.ErrorCode
	Message string
	cause   error
}

// Error реализует интерфейс error.
func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap возвращает обёрнутую ошибку для errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.cause
}

func (e *AppError) ErrorCode() failure.ErrorCode {
	return e.Code
}

func (e *AppError) Description() string {
	return e.Message
}

// NewError создаёт новую доменную ошибку.
func NewError(code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// WrapError оборачивает существующую ошибку с доменным контекстом.
func WrapError(err error, code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		cause:   err,
	}
}
