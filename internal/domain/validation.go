package domain

import "fmt"

// ValidationError ошибка валидации одного поля конфигурации
// Ошибки собираются списком, чтобы вызывающая сторона могла показать
// все проблемы сразу, а не по одной
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewValidationError создает ошибку валидации поля
func NewValidationError(field, message string) ValidationError {
	return ValidationError{Field: field, Message: message}
}

// String возвращает человекочитаемое представление
func (e ValidationError) String() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
