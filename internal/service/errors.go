package service

import "errors"

// Закрытый набор видов ошибок ядра. Каждая операция сервиса возвращает
// либо nil, либо ошибку, оборачивающую один из этих сентинелов; хэндлер
// сопоставляет их HTTP-кодам через errors.Is. Всё остальное - внутренняя
// ошибка хранилища.
var (
	ErrValidation      = errors.New("validation error")
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
)
