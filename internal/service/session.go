package service

import (
	"context"

	"github.com/shenikar/emergency_callout_system/internal/models"
)

// SessionStore - оракул аутентификации: сопоставляет Bearer-токен сессии
// добровольца, выданной внешним сервисом идентификации. Неизвестный
// токен - это (nil, nil), не ошибка.
type SessionStore interface {
	Resolve(ctx context.Context, token string) (*models.Session, error)
}
