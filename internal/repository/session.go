package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/emergency_callout_system/internal/models"
	"github.com/shenikar/emergency_callout_system/internal/service"
)

// SessionRepository читает сессии добровольцев из Redis. Сессии пишет
// внешний сервис идентификации; здесь токен только разрешается в личность.
type SessionRepository struct {
	redisClient *redis.Client
}

func NewSessionRepository(redisClient *redis.Client) service.SessionStore {
	return &SessionRepository{
		redisClient: redisClient,
	}
}

// Resolve возвращает сессию по Bearer-токену, (nil, nil) если токен неизвестен
func (r *SessionRepository) Resolve(ctx context.Context, token string) (*models.Session, error) {
	key := fmt.Sprintf("session:%s", token)
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session from Redis: %w", err)
	}

	session := &models.Session{}
	if err := json.Unmarshal(val, session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return session, nil
}
