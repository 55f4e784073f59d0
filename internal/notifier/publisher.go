package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	calloutQueueKey = "callout_events"
)

// CallOutEvent - оповещение участников группы о новом вызове
type CallOutEvent struct {
	IncidentID    uuid.UUID   `json:"incident_id"`
	Title         string      `json:"title"`
	Location      string      `json:"location"`
	EmergencyType string      `json:"emergency_type"`
	Severity      string      `json:"severity"`
	GroupID       uuid.UUID   `json:"group_id"`
	GroupName     string      `json:"group_name,omitempty"`
	MemberIDs     []uuid.UUID `json:"member_ids"`
	CreatedAt     time.Time   `json:"created_at"`
}

// CallOutPublisher - интерфейс для постановки оповещений в исходящую очередь
type CallOutPublisher interface {
	Publish(ctx context.Context, event CallOutEvent) error
}

// RedisCallOutPublisher - реализация CallOutPublisher, использующая Redis
type RedisCallOutPublisher struct {
	redisClient *redis.Client
}

// NewRedisCallOutPublisher создает новый RedisCallOutPublisher
func NewRedisCallOutPublisher(client *redis.Client) *RedisCallOutPublisher {
	return &RedisCallOutPublisher{
		redisClient: client,
	}
}

// Publish публикует событие оповещения в очередь Redis
func (p *RedisCallOutPublisher) Publish(ctx context.Context, event CallOutEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal call-out event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, calloutQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish call-out event to Redis: %w", err)
	}
	return nil
}
