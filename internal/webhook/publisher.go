package webhook

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/airborne_threat_detection/internal/models"
)

const (
	webhookQueueKey = "alert_webhook_events"
)

// AlertEvent - структура для данных вебхука о новом алерте
type AlertEvent struct {
	Alert     *models.Alert `json:"alert"`
	Source    string        `json:"source"` // "detection" или "api"
	Timestamp time.Time     `json:"timestamp"`
}

// Publisher - интерфейс для публикации вебхуков
type Publisher interface {
	Publish(ctx context.Context, event AlertEvent) error
}

// RedisPublisher - реализация Publisher, использующая Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event AlertEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH в голову списка, воркер забирает с хвоста через BRPOP
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
