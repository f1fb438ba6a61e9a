package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/airborne_threat_detection/internal/config"
	"github.com/shenikar/airborne_threat_detection/internal/metrics"
	"github.com/sirupsen/logrus"
)

// SignatureHeader - заголовок с HMAC-SHA256 подписью тела
const SignatureHeader = "X-Webhook-Signature"

// pollTimeout ограничивает BRPOP, чтобы воркер замечал отмену контекста
const pollTimeout = 5 * time.Second

// Worker - структура для обработки и отправки вебхуков
type Worker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
	// sleep подменяется в тестах
	sleep func(ctx context.Context, d time.Duration)
}

// NewWorker создает новый Worker
func NewWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
		sleep: sleepCtx,
	}
}

// Start запускает горутину для обработки очереди вебхуков
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting webhook worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping webhook worker.")
				return
			default:
				if err := w.processNext(ctx, pollTimeout); err != nil && !errors.Is(err, context.Canceled) {
					w.logger.WithError(err).Error("Failed to pop webhook event from Redis")
					w.sleep(ctx, w.cfg.WebhookTimeout) // Ждем перед повторной попыткой
				}
			}
		}
	}()
}

// processNext забирает одно событие из очереди и доставляет его.
// timeout 0 означает бесконечное ожидание.
func (w *Worker) processNext(ctx context.Context, timeout time.Duration) error {
	result, err := w.redisClient.BRPop(ctx, timeout, webhookQueueKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return err
	}

	// result[0] - ключ, result[1] - значение
	payload := result[1]
	var event AlertEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		w.logger.WithError(err).Error("Failed to unmarshal webhook event from Redis")
		return nil
	}

	w.deliver(ctx, event, payload)
	return nil
}

func (w *Worker) deliver(ctx context.Context, event AlertEvent, rawPayload string) {
	log := w.logger.WithField("event_source", event.Source)
	if event.Alert != nil {
		log = log.WithField("alert_id", event.Alert.ID).WithField("severity", event.Alert.Severity)
	}
	log.Debug("Processing webhook event...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping webhook delivery.")
		metrics.RecordWebhookDelivery("skipped")
		return
	}

	maxRetries := w.cfg.WebhookMaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	delay := w.cfg.WebhookBaseDelay

	for i := 0; i < maxRetries; i++ {
		err := w.send(ctx, rawPayload)
		if err == nil {
			log.Info("Webhook delivered successfully.")
			metrics.RecordWebhookDelivery("delivered")
			return
		}
		if ctx.Err() != nil {
			break
		}

		retriesLeft := maxRetries - 1 - i
		log.WithError(err).Warnf("Webhook delivery failed. Retrying in %v. Retries left: %d", delay, retriesLeft)
		if retriesLeft > 0 {
			w.sleep(ctx, delay)
			delay *= 2 // Экспоненциальная задержка
		}
	}

	metrics.RecordWebhookDelivery("failed")
	log.Errorf("Failed to deliver webhook for event after %d attempts.", maxRetries)
}

func (w *Worker) send(ctx context.Context, rawPayload string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Добавляем HMAC подпись, если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.Header.Set(SignatureHeader, generateHMACSHA256(rawPayload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook responded with status code %d", resp.StatusCode)
	}
	return nil
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}

func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
