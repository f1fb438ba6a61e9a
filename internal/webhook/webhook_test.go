package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/airborne_threat_detection/internal/config"
	"github.com/shenikar/airborne_threat_detection/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func newTestWorker(rdb *redis.Client, cfg *config.Config) (*Worker, *[]time.Duration) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	w := NewWorker(rdb, logger, cfg)
	var sleeps []time.Duration
	w.sleep = func(_ context.Context, d time.Duration) { sleeps = append(sleeps, d) }
	return w, &sleeps
}

func testEvent() AlertEvent {
	return AlertEvent{
		Alert: &models.Alert{
			ID:       uuid.New(),
			Message:  "UAV detected at Zone A",
			Severity: models.SeverityHigh,
			Camera:   "CAM-01",
		},
		Source:    "detection",
		Timestamp: time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC),
	}
}

func TestRedisPublisher_Publish(t *testing.T) {
	mr, rdb := newTestRedis(t)
	publisher := NewRedisPublisher(rdb)
	event := testEvent()

	require.NoError(t, publisher.Publish(context.Background(), event))

	items, err := mr.List(webhookQueueKey)
	require.NoError(t, err)
	require.Len(t, items, 1)

	var decoded AlertEvent
	require.NoError(t, json.Unmarshal([]byte(items[0]), &decoded))
	assert.Equal(t, event.Alert.ID, decoded.Alert.ID)
	assert.Equal(t, "detection", decoded.Source)
}

func TestRedisPublisher_RedisDown(t *testing.T) {
	mr, rdb := newTestRedis(t)
	mr.Close()

	err := NewRedisPublisher(rdb).Publish(context.Background(), testEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish webhook event")
}

func TestWorker_DeliversSignedPayload(t *testing.T) {
	var received []byte
	var signature string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received, _ = io.ReadAll(r.Body)
		signature = r.Header.Get(SignatureHeader)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	_, rdb := newTestRedis(t)
	cfg := &config.Config{
		WebhookURL:        srv.URL,
		WebhookSecret:     "s3cret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}
	worker, sleeps := newTestWorker(rdb, cfg)

	require.NoError(t, NewRedisPublisher(rdb).Publish(context.Background(), testEvent()))
	require.NoError(t, worker.processNext(context.Background(), time.Second))

	require.NotEmpty(t, received)
	assert.Equal(t, generateHMACSHA256(string(received), "s3cret"), signature)
	assert.Empty(t, *sleeps)
}

func TestWorker_RetriesWithBackoff(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	_, rdb := newTestRedis(t)
	cfg := &config.Config{
		WebhookURL:        srv.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  10 * time.Millisecond,
	}
	worker, sleeps := newTestWorker(rdb, cfg)

	event := testEvent()
	payload, _ := json.Marshal(event)
	worker.deliver(context.Background(), event, string(payload))

	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	assert.Equal(t, []time.Duration{10 * time.Millisecond, 20 * time.Millisecond}, *sleeps)
}

func TestWorker_GivesUpAfterMaxRetries(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, rdb := newTestRedis(t)
	cfg := &config.Config{
		WebhookURL:        srv.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 2,
		WebhookBaseDelay:  time.Millisecond,
	}
	worker, sleeps := newTestWorker(rdb, cfg)

	event := testEvent()
	payload, _ := json.Marshal(event)
	worker.deliver(context.Background(), event, string(payload))

	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	assert.Len(t, *sleeps, 1)
}

func TestWorker_SkipsWithoutURL(t *testing.T) {
	mr, rdb := newTestRedis(t)
	worker, _ := newTestWorker(rdb, &config.Config{WebhookTimeout: time.Second})

	require.NoError(t, NewRedisPublisher(rdb).Publish(context.Background(), testEvent()))
	require.NoError(t, worker.processNext(context.Background(), time.Second))

	// событие снято с очереди, даже если доставка пропущена
	assert.False(t, mr.Exists(webhookQueueKey))
}

func TestWorker_DropsMalformedEvent(t *testing.T) {
	mr, rdb := newTestRedis(t)
	worker, _ := newTestWorker(rdb, &config.Config{WebhookURL: "http://127.0.0.1:1", WebhookTimeout: time.Second})

	_, err := mr.Lpush(webhookQueueKey, "{not json")
	require.NoError(t, err)

	assert.NoError(t, worker.processNext(context.Background(), time.Second))
	assert.False(t, mr.Exists(webhookQueueKey))
}
