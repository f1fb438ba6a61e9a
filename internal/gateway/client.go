// Package gateway вызывает внешний сервис распознавания изображений.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shenikar/airborne_threat_detection/internal/metrics"
	"github.com/shenikar/airborne_threat_detection/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	// maxErrorBody - сколько байт тела ошибки попадает в сообщение
	maxErrorBody = 512
	// maxResponseBody - предел тела ответа сервиса распознавания
	maxResponseBody = 1 << 20
)

// Client - клиент сервиса распознавания. Делает ровно одну попытку на вызов,
// без повторов и задержек.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient создает клиента с адресом endpoint и таймаутом запроса
func NewClient(endpoint string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

type detectRequest struct {
	Image string `json:"image"`
}

// wire-формат ответа; указатели отличают отсутствующее поле от нулевого значения
type detectResponse struct {
	ThreatType    *string  `json:"threatType"`
	Confidence    *float64 `json:"confidence"`
	BoxedImageURL *string  `json:"boxedImageUrl"`
}

// Detect отправляет изображение как есть и возвращает нормализованный результат.
// Любая сетевая ошибка, не-2xx ответ или некорректное тело дают ошибку,
// совместимую с models.ErrGatewayUnavailable.
func (c *Client) Detect(ctx context.Context, imageData string) (*models.DetectionResult, error) {
	if imageData == "" {
		return nil, &models.ValidationError{Entity: "detection request", Fields: []string{"ImageData failed on 'required'"}}
	}

	log := c.logger.WithFields(logrus.Fields{
		"component": "gateway",
		"endpoint":  c.endpoint,
	})

	start := time.Now()
	result, err := c.detect(ctx, imageData)
	metrics.ObserveGatewayLatency(time.Since(start))
	if err != nil {
		metrics.RecordGatewayRequest("failure")
		log.WithError(err).Error("Detection gateway call failed")
		return nil, err
	}

	metrics.RecordGatewayRequest("success")
	log.WithFields(logrus.Fields{
		"threat_type": result.ThreatType,
		"confidence":  result.Confidence,
	}).Debug("Detection gateway call succeeded")
	return result, nil
}

func (c *Client) detect(ctx context.Context, imageData string) (*models.DetectionResult, error) {
	payload, err := json.Marshal(detectRequest{Image: imageData})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %w", models.ErrGatewayUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", models.ErrGatewayUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %w", models.ErrGatewayUnavailable, err)
	}
	if len(body) > maxResponseBody {
		return nil, fmt.Errorf("%w: response exceeds %d bytes", models.ErrGatewayUnavailable, maxResponseBody)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return nil, fmt.Errorf("%w: status=%d, body=%s", models.ErrGatewayUnavailable, resp.StatusCode, string(body))
	}

	return parseResponse(body)
}

func parseResponse(body []byte) (*models.DetectionResult, error) {
	var wire detectResponse
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %w", models.ErrGatewayUnavailable, err)
	}

	switch {
	case wire.ThreatType == nil || *wire.ThreatType == "":
		return nil, fmt.Errorf("%w: malformed response: %w", models.ErrGatewayUnavailable, errors.New("missing threatType"))
	case wire.Confidence == nil:
		return nil, fmt.Errorf("%w: malformed response: %w", models.ErrGatewayUnavailable, errors.New("missing confidence"))
	}

	result := &models.DetectionResult{
		ThreatType: *wire.ThreatType,
		Confidence: *wire.Confidence,
		Raw:        json.RawMessage(body),
	}
	if wire.BoxedImageURL != nil {
		result.BoxedImageURL = *wire.BoxedImageURL
	}
	return result, nil
}
