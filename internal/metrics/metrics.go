// Package metrics содержит Prometheus-метрики сервиса.
// Все метки низкой кардинальности: без id инцидентов, камер и зон.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// GatewayRequestsTotal считает вызовы сервиса распознавания по исходу
	GatewayRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "atd_gateway_requests_total",
			Help: "Total detection gateway calls by outcome",
		},
		[]string{"outcome"},
	)

	// GatewayLatency - длительность вызова сервиса распознавания
	GatewayLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "atd_gateway_latency_seconds",
			Help:    "Detection gateway call latency in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	// DetectionsTotal считает обработанные детекции по типу и исходу оркестрации
	DetectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "atd_detections_total",
			Help: "Total detection requests by threat type and outcome",
		},
		[]string{"type", "outcome"},
	)

	// AlertsIssuedTotal считает созданные алерты по уровню
	AlertsIssuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "atd_alerts_issued_total",
			Help: "Total alerts persisted by severity",
		},
		[]string{"severity"},
	)

	// WebhookDeliveriesTotal считает доставки вебхуков
	WebhookDeliveriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "atd_webhook_deliveries_total",
			Help: "Total alert webhook deliveries by result",
		},
		[]string{"result"},
	)

	// HTTPRequestsTotal считает HTTP-запросы по шаблону маршрута и статусу
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "atd_http_requests_total",
			Help: "Total HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)
)

func RecordGatewayRequest(outcome string) {
	GatewayRequestsTotal.WithLabelValues(outcome).Inc()
}

func ObserveGatewayLatency(d time.Duration) {
	GatewayLatency.Observe(d.Seconds())
}

func RecordDetection(threatType, outcome string) {
	DetectionsTotal.WithLabelValues(threatType, outcome).Inc()
}

func RecordAlertIssued(severity string) {
	AlertsIssuedTotal.WithLabelValues(severity).Inc()
}

func RecordWebhookDelivery(result string) {
	WebhookDeliveriesTotal.WithLabelValues(result).Inc()
}

// GinMiddleware считает запросы. Используется шаблон маршрута (c.FullPath),
// чтобы id в пути не раздували кардинальность.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
