package service

//go:generate mockgen -source=alert.go -destination=mocks/mock_alert.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/airborne_threat_detection/internal/metrics"
	"github.com/shenikar/airborne_threat_detection/internal/models"
	"github.com/shenikar/airborne_threat_detection/internal/webhook"
	"github.com/sirupsen/logrus"
)

// AlertRepository определяет контракт для работы с бд алертов
type AlertRepository interface {
	Create(ctx context.Context, alert *models.Alert) error
	List(ctx context.Context, includeResolved bool, page, pageSize int) ([]*models.Alert, error)
	Resolve(ctx context.Context, id uuid.UUID) (*models.Alert, error)
}

// AlertService определяет контракт для выпуска и управления алертами
type AlertService interface {
	CreateAlert(ctx context.Context, alert *models.Alert) error
	IssueIfThreat(ctx context.Context, threatType, location, camera string) (*models.Alert, error)
	ListAlerts(ctx context.Context, includeResolved bool, page, pageSize int) ([]*models.Alert, error)
	ResolveAlert(ctx context.Context, id uuid.UUID) (*models.Alert, error)
}

type alertService struct {
	repo       AlertRepository
	publisher  webhook.Publisher
	severities *SeverityTable
	logger     *logrus.Logger
	now        func() time.Time
}

func NewAlertService(repo AlertRepository, publisher webhook.Publisher, severities *SeverityTable, logger *logrus.Logger) AlertService {
	if severities == nil {
		severities = DefaultSeverityTable()
	}
	return &alertService{
		repo:       repo,
		publisher:  publisher,
		severities: severities,
		logger:     logger,
		now:        time.Now,
	}
}

// CreateAlert сохраняет алерт, пришедший через API
func (s *alertService) CreateAlert(ctx context.Context, alert *models.Alert) error {
	return s.save(ctx, alert, "api")
}

// IssueIfThreat создает алерт для всех типов, кроме Unknown.
// Для Unknown возвращает (nil, nil).
func (s *alertService) IssueIfThreat(ctx context.Context, threatType, location, camera string) (*models.Alert, error) {
	if threatType == string(models.ThreatTypeUnknown) {
		s.logger.WithFields(logrus.Fields{
			"service": "alert",
			"method":  "IssueIfThreat",
		}).Debug("Unknown threat type, no alert issued")
		return nil, nil
	}

	alert := &models.Alert{
		Message:  fmt.Sprintf("%s detected at %s", threatType, location),
		Severity: s.severities.Severity(threatType),
		Camera:   camera,
	}
	if err := s.save(ctx, alert, "detection"); err != nil {
		return nil, err
	}
	return alert, nil
}

func (s *alertService) save(ctx context.Context, alert *models.Alert, source string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "save",
		"source":   source,
		"severity": alert.Severity,
		"camera":   alert.Camera,
	})
	log.Info("Attempting to create a new alert")

	alert.Normalize()
	if err := alert.Validate(); err != nil {
		log.WithError(err).Warn("Alert validation failed")
		return err
	}

	alert.Resolved = false
	if err := s.repo.Create(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to create alert in repository")
		return fmt.Errorf("service: could not create alert: %w", err)
	}
	metrics.RecordAlertIssued(string(alert.Severity))

	// вебхук не должен ломать уже сохраненный алерт
	event := webhook.AlertEvent{Alert: alert, Source: source, Timestamp: s.now().UTC()}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish alert webhook event")
	}

	log.WithField("alert_id", alert.ID).Info("Alert created successfully")
	return nil
}

// ListAlerts возвращает алерты, новые первыми; по умолчанию только нерешенные
func (s *alertService) ListAlerts(ctx context.Context, includeResolved bool, page, pageSize int) ([]*models.Alert, error) {
	page, pageSize = normalizePage(page, pageSize)

	log := s.logger.WithFields(logrus.Fields{
		"service":          "alert",
		"method":           "ListAlerts",
		"include_resolved": includeResolved,
		"page":             page,
		"page_size":        pageSize,
	})
	log.Info("Listing alerts")

	alerts, err := s.repo.List(ctx, includeResolved, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list alerts from repository")
		return nil, fmt.Errorf("service: could not list alerts: %w", err)
	}

	log.WithField("count", len(alerts)).Info("Alerts listed successfully")
	return alerts, nil
}

// ResolveAlert помечает алерт решенным (мягкое удаление)
func (s *alertService) ResolveAlert(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "ResolveAlert",
		"alert_id": id,
	})
	log.Info("Attempting to resolve alert")

	alert, err := s.repo.Resolve(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to resolve alert in repository")
		return nil, fmt.Errorf("service: could not resolve alert %s: %w", id, err)
	}

	log.Info("Alert resolved successfully")
	return alert, nil
}
