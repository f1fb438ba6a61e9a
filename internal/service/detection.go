package service

//go:generate mockgen -source=detection.go -destination=mocks/mock_detection.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/shenikar/airborne_threat_detection/internal/metrics"
	"github.com/shenikar/airborne_threat_detection/internal/models"
	"github.com/sirupsen/logrus"
)

// DetectionGateway - внешний сервис распознавания
type DetectionGateway interface {
	Detect(ctx context.Context, imageData string) (*models.DetectionResult, error)
}

// DetectionService - оркестратор: распознавание -> инцидент -> алерт
type DetectionService interface {
	Detect(ctx context.Context, req models.DetectionRequest) (*models.DetectionOutcome, error)
}

type detectionService struct {
	gateway   DetectionGateway
	incidents IncidentService
	alerts    AlertService
	logger    *logrus.Logger
}

func NewDetectionService(gateway DetectionGateway, incidents IncidentService, alerts AlertService, logger *logrus.Logger) DetectionService {
	return &detectionService{
		gateway:   gateway,
		incidents: incidents,
		alerts:    alerts,
		logger:    logger,
	}
}

// Detect выполняет три последовательных шага без транзакции между ними:
//  1. вызов сервиса распознавания; ошибка -> ErrDetectionFailed, ничего не записано
//  2. запись инцидента; ошибка -> ErrPersistenceFailed, результат распознавания теряется
//  3. алерт, если тип не Unknown; ошибка попадает в outcome.AlertErr, инцидент остается
//
// Повторные одинаковые запросы не дедуплицируются.
func (s *detectionService) Detect(ctx context.Context, req models.DetectionRequest) (*models.DetectionOutcome, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "detection",
		"method":   "Detect",
		"location": req.Location,
		"camera":   req.Camera,
	})
	log.Info("Processing detection request")

	result, err := s.gateway.Detect(ctx, req.ImageData)
	if err != nil {
		log.WithError(err).Error("Detection gateway failed")
		metrics.RecordDetection("none", "detection_failed")
		return nil, fmt.Errorf("%w: %w", models.ErrDetectionFailed, err)
	}
	log = log.WithField("threat_type", result.ThreatType)

	incident := &models.Incident{
		Location:       req.Location,
		Type:           models.ThreatType(result.ThreatType),
		Classification: models.ClassificationUnknown,
		Confidence:     result.Confidence,
		Action:         models.ActionPending,
		Lat:            req.Lat,
		Lng:            req.Lng,
		ImageURL:       result.BoxedImageURL,
	}
	if err := s.incidents.CreateIncident(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to persist incident, detection result is lost")
		metrics.RecordDetection(metricsType(result.ThreatType), "persistence_failed")
		return nil, fmt.Errorf("%w: %w", models.ErrPersistenceFailed, err)
	}

	outcome := &models.DetectionOutcome{
		Incident:   incident,
		Detection:  result,
		AlertState: models.AlertNotRequired,
	}

	alert, err := s.alerts.IssueIfThreat(ctx, result.ThreatType, req.Location, req.Camera)
	switch {
	case err != nil:
		log.WithError(err).WithField("incident_id", incident.ID).Error("Incident saved but alert was not created")
		outcome.AlertState = models.AlertFailed
		outcome.AlertErr = err
	case alert != nil:
		outcome.Alert = alert
		outcome.AlertState = models.AlertIssued
	}

	metrics.RecordDetection(metricsType(result.ThreatType), string(outcome.AlertState))
	log.WithFields(logrus.Fields{
		"incident_id": incident.ID,
		"alert_state": outcome.AlertState,
	}).Info("Detection processed")
	return outcome, nil
}

// metricsType ограничивает метку известными типами
func metricsType(threatType string) string {
	switch models.ThreatType(threatType) {
	case models.ThreatTypeUAV, models.ThreatTypeBirds, models.ThreatTypeAircraft, models.ThreatTypeUnknown:
		return threatType
	}
	return "other"
}
