package service

//go:generate mockgen -source=health.go -destination=mocks/mock_health.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/shenikar/airborne_threat_detection/internal/models"
	"github.com/sirupsen/logrus"
)

// SystemHealthRepository хранит снимки состояния; актуален последний обновленный
type SystemHealthRepository interface {
	GetLatest(ctx context.Context) (*models.SystemHealth, error)
	Upsert(ctx context.Context, health *models.SystemHealth) error
}

type SystemHealthService interface {
	GetSystemHealth(ctx context.Context) (*models.SystemHealth, error)
	UpdateSystemHealth(ctx context.Context, update models.SystemHealthUpdate) (*models.SystemHealth, error)
}

type systemHealthService struct {
	repo   SystemHealthRepository
	logger *logrus.Logger
}

func NewSystemHealthService(repo SystemHealthRepository, logger *logrus.Logger) SystemHealthService {
	return &systemHealthService{repo: repo, logger: logger}
}

// GetSystemHealth возвращает последний снимок или models.ErrNotFound
func (s *systemHealthService) GetSystemHealth(ctx context.Context) (*models.SystemHealth, error) {
	health, err := s.repo.GetLatest(ctx)
	if err != nil {
		s.logger.WithError(err).WithField("method", "GetSystemHealth").Warn("Failed to get system health")
		return nil, fmt.Errorf("service: could not get system health: %w", err)
	}
	return health, nil
}

// UpdateSystemHealth накладывает изменения на последний снимок (или на значения
// по умолчанию, если снимков нет) и сохраняет результат
func (s *systemHealthService) UpdateSystemHealth(ctx context.Context, update models.SystemHealthUpdate) (*models.SystemHealth, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "system_health",
		"method":  "UpdateSystemHealth",
	})
	log.Info("Attempting to update system health")

	health, err := s.repo.GetLatest(ctx)
	switch {
	case errors.Is(err, models.ErrNotFound):
		health = models.DefaultSystemHealth()
	case err != nil:
		log.WithError(err).Error("Failed to load current system health")
		return nil, fmt.Errorf("service: could not update system health: %w", err)
	}

	update.Apply(health)
	if err := health.Validate(); err != nil {
		log.WithError(err).Warn("System health validation failed")
		return nil, err
	}

	if err := s.repo.Upsert(ctx, health); err != nil {
		log.WithError(err).Error("Failed to upsert system health")
		return nil, fmt.Errorf("service: could not update system health: %w", err)
	}

	log.WithField("status", health.Status).Info("System health updated successfully")
	return health, nil
}
