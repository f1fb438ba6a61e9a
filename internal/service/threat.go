package service

//go:generate mockgen -source=threat.go -destination=mocks/mock_threat.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/airborne_threat_detection/internal/models"
	"github.com/sirupsen/logrus"
)

// ThreatRepository определяет контракт для работы с бд угроз
type ThreatRepository interface {
	Create(ctx context.Context, threat *models.Threat) error
	List(ctx context.Context, page, pageSize int) ([]*models.Threat, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ThreatService - CRUD над угрозами, независимый от оркестратора
type ThreatService interface {
	CreateThreat(ctx context.Context, threat *models.Threat) error
	ListThreats(ctx context.Context, page, pageSize int) ([]*models.Threat, error)
	DeleteThreat(ctx context.Context, id uuid.UUID) error
}

type threatService struct {
	repo   ThreatRepository
	logger *logrus.Logger
}

func NewThreatService(repo ThreatRepository, logger *logrus.Logger) ThreatService {
	return &threatService{repo: repo, logger: logger}
}

func (s *threatService) CreateThreat(ctx context.Context, threat *models.Threat) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "threat",
		"method":  "CreateThreat",
		"type":    threat.Type,
	})

	if err := threat.Validate(); err != nil {
		log.WithError(err).Warn("Threat validation failed")
		return err
	}
	if err := s.repo.Create(ctx, threat); err != nil {
		log.WithError(err).Error("Failed to create threat in repository")
		return fmt.Errorf("service: could not create threat: %w", err)
	}

	log.WithField("threat_id", threat.ID).Info("Threat created successfully")
	return nil
}

func (s *threatService) ListThreats(ctx context.Context, page, pageSize int) ([]*models.Threat, error) {
	page, pageSize = normalizePage(page, pageSize)

	threats, err := s.repo.List(ctx, page, pageSize)
	if err != nil {
		s.logger.WithError(err).WithField("method", "ListThreats").Error("Failed to list threats from repository")
		return nil, fmt.Errorf("service: could not list threats: %w", err)
	}
	return threats, nil
}

func (s *threatService) DeleteThreat(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.WithError(err).WithField("threat_id", id).Warn("Failed to delete threat in repository")
		return fmt.Errorf("service: could not delete threat %s: %w", id, err)
	}
	return nil
}
