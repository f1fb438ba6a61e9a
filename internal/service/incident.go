package service

//go:generate mockgen -source=incident.go -destination=mocks/mock_incident.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/airborne_threat_detection/internal/config"
	"github.com/shenikar/airborne_threat_detection/internal/models"
	"github.com/sirupsen/logrus"
)

// IncidentRepository определяет контракт для работы с бд инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListIncidents(ctx context.Context, page, pageSize int) ([]*models.Incident, error)
	CountByType(ctx context.Context, since time.Time) ([]models.IncidentStat, error)
	GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	SetIncidentCache(ctx context.Context, incident *models.Incident) error
	InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error
}

// IncidentService определяет контракт для бизнес-логики управления инцидентами
type IncidentService interface {
	CreateIncident(ctx context.Context, incident *models.Incident) error
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	DeleteIncident(ctx context.Context, id uuid.UUID) error
	ListIncidents(ctx context.Context, page, pageSize int) ([]*models.Incident, error)
	GetStats(ctx context.Context) ([]models.IncidentStat, error)
}

type incidentService struct {
	repo   IncidentRepository
	logger *logrus.Logger
	cfg    *config.Config
	now    func() time.Time
}

func NewIncidentService(repo IncidentRepository, logger *logrus.Logger, cfg *config.Config) IncidentService {
	return &incidentService{
		repo:   repo,
		logger: logger,
		cfg:    cfg,
		now:    time.Now,
	}
}

// CreateIncident проставляет значения по умолчанию, валидирует и сохраняет инцидент.
// Одинаковые запросы не объединяются: каждый вызов создает новую запись.
func (s *incidentService) CreateIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "incident",
		"method":   "CreateIncident",
		"type":     incident.Type,
		"location": incident.Location,
	})
	log.Info("Attempting to create a new incident")

	incident.ApplyDefaults()
	if err := incident.Validate(); err != nil {
		log.WithError(err).Warn("Incident validation failed")
		return err
	}

	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return fmt.Errorf("service: could not create incident: %w", err)
	}

	log.WithField("incident_id", incident.ID).Info("Incident created successfully")
	return nil
}

// GetIncident получает инцидент по ID, сначала из кеша
func (s *incidentService) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})
	log.Info("Fetching incident by ID")

	cached, err := s.repo.GetIncidentFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read incident from cache")
	}
	if cached != nil {
		log.Debug("Incident served from cache")
		return cached, nil
	}

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident in repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	if err := s.repo.SetIncidentCache(ctx, incident); err != nil {
		log.WithError(err).Warn("Failed to cache incident")
	}

	log.Info("Incident fetched successfully")
	return incident, nil
}

// DeleteIncident удаляет инцидент безвозвратно. Связанные алерты не затрагиваются.
func (s *incidentService) DeleteIncident(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "DeleteIncident",
		"incident_id": id,
	})
	log.Info("Attempting to delete incident")

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to delete incident in repository")
		return fmt.Errorf("service: could not delete incident %s: %w", id, err)
	}

	if err := s.repo.InvalidateIncidentCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	log.Info("Incident deleted successfully")
	return nil
}

// ListIncidents возвращает список инцидентов с пагинацией, новые первыми
func (s *incidentService) ListIncidents(ctx context.Context, page, pageSize int) ([]*models.Incident, error) {
	page, pageSize = normalizePage(page, pageSize)

	log := s.logger.WithFields(logrus.Fields{
		"service":   "incident",
		"method":    "ListIncidents",
		"page":      page,
		"page_size": pageSize,
	})
	log.Info("Listing incidents")

	incidents, err := s.repo.ListIncidents(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Info("Incidents listed successfully")
	return incidents, nil
}

// GetStats возвращает количество инцидентов по типам за окно StatsTimeWindowMinutes
func (s *incidentService) GetStats(ctx context.Context) ([]models.IncidentStat, error) {
	window := time.Duration(s.cfg.StatsTimeWindowMinutes) * time.Minute
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "GetStats",
		"window":  window.String(),
	})

	stats, err := s.repo.CountByType(ctx, s.now().Add(-window))
	if err != nil {
		log.WithError(err).Error("Failed to get incident stats from repository")
		return nil, fmt.Errorf("service: could not get incident stats: %w", err)
	}
	return stats, nil
}

// normalizePage приводит параметры пагинации к допустимым значениям
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
