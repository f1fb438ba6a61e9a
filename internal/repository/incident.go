package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/airborne_threat_detection/internal/models"
	"github.com/shenikar/airborne_threat_detection/internal/service"
)

const incidentColumns = `id, timestamp, location, type, classification, confidence, action, lat, lng, image_url, created_at`

type IncidentRepository struct {
	db          DB
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewIncidentRepository(db DB, redisClient *redis.Client, cacheTTL time.Duration) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// Create создает новую запись об инциденте в бд
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (location, type, classification, confidence, action, lat, lng, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, timestamp, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		incident.Location,
		incident.Type,
		incident.Classification,
		incident.Confidence,
		incident.Action,
		incident.Lat,
		incident.Lng,
		incident.ImageURL,
	).Scan(&incident.ID, &incident.Timestamp, &incident.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// GetByID возвращает инцидент по его UUID
func (r *IncidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1;`

	incident, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// Delete удаляет инцидент безвозвратно
func (r *IncidentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM incidents WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete incident: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident with id %s: %w", id, models.ErrNotFound)
	}
	return nil
}

// ListIncidents возвращает список инцидентов с пагинацией, новые первыми
func (r *IncidentRepository) ListIncidents(ctx context.Context, page, pageSize int) ([]*models.Incident, error) {
	// рассчитываем смещение
	offset := (page - 1) * pageSize

	query := `
		SELECT ` + incidentColumns + `
		FROM incidents
		ORDER BY timestamp DESC, created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

// CountByType возвращает количество инцидентов по типам начиная с since
func (r *IncidentRepository) CountByType(ctx context.Context, since time.Time) ([]models.IncidentStat, error) {
	query := `
		SELECT type, COUNT(*)
		FROM incidents
		WHERE timestamp >= $1
		GROUP BY type
		ORDER BY COUNT(*) DESC, type;
	`
	rows, err := r.db.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to count incidents by type: %w", err)
	}
	defer rows.Close()

	stats := make([]models.IncidentStat, 0)
	for rows.Next() {
		var stat models.IncidentStat
		if err := rows.Scan(&stat.Type, &stat.Count); err != nil {
			return nil, fmt.Errorf("failed to scan incident stat row: %w", err)
		}
		stats = append(stats, stat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error stats iteration: %w", err)
	}
	return stats, nil
}

func scanIncident(row pgx.Row) (*models.Incident, error) {
	incident := &models.Incident{}
	err := row.Scan(
		&incident.ID,
		&incident.Timestamp,
		&incident.Location,
		&incident.Type,
		&incident.Classification,
		&incident.Confidence,
		&incident.Action,
		&incident.Lat,
		&incident.Lng,
		&incident.ImageURL,
		&incident.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return incident, nil
}

func incidentCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("incident:%s", id.String())
}

// GetIncidentFromCache пытается получить инцидент из Redis; промах кеша - (nil, nil)
func (r *IncidentRepository) GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	val, err := r.redisClient.Get(ctx, incidentCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	incident := &models.Incident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return incident, nil
}

// SetIncidentCache сохраняет инцидент в Redis на cacheTTL
func (r *IncidentRepository) SetIncidentCache(ctx context.Context, incident *models.Incident) error {
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, incidentCacheKey(incident.ID), val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}

// InvalidateIncidentCache удаляет инцидент из Redis кэша
func (r *IncidentRepository) InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error {
	if err := r.redisClient.Del(ctx, incidentCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incident cache: %w", err)
	}
	return nil
}
