package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shenikar/airborne_threat_detection/internal/models"
	"github.com/shenikar/airborne_threat_detection/internal/service"
)

type SystemHealthRepository struct {
	db DB
}

func NewSystemHealthRepository(db DB) service.SystemHealthRepository {
	return &SystemHealthRepository{db: db}
}

// GetLatest возвращает последний обновленный снимок
func (r *SystemHealthRepository) GetLatest(ctx context.Context) (*models.SystemHealth, error) {
	query := `
		SELECT id, status, response_time, weather_conditions, visibility_status, active_zones, last_updated
		FROM system_health
		ORDER BY last_updated DESC
		LIMIT 1;
	`
	health := &models.SystemHealth{}
	err := r.db.QueryRow(ctx, query).Scan(
		&health.ID,
		&health.Status,
		&health.ResponseTime,
		&health.WeatherConditions,
		&health.VisibilityStatus,
		&health.ActiveZones,
		&health.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("system health snapshot: %w", models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get system health: %w", err)
	}
	return health, nil
}

// Upsert обновляет снимок с health.ID или вставляет новый, если такого нет
func (r *SystemHealthRepository) Upsert(ctx context.Context, health *models.SystemHealth) error {
	if health.ActiveZones == nil {
		health.ActiveZones = []string{}
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin system health transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	updated := false
	if health.ID != uuid.Nil {
		query := `
			UPDATE system_health SET
				status = $1,
				response_time = $2,
				weather_conditions = $3,
				visibility_status = $4,
				active_zones = $5,
				last_updated = NOW()
			WHERE id = $6
			RETURNING last_updated;
		`
		err := tx.QueryRow(ctx, query,
			health.Status,
			health.ResponseTime,
			health.WeatherConditions,
			health.VisibilityStatus,
			health.ActiveZones,
			health.ID,
		).Scan(&health.LastUpdated)
		switch {
		case err == nil:
			updated = true
		case !errors.Is(err, pgx.ErrNoRows):
			return fmt.Errorf("failed to update system health: %w", err)
		}
	}

	if !updated {
		query := `
			INSERT INTO system_health (status, response_time, weather_conditions, visibility_status, active_zones)
			VALUES ($1, $2, $3, $4, $5) RETURNING id, last_updated;
		`
		err := tx.QueryRow(ctx, query,
			health.Status,
			health.ResponseTime,
			health.WeatherConditions,
			health.VisibilityStatus,
			health.ActiveZones,
		).Scan(&health.ID, &health.LastUpdated)
		if err != nil {
			return fmt.Errorf("failed to insert system health: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit system health: %w", err)
	}
	return nil
}
