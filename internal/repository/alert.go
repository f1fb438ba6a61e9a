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

const alertColumns = `id, message, severity, camera, speed, altitude, heading, resolved, created_at, updated_at`

type AlertRepository struct {
	db DB
}

func NewAlertRepository(db DB) service.AlertRepository {
	return &AlertRepository{db: db}
}

// Create сохраняет алерт; id и отметки времени назначает бд
func (r *AlertRepository) Create(ctx context.Context, alert *models.Alert) error {
	query := `
		INSERT INTO alerts (message, severity, camera, speed, altitude, heading, resolved)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		alert.Message,
		alert.Severity,
		alert.Camera,
		alert.Speed,
		alert.Altitude,
		alert.Heading,
		alert.Resolved,
	).Scan(&alert.ID, &alert.CreatedAt, &alert.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}
	return nil
}

// List возвращает алерты, новые первыми; решенные только при includeResolved
func (r *AlertRepository) List(ctx context.Context, includeResolved bool, page, pageSize int) ([]*models.Alert, error) {
	offset := (page - 1) * pageSize

	query := `
		SELECT ` + alertColumns + `
		FROM alerts
		WHERE $1 OR resolved = FALSE
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, includeResolved, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]*models.Alert, 0)
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert row: %w", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return alerts, nil
}

// Resolve помечает алерт решенным и возвращает обновленную запись; запись остается в бд
func (r *AlertRepository) Resolve(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	query := `
		UPDATE alerts SET
			resolved = TRUE,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + alertColumns + `;
	`
	alert, err := scanAlert(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("alert with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to resolve alert: %w", err)
	}
	return alert, nil
}

func scanAlert(row pgx.Row) (*models.Alert, error) {
	alert := &models.Alert{}
	err := row.Scan(
		&alert.ID,
		&alert.Message,
		&alert.Severity,
		&alert.Camera,
		&alert.Speed,
		&alert.Altitude,
		&alert.Heading,
		&alert.Resolved,
		&alert.CreatedAt,
		&alert.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return alert, nil
}
