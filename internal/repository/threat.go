package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/airborne_threat_detection/internal/models"
	"github.com/shenikar/airborne_threat_detection/internal/service"
)

type ThreatRepository struct {
	db DB
}

func NewThreatRepository(db DB) service.ThreatRepository {
	return &ThreatRepository{db: db}
}

func (r *ThreatRepository) Create(ctx context.Context, threat *models.Threat) error {
	query := `
		INSERT INTO threats (type, confidence, location)
		VALUES ($1, $2, $3) RETURNING id, detected_at;
	`
	err := r.db.QueryRow(ctx, query, threat.Type, threat.Confidence, threat.Location).
		Scan(&threat.ID, &threat.DetectedAt)
	if err != nil {
		return fmt.Errorf("failed to create threat: %w", err)
	}
	return nil
}

func (r *ThreatRepository) List(ctx context.Context, page, pageSize int) ([]*models.Threat, error) {
	offset := (page - 1) * pageSize

	query := `
		SELECT id, type, confidence, location, detected_at
		FROM threats
		ORDER BY detected_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list threats: %w", err)
	}
	defer rows.Close()

	threats := make([]*models.Threat, 0)
	for rows.Next() {
		threat := &models.Threat{}
		if err := rows.Scan(&threat.ID, &threat.Type, &threat.Confidence, &threat.Location, &threat.DetectedAt); err != nil {
			return nil, fmt.Errorf("failed to scan threat row: %w", err)
		}
		threats = append(threats, threat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return threats, nil
}

func (r *ThreatRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM threats WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete threat: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("threat with id %s: %w", id, models.ErrNotFound)
	}
	return nil
}
