package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shenikar/airborne_threat_detection/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var incidentColumnNames = []string{
	"id", "timestamp", "location", "type", "classification", "confidence",
	"action", "lat", "lng", "image_url", "created_at",
}

func newIncidentInput() *models.Incident {
	return &models.Incident{
		Location:       "Zone A",
		Type:           models.ThreatTypeUAV,
		Classification: models.ClassificationMilitary,
		Confidence:     91.5,
		Action:         models.ActionTracked,
		Lat:            floatPtr(28.6139),
		Lng:            floatPtr(77.209),
		ImageURL:       "http://ai/boxed/1.jpg",
	}
}

func incidentRow(rows *pgxmock.Rows, inc *models.Incident) *pgxmock.Rows {
	return rows.AddRow(
		inc.ID, inc.Timestamp, inc.Location, inc.Type, inc.Classification, inc.Confidence,
		inc.Action, inc.Lat, inc.Lng, inc.ImageURL, inc.CreatedAt,
	)
}

func TestIncidentRepository_CreateThenList(t *testing.T) {
	// Подготовка
	mock := newMockDB(t)
	repo := NewIncidentRepository(mock, nil, time.Minute)
	ctx := context.Background()
	input := newIncidentInput()
	id := uuid.New()
	ts := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	// Ожидания: бд назначает id и отметки времени
	mock.ExpectQuery(sqlPattern("INSERT INTO incidents", "RETURNING id, timestamp, created_at")).
		WithArgs(input.Location, input.Type, input.Classification, input.Confidence, input.Action,
			input.Lat, input.Lng, input.ImageURL).
		WillReturnRows(pgxmock.NewRows([]string{"id", "timestamp", "created_at"}).AddRow(id, ts, ts))

	// Действие
	created := *input
	require.NoError(t, repo.Create(ctx, &created))

	// Проверки
	assert.Equal(t, id, created.ID)
	assert.Equal(t, ts, created.Timestamp)
	assert.Equal(t, ts, created.CreatedAt)

	mock.ExpectQuery(sqlPattern("FROM incidents", "ORDER BY timestamp DESC")).
		WithArgs(20, 0).
		WillReturnRows(incidentRow(pgxmock.NewRows(incidentColumnNames), &created))

	listed, err := repo.ListIncidents(ctx, 1, 20)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	// все поля, кроме назначенных бд, совпадают с входными
	got := *listed[0]
	assert.Equal(t, id, got.ID)
	got.ID, got.Timestamp, got.CreatedAt = input.ID, input.Timestamp, input.CreatedAt
	assert.Equal(t, *input, got)
}

func TestIncidentRepository_ListIsNewestFirst(t *testing.T) {
	// Подготовка
	mock := newMockDB(t)
	repo := NewIncidentRepository(mock, nil, time.Minute)
	base := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	newest := newIncidentInput()
	newest.ID, newest.Timestamp, newest.CreatedAt = uuid.New(), base.Add(2*time.Minute), base.Add(2*time.Minute)
	middle := newIncidentInput()
	middle.ID, middle.Timestamp, middle.CreatedAt = uuid.New(), base.Add(time.Minute), base.Add(time.Minute)
	oldest := newIncidentInput()
	oldest.ID, oldest.Timestamp, oldest.CreatedAt = uuid.New(), base, base

	rows := pgxmock.NewRows(incidentColumnNames)
	for _, inc := range []*models.Incident{newest, middle, oldest} {
		incidentRow(rows, inc)
	}

	// Ожидания: сортировку делает запрос, смещение считается от страницы
	mock.ExpectQuery(sqlPattern("FROM incidents", "ORDER BY timestamp DESC, created_at DESC", "LIMIT $1 OFFSET $2")).
		WithArgs(10, 20).
		WillReturnRows(rows)

	// Действие
	listed, err := repo.ListIncidents(context.Background(), 3, 10)

	// Проверки
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, []uuid.UUID{newest.ID, middle.ID, oldest.ID}, []uuid.UUID{listed[0].ID, listed[1].ID, listed[2].ID})
	for i := 1; i < len(listed); i++ {
		assert.True(t, listed[i-1].Timestamp.After(listed[i].Timestamp))
	}
}

func TestIncidentRepository_ListQueryError(t *testing.T) {
	mock := newMockDB(t)
	repo := NewIncidentRepository(mock, nil, time.Minute)

	mock.ExpectQuery(sqlPattern("FROM incidents")).WillReturnError(errors.New("connection reset"))

	listed, err := repo.ListIncidents(context.Background(), 1, 10)
	require.Error(t, err)
	assert.Nil(t, listed)
	assert.Contains(t, err.Error(), "failed to list incidents")
}

func TestIncidentRepository_GetByID(t *testing.T) {
	mock := newMockDB(t)
	repo := NewIncidentRepository(mock, nil, time.Minute)
	ctx := context.Background()
	stored := newIncidentInput()
	stored.ID = uuid.New()
	stored.Timestamp = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	stored.CreatedAt = stored.Timestamp
	missing := uuid.New()

	mock.ExpectQuery(sqlPattern("FROM incidents WHERE id = $1")).
		WithArgs(stored.ID).
		WillReturnRows(incidentRow(pgxmock.NewRows(incidentColumnNames), stored))
	mock.ExpectQuery(sqlPattern("FROM incidents WHERE id = $1")).
		WithArgs(missing).
		WillReturnError(pgx.ErrNoRows)

	got, err := repo.GetByID(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored, got)

	got, err = repo.GetByID(ctx, missing)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestIncidentRepository_Delete(t *testing.T) {
	mock := newMockDB(t)
	repo := NewIncidentRepository(mock, nil, time.Minute)
	ctx := context.Background()
	existing, missing := uuid.New(), uuid.New()

	mock.ExpectExec(sqlPattern("DELETE FROM incidents WHERE id = $1")).
		WithArgs(existing).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(sqlPattern("DELETE FROM incidents WHERE id = $1")).
		WithArgs(missing).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	require.NoError(t, repo.Delete(ctx, existing))
	assert.ErrorIs(t, repo.Delete(ctx, missing), models.ErrNotFound)
}

func TestIncidentRepository_CountByType(t *testing.T) {
	mock := newMockDB(t)
	repo := NewIncidentRepository(mock, nil, time.Minute)
	since := time.Date(2026, 10, 18, 11, 0, 0, 0, time.UTC)

	mock.ExpectQuery(sqlPattern("WHERE timestamp >= $1", "GROUP BY type")).
		WithArgs(since).
		WillReturnRows(pgxmock.NewRows([]string{"type", "count"}).
			AddRow(models.ThreatTypeUAV, 4).
			AddRow(models.ThreatTypeBirds, 1))

	stats, err := repo.CountByType(context.Background(), since)

	require.NoError(t, err)
	assert.Equal(t, []models.IncidentStat{
		{Type: models.ThreatTypeUAV, Count: 4},
		{Type: models.ThreatTypeBirds, Count: 1},
	}, stats)
}
