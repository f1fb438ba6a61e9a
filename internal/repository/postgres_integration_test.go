//go:build integration

package repository

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/airborne_threat_detection/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newIntegrationPool поднимает схему в TEST_DATABASE_URL и очищает таблицы.
// Запуск: TEST_DATABASE_URL=postgres://... go test -tags integration ./internal/repository/
func newIntegrationPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	m, err := migrate.New("file://../../migrations", strings.Replace(dsn, "postgres://", "pgx5://", 1))
	require.NoError(t, err)
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		require.NoError(t, err)
	}
	_, _ = m.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE incidents, alerts, threats, system_health;`)
	require.NoError(t, err)
	return pool
}

func TestIntegration_IncidentsNewestFirstForAnyInsertionOrder(t *testing.T) {
	pool := newIntegrationPool(t)
	repo := NewIncidentRepository(pool, nil, time.Minute)
	ctx := context.Background()

	var ids []uuid.UUID
	for _, location := range []string{"Zone A", "Zone B", "Zone C"} {
		inc := newIncidentInput()
		inc.Location = location
		require.NoError(t, repo.Create(ctx, inc))
		ids = append(ids, inc.ID)
	}

	// отметки времени идут не в порядке вставки: B новее всех, C старше всех
	base := time.Now().UTC().Truncate(time.Second)
	shifts := map[uuid.UUID]time.Duration{ids[0]: -time.Hour, ids[1]: 0, ids[2]: -2 * time.Hour}
	for id, shift := range shifts {
		_, err := pool.Exec(ctx, `UPDATE incidents SET timestamp = $1 WHERE id = $2;`, base.Add(shift), id)
		require.NoError(t, err)
	}

	listed, err := repo.ListIncidents(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, []uuid.UUID{ids[1], ids[0], ids[2]}, []uuid.UUID{listed[0].ID, listed[1].ID, listed[2].ID})
}

func TestIntegration_IncidentRoundTrip(t *testing.T) {
	pool := newIntegrationPool(t)
	repo := NewIncidentRepository(pool, nil, time.Minute)
	ctx := context.Background()
	input := newIncidentInput()

	created := *input
	require.NoError(t, repo.Create(ctx, &created))

	listed, err := repo.ListIncidents(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	got := *listed[0]
	assert.Equal(t, created.ID, got.ID)
	got.ID, got.Timestamp, got.CreatedAt = input.ID, input.Timestamp, input.CreatedAt
	assert.Equal(t, *input, got)
}

func TestIntegration_AlertsNewestFirstAndResolveHidesFromDefaultList(t *testing.T) {
	pool := newIntegrationPool(t)
	repo := NewAlertRepository(pool)
	ctx := context.Background()

	var ids []uuid.UUID
	for _, camera := range []string{"CAM-01", "CAM-02", "CAM-03"} {
		alert := &models.Alert{Message: "UAV detected at Zone A", Severity: models.SeverityHigh, Camera: camera}
		require.NoError(t, repo.Create(ctx, alert))
		ids = append(ids, alert.ID)
	}
	base := time.Now().UTC().Truncate(time.Second)
	shifts := map[uuid.UUID]time.Duration{ids[0]: 0, ids[1]: -2 * time.Hour, ids[2]: -time.Hour}
	for id, shift := range shifts {
		_, err := pool.Exec(ctx, `UPDATE alerts SET created_at = $1 WHERE id = $2;`, base.Add(shift), id)
		require.NoError(t, err)
	}

	alerts, err := repo.List(ctx, false, 1, 10)
	require.NoError(t, err)
	require.Len(t, alerts, 3)
	assert.Equal(t, []uuid.UUID{ids[0], ids[2], ids[1]}, []uuid.UUID{alerts[0].ID, alerts[1].ID, alerts[2].ID})

	resolved, err := repo.Resolve(ctx, ids[2])
	require.NoError(t, err)
	assert.True(t, resolved.Resolved)

	alerts, err = repo.List(ctx, false, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{ids[0], ids[1]}, []uuid.UUID{alerts[0].ID, alerts[1].ID})

	// запись осталась в бд
	alerts, err = repo.List(ctx, true, 1, 10)
	require.NoError(t, err)
	assert.Len(t, alerts, 3)

	_, err = repo.Resolve(ctx, uuid.New())
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestIntegration_SystemHealthUpsert(t *testing.T) {
	pool := newIntegrationPool(t)
	repo := NewSystemHealthRepository(pool)
	ctx := context.Background()

	_, err := repo.GetLatest(ctx)
	require.ErrorIs(t, err, models.ErrNotFound)

	health := models.DefaultSystemHealth()
	require.NoError(t, repo.Upsert(ctx, health))
	require.NotEqual(t, uuid.Nil, health.ID)
	firstID := health.ID

	health.Status = models.StatusDegraded
	health.ActiveZones = []string{"Zone A"}
	require.NoError(t, repo.Upsert(ctx, health))
	assert.Equal(t, firstID, health.ID)

	latest, err := repo.GetLatest(ctx)
	require.NoError(t, err)
	assert.Equal(t, firstID, latest.ID)
	assert.Equal(t, models.StatusDegraded, latest.Status)
	assert.Equal(t, []string{"Zone A"}, latest.ActiveZones)

	var count int
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM system_health;`).Scan(&count))
	assert.Equal(t, 1, count)
}
