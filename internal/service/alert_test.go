package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/airborne_threat_detection/internal/models"
	"github.com/shenikar/airborne_threat_detection/internal/service/mocks"
	"github.com/shenikar/airborne_threat_detection/internal/webhook"
	webhook_mocks "github.com/shenikar/airborne_threat_detection/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAlertService(t *testing.T) (*alertService, *mocks.MockAlertRepository, *webhook_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockAlertRepository(ctrl)
	webhookMock := webhook_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	service := NewAlertService(repoMock, webhookMock, nil, logger)
	return service.(*alertService), repoMock, webhookMock
}

func TestIssueIfThreat_UnknownIssuesNothing(t *testing.T) {
	// Подготовка
	service, repoMock, webhookMock := newTestAlertService(t)

	// Ожидания
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
	webhookMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	alert, err := service.IssueIfThreat(context.Background(), "Unknown", "Zone A", "CAM-01")

	// Проверки
	require.NoError(t, err)
	assert.Nil(t, alert)
}

func TestIssueIfThreat_BuildsMessageAndSeverity(t *testing.T) {
	testCases := []struct {
		threatType   string
		wantSeverity models.Severity
	}{
		{threatType: "UAV", wantSeverity: models.SeverityHigh},
		{threatType: "Aircraft", wantSeverity: models.SeverityMedium},
		{threatType: "Birds", wantSeverity: models.SeverityLow},
		{threatType: "Bird", wantSeverity: models.SeverityLow},
		{threatType: "Balloon", wantSeverity: models.SeverityLow},
	}

	for _, tc := range testCases {
		t.Run(tc.threatType, func(t *testing.T) {
			// Подготовка
			service, repoMock, webhookMock := newTestAlertService(t)
			ctx := context.Background()
			fixedNow := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
			service.now = func() time.Time { return fixedNow }
			newID := uuid.New()

			// Ожидания
			repoMock.EXPECT().
				Create(ctx, gomock.Any()).
				DoAndReturn(func(_ context.Context, a *models.Alert) error {
					a.ID = newID
					return nil
				}).
				Times(1)
			webhookMock.EXPECT().
				Publish(ctx, gomock.Any()).
				DoAndReturn(func(_ context.Context, event webhook.AlertEvent) error {
					assert.Equal(t, "detection", event.Source)
					assert.Equal(t, fixedNow, event.Timestamp)
					assert.Equal(t, newID, event.Alert.ID)
					return nil
				}).
				Times(1)

			// Действие
			alert, err := service.IssueIfThreat(ctx, tc.threatType, "Zone A", "CAM-01")

			// Проверки
			require.NoError(t, err)
			require.NotNil(t, alert)
			assert.Equal(t, newID, alert.ID)
			assert.Equal(t, tc.threatType+" detected at Zone A", alert.Message)
			assert.Equal(t, tc.wantSeverity, alert.Severity)
			assert.Equal(t, "CAM-01", alert.Camera)
			assert.False(t, alert.Resolved)
		})
	}
}

func TestIssueIfThreat_EmptyCameraFailsValidation(t *testing.T) {
	// Подготовка
	service, repoMock, webhookMock := newTestAlertService(t)

	// Ожидания
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
	webhookMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	alert, err := service.IssueIfThreat(context.Background(), "UAV", "Zone A", "   ")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, alert)
	assert.ErrorIs(t, err, models.ErrValidation)
	assert.Contains(t, err.Error(), "Camera")
}

func TestIssueIfThreat_ConfiguredSeverityTable(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockAlertRepository(ctrl)
	webhookMock := webhook_mocks.NewMockPublisher(ctrl)
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	table, err := NewSeverityTable(map[string]string{"UAV": "Critical"})
	require.NoError(t, err)
	service := NewAlertService(repoMock, webhookMock, table, logger)

	// Ожидания
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	webhookMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	// Действие
	alert, err := service.IssueIfThreat(context.Background(), "UAV", "Zone B", "CAM-02")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.SeverityCritical, alert.Severity)
}

func TestCreateAlert_TrimsAndSaves(t *testing.T) {
	// Подготовка
	service, repoMock, webhookMock := newTestAlertService(t)
	ctx := context.Background()
	alert := &models.Alert{
		Message:  "  Drone over perimeter  ",
		Severity: models.SeverityCritical,
		Camera:   " CAM-07 ",
		Speed:    " 40 km/h ",
		Resolved: true,
	}

	// Ожидания
	repoMock.EXPECT().Create(ctx, alert).Return(nil).Times(1)
	webhookMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.AlertEvent) error {
			assert.Equal(t, "api", event.Source)
			return nil
		}).
		Times(1)

	// Действие
	err := service.CreateAlert(ctx, alert)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "Drone over perimeter", alert.Message)
	assert.Equal(t, "CAM-07", alert.Camera)
	assert.Equal(t, "40 km/h", alert.Speed)
	assert.False(t, alert.Resolved)
}

func TestCreateAlert_InvalidSeverity(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestAlertService(t)
	alert := &models.Alert{Message: "test", Severity: "Extreme", Camera: "CAM-01"}

	// Ожидания
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.CreateAlert(context.Background(), alert)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestCreateAlert_RepositoryError(t *testing.T) {
	// Подготовка
	service, repoMock, webhookMock := newTestAlertService(t)
	alert := &models.Alert{Message: "test", Severity: models.SeverityLow, Camera: "CAM-01"}

	// Ожидания
	repoMock.EXPECT().Create(gomock.Any(), alert).Return(fmt.Errorf("db error")).Times(1)
	webhookMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.CreateAlert(context.Background(), alert)

	// Проверки
	require.Error(t, err)
	assert.Contains(t, err.Error(), "service: could not create alert")
}

func TestCreateAlert_PublishFailureIsNotFatal(t *testing.T) {
	// Подготовка
	service, repoMock, webhookMock := newTestAlertService(t)
	alert := &models.Alert{Message: "test", Severity: models.SeverityMedium, Camera: "CAM-01"}

	// Ожидания
	repoMock.EXPECT().Create(gomock.Any(), alert).Return(nil).Times(1)
	webhookMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(fmt.Errorf("redis down")).Times(1)

	// Действие
	err := service.CreateAlert(context.Background(), alert)

	// Проверки
	require.NoError(t, err)
}

func TestListAlerts(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestAlertService(t)
	ctx := context.Background()
	expected := []*models.Alert{{ID: uuid.New()}}

	// Ожидания
	repoMock.EXPECT().List(ctx, false, 1, 20).Return(expected, nil).Times(1)
	repoMock.EXPECT().List(ctx, true, 3, 50).Return(nil, fmt.Errorf("db error")).Times(1)

	// Действие и проверки
	alerts, err := service.ListAlerts(ctx, false, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, expected, alerts)

	alerts, err = service.ListAlerts(ctx, true, 3, 50)
	require.Error(t, err)
	assert.Nil(t, alerts)
	assert.Contains(t, err.Error(), "service: could not list alerts")
}

func TestResolveAlert(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestAlertService(t)
	ctx := context.Background()
	existing := uuid.New()
	missing := uuid.New()

	resolved := &models.Alert{ID: existing, Message: "UAV detected at Zone A", Severity: models.SeverityHigh, Camera: "CAM-01", Resolved: true}

	// Ожидания
	repoMock.EXPECT().Resolve(ctx, existing).Return(resolved, nil).Times(1)
	repoMock.EXPECT().Resolve(ctx, missing).Return(nil, models.ErrNotFound).Times(1)

	// Действие и проверки
	alert, err := service.ResolveAlert(ctx, existing)
	require.NoError(t, err)
	assert.Equal(t, resolved, alert)

	alert, err = service.ResolveAlert(ctx, missing)
	require.Error(t, err)
	assert.Nil(t, alert)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
