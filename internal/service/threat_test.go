package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/airborne_threat_detection/internal/models"
	"github.com/shenikar/airborne_threat_detection/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestThreatService(t *testing.T) (ThreatService, *mocks.MockThreatRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockThreatRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	return NewThreatService(repoMock, logger), repoMock
}

func TestCreateThreat(t *testing.T) {
	// Подготовка
	service, repoMock := newTestThreatService(t)
	ctx := context.Background()
	threat := &models.Threat{Type: "UAV", Confidence: 81, Location: "Zone A"}

	// Ожидания
	repoMock.EXPECT().Create(ctx, threat).Return(nil).Times(1)

	// Действие
	err := service.CreateThreat(ctx, threat)

	// Проверки
	require.NoError(t, err)
}

func TestCreateThreat_Validation(t *testing.T) {
	testCases := []struct {
		name   string
		threat *models.Threat
	}{
		{name: "missing type", threat: &models.Threat{Confidence: 10}},
		{name: "negative confidence", threat: &models.Threat{Type: "UAV", Confidence: -1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Подготовка
			service, repoMock := newTestThreatService(t)

			// Ожидания
			repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

			// Действие
			err := service.CreateThreat(context.Background(), tc.threat)

			// Проверки
			require.Error(t, err)
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
}

func TestListThreats(t *testing.T) {
	// Подготовка
	service, repoMock := newTestThreatService(t)
	ctx := context.Background()
	expected := []*models.Threat{{ID: uuid.New(), Type: "Birds"}}

	// Ожидания
	repoMock.EXPECT().List(ctx, 1, 20).Return(expected, nil).Times(1)

	// Действие
	threats, err := service.ListThreats(ctx, -5, 1000)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, threats)
}

func TestListThreats_RepositoryError(t *testing.T) {
	// Подготовка
	service, repoMock := newTestThreatService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().List(ctx, 1, 20).Return(nil, fmt.Errorf("db error")).Times(1)

	// Действие
	threats, err := service.ListThreats(ctx, 1, 20)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, threats)
}

func TestDeleteThreat(t *testing.T) {
	// Подготовка
	service, repoMock := newTestThreatService(t)
	ctx := context.Background()
	existing := uuid.New()
	missing := uuid.New()

	// Ожидания
	repoMock.EXPECT().Delete(ctx, existing).Return(nil).Times(1)
	repoMock.EXPECT().Delete(ctx, missing).Return(models.ErrNotFound).Times(1)

	// Действие и проверки
	require.NoError(t, service.DeleteThreat(ctx, existing))

	err := service.DeleteThreat(ctx, missing)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
