package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_callout_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncidentRepository_CreateWithUnknownTarget(t *testing.T) {
	pool := newTestPool(t)
	repo := NewIncidentRepository(pool)
	ctx := context.Background()

	// Подготовка: идентификаторы цели, которых нет в справочниках
	danglingArea := uuid.New()
	danglingGroup := uuid.New()
	incident := &models.Incident{
		Title:         "Пожар на складе",
		Location:      "Промзона, корпус 3",
		EmergencyType: models.EmergencyFire,
		Severity:      models.SeverityHigh,
		Status:        models.IncidentActive,
		TargetAreaID:  &danglingArea,
		TargetGroupID: &danglingGroup,
	}

	// Действие
	err := repo.Create(ctx, incident)

	// Проверки: вставка проходит, чтение отдает цель без зоны и группы
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, incident.ID)

	got, err := repo.GetByID(ctx, incident.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, &danglingArea, got.TargetAreaID)
	assert.Equal(t, &danglingGroup, got.TargetGroupID)
	assert.Nil(t, got.TargetArea)
	assert.Nil(t, got.TargetGroup)
}

func TestIncidentRepository_GetByID_Missing(t *testing.T) {
	pool := newTestPool(t)
	repo := NewIncidentRepository(pool)

	got, err := repo.GetByID(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Nil(t, got)
}
