package service

import (
	"testing"

	"github.com/shenikar/airborne_threat_detection/internal/config"
	"github.com/shenikar/airborne_threat_detection/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityTable_Default(t *testing.T) {
	table := DefaultSeverityTable()

	tests := []struct {
		threatType string
		want       models.Severity
	}{
		{"UAV", models.SeverityHigh},
		{"Aircraft", models.SeverityMedium},
		{"Bird", models.SeverityLow},
		{"Birds", models.SeverityLow},
		{"Unknown", models.SeverityLow},
		{"Helicopter", models.SeverityLow},
		{"", models.SeverityLow},
		// точное совпадение с учетом регистра
		{"uav", models.SeverityLow},
		{"UAV ", models.SeverityLow},
		{"aircraft", models.SeverityLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, table.Severity(tt.threatType), "threat type %q", tt.threatType)
	}
}

func TestSeverityTable_FromConfig(t *testing.T) {
	raw, err := config.ParseSeverityTable(config.DefaultSeverityTable)
	require.NoError(t, err)

	table, err := NewSeverityTable(raw)
	require.NoError(t, err)

	// таблица из конфигурации по умолчанию совпадает со встроенной
	defaults := DefaultSeverityTable()
	for _, typ := range []string{"UAV", "Aircraft", "Bird", "Birds", "Unknown", "Drone"} {
		assert.Equal(t, defaults.Severity(typ), table.Severity(typ), typ)
	}
}

func TestSeverityTable_BirdWithoutBirdsEntry(t *testing.T) {
	// если убрать "Birds" из таблицы, оба написания всё равно дают Low через ветку по умолчанию
	table, err := NewSeverityTable(map[string]string{"UAV": "High", "Bird": "Low"})
	require.NoError(t, err)

	assert.Equal(t, models.SeverityLow, table.Severity("Bird"))
	assert.Equal(t, models.SeverityLow, table.Severity("Birds"))
}

func TestSeverityTable_Override(t *testing.T) {
	table, err := NewSeverityTable(map[string]string{"UAV": "Critical", "Birds": "Medium"})
	require.NoError(t, err)

	assert.Equal(t, models.SeverityCritical, table.Severity("UAV"))
	assert.Equal(t, models.SeverityMedium, table.Severity("Birds"))
	assert.Equal(t, models.SeverityLow, table.Severity("Bird"))
	assert.Equal(t, models.SeverityLow, table.Severity("Aircraft"))
}

func TestSeverityTable_RejectsUnknownLevel(t *testing.T) {
	_, err := NewSeverityTable(map[string]string{"UAV": "Extreme"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Extreme")
}
