package service

import (
	"fmt"

	"github.com/shenikar/airborne_threat_detection/internal/models"
)

// SeverityTable сопоставляет тип угрозы с уровнем алерта.
// Сравнение точное и чувствительное к регистру; всё, чего нет в таблице, получает Low.
type SeverityTable struct {
	levels map[string]models.Severity
}

// DefaultSeverityTable - таблица UAV/Aircraft/Bird(s), если конфигурация не задана
func DefaultSeverityTable() *SeverityTable {
	return &SeverityTable{
		levels: map[string]models.Severity{
			"UAV":      models.SeverityHigh,
			"Aircraft": models.SeverityMedium,
			"Bird":     models.SeverityLow,
			"Birds":    models.SeverityLow,
		},
	}
}

// NewSeverityTable строит таблицу из конфигурации и отклоняет неизвестные уровни
func NewSeverityTable(raw map[string]string) (*SeverityTable, error) {
	levels := make(map[string]models.Severity, len(raw))
	for threatType, level := range raw {
		severity, ok := models.ParseSeverity(level)
		if !ok {
			return nil, fmt.Errorf("unknown severity %q for threat type %q", level, threatType)
		}
		levels[threatType] = severity
	}
	return &SeverityTable{levels: levels}, nil
}

// Severity возвращает уровень для типа угрозы
func (t *SeverityTable) Severity(threatType string) models.Severity {
	if severity, ok := t.levels[threatType]; ok {
		return severity
	}
	return models.SeverityLow
}
