package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Severity - уровень срочности алерта
type Severity string

const (
	SeverityCritical Severity = "Critical"
	SeverityHigh     Severity = "High"
	SeverityMedium   Severity = "Medium"
	SeverityLow      Severity = "Low"
)

// ParseSeverity проверяет, что строка является допустимым уровнем
func ParseSeverity(s string) (Severity, bool) {
	switch sev := Severity(s); sev {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return sev, true
	}
	return "", false
}

// Alert - уведомление, производное от инцидента
type Alert struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message" validate:"required"`
	Severity  Severity  `json:"severity" validate:"required,oneof=Critical High Medium Low"`
	Camera    string    `json:"camera" validate:"required"`
	Speed     string    `json:"speed,omitempty"`
	Altitude  string    `json:"altitude,omitempty"`
	Heading   string    `json:"heading,omitempty"`
	Resolved  bool      `json:"resolved"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Normalize убирает пробелы по краям текстовых полей
func (a *Alert) Normalize() {
	a.Message = strings.TrimSpace(a.Message)
	a.Camera = strings.TrimSpace(a.Camera)
	a.Speed = strings.TrimSpace(a.Speed)
	a.Altitude = strings.TrimSpace(a.Altitude)
	a.Heading = strings.TrimSpace(a.Heading)
}

// Validate проверяет алерт перед сохранением
func (a *Alert) Validate() error {
	return validateStruct("alert", a)
}
