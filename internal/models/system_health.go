package models

import (
	"time"

	"github.com/google/uuid"
)

type SystemStatus string

const (
	StatusOperational SystemStatus = "Operational"
	StatusDegraded    SystemStatus = "Degraded"
	StatusDown        SystemStatus = "Down"
)

type WeatherConditions string

const (
	WeatherClear  WeatherConditions = "Clear"
	WeatherRainy  WeatherConditions = "Rainy"
	WeatherWindy  WeatherConditions = "Windy"
	WeatherStormy WeatherConditions = "Stormy"
)

type VisibilityStatus string

const (
	VisibilityExcellent VisibilityStatus = "Excellent"
	VisibilityGood      VisibilityStatus = "Good"
	VisibilityPoor      VisibilityStatus = "Poor"
)

// SystemHealth - снимок состояния системы; актуальным считается последний обновленный
type SystemHealth struct {
	ID                uuid.UUID         `json:"id"`
	Status            SystemStatus      `json:"status" validate:"required,oneof=Operational Degraded Down"`
	ResponseTime      string            `json:"responseTime"`
	WeatherConditions WeatherConditions `json:"weatherConditions" validate:"required,oneof=Clear Rainy Windy Stormy"`
	VisibilityStatus  VisibilityStatus  `json:"visibilityStatus" validate:"required,oneof=Excellent Good Poor"`
	ActiveZones       []string          `json:"activeZones"`
	LastUpdated       time.Time         `json:"lastUpdated"`
}

// DefaultSystemHealth возвращает снимок со значениями по умолчанию
func DefaultSystemHealth() *SystemHealth {
	return &SystemHealth{
		Status:            StatusOperational,
		ResponseTime:      "1.8s",
		WeatherConditions: WeatherClear,
		VisibilityStatus:  VisibilityExcellent,
		ActiveZones:       []string{},
	}
}

func (h *SystemHealth) Validate() error {
	return validateStruct("system health", h)
}

// SystemHealthUpdate - частичное обновление снимка; nil означает "не менять"
type SystemHealthUpdate struct {
	Status            *SystemStatus
	ResponseTime      *string
	WeatherConditions *WeatherConditions
	VisibilityStatus  *VisibilityStatus
	ActiveZones       []string
}

// Apply переносит заданные поля в снимок
func (u SystemHealthUpdate) Apply(h *SystemHealth) {
	if u.Status != nil {
		h.Status = *u.Status
	}
	if u.ResponseTime != nil {
		h.ResponseTime = *u.ResponseTime
	}
	if u.WeatherConditions != nil {
		h.WeatherConditions = *u.WeatherConditions
	}
	if u.VisibilityStatus != nil {
		h.VisibilityStatus = *u.VisibilityStatus
	}
	if u.ActiveZones != nil {
		h.ActiveZones = append([]string(nil), u.ActiveZones...)
	}
}
