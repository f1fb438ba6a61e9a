package models

import (
	"time"

	"github.com/google/uuid"
)

// ThreatType - тип обнаруженного объекта
type ThreatType string

const (
	ThreatTypeUAV      ThreatType = "UAV"
	ThreatTypeBirds    ThreatType = "Birds"
	ThreatTypeAircraft ThreatType = "Aircraft"
	ThreatTypeUnknown  ThreatType = "Unknown"
)

// Classification - принадлежность объекта
type Classification string

const (
	ClassificationMilitary   Classification = "Military"
	ClassificationCommercial Classification = "Commercial"
	ClassificationCivilian   Classification = "Civilian"
	ClassificationUnknown    Classification = "Unknown"
)

// IncidentAction - принятая по инциденту мера
type IncidentAction string

const (
	ActionTracked     IncidentAction = "Tracked"
	ActionReported    IncidentAction = "Reported"
	ActionNeutralized IncidentAction = "Neutralized"
	ActionPending     IncidentAction = "Pending"
)

// Incident - одно событие обнаружения
type Incident struct {
	ID             uuid.UUID      `json:"id"`
	Timestamp      time.Time      `json:"timestamp"`
	Location       string         `json:"location" validate:"required"`
	Type           ThreatType     `json:"type" validate:"required,oneof=UAV Birds Aircraft Unknown"`
	Classification Classification `json:"classification" validate:"required,oneof=Military Commercial Civilian Unknown"`
	Confidence     float64        `json:"confidence" validate:"gte=0,lte=100"`
	Action         IncidentAction `json:"action" validate:"required,oneof=Tracked Reported Neutralized Pending"`
	Lat            *float64       `json:"lat" validate:"required,gte=-90,lte=90"`
	Lng            *float64       `json:"lng" validate:"required,gte=-180,lte=180"`
	ImageURL       string         `json:"imageUrl,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// ApplyDefaults проставляет значения по умолчанию для необязательных полей
func (i *Incident) ApplyDefaults() {
	if i.Classification == "" {
		i.Classification = ClassificationUnknown
	}
	if i.Action == "" {
		i.Action = ActionPending
	}
}

// Validate проверяет инцидент перед сохранением
func (i *Incident) Validate() error {
	return validateStruct("incident", i)
}

// IncidentStat - количество инцидентов одного типа за окно времени
type IncidentStat struct {
	Type  ThreatType `json:"type"`
	Count int        `json:"count"`
}
