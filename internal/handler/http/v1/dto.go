package v1

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// DetectionRequest DTO для запуска распознавания
// @Description DTO для запуска распознавания. camera проверяется на шаге выпуска алерта.
type DetectionRequest struct {
	ImageData string   `json:"imageData" validate:"required"`
	Location  string   `json:"location" validate:"required"`
	Lat       *float64 `json:"lat" validate:"required,latitude"`
	Lng       *float64 `json:"lng" validate:"required,longitude"`
	Camera    string   `json:"camera"`
}

// DetectionResponse DTO для ответа оркестратора
// @Description Инцидент, сырой ответ сервиса распознавания и, если выпущен, алерт
type DetectionResponse struct {
	Message     string            `json:"message"`
	Incident    *IncidentResponse `json:"incident"`
	Result      json.RawMessage   `json:"result" swaggertype:"object"`
	Alert       *AlertResponse    `json:"alert,omitempty"`
	AlertStatus string            `json:"alertStatus" enums:"not_required,issued,failed"`
	AlertError  string            `json:"alertError,omitempty"`
}

// CreateIncidentRequest DTO для создания инцидента
// @Description DTO для создания инцидента
type CreateIncidentRequest struct {
	Location       string   `json:"location" validate:"required"`
	Type           string   `json:"type" validate:"required,oneof=UAV Birds Aircraft Unknown"`
	Classification string   `json:"classification,omitempty" validate:"omitempty,oneof=Military Commercial Civilian Unknown"`
	Confidence     *float64 `json:"confidence" validate:"required,gte=0,lte=100"`
	Action         string   `json:"action,omitempty" validate:"omitempty,oneof=Tracked Reported Neutralized Pending"`
	Lat            *float64 `json:"lat" validate:"required,latitude"`
	Lng            *float64 `json:"lng" validate:"required,longitude"`
	ImageURL       string   `json:"imageUrl,omitempty"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID             uuid.UUID `json:"id"`
	Timestamp      time.Time `json:"timestamp"`
	Location       string    `json:"location"`
	Type           string    `json:"type"`
	Classification string    `json:"classification"`
	Confidence     float64   `json:"confidence"`
	Action         string    `json:"action"`
	Lat            float64   `json:"lat"`
	Lng            float64   `json:"lng"`
	ImageURL       string    `json:"imageUrl,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// IncidentStatResponse DTO для статистики по типу
type IncidentStatResponse struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// StatsResponse DTO для ответа со статистикой
// @Description Количество инцидентов по типам за окно времени
type StatsResponse struct {
	WindowMinutes int                    `json:"windowMinutes"`
	Total         int                    `json:"total"`
	ByType        []IncidentStatResponse `json:"byType"`
}

// CreateAlertRequest DTO для создания алерта
// @Description DTO для создания алерта
type CreateAlertRequest struct {
	Message  string `json:"message" validate:"required"`
	Severity string `json:"severity" validate:"required,oneof=Critical High Medium Low"`
	Camera   string `json:"camera" validate:"required"`
	Speed    string `json:"speed,omitempty"`
	Altitude string `json:"altitude,omitempty"`
	Heading  string `json:"heading,omitempty"`
}

// AlertResponse DTO для ответа с информацией об алерте
type AlertResponse struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	Severity  string    `json:"severity"`
	Camera    string    `json:"camera"`
	Speed     string    `json:"speed,omitempty"`
	Altitude  string    `json:"altitude,omitempty"`
	Heading   string    `json:"heading,omitempty"`
	Resolved  bool      `json:"resolved"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateThreatRequest DTO для создания угрозы
type CreateThreatRequest struct {
	Type       string   `json:"type" validate:"required"`
	Confidence *float64 `json:"confidence" validate:"required,gte=0"`
	Location   string   `json:"location,omitempty"`
}

type ThreatResponse struct {
	ID         uuid.UUID `json:"id"`
	Type       string    `json:"type"`
	Confidence float64   `json:"confidence"`
	Location   string    `json:"location,omitempty"`
	DetectedAt time.Time `json:"detectedAt"`
}

// UpdateSystemHealthRequest DTO для частичного обновления состояния системы
// @Description Незаданные поля не меняются
type UpdateSystemHealthRequest struct {
	Status            *string  `json:"status,omitempty" validate:"omitempty,oneof=Operational Degraded Down"`
	ResponseTime      *string  `json:"responseTime,omitempty"`
	WeatherConditions *string  `json:"weatherConditions,omitempty" validate:"omitempty,oneof=Clear Rainy Windy Stormy"`
	VisibilityStatus  *string  `json:"visibilityStatus,omitempty" validate:"omitempty,oneof=Excellent Good Poor"`
	ActiveZones       []string `json:"activeZones,omitempty"`
}

type SystemHealthResponse struct {
	ID                uuid.UUID `json:"id"`
	Status            string    `json:"status"`
	ResponseTime      string    `json:"responseTime"`
	WeatherConditions string    `json:"weatherConditions"`
	VisibilityStatus  string    `json:"visibilityStatus"`
	ActiveZones       []string  `json:"activeZones"`
	LastUpdated       time.Time `json:"lastUpdated"`
}
