package v1

import (
	"encoding/json"

	"github.com/shenikar/airborne_threat_detection/internal/models"
)

// deref возвращает значение указателя или ноль
func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func DTOToDetectionRequest(dto DetectionRequest) models.DetectionRequest {
	return models.DetectionRequest{
		ImageData: dto.ImageData,
		Location:  dto.Location,
		Lat:       dto.Lat,
		Lng:       dto.Lng,
		Camera:    dto.Camera,
	}
}

// OutcomeToDetectionResponse собирает ответ оркестратора; result отдается как есть
func OutcomeToDetectionResponse(outcome *models.DetectionOutcome) *DetectionResponse {
	resp := &DetectionResponse{
		Message:     "Detection processed",
		Incident:    ModelToIncidentResponse(outcome.Incident),
		AlertStatus: string(outcome.AlertState),
	}
	if outcome.Detection != nil {
		resp.Result = outcome.Detection.Raw
		if len(resp.Result) == 0 {
			resp.Result, _ = json.Marshal(outcome.Detection)
		}
	}
	if outcome.Alert != nil {
		resp.Alert = ModelToAlertResponse(outcome.Alert)
	}
	if outcome.AlertErr != nil {
		resp.Message = "Incident saved, alert was not created"
		resp.AlertError = outcome.AlertErr.Error()
	}
	return resp
}

// DTOToIncidentModel преобразует DTO создания в доменную модель
func DTOToIncidentModel(dto CreateIncidentRequest) *models.Incident {
	return &models.Incident{
		Location:       dto.Location,
		Type:           models.ThreatType(dto.Type),
		Classification: models.Classification(dto.Classification),
		Confidence:     deref(dto.Confidence),
		Action:         models.IncidentAction(dto.Action),
		Lat:            dto.Lat,
		Lng:            dto.Lng,
		ImageURL:       dto.ImageURL,
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:             model.ID,
		Timestamp:      model.Timestamp,
		Location:       model.Location,
		Type:           string(model.Type),
		Classification: string(model.Classification),
		Confidence:     model.Confidence,
		Action:         string(model.Action),
		Lat:            deref(model.Lat),
		Lng:            deref(model.Lng),
		ImageURL:       model.ImageURL,
		CreatedAt:      model.CreatedAt,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

func StatsToResponse(stats []models.IncidentStat, windowMinutes int) *StatsResponse {
	resp := &StatsResponse{
		WindowMinutes: windowMinutes,
		ByType:        make([]IncidentStatResponse, len(stats)),
	}
	for i, s := range stats {
		resp.ByType[i] = IncidentStatResponse{Type: string(s.Type), Count: s.Count}
		resp.Total += s.Count
	}
	return resp
}

func DTOToAlertModel(dto CreateAlertRequest) *models.Alert {
	return &models.Alert{
		Message:  dto.Message,
		Severity: models.Severity(dto.Severity),
		Camera:   dto.Camera,
		Speed:    dto.Speed,
		Altitude: dto.Altitude,
		Heading:  dto.Heading,
	}
}

func ModelToAlertResponse(model *models.Alert) *AlertResponse {
	return &AlertResponse{
		ID:        model.ID,
		Message:   model.Message,
		Severity:  string(model.Severity),
		Camera:    model.Camera,
		Speed:     model.Speed,
		Altitude:  model.Altitude,
		Heading:   model.Heading,
		Resolved:  model.Resolved,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ModelsToAlertResponses(models []*models.Alert) []*AlertResponse {
	responses := make([]*AlertResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToAlertResponse(model)
	}
	return responses
}

func DTOToThreatModel(dto CreateThreatRequest) *models.Threat {
	return &models.Threat{
		Type:       dto.Type,
		Confidence: deref(dto.Confidence),
		Location:   dto.Location,
	}
}

func ModelToThreatResponse(model *models.Threat) *ThreatResponse {
	return &ThreatResponse{
		ID:         model.ID,
		Type:       model.Type,
		Confidence: model.Confidence,
		Location:   model.Location,
		DetectedAt: model.DetectedAt,
	}
}

func ModelsToThreatResponses(models []*models.Threat) []*ThreatResponse {
	responses := make([]*ThreatResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToThreatResponse(model)
	}
	return responses
}

func DTOToSystemHealthUpdate(dto UpdateSystemHealthRequest) models.SystemHealthUpdate {
	update := models.SystemHealthUpdate{
		ResponseTime: dto.ResponseTime,
		ActiveZones:  dto.ActiveZones,
	}
	if dto.Status != nil {
		status := models.SystemStatus(*dto.Status)
		update.Status = &status
	}
	if dto.WeatherConditions != nil {
		weather := models.WeatherConditions(*dto.WeatherConditions)
		update.WeatherConditions = &weather
	}
	if dto.VisibilityStatus != nil {
		visibility := models.VisibilityStatus(*dto.VisibilityStatus)
		update.VisibilityStatus = &visibility
	}
	return update
}

func ModelToSystemHealthResponse(model *models.SystemHealth) *SystemHealthResponse {
	zones := model.ActiveZones
	if zones == nil {
		zones = []string{}
	}
	return &SystemHealthResponse{
		ID:                model.ID,
		Status:            string(model.Status),
		ResponseTime:      model.ResponseTime,
		WeatherConditions: string(model.WeatherConditions),
		VisibilityStatus:  string(model.VisibilityStatus),
		ActiveZones:       zones,
		LastUpdated:       model.LastUpdated,
	}
}
