package models

import "encoding/json"

// DetectionResult - успешный ответ сервиса распознавания
type DetectionResult struct {
	ThreatType    string  `json:"threatType"`
	Confidence    float64 `json:"confidence"`
	BoxedImageURL string  `json:"boxedImageUrl"`
	// Raw - тело ответа без изменений
	Raw json.RawMessage `json:"-"`
}

// DetectionRequest - входные данные оркестратора
type DetectionRequest struct {
	ImageData string
	Location  string
	Lat       *float64
	Lng       *float64
	Camera    string
}

// AlertState - что произошло на шаге создания алерта
type AlertState string

const (
	AlertNotRequired AlertState = "not_required"
	AlertIssued      AlertState = "issued"
	AlertFailed      AlertState = "failed"
)

// DetectionOutcome - результат оркестрации. При AlertFailed инцидент уже сохранен,
// а AlertErr содержит причину.
type DetectionOutcome struct {
	Incident   *Incident
	Detection  *DetectionResult
	Alert      *Alert
	AlertState AlertState
	AlertErr   error
}
