package models

import (
	"time"

	"github.com/google/uuid"
)

// Threat - самостоятельная запись об угрозе, не связанная с инцидентами
type Threat struct {
	ID         uuid.UUID `json:"id"`
	Type       string    `json:"type" validate:"required"`
	Confidence float64   `json:"confidence" validate:"gte=0"`
	Location   string    `json:"location,omitempty"`
	DetectedAt time.Time `json:"detectedAt"`
}

func (t *Threat) Validate() error {
	return validateStruct("threat", t)
}
