package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validIncident() *Incident {
	return &Incident{
		Location:   "Zone A",
		Type:       ThreatTypeUAV,
		Confidence: 87.5,
		Lat:        floatPtr(28.61),
		Lng:        floatPtr(77.21),
	}
}

func floatPtr(v float64) *float64 { return &v }

func TestIncident_ApplyDefaults(t *testing.T) {
	incident := validIncident()
	incident.ApplyDefaults()

	assert.Equal(t, ClassificationUnknown, incident.Classification)
	assert.Equal(t, ActionPending, incident.Action)

	incident = validIncident()
	incident.Classification = ClassificationMilitary
	incident.Action = ActionTracked
	incident.ApplyDefaults()

	assert.Equal(t, ClassificationMilitary, incident.Classification)
	assert.Equal(t, ActionTracked, incident.Action)
}

func TestIncident_ConfidenceBounds(t *testing.T) {
	tests := []struct {
		confidence float64
		valid      bool
	}{
		{-0.01, false},
		{0, true},
		{50, true},
		{100, true},
		{100.01, false},
	}

	for _, tt := range tests {
		incident := validIncident()
		incident.Confidence = tt.confidence
		incident.ApplyDefaults()

		err := incident.Validate()
		if tt.valid {
			assert.NoError(t, err, "confidence %v", tt.confidence)
			continue
		}
		require.Error(t, err, "confidence %v", tt.confidence)
		assert.True(t, errors.Is(err, ErrValidation))
		assert.Contains(t, err.Error(), "Confidence")
	}
}

func TestIncident_RequiredFields(t *testing.T) {
	incident := validIncident()
	incident.Location = ""
	incident.ApplyDefaults()

	err := incident.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "Location failed on 'required'")

	incident = validIncident()
	incident.Type = ""
	incident.ApplyDefaults()
	assert.ErrorIs(t, incident.Validate(), ErrValidation)
}

func TestIncident_TypeVocabulary(t *testing.T) {
	for _, typ := range []ThreatType{ThreatTypeUAV, ThreatTypeBirds, ThreatTypeAircraft, ThreatTypeUnknown} {
		incident := validIncident()
		incident.Type = typ
		incident.ApplyDefaults()
		assert.NoError(t, incident.Validate(), typ)
	}

	// gateway может вернуть "Bird", но в словаре инцидентов только "Birds"
	incident := validIncident()
	incident.Type = "Bird"
	incident.ApplyDefaults()
	err := incident.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Type failed on 'oneof=UAV Birds Aircraft Unknown'")
}

func TestIncident_CoordinateRange(t *testing.T) {
	incident := validIncident()
	incident.Lat = floatPtr(91)
	incident.ApplyDefaults()
	assert.ErrorIs(t, incident.Validate(), ErrValidation)

	incident = validIncident()
	incident.Lng = floatPtr(-180.5)
	incident.ApplyDefaults()
	assert.ErrorIs(t, incident.Validate(), ErrValidation)
}

func TestIncident_CoordinatesRequired(t *testing.T) {
	incident := validIncident()
	incident.Lat = nil
	incident.ApplyDefaults()
	err := incident.Validate()
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "Lat")

	incident = validIncident()
	incident.Lng = nil
	incident.ApplyDefaults()
	assert.ErrorIs(t, incident.Validate(), ErrValidation)

	// нулевые координаты допустимы
	incident = validIncident()
	incident.Lat, incident.Lng = floatPtr(0), floatPtr(0)
	incident.ApplyDefaults()
	assert.NoError(t, incident.Validate())
}

func TestAlert_NormalizeAndValidate(t *testing.T) {
	alert := &Alert{
		Message:  "  UAV detected at Zone A ",
		Severity: SeverityHigh,
		Camera:   " CAM-01 ",
		Speed:    " 40 km/h",
	}
	alert.Normalize()

	require.NoError(t, alert.Validate())
	assert.Equal(t, "UAV detected at Zone A", alert.Message)
	assert.Equal(t, "CAM-01", alert.Camera)
	assert.Equal(t, "40 km/h", alert.Speed)

	alert.Camera = "   "
	alert.Normalize()
	err := alert.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "Camera")
}

func TestAlert_SeverityVocabulary(t *testing.T) {
	alert := &Alert{Message: "m", Camera: "c", Severity: "Severe"}
	assert.ErrorIs(t, alert.Validate(), ErrValidation)

	for _, s := range []string{"Critical", "High", "Medium", "Low"} {
		sev, ok := ParseSeverity(s)
		assert.True(t, ok)
		assert.Equal(t, Severity(s), sev)
	}
	_, ok := ParseSeverity("high")
	assert.False(t, ok)
}

func TestSystemHealth_Defaults(t *testing.T) {
	health := DefaultSystemHealth()

	require.NoError(t, health.Validate())
	assert.Equal(t, StatusOperational, health.Status)
	assert.Equal(t, "1.8s", health.ResponseTime)
	assert.Empty(t, health.ActiveZones)

	health.VisibilityStatus = "Foggy"
	assert.ErrorIs(t, health.Validate(), ErrValidation)
}

func TestThreat_Validate(t *testing.T) {
	assert.NoError(t, (&Threat{Type: "Drone", Confidence: 0.9}).Validate())
	assert.ErrorIs(t, (&Threat{Confidence: 0.9}).Validate(), ErrValidation)
	assert.ErrorIs(t, (&Threat{Type: "Drone", Confidence: -1}).Validate(), ErrValidation)
}

func TestValidationError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &ValidationError{Entity: "incident", Err: cause}

	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "invalid incident: boom", err.Error())
}
