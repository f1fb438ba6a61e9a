package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/airborne_threat_detection/internal/models"
)

// @Summary Run threat detection
// @Description Sends the image to the detection service, stores an incident and issues an alert for known threat types.
// @Description The response is 200 even if the alert step failed; see alertStatus and alertError.
// @Tags Detections
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param detection body DetectionRequest true "Detection request"
// @Success 200 {object} DetectionResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Incident could not be stored"
// @Failure 502 {object} map[string]string "Detection service failed"
// @Router /detections [post]
func (h *Handler) detect(c *gin.Context) {
	var input DetectionRequest
	log := h.logger.WithField("method", "detect")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	outcome, err := h.services.Detection.Detect(c.Request.Context(), DTOToDetectionRequest(input))
	if err != nil {
		switch {
		case errors.Is(err, models.ErrPersistenceFailed):
			log.WithError(err).Error("Failed to persist detection result")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store incident"})
		case errors.Is(err, models.ErrValidation):
			log.WithError(err).Warn("Detection request rejected")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.WithError(err).Error("Detection failed")
			c.JSON(http.StatusBadGateway, gin.H{"error": "detection failed"})
		}
		return
	}

	c.JSON(http.StatusOK, OutcomeToDetectionResponse(outcome))
}
