package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// @Summary Create an alert
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param alert body CreateAlertRequest true "Alert creation request"
// @Success 201 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts [post]
func (h *Handler) createAlert(c *gin.Context) {
	var input CreateAlertRequest
	log := h.logger.WithField("method", "createAlert")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	model := DTOToAlertModel(input)
	if err := h.services.Alerts.CreateAlert(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err, "alert not found")
		return
	}
	c.JSON(http.StatusCreated, ModelToAlertResponse(model))
}

// @Summary List alerts
// @Description Newest first. Resolved alerts are hidden unless includeResolved=true.
// @Tags Alerts
// @Produce json
// @Param includeResolved query bool false "Include resolved alerts" default(false)
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {array} AlertResponse
// @Failure 400 {object} map[string]string "Invalid includeResolved"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts [get]
func (h *Handler) listAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "listAlerts")

	includeResolved, err := strconv.ParseBool(c.DefaultQuery("includeResolved", "false"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid includeResolved value"})
		return
	}
	page, pageSize := pagination(c)

	alerts, err := h.services.Alerts.ListAlerts(c.Request.Context(), includeResolved, page, pageSize)
	if err != nil {
		h.respondError(c, log, err, "alerts not found")
		return
	}
	c.JSON(http.StatusOK, ModelsToAlertResponses(alerts))
}

// @Summary Resolve an alert
// @Description Marks the alert as resolved. The record is kept.
// @Tags Alerts
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Alert ID"
// @Success 200 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid alert ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/{id} [delete]
func (h *Handler) resolveAlert(c *gin.Context) {
	id, ok := parseID(c, "alert")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "resolveAlert").WithField("id", id)

	alert, err := h.services.Alerts.ResolveAlert(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err, "alert not found")
		return
	}
	c.JSON(http.StatusOK, ModelToAlertResponse(alert))
}
