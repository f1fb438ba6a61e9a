package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Create a new incident
// @Description Create a new incident. Classification defaults to Unknown, action to Pending.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param incident body CreateIncidentRequest true "Incident creation request"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	model := DTOToIncidentModel(input)
	if err := h.services.Incidents.CreateIncident(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err, "incident not found")
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(model))
}

// @Summary Get a list of incidents
// @Description Get a paginated list of incidents, newest first.
// @Tags Incidents
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {array} IncidentResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")
	page, pageSize := pagination(c)

	incidents, err := h.services.Incidents.ListIncidents(c.Request.Context(), page, pageSize)
	if err != nil {
		h.respondError(c, log, err, "incidents not found")
		return
	}

	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get incident by ID
// @Tags Incidents
// @Produce json
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, ok := parseID(c, "incident")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.services.Incidents.GetIncident(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err, "incident not found")
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Delete an incident
// @Description Permanently delete an incident. Alerts issued for it are kept.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [delete]
func (h *Handler) deleteIncident(c *gin.Context) {
	id, ok := parseID(c, "incident")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteIncident").WithField("id", id)

	if err := h.services.Incidents.DeleteIncident(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err, "incident not found")
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get incident statistics
// @Description Count incidents per threat type over the configured time window.
// @Tags Incidents
// @Produce json
// @Success 200 {object} StatsResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.services.Incidents.GetStats(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err, "stats not found")
		return
	}

	c.JSON(http.StatusOK, StatsToResponse(stats, h.cfg.StatsTimeWindowMinutes))
}
