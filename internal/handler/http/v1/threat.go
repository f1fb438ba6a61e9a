package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Create a threat record
// @Tags Threats
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param threat body CreateThreatRequest true "Threat creation request"
// @Success 201 {object} ThreatResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /threats [post]
func (h *Handler) createThreat(c *gin.Context) {
	var input CreateThreatRequest
	log := h.logger.WithField("method", "createThreat")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	model := DTOToThreatModel(input)
	if err := h.services.Threats.CreateThreat(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err, "threat not found")
		return
	}
	c.JSON(http.StatusCreated, ModelToThreatResponse(model))
}

// @Summary List threats
// @Tags Threats
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {array} ThreatResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /threats [get]
func (h *Handler) listThreats(c *gin.Context) {
	log := h.logger.WithField("method", "listThreats")
	page, pageSize := pagination(c)

	threats, err := h.services.Threats.ListThreats(c.Request.Context(), page, pageSize)
	if err != nil {
		h.respondError(c, log, err, "threats not found")
		return
	}
	c.JSON(http.StatusOK, ModelsToThreatResponses(threats))
}

// @Summary Delete a threat record
// @Tags Threats
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Threat ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid threat ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Threat not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /threats/{id} [delete]
func (h *Handler) deleteThreat(c *gin.Context) {
	id, ok := parseID(c, "threat")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteThreat").WithField("id", id)

	if err := h.services.Threats.DeleteThreat(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err, "threat not found")
		return
	}
	c.Status(http.StatusNoContent)
}
