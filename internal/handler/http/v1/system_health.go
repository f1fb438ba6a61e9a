package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Get system health
// @Description Returns the most recently updated system health snapshot.
// @Tags System
// @Produce json
// @Success 200 {object} SystemHealthResponse
// @Failure 404 {object} map[string]string "No snapshot yet"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /system/health [get]
func (h *Handler) getSystemHealth(c *gin.Context) {
	log := h.logger.WithField("method", "getSystemHealth")

	health, err := h.services.SystemHealth.GetSystemHealth(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err, "system health not found")
		return
	}
	c.JSON(http.StatusOK, ModelToSystemHealthResponse(health))
}

// @Summary Update system health
// @Description Merges the given fields into the latest snapshot, creating one from defaults if none exists.
// @Tags System
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param health body UpdateSystemHealthRequest true "Fields to change"
// @Success 200 {object} SystemHealthResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /system/health [put]
func (h *Handler) updateSystemHealth(c *gin.Context) {
	var input UpdateSystemHealthRequest
	log := h.logger.WithField("method", "updateSystemHealth")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	health, err := h.services.SystemHealth.UpdateSystemHealth(c.Request.Context(), DTOToSystemHealthUpdate(input))
	if err != nil {
		h.respondError(c, log, err, "system health not found")
		return
	}
	c.JSON(http.StatusOK, ModelToSystemHealthResponse(health))
}
