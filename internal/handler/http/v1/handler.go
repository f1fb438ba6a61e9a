package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/airborne_threat_detection/internal/config"
	"github.com/shenikar/airborne_threat_detection/internal/models"
	"github.com/shenikar/airborne_threat_detection/internal/service"
	"github.com/sirupsen/logrus"
)

// Services - набор сервисов, которые обслуживает HTTP слой
type Services struct {
	Detection    service.DetectionService
	Incidents    service.IncidentService
	Alerts       service.AlertService
	Threats      service.ThreatService
	SystemHealth service.SystemHealthService
}

type Handler struct {
	services Services
	logger   *logrus.Logger
	validate *validator.Validate
	cfg      *config.Config
}

func NewHandler(services Services, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		validate: validator.New(),
		cfg:      cfg,
	}
}

// bindAndValidate разбирает тело запроса и проверяет DTO; при ошибке ответ уже записан
func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// respondError переводит ошибку сервиса в HTTP статус: 400, 404 или 500
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, models.ErrValidation):
		log.WithError(err).Warn("Request rejected by validation")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNotFound):
		log.WithError(err).Warn("Requested entity not found")
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func parseID(c *gin.Context, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + entity + " ID"})
		return uuid.Nil, false
	}
	return id, true
}

func pagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	return page, pageSize
}

// Root godoc
// @Summary Root probe
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Server's Working Fine!"})
}

// @Summary Liveness probe
// @Description Get liveness status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/ping [get]
func (h *Handler) ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
