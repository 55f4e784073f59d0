package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/emergency_callout_system/internal/models"
	"github.com/shenikar/emergency_callout_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	incidentService service.IncidentService
	responseService service.ResponseService
	sessions        service.SessionStore
	logger          *logrus.Logger
	validate        *validator.Validate
}

func NewHandler(incidentService service.IncidentService, responseService service.ResponseService, sessions service.SessionStore, logger *logrus.Logger) *Handler {
	return &Handler{
		incidentService: incidentService,
		responseService: responseService,
		sessions:        sessions,
		logger:          logger,
		validate:        validator.New(),
	}
}

// respondServiceError сопоставляет виды ошибок сервиса HTTP-кодам
func respondServiceError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		log.WithError(err).Warn("Validation failed in service")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUnauthenticated):
		log.WithError(err).Warn("Unauthenticated request")
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		log.WithError(err).Warn("Forbidden request")
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		log.WithError(err).Warn("Requested entity not found")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error("Unexpected service error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Create a new call-out incident
// @Description Create a new call-out incident, resolve its target group and notify the group's members.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param incident body CreateIncidentRequest true "Incident creation request"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToIncidentModel(input)
	if err := h.incidentService.CreateIncident(c.Request.Context(), model); err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(model))
}

// @Summary Get incident by ID
// @Description Get a single incident with its area, group and responses.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Get a list of incidents
// @Description Get a filtered, paginated list of incidents with response details.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param status query string false "Incident status filter" Enums(active, completed, cancelled)
// @Param group_id query string false "Target group filter"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page start position" default(0)
// @Success 200 {object} ListIncidentsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	filter, limit, offset, err := parseListQuery(c)
	if err != nil {
		log.WithError(err).Warn("Invalid list query parameters")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := h.incidentService.ListIncidents(c.Request.Context(), filter, limit, offset)
	if err != nil {
		respondServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ListIncidentsResponse{
		Items: ModelsToIncidentResponses(page.Items),
		Pagination: Pagination{
			Total:   page.Total,
			Limit:   page.Limit,
			Offset:  page.Offset,
			HasMore: page.HasMore,
		},
	})
}

// parseListQuery разбирает параметры списка в типизированный фильтр.
// Нечисловые limit/offset и неизвестный статус - ошибка валидации.
func parseListQuery(c *gin.Context) (models.IncidentFilter, int, int, error) {
	var filter models.IncidentFilter

	if raw := c.Query("status"); raw != "" {
		status := models.IncidentStatus(raw)
		if !status.Valid() {
			return filter, 0, 0, errors.New("invalid status filter")
		}
		filter.Status = &status
	}
	if raw := c.Query("group_id"); raw != "" {
		groupID, err := uuid.Parse(raw)
		if err != nil {
			return filter, 0, 0, errors.New("invalid group_id filter")
		}
		filter.GroupID = &groupID
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return filter, 0, 0, errors.New("limit must be a number")
		}
		limit = parsed
	}
	offset := 0
	if raw := c.Query("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return filter, 0, 0, errors.New("offset must be a number")
		}
		offset = parsed
	}

	return filter, limit, offset, nil
}

// @Summary Submit a call-out response
// @Description Report the authenticated responder's intent to respond to an incident. Resubmission overwrites the previous response. Requires a session token.
// @Tags Responses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param response body SubmitResponseRequest true "Response submission request"
// @Success 200 {object} ResponseInfo
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Responder is not a member of the incident's target group"
// @Failure 404 {object} map[string]string "Incident or responder not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/response [post]
func (h *Handler) submitResponse(c *gin.Context) {
	incidentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "submitResponse").WithField("incident_id", incidentID)

	responderID, ok := c.Get(responderIDKey)
	if !ok {
		log.Error("Responder identity missing from authenticated request")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var input SubmitResponseRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.responseService.SubmitResponse(c.Request.Context(), incidentID, responderID.(uuid.UUID), service.SubmitResponseInput{
		ResponseType:     models.ResponseType(input.ResponseType),
		EstimatedArrival: input.EstimatedArrival,
		Notes:            input.Notes,
	})
	if err != nil {
		respondServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelToResponseInfo(response))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
