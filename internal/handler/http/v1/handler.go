package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/crisiswatch/crisis_alert_system/internal/config"
	"github.com/crisiswatch/crisis_alert_system/internal/geocode"
	"github.com/crisiswatch/crisis_alert_system/internal/ingest"
	"github.com/crisiswatch/crisis_alert_system/internal/models"
	"github.com/crisiswatch/crisis_alert_system/internal/service"
)

type Handler struct {
	alertService service.AlertService
	subService   service.SubscriptionService
	publisher    ingest.Publisher
	geocoder     geocode.Geocoder
	logger       *logrus.Logger
	validate     *validator.Validate
	cfg          *config.Config
}

func NewHandler(alertService service.AlertService, subService service.SubscriptionService, publisher ingest.Publisher, geocoder geocode.Geocoder, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		alertService: alertService,
		subService:   subService,
		publisher:    publisher,
		geocoder:     geocoder,
		logger:       logger,
		validate:     validator.New(),
		cfg:          cfg,
	}
}

// resolveLocation возвращает координаты из запроса: либо явные lat/lon,
// либо результат геокодирования адреса
func (h *Handler) resolveLocation(c *gin.Context, lat, lon *float64, address string) (float64, float64, bool) {
	if lat != nil && lon != nil {
		return *lat, *lon, true
	}
	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "either latitude/longitude or address is required"})
		return 0, 0, false
	}

	result, err := h.geocoder.Geocode(c.Request.Context(), address)
	if err != nil {
		h.geocodeError(c, err)
		return 0, 0, false
	}
	return result.Latitude, result.Longitude, true
}

// geocodeError сопоставляет типизированные отказы геокодера HTTP-статусам
func (h *Handler) geocodeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, geocode.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "geocoding service rate limit exceeded"})
	case errors.Is(err, geocode.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid address input"})
	case errors.Is(err, geocode.ErrNoResults):
		c.JSON(http.StatusNotFound, gin.H{"error": "could not find coordinates for this address"})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": "geocoding service unavailable"})
	}
}

// @Summary Create a test alert
// @Description Create a pending alert manually, by coordinates or address. Requires API key.
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

	lat, lon, ok := h.resolveLocation(c, input.Latitude, input.Longitude, input.Address)
	if !ok {
		return
	}

	alert := &models.Alert{
		Text:      input.Text,
		Latitude:  lat,
		Longitude: lon,
	}
	if err := h.alertService.CreateAlert(c.Request.Context(), alert); err != nil {
		log.WithError(err).Error("Failed to create alert in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToAlertResponse(alert))
}

// @Summary List pending alerts
// @Description Get all alerts awaiting operator review, newest first. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} AlertResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/pending [get]
func (h *Handler) listPendingAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "listPendingAlerts")

	alerts, err := h.alertService.ListPending(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list pending alerts from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToAlertResponses(alerts))
}

// @Summary Get alert by ID
// @Description Get a single alert by its ID. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Alert ID"
// @Success 200 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid alert ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Router /alerts/{id} [get]
func (h *Handler) getAlert(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
		return
	}
	log := h.logger.WithField("method", "getAlert").WithField("id", id)

	alert, err := h.alertService.GetAlert(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrAlertNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "alert not found"})
			return
		}
		log.WithError(err).Error("Failed to get alert from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToAlertResponse(alert))
}

// @Summary Confirm an alert
// @Description Confirm a pending alert and dispatch SMS notifications to subscribers in radius. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Alert ID"
// @Param confirm body ConfirmAlertRequest false "Final message text (optional)"
// @Success 200 {object} ConfirmAlertResponse
// @Failure 400 {object} map[string]string "Invalid alert ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 409 {object} map[string]string "Alert is not pending"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/{id}/confirm [post]
func (h *Handler) confirmAlert(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
		return
	}
	log := h.logger.WithField("method", "confirmAlert").WithField("id", id)

	var input ConfirmAlertRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			log.WithError(err).Warn("Failed to bind JSON")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}

	results, err := h.alertService.Confirm(c.Request.Context(), id, input.Text)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrAlertNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "alert not found"})
		case errors.Is(err, models.ErrAlertNotPending):
			c.JSON(http.StatusConflict, gin.H{"error": "alert is not pending"})
		default:
			log.WithError(err).Error("Failed to confirm alert in service")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, ConfirmAlertResponse{
		AlertID:  id,
		Notified: len(results),
		Results:  ResultsToResponses(results),
	})
}

// @Summary Dismiss an alert
// @Description Dismiss a pending alert without notifying anyone. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Alert ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid alert ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 409 {object} map[string]string "Alert is not pending"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/{id}/dismiss [post]
func (h *Handler) dismissAlert(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
		return
	}
	log := h.logger.WithField("method", "dismissAlert").WithField("id", id)

	if err := h.alertService.Dismiss(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, models.ErrAlertNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "alert not found"})
		case errors.Is(err, models.ErrAlertNotPending):
			c.JSON(http.StatusConflict, gin.H{"error": "alert is not pending"})
		default:
			log.WithError(err).Error("Failed to dismiss alert in service")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Register a subscriber
// @Description Register a phone number for SMS alerts within a radius of a location.
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param subscription body RegisterSubscriptionRequest true "Subscription request"
// @Success 201 {object} SubscriptionResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} map[string]string "Phone already registered"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /subscriptions [post]
func (h *Handler) registerSubscription(c *gin.Context) {
	var input RegisterSubscriptionRequest
	log := h.logger.WithField("method", "registerSubscription")

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

	lat, lon, ok := h.resolveLocation(c, input.Latitude, input.Longitude, input.Address)
	if !ok {
		return
	}

	sub := &models.Subscription{
		Phone:     input.Phone,
		Latitude:  lat,
		Longitude: lon,
		RadiusKm:  input.RadiusKm,
	}
	if err := h.subService.Register(c.Request.Context(), sub); err != nil {
		if errors.Is(err, models.ErrDuplicateSubscriber) {
			c.JSON(http.StatusConflict, gin.H{"error": "phone number already registered"})
			return
		}
		log.WithError(err).Error("Failed to register subscription in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToSubscriptionResponse(sub))
}

// @Summary List subscribers
// @Description Get all registered subscribers. Requires API key.
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} SubscriptionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /subscriptions [get]
func (h *Handler) listSubscriptions(c *gin.Context) {
	log := h.logger.WithField("method", "listSubscriptions")

	subs, err := h.subService.ListAll(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list subscriptions from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToSubscriptionResponses(subs))
}

// @Summary Ingest a candidate post
// @Description Publish a geotagged post to the ingest queue for classification.
// @Tags Ingest
// @Accept json
// @Produce json
// @Param post body IngestPostRequest true "Candidate post"
// @Success 202 {object} map[string]string "Accepted"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ingest/posts [post]
func (h *Handler) ingestPost(c *gin.Context) {
	var input IngestPostRequest
	log := h.logger.WithField("method", "ingestPost")

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

	post := models.CandidatePost{
		Text:      input.Text,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Source:    input.Source,
	}
	if err := h.publisher.Publish(c.Request.Context(), post); err != nil {
		log.WithError(err).Error("Failed to publish candidate post")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "queued"})
}

// @Summary Geocode an address
// @Description Resolve a free-text address to coordinates.
// @Tags Geocoding
// @Accept json
// @Produce json
// @Param address body GeocodeRequest true "Geocode request"
// @Success 200 {object} GeocodeResponse
// @Failure 400 {object} map[string]string "Invalid request or address input"
// @Failure 404 {object} map[string]string "No results"
// @Failure 429 {object} map[string]string "Rate limited"
// @Router /geocode [post]
func (h *Handler) geocodeAddress(c *gin.Context) {
	var input GeocodeRequest
	log := h.logger.WithField("method", "geocodeAddress")

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

	result, err := h.geocoder.Geocode(c.Request.Context(), input.Address)
	if err != nil {
		log.WithError(err).Warn("Geocoding failed")
		h.geocodeError(c, err)
		return
	}

	c.JSON(http.StatusOK, GeocodeResponse{
		Latitude:         result.Latitude,
		Longitude:        result.Longitude,
		FormattedAddress: result.FormattedAddress,
	})
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
