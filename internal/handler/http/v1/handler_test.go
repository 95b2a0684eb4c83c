package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/crisiswatch/crisis_alert_system/internal/config"
	"github.com/crisiswatch/crisis_alert_system/internal/geocode"
	geocode_mocks "github.com/crisiswatch/crisis_alert_system/internal/geocode/mocks"
	ingest_mocks "github.com/crisiswatch/crisis_alert_system/internal/ingest/mocks"
	"github.com/crisiswatch/crisis_alert_system/internal/models"
	"github.com/crisiswatch/crisis_alert_system/internal/service/mocks"
)

type handlerMocks struct {
	alertService *mocks.MockAlertService
	subService   *mocks.MockSubscriptionService
	publisher    *ingest_mocks.MockPublisher
	geocoder     *geocode_mocks.MockGeocoder
}

// newTestHandler создает новый экземпляр Handler с мокированными зависимостями
func newTestHandler(t *testing.T) (*Handler, handlerMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	hm := handlerMocks{
		alertService: mocks.NewMockAlertService(ctrl),
		subService:   mocks.NewMockSubscriptionService(ctrl),
		publisher:    ingest_mocks.NewMockPublisher(ctrl),
		geocoder:     geocode_mocks.NewMockGeocoder(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys: []string{"test-api-key"},
	}

	handler := NewHandler(hm.alertService, hm.subService, hm.publisher, hm.geocoder, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, hm, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func authHeader() map[string]string {
	return map[string]string{"X-API-Key": "test-api-key"}
}

func f64(v float64) *float64 { return &v }

func TestCreateAlert_Success(t *testing.T) {
	_, hm, router := newTestHandler(t)
	reqBody := CreateAlertRequest{
		Text:      "Flood downtown",
		Latitude:  f64(22.57),
		Longitude: f64(88.36),
	}

	hm.alertService.EXPECT().
		CreateAlert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, alert *models.Alert) error {
			assert.Equal(t, reqBody.Text, alert.Text)
			assert.Equal(t, 22.57, alert.Latitude)
			assert.Equal(t, 88.36, alert.Longitude)
			alert.ID = 1
			alert.Status = models.AlertStatusPending
			alert.CreatedAt = time.Now()
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/alerts", bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp AlertResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, models.AlertStatusPending, resp.Status)
}

func TestCreateAlert_ByAddress(t *testing.T) {
	_, hm, router := newTestHandler(t)
	reqBody := CreateAlertRequest{
		Text:    "Fire near the station",
		Address: "Kolkata, India",
	}

	// Адрес геокодируется до создания алерта
	hm.geocoder.EXPECT().
		Geocode(gomock.Any(), "Kolkata, India").
		Return(geocode.Result{Latitude: 22.5726, Longitude: 88.3639, FormattedAddress: "Kolkata, West Bengal, India"}, nil).
		Times(1)

	hm.alertService.EXPECT().
		CreateAlert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, alert *models.Alert) error {
			assert.InDelta(t, 22.5726, alert.Latitude, 0.0001)
			assert.InDelta(t, 88.3639, alert.Longitude, 0.0001)
			alert.ID = 2
			alert.Status = models.AlertStatusPending
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/alerts", bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateAlert_NoLocation(t *testing.T) {
	_, hm, router := newTestHandler(t)
	reqBody := CreateAlertRequest{Text: "Flood downtown"} // Ни координат, ни адреса

	hm.alertService.EXPECT().CreateAlert(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/alerts", bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "either latitude/longitude or address is required")
}

func TestCreateAlert_ValidationError(t *testing.T) {
	_, hm, router := newTestHandler(t)
	reqBody := CreateAlertRequest{ // Отсутствует Text
		Latitude:  f64(22.57),
		Longitude: f64(88.36),
	}

	hm.alertService.EXPECT().CreateAlert(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/alerts", bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Text' failed on the 'required' tag")
}

func TestCreateAlert_Unauthorized(t *testing.T) {
	_, hm, router := newTestHandler(t)

	hm.alertService.EXPECT().CreateAlert(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(CreateAlertRequest{Text: "Flood", Latitude: f64(1), Longitude: f64(1)})
	w := makeRequest(router, "POST", "/api/v1/alerts", bytes.NewBuffer(bodyBytes)) // Нет API ключа

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestListPendingAlerts_Success(t *testing.T) {
	_, hm, router := newTestHandler(t)
	expectedAlerts := []*models.Alert{
		{ID: 2, Text: "Earthquake near the coast", Status: models.AlertStatusPending},
		{ID: 1, Text: "Flood downtown", Status: models.AlertStatusPending},
	}

	hm.alertService.EXPECT().ListPending(gomock.Any()).Return(expectedAlerts, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/alerts/pending", nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []AlertResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, int64(2), resp[0].ID)
}

func TestGetAlert_Success(t *testing.T) {
	_, hm, router := newTestHandler(t)
	expectedAlert := &models.Alert{
		ID:        7,
		Text:      "Flood downtown",
		Latitude:  22.57,
		Longitude: 88.36,
		Status:    models.AlertStatusPending,
	}

	hm.alertService.EXPECT().GetAlert(gomock.Any(), int64(7)).Return(expectedAlert, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/alerts/7", nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp AlertResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, expectedAlert.Text, resp.Text)
}

func TestGetAlert_InvalidID(t *testing.T) {
	_, hm, router := newTestHandler(t)

	hm.alertService.EXPECT().GetAlert(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/alerts/not-a-number", nil, authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid alert ID")
}

func TestGetAlert_NotFound(t *testing.T) {
	_, hm, router := newTestHandler(t)

	hm.alertService.EXPECT().GetAlert(gomock.Any(), int64(99)).Return(nil, models.ErrAlertNotFound).Times(1)

	w := makeRequest(router, "GET", "/api/v1/alerts/99", nil, authHeader())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "alert not found")
}

func TestConfirmAlert_Success(t *testing.T) {
	_, hm, router := newTestHandler(t)
	results := []models.NotificationResult{
		{SubscriberID: 1, Success: true, Detail: "SM123"},
		{SubscriberID: 2, Success: false, Detail: "sms provider error"},
	}

	hm.alertService.EXPECT().Confirm(gomock.Any(), int64(5), "").Return(results, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/alerts/5/confirm", nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ConfirmAlertResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.AlertID)
	assert.Equal(t, 2, resp.Notified)
	require.Len(t, resp.Results, 2)
	assert.True(t, resp.Results[0].Success)
	assert.False(t, resp.Results[1].Success)
}

func TestConfirmAlert_WithEditedText(t *testing.T) {
	_, hm, router := newTestHandler(t)
	reqBody := ConfirmAlertRequest{Text: "Severe flood downtown, avoid the riverside"}

	hm.alertService.EXPECT().
		Confirm(gomock.Any(), int64(5), reqBody.Text).
		Return([]models.NotificationResult{}, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/alerts/5/confirm", bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestConfirmAlert_NotFound(t *testing.T) {
	_, hm, router := newTestHandler(t)

	hm.alertService.EXPECT().Confirm(gomock.Any(), int64(99), "").Return(nil, models.ErrAlertNotFound).Times(1)

	w := makeRequest(router, "POST", "/api/v1/alerts/99/confirm", nil, authHeader())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "alert not found")
}

func TestConfirmAlert_NotPending(t *testing.T) {
	_, hm, router := newTestHandler(t)

	hm.alertService.EXPECT().Confirm(gomock.Any(), int64(5), "").Return(nil, models.ErrAlertNotPending).Times(1)

	w := makeRequest(router, "POST", "/api/v1/alerts/5/confirm", nil, authHeader())

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "alert is not pending")
}

func TestConfirmAlert_ServiceError(t *testing.T) {
	_, hm, router := newTestHandler(t)
	serviceError := errors.New("dispatch failed")

	hm.alertService.EXPECT().Confirm(gomock.Any(), int64(5), "").Return(nil, serviceError).Times(1)

	w := makeRequest(router, "POST", "/api/v1/alerts/5/confirm", nil, authHeader())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestDismissAlert_Success(t *testing.T) {
	_, hm, router := newTestHandler(t)

	hm.alertService.EXPECT().Dismiss(gomock.Any(), int64(5)).Return(nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/alerts/5/dismiss", nil, authHeader())

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDismissAlert_NotPending(t *testing.T) {
	_, hm, router := newTestHandler(t)

	hm.alertService.EXPECT().Dismiss(gomock.Any(), int64(5)).Return(models.ErrAlertNotPending).Times(1)

	w := makeRequest(router, "POST", "/api/v1/alerts/5/dismiss", nil, authHeader())

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "alert is not pending")
}

func TestDismissAlert_NotFound(t *testing.T) {
	_, hm, router := newTestHandler(t)

	hm.alertService.EXPECT().Dismiss(gomock.Any(), int64(99)).Return(models.ErrAlertNotFound).Times(1)

	w := makeRequest(router, "POST", "/api/v1/alerts/99/dismiss", nil, authHeader())

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRegisterSubscription_Success(t *testing.T) {
	_, hm, router := newTestHandler(t)
	reqBody := RegisterSubscriptionRequest{
		Phone:     "+15550001111",
		Latitude:  f64(22.57),
		Longitude: f64(88.37),
		RadiusKm:  5,
	}

	hm.subService.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sub *models.Subscription) error {
			assert.Equal(t, reqBody.Phone, sub.Phone)
			assert.Equal(t, 5.0, sub.RadiusKm)
			sub.ID = 1
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/subscriptions", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp SubscriptionResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, reqBody.Phone, resp.Phone)
}

func TestRegisterSubscription_DuplicatePhone(t *testing.T) {
	_, hm, router := newTestHandler(t)
	reqBody := RegisterSubscriptionRequest{
		Phone:     "+15550001111",
		Latitude:  f64(22.57),
		Longitude: f64(88.37),
		RadiusKm:  5,
	}

	hm.subService.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.ErrDuplicateSubscriber).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/subscriptions", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "phone number already registered")
}

func TestRegisterSubscription_InvalidPhone(t *testing.T) {
	_, hm, router := newTestHandler(t)
	reqBody := RegisterSubscriptionRequest{
		Phone:     "not-a-phone",
		Latitude:  f64(22.57),
		Longitude: f64(88.37),
		RadiusKm:  5,
	}

	hm.subService.EXPECT().Register(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/subscriptions", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Phone' failed on the 'e164' tag")
}

func TestRegisterSubscription_ZeroRadius(t *testing.T) {
	_, hm, router := newTestHandler(t)
	reqBody := RegisterSubscriptionRequest{
		Phone:     "+15550001111",
		Latitude:  f64(22.57),
		Longitude: f64(88.37),
		RadiusKm:  0,
	}

	hm.subService.EXPECT().Register(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/subscriptions", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "'RadiusKm' failed on the 'required' tag")
}

func TestListSubscriptions_Success(t *testing.T) {
	_, hm, router := newTestHandler(t)
	expectedSubs := []*models.Subscription{
		{ID: 1, Phone: "+15550001111", Latitude: 22.57, Longitude: 88.37, RadiusKm: 5},
	}

	hm.subService.EXPECT().ListAll(gomock.Any()).Return(expectedSubs, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/subscriptions", nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []SubscriptionResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, expectedSubs[0].Phone, resp[0].Phone)
}

func TestListSubscriptions_Unauthorized(t *testing.T) {
	_, hm, router := newTestHandler(t)

	hm.subService.EXPECT().ListAll(gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/subscriptions", nil) // Нет API ключа

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestIngestPost_Success(t *testing.T) {
	_, hm, router := newTestHandler(t)
	reqBody := IngestPostRequest{
		Text:      "Massive flood downtown",
		Latitude:  22.57,
		Longitude: 88.36,
		Source:    "twitter",
	}

	hm.publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, post models.CandidatePost) {
			assert.Equal(t, reqBody.Text, post.Text)
			assert.Equal(t, reqBody.Source, post.Source)
		}).Return(nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/ingest/posts", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"queued"`)
}

func TestIngestPost_PublishError(t *testing.T) {
	_, hm, router := newTestHandler(t)
	reqBody := IngestPostRequest{
		Text:      "Massive flood downtown",
		Latitude:  22.57,
		Longitude: 88.36,
	}
	publishError := fmt.Errorf("redis: connection refused")

	hm.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(publishError).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/ingest/posts", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGeocodeAddress_Success(t *testing.T) {
	_, hm, router := newTestHandler(t)
	reqBody := GeocodeRequest{Address: "Kolkata, India"}

	hm.geocoder.EXPECT().
		Geocode(gomock.Any(), "Kolkata, India").
		Return(geocode.Result{Latitude: 22.5726, Longitude: 88.3639, FormattedAddress: "Kolkata, West Bengal, India"}, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/geocode", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp GeocodeResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.InDelta(t, 22.5726, resp.Latitude, 0.0001)
	assert.Equal(t, "Kolkata, West Bengal, India", resp.FormattedAddress)
}

func TestGeocodeAddress_RateLimited(t *testing.T) {
	_, hm, router := newTestHandler(t)
	reqBody := GeocodeRequest{Address: "Kolkata, India"}

	hm.geocoder.EXPECT().Geocode(gomock.Any(), gomock.Any()).Return(geocode.Result{}, geocode.ErrRateLimited).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/geocode", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "rate limit exceeded")
}

func TestGeocodeAddress_NoResults(t *testing.T) {
	_, hm, router := newTestHandler(t)
	reqBody := GeocodeRequest{Address: "nowhere that exists zzzz"}

	hm.geocoder.EXPECT().Geocode(gomock.Any(), gomock.Any()).Return(geocode.Result{}, geocode.ErrNoResults).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/geocode", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "could not find coordinates")
}

func TestGeocodeAddress_ProviderUnavailable(t *testing.T) {
	_, hm, router := newTestHandler(t)
	reqBody := GeocodeRequest{Address: "Kolkata, India"}

	hm.geocoder.EXPECT().Geocode(gomock.Any(), gomock.Any()).Return(geocode.Result{}, errors.New("connection timeout")).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/geocode", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestAPIKeyAuthMiddleware_BearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"Authorization": "Bearer valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_InvalidKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "invalid-key"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}

func TestRequestIDMiddleware_KeepsProvidedID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-Request-Id": "req-42"})
	assert.Equal(t, "req-42", w.Header().Get("X-Request-Id"))
}
