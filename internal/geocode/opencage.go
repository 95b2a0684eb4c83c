package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
)

const opencageBaseURL = "https://api.opencagedata.com/geocode/v1/json"

// Типизированные отказы геокодера. Вызывающий код при любом из них
// не получает координат и должен предложить ручной ввод локации.
var (
	ErrRateLimited  = errors.New("geocoder rate limit exceeded")
	ErrInvalidInput = errors.New("invalid geocoder input")
	ErrNoResults    = errors.New("no geocoding results")
)

// Result - координаты и нормализованный адрес, найденные по свободному тексту
type Result struct {
	Latitude         float64
	Longitude        float64
	FormattedAddress string
}

//go:generate mockgen -source=opencage.go -destination=mocks/mock_geocode.go -package=mocks

// Geocoder переводит текстовый адрес в координаты
type Geocoder interface {
	Geocode(ctx context.Context, address string) (Result, error)
}

// OpenCageClient реализует Geocoder через OpenCage Geocoding API
type OpenCageClient struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	logger     *logrus.Logger
}

func NewOpenCageClient(apiKey string, timeout time.Duration, logger *logrus.Logger) *OpenCageClient {
	return &OpenCageClient{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: opencageBaseURL,
		logger:  logger,
	}
}

type opencageResponse struct {
	Results []struct {
		Geometry struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"geometry"`
		Formatted string `json:"formatted"`
	} `json:"results"`
	Status struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"status"`
}

// Geocode выполняет прямое геокодирование адреса
func (c *OpenCageClient) Geocode(ctx context.Context, address string) (Result, error) {
	if address == "" {
		return Result{}, ErrInvalidInput
	}

	params := url.Values{
		"q":              {address},
		"key":            {c.apiKey},
		"limit":          {"1"},
		"no_annotations": {"1"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return Result{}, fmt.Errorf("failed to create geocode request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	var body opencageResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Result{}, fmt.Errorf("failed to decode geocoder response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		// продолжаем разбор результатов
	case http.StatusBadRequest:
		c.logger.WithField("address", address).Warn("Geocoder rejected input")
		return Result{}, ErrInvalidInput
	case http.StatusPaymentRequired, http.StatusTooManyRequests:
		c.logger.Warn("Geocoder rate limit exceeded")
		return Result{}, ErrRateLimited
	default:
		return Result{}, fmt.Errorf("geocoder error: status %d: %s", resp.StatusCode, body.Status.Message)
	}

	if len(body.Results) == 0 {
		return Result{}, ErrNoResults
	}

	r := body.Results[0]
	return Result{
		Latitude:         r.Geometry.Lat,
		Longitude:        r.Geometry.Lng,
		FormattedAddress: r.Formatted,
	}, nil
}
