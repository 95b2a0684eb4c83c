package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Метки классификатора
const (
	LabelDisaster    = "disaster"
	LabelNotDisaster = "not_disaster"
)

// Classifier решает, описывает ли текст реальное бедствие.
// Модель - внешний черный ящик с фиксированным контрактом predict.
type Classifier interface {
	Predict(ctx context.Context, text string) (bool, error)
}

// HTTPClient вызывает model server по HTTP
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type predictRequest struct {
	Text string `json:"text"`
}

type predictResponse struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// Predict возвращает true, если модель пометила текст как disaster
func (c *HTTPClient) Predict(ctx context.Context, text string) (bool, error) {
	payload, err := json.Marshal(predictRequest{Text: text})
	if err != nil {
		return false, fmt.Errorf("failed to marshal predict request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(payload))
	if err != nil {
		return false, fmt.Errorf("failed to create predict request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("predict request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return false, fmt.Errorf("classifier error: status %d: %s", resp.StatusCode, body)
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return false, fmt.Errorf("failed to decode predict response: %w", err)
	}

	return out.Label == LabelDisaster, nil
}
