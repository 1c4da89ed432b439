package inference

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"damage-scan/internal/domain/entity"
	"damage-scan/internal/domain/port"
)

// Client — HTTP-клиент внешнего сервиса инференса.
// Контракт serverless-модели: POST base64-изображения на {url}/{model}?api_key=...,
// в ответе predictions с центром рамки, размерами, классом и уверенностью.
type Client struct {
	baseURL string
	apiKey  string
	modelID string
	http    *http.Client
}

// NewClient создаёт клиент инференса.
func NewClient(baseURL, apiKey, modelID string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		modelID: modelID,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// prediction — одна запись ответа модели.
type prediction struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Confidence float64 `json:"confidence"`
	Class      string  `json:"class"`
}

type inferResponse struct {
	Predictions []prediction `json:"predictions"`
	Image       struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"image"`
}

// Detect прогоняет изображение через модель и возвращает сырые детекции.
// Недоступность сервиса и не-200 ответы — entity.ErrDetectionUnavailable.
func (c *Client) Detect(ctx context.Context, imageData []byte) (*entity.DetectionSet, error) {
	encoded := base64.StdEncoding.EncodeToString(imageData)
	endpoint := fmt.Sprintf("%s/%s?api_key=%s", c.baseURL, c.modelID, url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrDetectionUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: inference returned status %d", entity.ErrDetectionUnavailable, resp.StatusCode)
	}

	var parsed inferResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	set := &entity.DetectionSet{
		ImageWidth:  parsed.Image.Width,
		ImageHeight: parsed.Image.Height,
		Raw:         make([]entity.RawDetection, 0, len(parsed.Predictions)),
	}
	for _, p := range parsed.Predictions {
		set.Raw = append(set.Raw, entity.RawDetection{
			Label:      p.Class,
			Confidence: p.Confidence,
			Box: entity.RawBox{
				Encoding: entity.EncodingCenter,
				X:        p.X,
				Y:        p.Y,
				W:        p.Width,
				H:        p.Height,
			},
		})
	}

	return set, nil
}

// CheckHealth проверяет доступность сервиса инференса.
func (c *Client) CheckHealth(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("inference service unhealthy: %d", resp.StatusCode)
	}

	return nil
}

var _ port.DamageDetector = (*Client)(nil)
