package sensor

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"todolist-api/configs"
	"todolist-api/internal/domain"
	"todolist-api/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure HTTPSource implements output.SensorSource interface
var _ output.SensorSource = (*HTTPSource)(nil)

const (
	defaultBaseURL  = "http://192.168.0.100"
	defaultEndpoint = "/api/clima"
	defaultName     = "esp32"
	defaultTimeout  = 2 * time.Second

	// maxBodySize bounds what we read from the device
	maxBodySize = 64 << 10
)

// climatePayload is the JSON document served by the device firmware
type climatePayload struct {
	Temperature *float64 `json:"temperatura"`
	Humidity    *float64 `json:"umidade"`
}

// HTTPSource struct - Output adapter reading the climate endpoint of the sensor device
type HTTPSource struct {
	httpClient *http.Client
	url        string
	name       string
	timeout    time.Duration
}

// NewHTTPSource func - Creates a sensor source from config, applying defaults for empty values
func NewHTTPSource(config configs.Sensor) *HTTPSource {
	baseURL := strings.TrimSuffix(config.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	endpoint := config.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}
	name := config.Name
	if name == "" {
		name = defaultName
	}

	timeout := time.Duration(config.Timeout) * time.Second
	if config.Timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   timeout,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        2,
			MaxIdleConnsPerHost: 2,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	source := &HTTPSource{
		httpClient: httpClient,
		url:        baseURL + endpoint,
		name:       name,
		timeout:    timeout,
	}

	logrus.Infof("Sensor source initialized with URL: %s, timeout: %v", source.url, timeout)

	return source
}

// URL returns the full address polled by this source
func (s *HTTPSource) URL() string {
	return s.url
}

// FetchClimate performs one GET against the device and decodes the reading
func (s *HTTPSource) FetchClimate(ctx context.Context) (domain.ClimateReading, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return domain.ClimateReading{}, fmt.Errorf("%w: building request: %v", domain.ErrSensorUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return domain.ClimateReading{}, ctx.Err()
		}
		return domain.ClimateReading{}, fmt.Errorf("%w: %v", domain.ErrSensorUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.ClimateReading{}, fmt.Errorf("%w: status %d - %s", domain.ErrSensorUnavailable, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload climatePayload
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&payload); err != nil {
		return domain.ClimateReading{}, fmt.Errorf("%w: decoding response: %v", domain.ErrSensorUnavailable, err)
	}
	if payload.Temperature == nil || payload.Humidity == nil {
		return domain.ClimateReading{}, fmt.Errorf("%w: response is missing temperatura or umidade", domain.ErrSensorUnavailable)
	}

	return domain.ClimateReading{
		Source:      s.name,
		Temperature: *payload.Temperature,
		Humidity:    *payload.Humidity,
		ReadAt:      time.Now(),
	}, nil
}
