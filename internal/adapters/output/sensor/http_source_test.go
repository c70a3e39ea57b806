package sensor

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"todolist-api/configs"
	"todolist-api/internal/domain"
)

// TestNewHTTPSourceWithDefaultValues tests construction with an empty config
func TestNewHTTPSourceWithDefaultValues(t *testing.T) {
	source := NewHTTPSource(configs.Sensor{})

	if source.URL() != "http://192.168.0.100/api/clima" {
		t.Errorf("expected default URL, got: %s", source.URL())
	}
	if source.timeout != 2*time.Second {
		t.Errorf("expected default timeout 2s, got: %v", source.timeout)
	}
	if source.name != "esp32" {
		t.Errorf("expected default name esp32, got: %s", source.name)
	}
}

// TestNewHTTPSourceJoinsURL tests that slashes between base URL and endpoint are normalised
func TestNewHTTPSourceJoinsURL(t *testing.T) {
	source := NewHTTPSource(configs.Sensor{BaseURL: "http://10.0.0.5/", Endpoint: "api/clima", Timeout: 5})

	if source.URL() != "http://10.0.0.5/api/clima" {
		t.Errorf("unexpected URL: %s", source.URL())
	}
	if source.timeout != 5*time.Second {
		t.Errorf("expected timeout 5s, got: %v", source.timeout)
	}
}

// TestFetchClimateSuccess tests decoding of the device payload
func TestFetchClimateSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/clima" {
			t.Errorf("expected path /api/clima, got: %s", r.URL.Path)
		}
		if r.Method != http.MethodGet {
			t.Errorf("expected GET method, got: %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"temperatura": 23.45, "umidade": 58.1}`))
	}))
	defer server.Close()

	source := NewHTTPSource(configs.Sensor{BaseURL: server.URL, Name: "living-room"})

	reading, err := source.FetchClimate(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if reading.Temperature != 23.45 || reading.Humidity != 58.1 {
		t.Errorf("unexpected reading: %+v", reading)
	}
	if reading.Source != "living-room" {
		t.Errorf("expected source living-room, got: %s", reading.Source)
	}
	if reading.ReadAt.IsZero() {
		t.Error("expected ReadAt to be set")
	}
}

// TestFetchClimateErrors tests that every failure wraps ErrSensorUnavailable
func TestFetchClimateErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "sensor fault", http.StatusInternalServerError)
			},
		},
		{
			name: "invalid json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{not json`))
			},
		},
		{
			name: "missing fields",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"temperatura": 21.0}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			source := NewHTTPSource(configs.Sensor{BaseURL: server.URL})
			_, err := source.FetchClimate(context.Background())
			if !errors.Is(err, domain.ErrSensorUnavailable) {
				t.Errorf("expected ErrSensorUnavailable, got: %v", err)
			}
		})
	}
}

// TestFetchClimateUnreachable tests a device that refuses connections
func TestFetchClimateUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	source := NewHTTPSource(configs.Sensor{BaseURL: url, Timeout: 1})
	_, err := source.FetchClimate(context.Background())
	if !errors.Is(err, domain.ErrSensorUnavailable) {
		t.Errorf("expected ErrSensorUnavailable, got: %v", err)
	}
}

// TestMockSource tests the fixed demo readings
func TestMockSource(t *testing.T) {
	reading, err := NewMockSource("").FetchClimate(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if reading.Temperature != MockTemperature || reading.Humidity != MockHumidity {
		t.Errorf("unexpected reading: %+v", reading)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewMockSource("x").FetchClimate(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got: %v", err)
	}
}
