package sensor

import (
	"context"
	"time"

	"todolist-api/internal/domain"
	"todolist-api/internal/ports/output"
)

var _ output.SensorSource = (*MockSource)(nil)

// Values served by MockSource, matching the device's demo firmware
const (
	MockTemperature = 27.5
	MockHumidity    = 62.0
)

// MockSource struct - Serves fixed readings without touching the network.
// Used when sensor.mock is enabled, e.g. for a dashboard demo without hardware.
type MockSource struct {
	name string
}

// NewMockSource func
func NewMockSource(name string) *MockSource {
	if name == "" {
		name = defaultName
	}
	return &MockSource{name: name}
}

// FetchClimate func
func (m *MockSource) FetchClimate(ctx context.Context) (domain.ClimateReading, error) {
	if err := ctx.Err(); err != nil {
		return domain.ClimateReading{}, err
	}
	return domain.ClimateReading{
		Source:      m.name,
		Temperature: MockTemperature,
		Humidity:    MockHumidity,
		ReadAt:      time.Now(),
	}, nil
}
