package output

import (
	"context"

	"todolist-api/internal/domain"
)

// SensorSource interface - Output port
// Fetches the current climate reading from the sensor device.
// Errors wrap domain.ErrSensorUnavailable.
type SensorSource interface {
	FetchClimate(ctx context.Context) (domain.ClimateReading, error)
}
