package input

import "todolist-api/internal/domain"

// SensorService interface - Input port (use case)
// Exposes the most recent climate reading collected by the poller
type SensorService interface {
	// Latest returns the current reading, or false when the last poll failed
	// or nothing has been read yet.
	Latest() (domain.ClimateReading, bool)
}
