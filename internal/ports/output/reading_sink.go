package output

import (
	"context"

	"todolist-api/internal/domain"
)

// ReadingSink interface - Output port
// Receives every successful climate reading (message broker, time series database).
type ReadingSink interface {
	// Name identifies the sink in logs
	Name() string
	// Record forwards a reading. A failing sink never stops polling.
	Record(ctx context.Context, reading domain.ClimateReading) error
	// Close flushes pending data and releases the connection
	Close() error
}
