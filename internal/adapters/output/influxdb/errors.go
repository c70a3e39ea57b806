package influxdb

import "errors"

var (
	// ErrConnectionFailed indicates the initial connection attempt failed
	ErrConnectionFailed = errors.New("influxdb: connection failed")

	// ErrDisabled indicates InfluxDB integration is disabled in configuration
	ErrDisabled = errors.New("influxdb: disabled in configuration")

	// ErrClosed indicates a write after Close
	ErrClosed = errors.New("influxdb: recorder closed")
)
