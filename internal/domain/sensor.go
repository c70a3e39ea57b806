package domain

import (
	"fmt"
	"time"
)

// ReadingPlaceholder is shown in place of a value when no current reading exists
const ReadingPlaceholder = "--"

// ClimateReading struct - A temperature/humidity sample taken from the sensor device
type ClimateReading struct {
	Source      string    `json:"source"`
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	ReadAt      time.Time `json:"read_at"`
}

// FormatReading renders a value with one decimal place, the way dashboards display it
func FormatReading(value float64) string {
	return fmt.Sprintf("%.1f", value)
}
