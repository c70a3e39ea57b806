package application

import (
	"context"
	"errors"
	"sync"
	"time"

	"todolist-api/internal/domain"
	"todolist-api/internal/ports/input"
	"todolist-api/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure SensorService implements input.SensorService interface
var _ input.SensorService = (*SensorService)(nil)

// DefaultPollInterval is used when no positive interval is configured
const DefaultPollInterval = 3 * time.Second

// SensorService struct - Polls the sensor device and keeps the latest reading.
// Every successful reading is forwarded to the configured sinks.
type SensorService struct {
	source   output.SensorSource
	sinks    []output.ReadingSink
	interval time.Duration

	mu        sync.RWMutex
	latest    domain.ClimateReading
	hasLatest bool
}

// NewSensorService func - Creates the poller; sinks may be empty
func NewSensorService(source output.SensorSource, interval time.Duration, sinks ...output.ReadingSink) *SensorService {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &SensorService{
		source:   source,
		sinks:    sinks,
		interval: interval,
	}
}

// Interval returns the effective polling interval
func (s *SensorService) Interval() time.Duration {
	return s.interval
}

// Run polls once immediately and then on every tick until ctx is done
func (s *SensorService) Run(ctx context.Context) {
	logrus.Infof("Sensor polling started, interval %v", s.interval)
	_ = s.Poll(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logrus.Info("Sensor polling stopped")
			return
		case <-ticker.C:
			_ = s.Poll(ctx)
		}
	}
}

// Poll fetches one reading. On failure the latest reading is cleared so
// clients fall back to placeholders instead of showing stale values.
func (s *SensorService) Poll(ctx context.Context) error {
	reading, err := s.source.FetchClimate(ctx)
	if err != nil {
		s.mu.Lock()
		s.latest = domain.ClimateReading{}
		s.hasLatest = false
		s.mu.Unlock()
		if !errors.Is(err, context.Canceled) {
			logrus.Warnf("Failed to fetch climate reading: %v", err)
		}
		return err
	}

	s.mu.Lock()
	s.latest = reading
	s.hasLatest = true
	s.mu.Unlock()

	logrus.Debugf("Climate reading: temperature=%.1f humidity=%.1f", reading.Temperature, reading.Humidity)

	for _, sink := range s.sinks {
		if err := sink.Record(ctx, reading); err != nil {
			logrus.WithField("sink", sink.Name()).Errorf("Failed to record climate reading: %v", err)
		}
	}
	return nil
}

// Latest func
func (s *SensorService) Latest() (domain.ClimateReading, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest, s.hasLatest
}

// Close closes every sink, returning the first error
func (s *SensorService) Close() error {
	var first error
	for _, sink := range s.sinks {
		if err := sink.Close(); err != nil {
			logrus.WithField("sink", sink.Name()).Errorf("Failed to close sink: %v", err)
			if first == nil {
				first = err
			}
		}
	}
	return first
}
