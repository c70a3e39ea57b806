package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"todolist-api/internal/domain"
)

// MockSensorSource implements output.SensorSource for testing
type MockSensorSource struct {
	FetchClimateFunc func(ctx context.Context) (domain.ClimateReading, error)

	mu    sync.Mutex
	calls int
}

func (m *MockSensorSource) FetchClimate(ctx context.Context) (domain.ClimateReading, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.FetchClimateFunc != nil {
		return m.FetchClimateFunc(ctx)
	}
	return domain.ClimateReading{Source: "mock", Temperature: 27.5, Humidity: 62, ReadAt: time.Now()}, nil
}

func (m *MockSensorSource) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// MockReadingSink implements output.ReadingSink for testing
type MockReadingSink struct {
	RecordFunc func(ctx context.Context, reading domain.ClimateReading) error
	CloseFunc  func() error

	mu       sync.Mutex
	Recorded []domain.ClimateReading
	Closed   bool
}

func (m *MockReadingSink) Name() string { return "mock" }

func (m *MockReadingSink) Record(ctx context.Context, reading domain.ClimateReading) error {
	m.mu.Lock()
	m.Recorded = append(m.Recorded, reading)
	m.mu.Unlock()
	if m.RecordFunc != nil {
		return m.RecordFunc(ctx, reading)
	}
	return nil
}

func (m *MockReadingSink) Close() error {
	m.Closed = true
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

func TestNewSensorService_DefaultsInterval(t *testing.T) {
	svc := NewSensorService(&MockSensorSource{}, 0)
	if svc.Interval() != DefaultPollInterval {
		t.Errorf("expected default interval %v, got %v", DefaultPollInterval, svc.Interval())
	}
}

func TestLatest_EmptyBeforeFirstPoll(t *testing.T) {
	svc := NewSensorService(&MockSensorSource{}, time.Second)
	if _, ok := svc.Latest(); ok {
		t.Error("expected no reading before the first poll")
	}
}

func TestPoll_StoresReadingAndFansOut(t *testing.T) {
	first := &MockReadingSink{}
	second := &MockReadingSink{
		RecordFunc: func(context.Context, domain.ClimateReading) error { return errors.New("broker down") },
	}
	svc := NewSensorService(&MockSensorSource{}, time.Second, first, second)

	if err := svc.Poll(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	reading, ok := svc.Latest()
	if !ok {
		t.Fatal("expected a reading after a successful poll")
	}
	if reading.Temperature != 27.5 || reading.Humidity != 62 {
		t.Errorf("unexpected reading %+v", reading)
	}
	if len(first.Recorded) != 1 || len(second.Recorded) != 1 {
		t.Errorf("expected every sink to receive the reading, got %d and %d", len(first.Recorded), len(second.Recorded))
	}
}

func TestPoll_FailureClearsLatest(t *testing.T) {
	fail := false
	source := &MockSensorSource{
		FetchClimateFunc: func(context.Context) (domain.ClimateReading, error) {
			if fail {
				return domain.ClimateReading{}, fmt.Errorf("%w: connection refused", domain.ErrSensorUnavailable)
			}
			return domain.ClimateReading{Temperature: 20, Humidity: 50}, nil
		},
	}
	sink := &MockReadingSink{}
	svc := NewSensorService(source, time.Second, sink)

	_ = svc.Poll(context.Background())
	if _, ok := svc.Latest(); !ok {
		t.Fatal("expected a reading after the first poll")
	}

	fail = true
	err := svc.Poll(context.Background())
	if !errors.Is(err, domain.ErrSensorUnavailable) {
		t.Fatalf("expected ErrSensorUnavailable, got %v", err)
	}
	if _, ok := svc.Latest(); ok {
		t.Error("expected latest reading to be cleared after a failed poll")
	}
	if len(sink.Recorded) != 1 {
		t.Errorf("expected failed poll not to reach sinks, got %d records", len(sink.Recorded))
	}
}

func TestRun_PollsUntilCancelled(t *testing.T) {
	source := &MockSensorSource{}
	svc := NewSensorService(source, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		svc.Run(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for source.Calls() < 3 {
		select {
		case <-deadline:
			t.Fatalf("expected at least 3 polls, got %d", source.Calls())
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected Run to return after cancel")
	}
}

func TestClose_ClosesSinks(t *testing.T) {
	closeErr := errors.New("flush failed")
	a := &MockReadingSink{CloseFunc: func() error { return closeErr }}
	b := &MockReadingSink{}
	svc := NewSensorService(&MockSensorSource{}, time.Second, a, b)

	if err := svc.Close(); !errors.Is(err, closeErr) {
		t.Errorf("expected first close error, got %v", err)
	}
	if !a.Closed || !b.Closed {
		t.Error("expected every sink to be closed")
	}
}
