package protocal

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"todolist-api/configs"
	"todolist-api/internal/adapters/output/memory"
	"todolist-api/internal/adapters/output/sensor"
	"todolist-api/internal/adapters/output/sqlite"
	"todolist-api/internal/application"
	"todolist-api/internal/domain"
)

func TestNewTodoStore_Memory(t *testing.T) {
	for _, driver := range []string{"", DriverMemory} {
		store, closeStore, err := newTodoStore(&configs.Config{Store: configs.Store{Driver: driver}})
		if err != nil {
			t.Fatalf("driver %q err=%v", driver, err)
		}
		if _, ok := store.(*memory.TodoStore); !ok {
			t.Errorf("driver %q: expected *memory.TodoStore, got %T", driver, store)
		}
		closeStore()
	}
}

func TestNewTodoStore_SQLite(t *testing.T) {
	conf := &configs.Config{
		Store:  configs.Store{Driver: DriverSQLite},
		SQLite: configs.SQLite{Path: filepath.Join(t.TempDir(), "todos.db"), BusyTimeout: 5},
	}

	store, closeStore, err := newTodoStore(conf)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	defer closeStore()

	if _, ok := store.(*sqlite.TodoStore); !ok {
		t.Fatalf("expected *sqlite.TodoStore, got %T", store)
	}
	if _, err := store.Add("persisted", false); err != nil {
		t.Fatalf("Add err=%v", err)
	}
}

func TestNewTodoStore_UnknownDriver(t *testing.T) {
	_, _, err := newTodoStore(&configs.Config{Store: configs.Store{Driver: "mongo"}})
	if !errors.Is(err, domain.ErrUnknownStoreDriver) {
		t.Fatalf("expected ErrUnknownStoreDriver, got %v", err)
	}
}

func TestNewSensorService_MockMode(t *testing.T) {
	conf := &configs.Config{Sensor: configs.Sensor{Enabled: true, Mock: true, Name: "bench"}}

	srv := newSensorService(conf)
	if srv.Interval() != application.DefaultPollInterval {
		t.Errorf("interval=%v, want %v", srv.Interval(), application.DefaultPollInterval)
	}
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	if err := srv.Poll(ctx); err != nil {
		t.Fatalf("Poll err=%v", err)
	}
	reading, ok := srv.Latest()
	if !ok || reading.Source != "bench" {
		t.Errorf("unexpected latest reading %+v ok=%v", reading, ok)
	}
}

// recordingSink counts readings and notes any that arrive after Close
type recordingSink struct {
	mu         sync.Mutex
	records    int
	closed     bool
	afterClose int
}

func (s *recordingSink) Name() string { return "recording" }

func (s *recordingSink) Record(_ context.Context, _ domain.ClimateReading) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records++
	if s.closed {
		s.afterClose++
	}
	return nil
}

func (s *recordingSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *recordingSink) snapshot() (int, bool, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records, s.closed, s.afterClose
}

func TestStopSensor_StopsPollerBeforeClosingSinks(t *testing.T) {
	sink := &recordingSink{}
	srv := application.NewSensorService(sensor.NewMockSource("bench"), time.Millisecond, sink)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		srv.Run(ctx)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for {
		if records, _, _ := sink.snapshot(); records >= 2 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("poller never recorded a reading")
		}
		time.Sleep(time.Millisecond)
	}

	stopSensor(cancel, done, srv)

	select {
	case <-done:
	default:
		t.Fatal("expected poller to have returned")
	}
	time.Sleep(10 * time.Millisecond)
	_, closed, afterClose := sink.snapshot()
	if !closed {
		t.Error("expected sink to be closed")
	}
	if afterClose != 0 {
		t.Errorf("expected no readings after close, got %d", afterClose)
	}
}

func TestStopSensor_PollingDisabled(t *testing.T) {
	called := false
	stopSensor(func() { called = true }, make(chan struct{}), nil)
	if !called {
		t.Error("expected cancel to be called")
	}
}
