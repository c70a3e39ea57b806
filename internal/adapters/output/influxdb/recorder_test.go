package influxdb

import (
	"context"
	"errors"
	"testing"
	"time"

	"todolist-api/configs"
	"todolist-api/internal/domain"

	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// fakeWriteAPI implements the parts of api.WriteAPI used by Recorder
type fakeWriteAPI struct {
	api.WriteAPI

	points  []*write.Point
	flushed int
}

func (f *fakeWriteAPI) WritePoint(point *write.Point) { f.points = append(f.points, point) }
func (f *fakeWriteAPI) Flush()                        { f.flushed++ }
func (f *fakeWriteAPI) Errors() <-chan error          { return nil }

func testReading() domain.ClimateReading {
	return domain.ClimateReading{
		Source:      "esp32",
		Temperature: 21.3,
		Humidity:    48.9,
		ReadAt:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestConnectDisabled(t *testing.T) {
	_, err := Connect(configs.InfluxDB{Enabled: false})
	if !errors.Is(err, ErrDisabled) {
		t.Errorf("expected ErrDisabled, got %v", err)
	}
}

func TestNewPoint(t *testing.T) {
	reading := testReading()
	point := NewPoint(reading)

	if point.Name() != Measurement {
		t.Errorf("expected measurement %s, got %s", Measurement, point.Name())
	}
	if !point.Time().Equal(reading.ReadAt) {
		t.Errorf("expected time %v, got %v", reading.ReadAt, point.Time())
	}

	tags := point.TagList()
	if len(tags) != 1 || tags[0].Key != "source" || tags[0].Value != "esp32" {
		t.Errorf("unexpected tags %+v", tags)
	}

	fields := map[string]interface{}{}
	for _, f := range point.FieldList() {
		fields[f.Key] = f.Value
	}
	if fields["temperature"] != 21.3 || fields["humidity"] != 48.9 {
		t.Errorf("unexpected fields %+v", fields)
	}
}

func TestRecordAndClose(t *testing.T) {
	writeAPI := &fakeWriteAPI{}
	r := NewRecorder(nil, writeAPI)

	if err := r.Record(context.Background(), testReading()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(writeAPI.points) != 1 {
		t.Fatalf("expected 1 point written, got %d", len(writeAPI.points))
	}

	if err := r.Close(); err != nil {
		t.Fatalf("expected no error on Close, got %v", err)
	}
	if writeAPI.flushed != 1 {
		t.Errorf("expected one flush, got %d", writeAPI.flushed)
	}

	if err := r.Record(context.Background(), testReading()); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed after Close, got %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("expected second Close to be a no-op, got %v", err)
	}
}
