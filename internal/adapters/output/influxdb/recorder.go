package influxdb

import (
	"context"
	"fmt"
	"sync"
	"time"

	"todolist-api/configs"
	"todolist-api/internal/domain"
	"todolist-api/internal/ports/output"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"
	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure Recorder implements output.ReadingSink interface
var _ output.ReadingSink = (*Recorder)(nil)

const (
	// Measurement is the InfluxDB measurement climate readings are written to
	Measurement = "climate"

	defaultConnectTimeout = 10 * time.Second
	millisecondsPerSecond = 1000
)

// Recorder struct - Output adapter writing climate readings to InfluxDB.
// Writes go through the non-blocking WriteAPI and are batched by the client.
type Recorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPI

	mu     sync.RWMutex
	closed bool
}

// Connect func - Creates the client, verifies the server with a ping and starts the write API
func Connect(cfg configs.InfluxDB) (*Recorder, error) {
	if !cfg.Enabled {
		return nil, ErrDisabled
	}

	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 100
	}
	flushInterval := cfg.FlushInterval
	if flushInterval <= 0 {
		flushInterval = 10
	}

	client := influxdb2.NewClientWithOptions(
		cfg.URL,
		cfg.Token,
		influxdb2.DefaultOptions().
			SetBatchSize(uint(batchSize)).
			SetFlushInterval(uint(flushInterval)*millisecondsPerSecond),
	)

	ctx, cancel := context.WithTimeout(context.Background(), defaultConnectTimeout)
	defer cancel()

	healthy, err := client.Ping(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("%w: ping failed: %w", ErrConnectionFailed, err)
	}
	if !healthy {
		client.Close()
		return nil, fmt.Errorf("%w: server not healthy", ErrConnectionFailed)
	}

	r := NewRecorder(client, client.WriteAPI(cfg.Org, cfg.Bucket))
	logrus.Infof("InfluxDB recorder connected, org: %s, bucket: %s", cfg.Org, cfg.Bucket)
	return r, nil
}

// NewRecorder func - Wraps an existing client and write API.
// Asynchronous write errors are logged.
func NewRecorder(client influxdb2.Client, writeAPI api.WriteAPI) *Recorder {
	r := &Recorder{
		client:   client,
		writeAPI: writeAPI,
	}
	if errorsCh := writeAPI.Errors(); errorsCh != nil {
		go func() {
			for err := range errorsCh {
				logrus.WithField("sink", r.Name()).Errorf("InfluxDB write failed: %v", err)
			}
		}()
	}
	return r
}

// NewPoint builds the climate point for a reading
func NewPoint(reading domain.ClimateReading) *write.Point {
	return write.NewPoint(
		Measurement,
		map[string]string{
			"source": reading.Source,
		},
		map[string]interface{}{
			"temperature": reading.Temperature,
			"humidity":    reading.Humidity,
		},
		reading.ReadAt,
	)
}

// Name func
func (r *Recorder) Name() string {
	return "influxdb"
}

// Record queues the reading for writing; it does not block on the network
func (r *Recorder) Record(_ context.Context, reading domain.ClimateReading) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return ErrClosed
	}
	r.writeAPI.WritePoint(NewPoint(reading))
	return nil
}

// Close flushes pending writes and closes the client
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true

	r.writeAPI.Flush()
	if r.client != nil {
		r.client.Close()
	}
	logrus.Println("InfluxDB recorder closed")
	return nil
}
