package protocal

import (
	"context"
	"fmt"
	"time"

	"todolist-api/configs"
	"todolist-api/internal/adapters/output/influxdb"
	"todolist-api/internal/adapters/output/memory"
	"todolist-api/internal/adapters/output/mqtt"
	"todolist-api/internal/adapters/output/postgres"
	"todolist-api/internal/adapters/output/sensor"
	"todolist-api/internal/adapters/output/sqlite"
	"todolist-api/internal/application"
	"todolist-api/internal/domain"
	"todolist-api/internal/ports/output"
	"todolist-api/pkg/database_driver/gorm"
	sqlitedriver "todolist-api/pkg/database_driver/sqlite"

	"github.com/sirupsen/logrus"
)

// Store drivers accepted by store.driver
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// newTodoStore builds the store selected by store.driver. The returned func releases its resources.
func newTodoStore(conf *configs.Config) (output.TodoStore, func(), error) {
	switch conf.Store.Driver {
	case "", DriverMemory:
		logrus.Info("Using in-memory todo store")
		return memory.NewTodoStore(), func() {}, nil

	case DriverPostgres:
		dbConGorm, err := gorm.ConnectToPostgreSQL(conf.Postgres)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewTodoStore(dbConGorm.Postgres), func() { gorm.DisconnectPostgres(dbConGorm.Postgres) }, nil

	case DriverSQLite:
		db, err := sqlitedriver.Open(conf.SQLite.Path, conf.SQLite.BusyTimeout)
		if err != nil {
			return nil, nil, err
		}
		store, err := sqlite.NewTodoStore(db)
		if err != nil {
			sqlitedriver.Close(db)
			return nil, nil, err
		}
		logrus.Infof("Using sqlite todo store at %s", conf.SQLite.Path)
		return store, func() { sqlitedriver.Close(db) }, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", domain.ErrUnknownStoreDriver, conf.Store.Driver)
	}
}

// newSensorService builds the poller with its source and every enabled sink.
// A sink that cannot connect is logged and skipped.
func newSensorService(conf *configs.Config) *application.SensorService {
	var source output.SensorSource
	if conf.Sensor.Mock {
		logrus.Warn("Sensor running in mock mode")
		source = sensor.NewMockSource(conf.Sensor.Name)
	} else {
		httpSource := sensor.NewHTTPSource(conf.Sensor)
		logrus.Infof("Sensor source %s", httpSource.URL())
		source = httpSource
	}

	var sinks []output.ReadingSink
	if conf.MQTT.Enabled {
		publisher, err := mqtt.Connect(conf.MQTT)
		if err != nil {
			logrus.Errorf("MQTT sink disabled: %v", err)
		} else {
			sinks = append(sinks, publisher)
		}
	}
	if conf.InfluxDB.Enabled {
		recorder, err := influxdb.Connect(conf.InfluxDB)
		if err != nil {
			logrus.Errorf("InfluxDB sink disabled: %v", err)
		} else {
			sinks = append(sinks, recorder)
		}
	}

	return application.NewSensorService(source, time.Duration(conf.Sensor.Interval)*time.Second, sinks...)
}

// stopSensor cancels the poller and waits for it to return before closing the sinks.
// done is only waited on when sensorSrv is set.
func stopSensor(cancel context.CancelFunc, done <-chan struct{}, sensorSrv *application.SensorService) {
	cancel()
	if sensorSrv == nil {
		return
	}
	<-done
	if err := sensorSrv.Close(); err != nil {
		logrus.Errorln(err)
	}
}
