package gorm

import (
	"errors"
	"fmt"
	"time"

	"todolist-api/configs"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrMissingConnectionInfo is returned when host, port and database name are all empty
var ErrMissingConnectionInfo = errors.New("cannot establish the connection: missing postgres host, port and dbname")

// DB struct
type DB struct {
	Postgres *gorm.DB
}

// DSN func - Builds the libpq connection string for cfg
func DSN(cfg configs.Postgres) string {
	sslmode := "disable"
	if cfg.SSLMode {
		sslmode = "require"
	}
	return fmt.Sprintf("host=%v user=%v password=%v dbname=%v port=%v sslmode=%v connect_timeout=0",
		cfg.Host, cfg.Username, cfg.Password, cfg.DbName, cfg.Port, sslmode)
}

// ConnectToPostgreSQL func
func ConnectToPostgreSQL(cfg configs.Postgres) (*DB, error) {
	if cfg.Host == "" && cfg.Port == "" && cfg.DbName == "" {
		return nil, ErrMissingConnectionInfo
	}

	pg, err := gorm.Open(postgres.Open(DSN(cfg)), &gorm.Config{
		DryRun: false,
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		logrus.Error(err)
		return nil, err
	}

	sqlDB, err := pg.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(2 * time.Hour)

	logrus.WithFields(logrus.Fields{
		"host":   cfg.Host,
		"port":   cfg.Port,
		"dbname": cfg.DbName,
	}).Info("Connected to postgres")
	return &DB{Postgres: pg}, nil
}

// DisconnectPostgres func
func DisconnectPostgres(db *gorm.DB) {
	sqlDb, err := db.DB()
	if err != nil {
		logrus.Error(err)
		return
	}
	if err := sqlDb.Close(); err != nil {
		logrus.Error(err)
		return
	}
	logrus.Println("Connected with postgres has closed")
}
