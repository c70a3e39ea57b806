package gorm

import (
	"errors"
	"strings"
	"testing"

	"todolist-api/configs"
)

func TestDSN(t *testing.T) {
	cfg := configs.Postgres{Host: "db", Port: "5432", Username: "u", Password: "p", DbName: "todos"}

	dsn := DSN(cfg)
	if !strings.Contains(dsn, "host=db") || !strings.Contains(dsn, "dbname=todos") || !strings.Contains(dsn, "sslmode=disable") {
		t.Errorf("unexpected dsn %q", dsn)
	}

	cfg.SSLMode = true
	if !strings.Contains(DSN(cfg), "sslmode=require") {
		t.Errorf("expected sslmode=require, got %q", DSN(cfg))
	}
}

func TestConnectToPostgreSQL_MissingInfo(t *testing.T) {
	_, err := ConnectToPostgreSQL(configs.Postgres{})
	if !errors.Is(err, ErrMissingConnectionInfo) {
		t.Fatalf("expected ErrMissingConnectionInfo, got %v", err)
	}
}
