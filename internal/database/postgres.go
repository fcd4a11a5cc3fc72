package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/staffdesk/employee_directory/internal/config"
)

// NewPostgresDB opens the connection pool described by the environment
// config and verifies it with a ping.
func NewPostgresDB() (*sql.DB, error) {
	cfg := config.DefaultEnvConfig

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.DB_HOST, cfg.DB_PORT, cfg.DB_USER, cfg.DB_PASSWORD, cfg.DB_NAME, cfg.DB_SSL_MODE)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}

	db.SetConnMaxLifetime(cfg.DB_CONN_MAX_LIFETIME)
	db.SetMaxIdleConns(cfg.DB_MAX_IDLE_CONNS)
	db.SetMaxOpenConns(cfg.DB_MAX_OPEN_CONNS)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	return db, nil
}
