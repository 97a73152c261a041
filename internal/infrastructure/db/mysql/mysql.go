// Package mysql provides the durable storage backend: hand-written SQL over
// database/sql, with uniqueness and referential integrity enforced by the
// schema as a second line of defense behind the facade checks.
package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

const defaultTimeout = 5 * time.Second

// Config captures the settings for establishing a MySQL connection.
type Config struct {
	User     string
	Password string
	Host     string
	Port     string
	Database string
}

// Open connects to MySQL and verifies the connection with a ping.
func Open(ctx context.Context, cfg Config) (*sql.DB, error) {
	auth := cfg.User
	if cfg.Password != "" {
		auth = fmt.Sprintf("%s:%s", cfg.User, cfg.Password)
	}
	// parseTime=true maps DATETIME to time.Time; loc=UTC keeps timestamps consistent.
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, cfg.Host, cfg.Port, cfg.Database)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("mysql ping: %w", err)
	}
	return db, nil
}
