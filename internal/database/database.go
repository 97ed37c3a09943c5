package database

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

func Connect() (*sql.DB, error) {
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "worthle_user")
	password := getEnv("DB_PASSWORD", "worthle_password")
	dbname := getEnv("DB_NAME", "worthle")
	sslmode := getEnv("DB_SSLMODE", "disable")

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, nil
}

func Migrate(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS kv_store (
		key        TEXT PRIMARY KEY,
		value      JSONB NOT NULL,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS game_results (
		share_id     VARCHAR(36) PRIMARY KEY,
		player_id    VARCHAR(36) NOT NULL,
		mode         VARCHAR(10) NOT NULL,
		identity     JSONB NOT NULL,
		fingerprint  JSONB NOT NULL,
		salary_range JSONB,
		sentiment    VARCHAR(20),
		created_at   TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_results_player ON game_results(player_id, created_at DESC);

	CREATE TABLE IF NOT EXISTS sentiment_events (
		id         BIGSERIAL PRIMARY KEY,
		track      VARCHAR(20) NOT NULL,
		experience VARCHAR(10) NOT NULL,
		location   VARCHAR(30) NOT NULL,
		sentiment  VARCHAR(20) NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_sentiment_created ON sentiment_events(created_at);
	`

	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
