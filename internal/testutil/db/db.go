// Package db provides database utilities for testing
package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"
	"time"

	"currencyrates/internal/config"
	"currencyrates/internal/database"

	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

// CleanupTestDB drops all tables in the test database, including the
// migration bookkeeping table
func CleanupTestDB(db *sql.DB) error {
	rows, err := db.Query(`SELECT tablename FROM pg_tables WHERE schemaname = 'public'`)
	if err != nil {
		return fmt.Errorf("failed to get table names: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return fmt.Errorf("failed to scan table name: %w", err)
		}
		tables = append(tables, pq.QuoteIdentifier(name))
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating over table names: %w", err)
	}

	if len(tables) == 0 {
		return nil
	}
	if _, err := db.Exec("DROP TABLE IF EXISTS " + strings.Join(tables, ", ") + " CASCADE"); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}
	return nil
}

// SetupTestDB connects to the test database, recreates the schema from the
// migrations and returns the pool. The test is skipped when the database
// cannot be reached.
func SetupTestDB(t *testing.T, cfg *config.DatabaseConfig) *sql.DB {
	t.Helper()

	db, err := database.Connect(*cfg)
	require.NoError(t, err, "Failed to open test database")

	if err := database.Ping(context.Background(), db, 3*time.Second); err != nil {
		db.Close()
		t.Skipf("test database %s@%s:%d unavailable: %v", cfg.DBName, cfg.Host, cfg.Port, err)
	}

	require.NoError(t, CleanupTestDB(db), "Failed to cleanup test database")

	var tableCount int
	err = db.QueryRow(`SELECT COUNT(*) FROM pg_tables WHERE schemaname = 'public'`).Scan(&tableCount)
	require.NoError(t, err, "Failed to count tables")
	require.Equal(t, 0, tableCount, "Database should be empty before running migrations")

	require.NoError(t, database.RunMigrations(*cfg), "Failed to run migrations")
	return db
}
