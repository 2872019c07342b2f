package db

import (
	"path/filepath"
	"runtime"
	"testing"

	"currencyrates/internal/config"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"
)

// ProjectRoot returns the absolute path of the module root
func ProjectRoot(t *testing.T) string {
	t.Helper()

	_, filename, _, ok := runtime.Caller(0)
	require.True(t, ok, "Failed to get current file path")

	// Three levels up from internal/testutil/db
	root, err := filepath.Abs(filepath.Join(filepath.Dir(filename), "..", "..", ".."))
	require.NoError(t, err, "Failed to get absolute project root path")
	return root
}

// LoadTestConfig loads .env.test from the project root into the environment
// and builds the configuration from it. Variables already set win.
func LoadTestConfig(t *testing.T) *config.Config {
	t.Helper()

	root := ProjectRoot(t)
	require.NoError(t, godotenv.Load(filepath.Join(root, ".env.test")), "Failed to load .env.test file")

	cfg := &config.Config{}
	require.NoError(t, cfg.LoadFromEnv(), "Failed to load config")

	cfg.Database.MigrationsPath = filepath.Join(root, "migrations")
	return cfg
}
