package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	// API contains API server configuration
	API APIConfig
	// Database contains database configuration
	Database DatabaseConfig
	// RateLimit contains per-client request limits
	RateLimit RateLimitConfig
	// CORS contains cross-origin settings
	CORS CORSConfig
	// Log contains logger settings
	Log LogConfig
}

// APIConfig contains API server settings
type APIConfig struct {
	// Port is the server port to listen on
	Port string
	// BaseURL is the public URL used to build resource links
	BaseURL string
	// IsProduction disables the swagger UI and switches gin to release mode
	IsProduction bool
	// ShutdownTimeout bounds graceful shutdown
	ShutdownTimeout time.Duration
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	// Host is the database server hostname
	Host string
	// Port is the database server port
	Port int
	// User is the database username
	User string
	// Password is the database password
	Password string
	// DBName is the database name
	DBName string
	// SSLMode is the SSL mode for the database connection
	SSLMode string
	// MigrationsPath is the path to database migrations
	MigrationsPath string
}

// RateLimitConfig contains rate limiting settings
type RateLimitConfig struct {
	// Requests is the number of requests allowed per window
	Requests int
	// Window is the length of the rate limit window
	Window time.Duration
	// Burst is the maximum burst size
	Burst int
}

// CORSConfig contains CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// LogConfig contains logging settings
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string
	// Format is json or text
	Format string
}

// LoadFromEnv retrieves configuration from environment variables.
// A .env file, if wanted, must be loaded into the environment beforehand.
func (c *Config) LoadFromEnv() error {
	v := viper.New()
	v.SetDefault("API_PORT", "8080")
	v.SetDefault("API_BASE_URL", "http://localhost:8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("SHUTDOWN_TIMEOUT", "5s")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "currencyrates")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MIGRATIONS_PATH", "migrations")
	v.SetDefault("RATE_LIMIT_REQUESTS", "1000")
	v.SetDefault("RATE_LIMIT_WINDOW", "60s")
	v.SetDefault("RATE_LIMIT_BURST", "50")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.AutomaticEnv()

	var err error
	c.API = APIConfig{
		Port:         v.GetString("API_PORT"),
		BaseURL:      v.GetString("API_BASE_URL"),
		IsProduction: v.GetBool("IS_PRODUCTION"),
	}
	if _, err = strconv.Atoi(c.API.Port); err != nil {
		return fmt.Errorf("invalid API_PORT %q: %w", c.API.Port, err)
	}
	if c.API.ShutdownTimeout, err = getDuration(v, "SHUTDOWN_TIMEOUT"); err != nil {
		return err
	}

	c.Database = DatabaseConfig{
		Host:           v.GetString("DB_HOST"),
		User:           v.GetString("DB_USER"),
		Password:       v.GetString("DB_PASSWORD"),
		DBName:         v.GetString("DB_NAME"),
		SSLMode:        v.GetString("DB_SSL_MODE"),
		MigrationsPath: v.GetString("DB_MIGRATIONS_PATH"),
	}
	if c.Database.Port, err = getInt(v, "DB_PORT"); err != nil {
		return err
	}

	if c.RateLimit.Requests, err = getInt(v, "RATE_LIMIT_REQUESTS"); err != nil {
		return err
	}
	if c.RateLimit.Window, err = getDuration(v, "RATE_LIMIT_WINDOW"); err != nil {
		return err
	}
	if c.RateLimit.Burst, err = getInt(v, "RATE_LIMIT_BURST"); err != nil {
		return err
	}
	if c.RateLimit.Requests <= 0 || c.RateLimit.Window <= 0 {
		return fmt.Errorf("rate limit requests and window must be positive")
	}

	c.CORS.AllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	c.Log = LogConfig{
		Level:  strings.ToLower(v.GetString("LOG_LEVEL")),
		Format: strings.ToLower(v.GetString("LOG_FORMAT")),
	}

	return nil
}

// getInt retrieves a value and converts it to an integer
func getInt(v *viper.Viper, key string) (int, error) {
	raw := v.GetString(key)
	i, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return i, nil
}

// getDuration accepts Go durations ("90s") or a bare number of seconds
func getDuration(v *viper.Viper, key string) (time.Duration, error) {
	raw := v.GetString(key)
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return d, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
