// Package config loads and validates application configuration from an
// optional config file and environment variables.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// Storage drivers accepted in STORAGE_DRIVER.
const (
	DriverJSON     = "json"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all configuration values for the food guide binaries.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// LogFile, when set, receives a copy of every log line. The file is
	// rotated by size.
	LogFile string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// StorageDriver selects the eatery store: json, sqlite or postgres.
	// Defaults to sqlite.
	StorageDriver string

	// DataFile is the JSON store path used by the json driver.
	DataFile string

	// SQLitePath is the database file used by the sqlite driver.
	SQLitePath string

	// DatabaseURL is the Postgres connection string. Required for the
	// postgres driver only.
	DatabaseURL string

	// MaxBodyBytes caps request bodies accepted by the HTTP API.
	MaxBodyBytes int64
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("cors_origins", "http://localhost:5173")
	v.SetDefault("storage_driver", DriverSQLite)
	v.SetDefault("data_file", "data/foodguide.json")
	v.SetDefault("sqlite_path", "data/foodguide.db")
	v.SetDefault("database_url", "")
	v.SetDefault("max_body_bytes", 1<<20)
}

// Load reads configuration from environment variables and returns a Config.
func Load() (Config, error) {
	return LoadFile("")
}

// LoadFile reads the YAML config file at path, if non-empty, then applies
// environment overrides. Environment variables always win over the file.
func LoadFile(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	cfg := Config{
		Port:          v.GetString("port"),
		LogLevel:      v.GetString("log_level"),
		LogFile:       v.GetString("log_file"),
		CORSOrigins:   stringList(v.Get("cors_origins")),
		StorageDriver: strings.ToLower(v.GetString("storage_driver")),
		DataFile:      v.GetString("data_file"),
		SQLitePath:    v.GetString("sqlite_path"),
		DatabaseURL:   v.GetString("database_url"),
		MaxBodyBytes:  v.GetInt64("max_body_bytes"),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var errs []error

	if !slices.Contains([]string{DriverJSON, DriverSQLite, DriverPostgres}, c.StorageDriver) {
		errs = append(errs, fmt.Errorf("unknown STORAGE_DRIVER %q (want json, sqlite or postgres)", c.StorageDriver))
	}

	var missing []string
	if c.StorageDriver == DriverPostgres && c.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if c.StorageDriver == DriverJSON && c.DataFile == "" {
		missing = append(missing, "DATA_FILE")
	}
	if c.StorageDriver == DriverSQLite && c.SQLitePath == "" {
		missing = append(missing, "SQLITE_PATH")
	}
	if len(missing) > 0 {
		errs = append(errs, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", ")))
	}

	if c.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("MAX_BODY_BYTES must be positive, got %d", c.MaxBodyBytes))
	}

	return errors.Join(errs...)
}

// stringList accepts either a comma-separated string (environment) or a
// YAML list (config file).
func stringList(raw any) []string {
	switch v := raw.(type) {
	case string:
		return splitCSV(v)
	case []any:
		var out []string
		for _, item := range v {
			out = append(out, splitCSV(fmt.Sprint(item))...)
		}
		return out
	case []string:
		return splitCSV(strings.Join(v, ","))
	default:
		return nil
	}
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
