package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// Config holds all configuration for the application
type Config struct {
	// DataPath is the root directory for JSON state snapshots.
	DataPath string

	// DBPath is the SQLite database holding lesson progress.
	DBPath string

	// CatalogPath is the bundled lesson catalog document.
	CatalogPath string

	Debug bool
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	dataPath := getEnv("LINGO_DATA_PATH", ".lingo")

	cfg := &Config{
		DataPath:    dataPath,
		DBPath:      getEnv("LINGO_DB_PATH", filepath.Join(dataPath, "lingo.db")),
		CatalogPath: getEnv("LINGO_CATALOG_PATH", filepath.Join("assets", "catalog.yaml")),
		Debug:       getEnvBool("LINGO_DEBUG", false),
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
