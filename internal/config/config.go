package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Backends de storage soportados.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

type Config struct {
	// HTTP server
	Port string

	// Storage
	StorageBackend string
	SQLiteDBPath   string
	PostgresDSN    string

	// Catálogo remoto (opcional; vacío => catálogo embebido)
	ClinicAPIURL    string
	ClinicAPIKey    string
	CatalogCacheTTL time.Duration
	UpstreamTimeout time.Duration
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8080"),

		StorageBackend: strings.ToLower(getEnv("STORAGE_BACKEND", BackendSQLite)),
		SQLiteDBPath:   getEnv("SQLITE_DB_PATH", "./data/vetclinic.db"),
		PostgresDSN:    getEnv("DB_DSN", ""),

		ClinicAPIURL:    getEnv("CLINIC_API_URL", ""),
		ClinicAPIKey:    getEnv("CLINIC_API_KEY", ""),
		CatalogCacheTTL: getEnvDuration("CATALOG_CACHE_TTL", 5*time.Minute),
		UpstreamTimeout: getEnvDuration("UPSTREAM_TIMEOUT", 10*time.Second),
	}
}

func (c *Config) Validate() error {
	switch c.StorageBackend {
	case BackendMemory, BackendSQLite:
	case BackendPostgres:
		if strings.TrimSpace(c.PostgresDSN) == "" {
			return fmt.Errorf("DB_DSN required when STORAGE_BACKEND=postgres")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend)
	}
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
