package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	DatabaseDriver     string
	DatabaseURL        string
	ServerPort         int
	CORSAllowedOrigins []string

	// SnapshotSchedule is a six-field cron spec (with seconds). Empty disables the job.
	SnapshotSchedule string

	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicBaseURL   string
	// R2Endpoint overrides the endpoint derived from the account id (MinIO, local S3).
	R2Endpoint string
}

// ArchiveEnabled reports whether object storage credentials were supplied.
func (c *Config) ArchiveEnabled() bool {
	return c.R2AccountID != ""
}

// Load загружает конфигурацию из переменных окружения.
// Опционально подгружает .env файл (полезно для локальной разработки).
func Load() (*Config, error) {
	_ = godotenv.Load()

	driver := getEnvOrDefault("DATABASE_DRIVER", DriverPostgres)
	if driver != DriverPostgres && driver != DriverSQLite {
		return nil, fmt.Errorf("DATABASE_DRIVER must be %q or %q, got %q", DriverPostgres, DriverSQLite, driver)
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	portStr := getEnvOrDefault("SERVER_PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	cfg := &Config{
		DatabaseDriver:     driver,
		DatabaseURL:        dbURL,
		ServerPort:         port,
		CORSAllowedOrigins: splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*")),
		SnapshotSchedule:   strings.TrimSpace(os.Getenv("SNAPSHOT_SCHEDULE")),
		R2AccountID:        os.Getenv("R2_ACCOUNT_ID"),
		R2AccessKeyID:      os.Getenv("R2_ACCESS_KEY_ID"),
		R2SecretAccessKey:  os.Getenv("R2_SECRET_ACCESS_KEY"),
		R2BucketName:       os.Getenv("R2_BUCKET_NAME"),
		R2PublicBaseURL:    os.Getenv("R2_PUBLIC_BASE_URL"),
		R2Endpoint:         os.Getenv("R2_ENDPOINT"),
	}

	if err := cfg.validateArchive(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validateArchive requires the R2 settings to be given all together or not at all.
func (c *Config) validateArchive() error {
	fields := map[string]string{
		"R2_ACCOUNT_ID":        c.R2AccountID,
		"R2_ACCESS_KEY_ID":     c.R2AccessKeyID,
		"R2_SECRET_ACCESS_KEY": c.R2SecretAccessKey,
		"R2_BUCKET_NAME":       c.R2BucketName,
		"R2_PUBLIC_BASE_URL":   c.R2PublicBaseURL,
	}
	var missing []string
	set := 0
	for name, value := range fields {
		if value == "" {
			missing = append(missing, name)
		} else {
			set++
		}
	}
	if set > 0 && len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("incomplete object storage configuration, missing: %s", strings.Join(missing, ", "))
	}
	if c.SnapshotSchedule != "" && set == 0 {
		return fmt.Errorf("SNAPSHOT_SCHEDULE requires the R2_* object storage variables")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
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
