package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKeys = []string{
	"DATABASE_DRIVER", "DATABASE_URL", "SERVER_PORT", "CORS_ALLOWED_ORIGINS", "SNAPSHOT_SCHEDULE",
	"R2_ACCOUNT_ID", "R2_ACCESS_KEY_ID", "R2_SECRET_ACCESS_KEY", "R2_BUCKET_NAME", "R2_PUBLIC_BASE_URL", "R2_ENDPOINT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allKeys {
		t.Setenv(k, "")
	}
}

func setR2(t *testing.T) {
	t.Setenv("R2_ACCOUNT_ID", "acc")
	t.Setenv("R2_ACCESS_KEY_ID", "key")
	t.Setenv("R2_SECRET_ACCESS_KEY", "secret")
	t.Setenv("R2_BUCKET_NAME", "bucket")
	t.Setenv("R2_PUBLIC_BASE_URL", "https://cdn.example.com")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/tournament")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.DatabaseDriver)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.ArchiveEnabled())
}

func TestLoadFullConfig(t *testing.T) {
	clearEnv(t)
	setR2(t)
	t.Setenv("DATABASE_DRIVER", "sqlite3")
	t.Setenv("DATABASE_URL", "file:tournament.db?_foreign_keys=1")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")
	t.Setenv("SNAPSHOT_SCHEDULE", " 0 */15 * * * * ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.DatabaseDriver)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "0 */15 * * * *", cfg.SnapshotSchedule)
	assert.True(t, cfg.ArchiveEnabled())
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"missing url", nil, "DATABASE_URL"},
		{"bad driver", map[string]string{"DATABASE_URL": "x", "DATABASE_DRIVER": "mysql"}, "DATABASE_DRIVER"},
		{"bad port", map[string]string{"DATABASE_URL": "x", "SERVER_PORT": "http"}, "SERVER_PORT"},
		{"port out of range", map[string]string{"DATABASE_URL": "x", "SERVER_PORT": "70000"}, "SERVER_PORT"},
		{"partial r2", map[string]string{"DATABASE_URL": "x", "R2_ACCOUNT_ID": "acc", "R2_BUCKET_NAME": "b"},
			"missing: R2_ACCESS_KEY_ID, R2_PUBLIC_BASE_URL, R2_SECRET_ACCESS_KEY"},
		{"schedule without r2", map[string]string{"DATABASE_URL": "x", "SNAPSHOT_SCHEDULE": "@hourly"}, "SNAPSHOT_SCHEDULE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
