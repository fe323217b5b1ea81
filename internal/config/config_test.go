package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.Server.HTTPPort)
	assert.Equal(t, StorageMemory, cfg.Storage.Backend)
	assert.Equal(t, 1, cfg.Slots.Capacity)
	assert.Equal(t, 90, cfg.Slots.DurationMinutes)
	assert.Equal(t, 30, cfg.Slots.StrideMinutes)
	assert.Equal(t, 6, cfg.Retention.Months)
	assert.Equal(t, 500, cfg.Retention.BatchSize)
	assert.Equal(t, "Europe/Brussels", cfg.Calendar.Timezone)
	assert.Equal(t, "https://www.googleapis.com/calendar/v3", cfg.Calendar.BaseURL)
	assert.Equal(t, 64, cfg.Notifications.QueueSize)
	assert.Equal(t, 2, cfg.Notifications.Workers)
	assert.False(t, cfg.Calendar.IsConfigured())
	assert.False(t, cfg.SMTP.IsConfigured())
}

func TestLoad_OverridesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[server]
http_port = 8080

[storage]
backend = "postgres"

[slots]
capacity = 2
duration_minutes = 60
stride_minutes = 60

[calendar]
calendar_id = "primary"
api_key = "key"
`))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, StoragePostgres, cfg.Storage.Backend)
	assert.Equal(t, 2, cfg.Slots.Capacity)
	assert.Equal(t, 60, cfg.Slots.DurationMinutes)
	assert.True(t, cfg.Calendar.IsConfigured())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoad_InvalidTOML(t *testing.T) {
	_, err := Load(writeConfig(t, "not [valid toml"))
	assert.Error(t, err)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown backend", "[storage]\nbackend = \"redis\"\n"},
		{"zero capacity", "[slots]\ncapacity = 0\n"},
		{"stride exceeds duration", "[slots]\nduration_minutes = 30\nstride_minutes = 60\n"},
		{"zero stride", "[slots]\nstride_minutes = 0\n"},
		{"zero retention", "[retention]\nmonths = 0\n"},
		{"zero batch size", "[retention]\nbatch_size = 0\n"},
		{"zero notify workers", "[notifications]\nworkers = 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "app",
		Password: "secret",
		DBName:   "sb_booking",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=app password=secret dbname=sb_booking sslmode=disable",
		cfg.DSN())
}
