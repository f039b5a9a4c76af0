package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, StorageMemory, cfg.Storage.Backend)
	assert.Equal(t, "data/patient_intake.jsonl", cfg.Storage.IntakeFilePath)
	assert.Equal(t, "pending", cfg.Booking.InitialStatus)
	assert.Equal(t, "confirmed", cfg.Booking.AdminInitialStatus)
	assert.Equal(t, "user", cfg.Booking.DuplicateScope)
	assert.Equal(t, CacheMemory, cfg.Cache.Backend)

	schedule, err := cfg.Schedule.SlotSchedule()
	require.NoError(t, err)
	assert.Len(t, schedule.Slots(), 18)
}

func TestLoad_FileValuesAndEnv(t *testing.T) {
	t.Setenv(EnvDBPassword, "s3cret")
	t.Setenv(EnvJWTSecret, "jwt-key")

	cfg, err := Load(writeConfig(t, `
[server]
http_port = 9090

[database]
user = "docaid"
dbname = "docaid"
password = "from-file"

[storage]
backend = "postgres"

[booking]
initial_status = "confirmed"
duplicate_scope = "global"
timezone = "UTC"
demo_mode = true

[schedule]
first_slot = "9:00 AM"
last_slot = "12:00 PM"
step_minutes = 60

[cache]
backend = "redis"
redis_addr = "localhost:6379"
`))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, "jwt-key", cfg.Auth.JWTSecret)
	assert.Contains(t, cfg.Database.DSN(), "password=s3cret")
	assert.True(t, cfg.Booking.DemoMode)

	loc, err := cfg.Booking.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	schedule, err := cfg.Schedule.SlotSchedule()
	require.NoError(t, err)
	assert.Len(t, schedule.Slots(), 4)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown storage", "[storage]\nbackend = \"mongo\""},
		{"postgres without db", "[storage]\nbackend = \"postgres\""},
		{"cancelled initial status", "[booking]\ninitial_status = \"cancelled\""},
		{"bad duplicate scope", "[booking]\nduplicate_scope = \"doctor\""},
		{"bad timezone", "[booking]\ntimezone = \"Mars/Olympus\""},
		{"bad schedule", "[schedule]\nfirst_slot = \"18:00\"\nlast_slot = \"09:00\""},
		{"redis without addr", "[cache]\nbackend = \"redis\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
