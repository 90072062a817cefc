package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"STORAGE_DRIVER", "SERVER_HOST", "SERVER_PORT", "BOLTDB_PATH", "DATABASE_URL",
		"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME", "DB_SSLMODE",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverBolt, cfg.Storage.Driver)
	assert.Equal(t, "127.0.0.1:8080", cfg.Address())
	assert.Equal(t, "./data/schedule.db", cfg.Bolt.Path)
	assert.Equal(t, "postgres://schedule:@localhost:5432/schedule?sslmode=disable", cfg.Database.URL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "redis")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("MONITOR_INTERVAL", "45")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "750ms")
	t.Setenv("RUN_MIGRATIONS", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverRedis, cfg.Storage.Driver)
	assert.Equal(t, "9090", cfg.HTTP.Port)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, 45*time.Second, cfg.Monitor.Interval)
	assert.Equal(t, 750*time.Millisecond, cfg.Context.RequestTimeout)
	assert.False(t, cfg.Migrations.Enabled)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "localstorage")
	_, err := Load()
	assert.Error(t, err)
}

func TestLocation(t *testing.T) {
	cfg := &Config{Timezone: "Local"}
	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	cfg.Timezone = "UTC"
	loc, err = cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	cfg.Timezone = "Mars/Olympus"
	_, err = cfg.Location()
	assert.Error(t, err)
}
