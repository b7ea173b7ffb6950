package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/car_insurance_app/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PGSQL_URL", "postgres://localhost/cars")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, config.StoreDriverPostgres, cfg.StoreDriver)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.Equal(t, 10*time.Minute, cfg.ExpiryScanInterval)
	assert.Equal(t, 3, cfg.ExpiryScanMaxRetries)
	assert.Equal(t, 30*time.Second, cfg.ExpiryScanRetryDelay)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
	assert.Empty(t, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORE_DRIVER", "MEMORY")
	t.Setenv("EXPIRY_SCAN_INTERVAL", "1m")
	t.Setenv("EXPIRY_SCAN_RETRY_DELAY", "not-a-duration")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, config.StoreDriverMemory, cfg.StoreDriver)
	assert.Equal(t, time.Minute, cfg.ExpiryScanInterval)
	assert.Equal(t, 30*time.Second, cfg.ExpiryScanRetryDelay, "invalid duration falls back to default")
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=9999\n"), 0o600))
	t.Setenv("PORT", "")
	os.Unsetenv("PORT")

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "9999", cfg.Port)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Run("store driver", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "mongo")
		_, err := config.LoadConfig()
		assert.Error(t, err)
	})

	t.Run("timezone", func(t *testing.T) {
		t.Setenv("TIMEZONE", "Mars/Olympus")
		_, err := config.LoadConfig()
		assert.Error(t, err)
	})

	t.Run("missing env file", func(t *testing.T) {
		_, err := config.LoadConfig(filepath.Join(t.TempDir(), "nope.env"))
		assert.Error(t, err)
	})
}
