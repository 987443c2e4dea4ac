package config

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, []string{"1", "2", "3"}, cfg.AllowedBusIDs)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, log.InfoLevel, cfg.GetLogLevel())
}

func TestLoadFromFile(t *testing.T) {
	raw := `http_port: "9090"
allowed_bus_ids: ["10", "11"]
upload_dir: "/var/lib/bus-tracker/uploads"
log_level: "DEBUG"
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, []string{"10", "11"}, cfg.AllowedBusIDs)
	assert.Equal(t, "/var/lib/bus-tracker/uploads", cfg.UploadDir)
	assert.Equal(t, log.DebugLevel, cfg.GetLogLevel())
}

func TestEnvOverridesFile(t *testing.T) {
	raw := `http_port: "9090"`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	t.Setenv("HTTP_PORT", "7070")
	t.Setenv("BUS_ALLOWLIST", "4, 5,6,")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.HTTPPort)
	assert.Equal(t, []string{"4", "5", "6"}, cfg.AllowedBusIDs)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadEmptyAllowList(t *testing.T) {
	raw := `allowed_bus_ids: []`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestGetLogLevel(t *testing.T) {
	cases := map[string]log.Level{
		"DEBUG": log.DebugLevel,
		"warn":  log.WarnLevel,
		"ERROR": log.ErrorLevel,
		"bogus": log.InfoLevel,
		"":      log.InfoLevel,
	}
	for raw, want := range cases {
		cfg := &Config{LogLevel: raw}
		assert.Equal(t, want, cfg.GetLogLevel(), "level %q", raw)
	}
}
