package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFile_Defaults(t *testing.T) {
	cfg := LoadFile("")

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "public/congresses.json", cfg.Catalog.Congresses)
	assert.Equal(t, 24*time.Hour, cfg.Scheduler.Interval)
	assert.Len(t, cfg.Sources, 2)
	assert.NotNil(t, cfg.Catalog.Location())
	assert.NoError(t, cfg.Validate())
}

func TestLoadFile_MergesFile(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: debug
  format: json
catalog:
  congresses: https://cdn.example.org/congresses.json
  timezone: UTC
  watch: true
server:
  addr: ":9090"
telemetry:
  endpoint: https://analytics.example.org
scheduler:
  enabled: true
  interval: 12h
sources:
  - name: only
    importer: congresos
    location: sheet.html
    output: out.json
`)

	cfg := LoadFile(path)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "https://cdn.example.org/congresses.json", cfg.Catalog.Congresses)
	assert.Equal(t, "public/revistas.json", cfg.Catalog.Journals, "unset keys keep defaults")
	assert.True(t, cfg.Catalog.Watch)
	assert.Equal(t, time.UTC, cfg.Catalog.Location())
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.True(t, cfg.Scheduler.Enabled)
	assert.Equal(t, 12*time.Hour, cfg.Scheduler.Interval)
	require.Len(t, cfg.Sources, 1)
	assert.Equal(t, "only", cfg.Sources[0].Name)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFile_BrokenFileFallsBack(t *testing.T) {
	cfg := LoadFile(writeConfig(t, "server: [unclosed"))
	assert.Equal(t, ":8080", cfg.Server.Addr)

	cfg = LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(configPathEnv, writeConfig(t, "server:\n  addr: \":7000\"\n"))
	t.Setenv(serverAddrEnv, ":7001")
	t.Setenv(databaseDSNEnv, "postgres://u:p@db:5432/catalog")
	t.Setenv(telegramTokenEnv, "token")
	t.Setenv(telegramChatIDEnv, "42")
	t.Setenv(telemetryURLEnv, "http://localhost:8080")
	t.Setenv(logLevelEnv, "warn")

	cfg := Load()

	assert.Equal(t, ":7001", cfg.Server.Addr)
	assert.Equal(t, "postgres://u:p@db:5432/catalog", cfg.Database.DSN)
	assert.True(t, cfg.Notifications.Telegram.Enabled())
	assert.Equal(t, "http://localhost:8080", cfg.Telemetry.Endpoint)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadFile_UnknownTimezone(t *testing.T) {
	cfg := LoadFile(writeConfig(t, "catalog:\n  timezone: Mars/Olympus\n"))
	assert.Equal(t, time.UTC, cfg.Catalog.Location())
}

func TestValidate(t *testing.T) {
	cfg := LoadFile("")
	cfg.Logging.Format = "xml"
	cfg.Telemetry.Endpoint = "not a url"
	cfg.Sources = append(cfg.Sources, SourceConfig{Name: "broken"})

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Config.Logging.Format")
	assert.Contains(t, err.Error(), "Config.Telemetry.Endpoint")
	assert.Contains(t, err.Error(), "Config.Sources[2].Importer")
}
