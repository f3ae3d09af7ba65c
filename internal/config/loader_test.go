package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_AppliesYAMLValues(t *testing.T) {
	path := writeConfig(t, `
service:
  name: tenderagent-test
  port: 9090
  shutdown_timeout: 5s
logging:
  level: debug
dataset:
  path: /tmp/test.db
  repeat_min_years: 2
rules:
  version: "9.9"
  eu_threshold_eur: 250000
  relevant_above: 30
  strong_keywords: [kwantum, blockchain]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "tenderagent-test", cfg.Service.Name)
	assert.Equal(t, 9090, cfg.Service.Port)
	assert.Equal(t, 5*time.Second, cfg.Service.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/test.db", cfg.Dataset.Path)
	assert.Equal(t, 2, cfg.Dataset.RepeatMinYears)
	assert.Equal(t, "9.9", cfg.Rules.Version)
	assert.Equal(t, int64(250_000), cfg.Rules.EUThresholdEUR)
	assert.Equal(t, 30, cfg.Rules.RelevantAbove)
	assert.Equal(t, []string{"kwantum", "blockchain"}, cfg.Rules.StrongKeywords)
}

func TestLoad_FillsDefaults(t *testing.T) {
	path := writeConfig(t, `service: {}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "tenderagent", cfg.Service.Name)
	assert.Equal(t, 8080, cfg.Service.Port)
	assert.Equal(t, 10*time.Second, cfg.Service.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 3, cfg.Dataset.RepeatMinYears)
	assert.Equal(t, 5, cfg.Dataset.RepeatMaxYears)
	assert.Equal(t, 12, cfg.Dataset.LeadMonths)
	assert.Equal(t, int64(221_000), cfg.Rules.EUThresholdEUR)
	assert.Equal(t, 20, cfg.Rules.RelevantAbove)
}

func TestLoad_EnvOverridesWin(t *testing.T) {
	path := writeConfig(t, `
service:
  port: 9090
logging:
  level: debug
`)

	t.Setenv("TENDERAGENT_PORT", "7070")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("TENDERAGENT_DATASET", "/data/override.db")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Service.Port)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "/data/override.db", cfg.Dataset.Path)
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestGetConfigPath(t *testing.T) {
	assert.Equal(t, "config.yml", GetConfigPath("config.yml"))

	t.Setenv("CONFIG_PATH", "/etc/tenderagent/config.yml")
	assert.Equal(t, "/etc/tenderagent/config.yml", GetConfigPath("config.yml"))
}
