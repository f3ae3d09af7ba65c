// Package config provides YAML configuration with environment variable
// overrides for the tender agent service.
package config

import "time"

// Default configuration values.
const (
	defaultServiceName     = "tenderagent"
	defaultServiceVersion  = "1.0.0"
	defaultServicePort     = 8080
	defaultShutdownSec     = 10
	defaultLogLevel        = "info"
	defaultDatasetPath     = "data/aanbestedingen.db"
	defaultRepeatMinYears  = 3
	defaultRepeatMaxYears  = 5
	defaultLeadMonths      = 12
	defaultRulesVersion    = "2026.1"
	defaultEUThresholdEUR  = 221_000
	defaultRelevantAbove   = 20
	defaultMaxRequestBytes = 1 << 20
)

// Config holds all configuration for the tender agent service.
type Config struct {
	Service Service `yaml:"service"`
	Logging Logging `yaml:"logging"`
	Dataset Dataset `yaml:"dataset"`
	Rules   Rules   `yaml:"rules"`
}

// Service holds HTTP server configuration.
type Service struct {
	Name            string        `yaml:"name"`
	Version         string        `yaml:"version"`
	Port            int           `env:"TENDERAGENT_PORT"  yaml:"port"`
	Debug           bool          `env:"APP_DEBUG"         yaml:"debug"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	MaxRequestBytes int64         `yaml:"max_request_bytes"`
}

// Logging holds logger configuration.
type Logging struct {
	Level string `env:"LOG_LEVEL" yaml:"level"`
}

// Dataset holds the historical awards dataset configuration.
type Dataset struct {
	// Path points at the SQLite file with historical notices. The
	// service starts without history features when the file is absent.
	Path string `env:"TENDERAGENT_DATASET" yaml:"path"`

	// RepeatMinYears and RepeatMaxYears bound the lookback window for
	// repeat tender prediction, in years before now.
	RepeatMinYears int `yaml:"repeat_min_years"`
	RepeatMaxYears int `yaml:"repeat_max_years"`

	// LeadMonths bounds how far ahead pre-announcements are reported.
	LeadMonths int `yaml:"lead_months"`
}

// Rules holds overrides for the classification rule tables. Every table
// is optional; empty tables fall back to the built-in defaults.
type Rules struct {
	// Version tags results so scoring changes are traceable.
	Version string `env:"TENDERAGENT_RULES_VERSION" yaml:"version"`

	// EUThresholdEUR is the European services procurement threshold in
	// euros, used as a floor on estimated value bands.
	EUThresholdEUR int64 `yaml:"eu_threshold_eur"`

	// RelevantAbove is the fit score above which a tender is labeled
	// relevant. Scores from zero up to and including this value are
	// labeled possible.
	RelevantAbove int `yaml:"relevant_above"`

	NegativeTitleKeywords []string            `yaml:"negative_title_keywords"`
	StrongKeywords        []string            `yaml:"strong_keywords"`
	CodePrefixes          []string            `yaml:"code_prefixes"`
	SegmentKeywords       map[string][]string `yaml:"segment_keywords"`
}

// SetDefaults fills zero-valued fields with defaults.
func SetDefaults(cfg *Config) {
	if cfg.Service.Name == "" {
		cfg.Service.Name = defaultServiceName
	}
	if cfg.Service.Version == "" {
		cfg.Service.Version = defaultServiceVersion
	}
	if cfg.Service.Port == 0 {
		cfg.Service.Port = defaultServicePort
	}
	if cfg.Service.ShutdownTimeout == 0 {
		cfg.Service.ShutdownTimeout = defaultShutdownSec * time.Second
	}
	if cfg.Service.MaxRequestBytes == 0 {
		cfg.Service.MaxRequestBytes = defaultMaxRequestBytes
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaultLogLevel
	}
	if cfg.Dataset.Path == "" {
		cfg.Dataset.Path = defaultDatasetPath
	}
	if cfg.Dataset.RepeatMinYears == 0 {
		cfg.Dataset.RepeatMinYears = defaultRepeatMinYears
	}
	if cfg.Dataset.RepeatMaxYears == 0 {
		cfg.Dataset.RepeatMaxYears = defaultRepeatMaxYears
	}
	if cfg.Dataset.LeadMonths == 0 {
		cfg.Dataset.LeadMonths = defaultLeadMonths
	}
	if cfg.Rules.Version == "" {
		cfg.Rules.Version = defaultRulesVersion
	}
	if cfg.Rules.EUThresholdEUR == 0 {
		cfg.Rules.EUThresholdEUR = defaultEUThresholdEUR
	}
	if cfg.Rules.RelevantAbove == 0 {
		cfg.Rules.RelevantAbove = defaultRelevantAbove
	}
}
