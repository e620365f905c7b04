package config

import "time"

// Config is the resolved runtime configuration of the riskform CLI.
type Config struct {
	Endpoint EndpointConfig `mapstructure:"endpoint"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Display  DisplayConfig  `mapstructure:"display"`
}

// EndpointConfig describes the prediction service.
type EndpointConfig struct {
	URL              string        `mapstructure:"url"`
	Timeout          time.Duration `mapstructure:"timeout"`
	MinPending       time.Duration `mapstructure:"min_pending"`
	ValidateContract bool          `mapstructure:"validate_contract"`
}

type LoggingConfig struct {
	Level  string     `mapstructure:"level"`
	Format string     `mapstructure:"format"`
	File   FileConfig `mapstructure:"file"`
}

// FileConfig enables a rotating log file next to stderr output.
type FileConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Path       string `mapstructure:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

type DisplayConfig struct {
	Format      string `mapstructure:"format"`
	Theme       string `mapstructure:"theme"`
	Variant     string `mapstructure:"variant"`
	Disclaimer  string `mapstructure:"disclaimer"`
	TemplateDir string `mapstructure:"template_dir"`
}
