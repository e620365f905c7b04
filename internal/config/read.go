// Package config loads the CLI configuration from an optional YAML file,
// RISKFORM_* environment variables and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/goliatone/go-riskform/pkg/prediction"
	"github.com/goliatone/go-riskform/pkg/render"
)

const (
	// EnvPrefix namespaces environment overrides, e.g. RISKFORM_ENDPOINT_URL
	// overrides endpoint.url.
	EnvPrefix = "RISKFORM"

	configName = "riskform"
	configType = "yaml"
)

var (
	ErrInvalid = errors.New("config: invalid configuration")

	validFormats  = []string{"text", "json"}
	validLevels   = []string{"debug", "info", "warn", "error"}
	validDisplays = []string{render.FormatText, render.FormatHTML, render.FormatJSON}
	validVariants = []string{render.VariantLight, render.VariantDark}
)

// Load reads the configuration. An empty path searches for riskform.yaml in
// the working directory and tolerates its absence; an explicit path must
// exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path = strings.TrimSpace(path); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read %s: %w", describePath(path), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MustLoad is Load for callers that cannot continue without configuration.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(err)
	}
	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("endpoint.url", prediction.DefaultEndpoint)
	v.SetDefault("endpoint.timeout", 30*time.Second)
	v.SetDefault("endpoint.min_pending", 1500*time.Millisecond)
	v.SetDefault("endpoint.validate_contract", false)

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.file.enabled", false)
	v.SetDefault("logging.file.path", "riskform.log")
	v.SetDefault("logging.file.max_size_mb", 10)
	v.SetDefault("logging.file.max_backups", 3)
	v.SetDefault("logging.file.max_age_days", 28)
	v.SetDefault("logging.file.compress", false)

	v.SetDefault("display.format", render.FormatText)
	v.SetDefault("display.theme", render.DefaultThemeName)
	v.SetDefault("display.variant", render.VariantLight)
	v.SetDefault("display.disclaimer", render.DefaultDisclaimer)
	v.SetDefault("display.template_dir", "")
}

func (c *Config) normalize() {
	c.Endpoint.URL = strings.TrimSpace(c.Endpoint.URL)
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Display.Format = strings.ToLower(strings.TrimSpace(c.Display.Format))
	c.Display.Variant = strings.ToLower(strings.TrimSpace(c.Display.Variant))
	c.Display.Theme = strings.TrimSpace(c.Display.Theme)
}

// Validate reports every problem found, joined into one error wrapping
// ErrInvalid.
func (c *Config) Validate() error {
	var problems []string
	if c.Endpoint.URL == "" {
		problems = append(problems, "endpoint.url is required")
	}
	if c.Endpoint.Timeout <= 0 {
		problems = append(problems, "endpoint.timeout must be positive")
	}
	if c.Endpoint.MinPending < 0 {
		problems = append(problems, "endpoint.min_pending must not be negative")
	}
	if !oneOf(c.Logging.Level, validLevels) {
		problems = append(problems, fmt.Sprintf("logging.level %q is not one of %s", c.Logging.Level, strings.Join(validLevels, ", ")))
	}
	if !oneOf(c.Logging.Format, validFormats) {
		problems = append(problems, fmt.Sprintf("logging.format %q is not one of %s", c.Logging.Format, strings.Join(validFormats, ", ")))
	}
	if c.Logging.File.Enabled && strings.TrimSpace(c.Logging.File.Path) == "" {
		problems = append(problems, "logging.file.path is required when file logging is enabled")
	}
	if !oneOf(c.Display.Format, validDisplays) {
		problems = append(problems, fmt.Sprintf("display.format %q is not one of %s", c.Display.Format, strings.Join(validDisplays, ", ")))
	}
	if !oneOf(c.Display.Variant, validVariants) {
		problems = append(problems, fmt.Sprintf("display.variant %q is not one of %s", c.Display.Variant, strings.Join(validVariants, ", ")))
	}
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
}

func oneOf(value string, allowed []string) bool {
	for _, candidate := range allowed {
		if value == candidate {
			return true
		}
	}
	return false
}

func describePath(path string) string {
	if path == "" {
		return configName + "." + configType
	}
	return path
}
