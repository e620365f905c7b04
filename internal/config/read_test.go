package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-riskform/pkg/prediction"
	"github.com/goliatone/go-riskform/pkg/render"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "riskform.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, prediction.DefaultEndpoint, cfg.Endpoint.URL)
	assert.Equal(t, 30*time.Second, cfg.Endpoint.Timeout)
	assert.Equal(t, 1500*time.Millisecond, cfg.Endpoint.MinPending)
	assert.False(t, cfg.Endpoint.ValidateContract)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.False(t, cfg.Logging.File.Enabled)
	assert.Equal(t, render.FormatText, cfg.Display.Format)
	assert.Equal(t, render.VariantLight, cfg.Display.Variant)
	assert.Equal(t, render.DefaultDisclaimer, cfg.Display.Disclaimer)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
endpoint:
  url: http://models.internal:8080/predict
  timeout: 5s
  min_pending: 0s
  validate_contract: true
logging:
  level: DEBUG
  format: json
  file:
    enabled: true
    path: /tmp/riskform.log
    max_size_mb: 1
display:
  format: html
  variant: dark
  disclaimer: ""
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://models.internal:8080/predict", cfg.Endpoint.URL)
	assert.Equal(t, 5*time.Second, cfg.Endpoint.Timeout)
	assert.Zero(t, cfg.Endpoint.MinPending)
	assert.True(t, cfg.Endpoint.ValidateContract)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.Logging.File.Enabled)
	assert.Equal(t, 1, cfg.Logging.File.MaxSizeMB)
	assert.Equal(t, 3, cfg.Logging.File.MaxBackups, "unset keys keep their defaults")
	assert.Equal(t, render.FormatHTML, cfg.Display.Format)
	assert.Equal(t, render.VariantDark, cfg.Display.Variant)
	assert.Empty(t, cfg.Display.Disclaimer)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "endpoint:\n  url: http://from-file/predict\n")
	t.Setenv("RISKFORM_ENDPOINT_URL", "http://from-env/predict")
	t.Setenv("RISKFORM_ENDPOINT_TIMEOUT", "2s")
	t.Setenv("RISKFORM_DISPLAY_FORMAT", "json")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://from-env/predict", cfg.Endpoint.URL)
	assert.Equal(t, 2*time.Second, cfg.Endpoint.Timeout)
	assert.Equal(t, render.FormatJSON, cfg.Display.Format)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_ValidationErrors(t *testing.T) {
	cases := map[string]struct {
		body string
		want string
	}{
		"empty url":        {"endpoint:\n  url: \"  \"\n", "endpoint.url is required"},
		"zero timeout":     {"endpoint:\n  timeout: 0s\n", "endpoint.timeout must be positive"},
		"negative pending": {"endpoint:\n  min_pending: -1s\n", "endpoint.min_pending must not be negative"},
		"log level":        {"logging:\n  level: trace\n", `logging.level "trace"`},
		"log format":       {"logging:\n  format: xml\n", `logging.format "xml"`},
		"file path":        {"logging:\n  file:\n    enabled: true\n    path: \"\"\n", "logging.file.path is required"},
		"display format":   {"display:\n  format: pdf\n", `display.format "pdf"`},
		"variant":          {"display:\n  variant: sepia\n", `display.variant "sepia"`},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			require.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.Endpoint.URL = ""
	cfg.Display.Format = "pdf"

	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "endpoint.url is required")
	assert.Contains(t, err.Error(), `display.format "pdf"`)
}
