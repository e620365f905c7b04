package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-riskform/pkg/model"
	"github.com/goliatone/go-riskform/pkg/render/template"
)

// ErrUnknownFormat is returned for an output format with no renderer.
var ErrUnknownFormat = errors.New("render: unknown format")

// Option configures a Display.
type Option func(*displayConfig)

type displayConfig struct {
	format      string
	templates   fs.FS
	templateDir string
	engine      template.TemplateRenderer
	selector    theme.ThemeSelector
	themeName   string
	variant     string
	disclaimer  *string
	renderers   []Renderer
	logger      *slog.Logger
}

// WithFormat selects the default output format.
func WithFormat(format string) Option {
	return func(cfg *displayConfig) {
		cfg.format = strings.ToLower(strings.TrimSpace(format))
	}
}

// WithTemplates overrides the bundled templates. The filesystem must provide
// result.txt.tpl and result.html.tpl.
func WithTemplates(files fs.FS) Option {
	return func(cfg *displayConfig) {
		cfg.templates = files
	}
}

// WithTemplateDir loads templates from disk ahead of the bundled ones.
func WithTemplateDir(dir string) Option {
	return func(cfg *displayConfig) {
		cfg.templateDir = strings.TrimSpace(dir)
	}
}

// WithTemplateRenderer injects a ready template engine.
func WithTemplateRenderer(engine template.TemplateRenderer) Option {
	return func(cfg *displayConfig) {
		cfg.engine = engine
	}
}

// WithThemeSelector resolves theme tokens through selector.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(cfg *displayConfig) {
		cfg.selector = selector
	}
}

// WithTheme picks the theme and variant passed to the selector.
func WithTheme(name, variant string) Option {
	return func(cfg *displayConfig) {
		cfg.themeName = strings.TrimSpace(name)
		cfg.variant = strings.TrimSpace(variant)
	}
}

// WithDisclaimer replaces the default disclaimer. Markup is sanitized; an
// empty string hides the disclaimer.
func WithDisclaimer(disclaimer string) Option {
	return func(cfg *displayConfig) {
		cfg.disclaimer = &disclaimer
	}
}

// WithRenderer registers an extra renderer, e.g. a custom format.
func WithRenderer(renderer Renderer) Option {
	return func(cfg *displayConfig) {
		if renderer != nil {
			cfg.renderers = append(cfg.renderers, renderer)
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *displayConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// Display renders outcomes in the configured format.
type Display struct {
	registry   *Registry
	format     string
	theme      ThemeView
	disclaimer string
	logger     *slog.Logger
}

// NewDisplay wires the template engine, the renderers and the theme.
func NewDisplay(options ...Option) (*Display, error) {
	cfg := &displayConfig{
		format:  FormatText,
		variant: VariantLight,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	engine := cfg.engine
	if engine == nil {
		files := cfg.templates
		if files == nil {
			files = Templates()
		}
		engineOpts := []template.Option{template.WithFS(files)}
		if cfg.templateDir != "" {
			engineOpts = append(engineOpts, template.WithBaseDir(cfg.templateDir))
		}
		built, err := template.New(engineOpts...)
		if err != nil {
			return nil, fmt.Errorf("render: template engine: %w", err)
		}
		engine = built
	}

	selector := cfg.selector
	if selector == nil {
		built, err := NewThemeSelector()
		if err != nil {
			return nil, err
		}
		selector = built
	}
	selection, err := selector.Select(cfg.themeName, cfg.variant)
	if err != nil {
		return nil, fmt.Errorf("render: select theme: %w", err)
	}

	disclaimer := DefaultDisclaimer
	if cfg.disclaimer != nil {
		disclaimer = *cfg.disclaimer
	}

	registry := NewRegistry()
	for _, renderer := range []Renderer{NewTextRenderer(engine), NewHTMLRenderer(engine), NewJSONRenderer()} {
		registry.MustRegister(renderer)
	}
	for _, renderer := range cfg.renderers {
		if err := registry.Register(renderer); err != nil {
			return nil, err
		}
	}
	if !registry.Has(cfg.format) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, cfg.format)
	}

	return &Display{
		registry:   registry,
		format:     cfg.format,
		theme:      ResolveTheme(selection),
		disclaimer: SanitizeDisclaimer(disclaimer),
		logger:     cfg.logger,
	}, nil
}

// Format returns the default output format.
func (d *Display) Format() string {
	return d.format
}

// Formats lists the registered output formats.
func (d *Display) Formats() []string {
	return d.registry.List()
}

// ContentType reports the MIME type of the default format.
func (d *Display) ContentType() string {
	renderer, err := d.registry.Get(d.format)
	if err != nil {
		return ""
	}
	return renderer.ContentType()
}

// View builds the template data for outcome.
func (d *Display) View(outcome model.PredictionOutcome) View {
	return NewView(outcome, d.disclaimer, d.theme)
}

// Render writes outcome in the default format. A nil outcome writes nothing.
func (d *Display) Render(w io.Writer, outcome *model.PredictionOutcome) error {
	return d.RenderAs(w, d.format, outcome)
}

// RenderAs writes outcome in the named format.
func (d *Display) RenderAs(w io.Writer, format string, outcome *model.PredictionOutcome) error {
	if outcome == nil {
		return nil
	}
	renderer, err := d.registry.Get(strings.ToLower(strings.TrimSpace(format)))
	if err != nil {
		return err
	}
	d.logger.Debug("rendering outcome", slog.String("format", renderer.Name()), slog.Bool("positive", outcome.Positive))
	return renderer.Render(w, d.View(*outcome))
}

// RenderString is Render into a string.
func (d *Display) RenderString(outcome *model.PredictionOutcome) (string, error) {
	var buf bytes.Buffer
	if err := d.Render(&buf, outcome); err != nil {
		return "", err
	}
	return buf.String(), nil
}
