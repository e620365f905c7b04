package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goliatone/go-riskform/pkg/render/template"
)

const (
	FormatText = "text"
	FormatHTML = "html"
	FormatJSON = "json"
)

// templateRenderer renders a View through a named template.
type templateRenderer struct {
	name        string
	contentType string
	template    string
	engine      template.TemplateRenderer
	plain       bool
}

// NewTextRenderer renders the plain-text template. Markup in the disclaimer
// is stripped.
func NewTextRenderer(engine template.TemplateRenderer) Renderer {
	return &templateRenderer{name: FormatText, contentType: "text/plain; charset=utf-8", template: textTemplate, engine: engine, plain: true}
}

// NewHTMLRenderer renders the HTML fragment template. The disclaimer is
// expected to be sanitized already.
func NewHTMLRenderer(engine template.TemplateRenderer) Renderer {
	return &templateRenderer{name: FormatHTML, contentType: "text/html; charset=utf-8", template: htmlTemplate, engine: engine}
}

func (r *templateRenderer) Name() string        { return r.name }
func (r *templateRenderer) ContentType() string { return r.contentType }

func (r *templateRenderer) Render(w io.Writer, view View) error {
	if r.engine == nil {
		return fmt.Errorf("render: %s renderer has no template engine", r.name)
	}
	if r.plain {
		view.Disclaimer = PlainText(view.Disclaimer)
	}
	if _, err := r.engine.RenderTemplate(r.template, view, w); err != nil {
		return fmt.Errorf("render: %s: %w", r.name, err)
	}
	return nil
}

type jsonRenderer struct{}

// NewJSONRenderer emits the outcome as a JSON object.
func NewJSONRenderer() Renderer {
	return jsonRenderer{}
}

func (jsonRenderer) Name() string        { return FormatJSON }
func (jsonRenderer) ContentType() string { return "application/json" }

func (jsonRenderer) Render(w io.Writer, view View) error {
	payload := struct {
		Label       string  `json:"label"`
		Positive    bool    `json:"positive"`
		Probability float64 `json:"probability"`
		Percent     string  `json:"percent"`
		Disclaimer  string  `json:"disclaimer,omitempty"`
	}{
		Label:       view.Label,
		Positive:    view.Positive,
		Probability: view.Probability,
		Percent:     view.Percent,
		Disclaimer:  PlainText(view.Disclaimer),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("render: json: %w", err)
	}
	return nil
}
