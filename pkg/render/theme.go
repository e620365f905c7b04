package render

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

const (
	DefaultThemeName = "riskform"
	VariantLight     = "light"
	VariantDark      = "dark"

	cssVarPrefix = "--riskform-"
)

// ErrUnknownVariant is returned when a theme variant is not declared by the
// manifest.
var ErrUnknownVariant = errors.New("render: unknown theme variant")

// ThemeView carries resolved theme tokens into templates.
type ThemeView struct {
	Name    string            `json:"name"`
	Variant string            `json:"variant"`
	Tokens  map[string]string `json:"tokens"`
	CSSVars map[string]string `json:"cssVars"`
	Style   string            `json:"style"`
}

// DefaultManifest describes the built-in palette. Positive outcomes use the
// red accent, negative ones green.
func DefaultManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    DefaultThemeName,
		Version: "1.0.0",
		Tokens: map[string]string{
			"surface":      "#ffffff",
			"text":         "#1f2937",
			"muted":        "#6b7280",
			"positive":     "#ef4444",
			"positive-bg":  "rgba(239, 68, 68, 0.2)",
			"negative":     "#22c55e",
			"negative-bg":  "rgba(34, 197, 94, 0.2)",
			"border-width": "1px",
		},
		Variants: map[string]theme.Variant{
			VariantLight: {
				Tokens: map[string]string{},
			},
			VariantDark: {
				Tokens: map[string]string{
					"surface":  "#0f172a",
					"text":     "#e2e8f0",
					"muted":    "#94a3b8",
					"positive": "#f87171",
					"negative": "#4ade80",
				},
			},
		},
	}
}

// variantSelector is a go-theme Selector that also rejects variants the
// selected manifest does not declare.
type variantSelector struct {
	theme.Selector
}

var _ theme.ThemeSelector = variantSelector{}

// NewThemeSelector registers the manifests with a go-theme registry and
// selects from it. The first manifest is the default theme, used when no
// name or an unregistered name is requested.
func NewThemeSelector(manifests ...*theme.Manifest) (theme.ThemeSelector, error) {
	if len(manifests) == 0 {
		manifests = []*theme.Manifest{DefaultManifest()}
	}
	registry := theme.NewRegistry()
	for _, manifest := range manifests {
		if manifest == nil {
			return nil, errors.New("render: nil theme manifest")
		}
		if err := registry.Register(manifest); err != nil {
			return nil, fmt.Errorf("render: register theme %q: %w", manifest.Name, err)
		}
	}

	first := manifests[0]
	defaultVariant := ""
	if _, ok := first.Variants[VariantLight]; ok {
		defaultVariant = VariantLight
	}
	return variantSelector{theme.Selector{
		Registry:       registry,
		DefaultTheme:   first.Name,
		DefaultVariant: defaultVariant,
	}}, nil
}

func (s variantSelector) Select(name, variant string, opts ...theme.QueryOption) (*theme.Selection, error) {
	selection, err := s.Selector.Select(name, strings.TrimSpace(variant), opts...)
	if err != nil {
		return nil, err
	}
	if selection.Variant != "" {
		if _, ok := selection.Manifest.Variants[selection.Variant]; !ok {
			return nil, fmt.Errorf("%w: %q (theme %s)", ErrUnknownVariant, selection.Variant, selection.Manifest.Name)
		}
	}
	return selection, nil
}

// ResolveTheme flattens a selection into the tokens of its variant and the
// matching --riskform- CSS custom properties.
func ResolveTheme(selection *theme.Selection) ThemeView {
	if selection == nil || selection.Manifest == nil {
		return ThemeView{}
	}
	vars := selection.CSSVariables(cssVarPrefix)
	return ThemeView{
		Name:    selection.Manifest.Name,
		Variant: selection.Variant,
		Tokens:  selection.Tokens(),
		CSSVars: vars,
		Style:   cssVarsStyle(vars),
	}
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+": "+vars[key])
	}
	return strings.Join(parts, "; ")
}
