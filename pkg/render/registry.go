package render

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// ErrDuplicateFormat is returned when two renderers claim the same format.
var ErrDuplicateFormat = errors.New("render: format already registered")

// Registry maps output formats to renderers. Format names are case
// insensitive.
type Registry struct {
	mu      sync.RWMutex
	formats map[string]Renderer
}

func NewRegistry() *Registry {
	return &Registry{formats: make(map[string]Renderer)}
}

func normalizeFormat(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register adds renderer under its Name.
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return errors.New("render: renderer is required")
	}
	format := normalizeFormat(renderer.Name())
	if format == "" {
		return errors.New("render: renderer format is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.formats[format]; taken {
		return fmt.Errorf("%w: %q", ErrDuplicateFormat, format)
	}
	r.formats[format] = renderer
	return nil
}

// MustRegister is Register for the built-in renderers.
func (r *Registry) MustRegister(renderer Renderer) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

// Get returns the renderer for format or an error wrapping ErrUnknownFormat.
func (r *Registry) Get(format string) (Renderer, error) {
	r.mu.RLock()
	renderer, ok := r.formats[normalizeFormat(format)]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return renderer, nil
}

// List returns the registered formats, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	formats := make([]string, 0, len(r.formats))
	for format := range r.formats {
		formats = append(formats, format)
	}
	slices.Sort(formats)
	return formats
}

func (r *Registry) Has(format string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.formats[normalizeFormat(format)]
	return ok
}
