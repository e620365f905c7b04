package render_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-riskform/pkg/render"
)

func TestRegistry(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(render.NewJSONRenderer())
	registry.MustRegister(upperRenderer{})

	if err := registry.Register(render.NewJSONRenderer()); !errors.Is(err, render.ErrDuplicateFormat) {
		t.Fatalf("expected ErrDuplicateFormat, got %v", err)
	}
	if _, err := registry.Get(" JSON "); err != nil {
		t.Fatalf("expected case insensitive lookup, got %v", err)
	}
	if _, err := registry.Get("pdf"); !errors.Is(err, render.ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
	if diff := cmp.Diff([]string{"json", "upper"}, registry.List()); diff != "" {
		t.Fatalf("formats mismatch (-want +got):\n%s", diff)
	}
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected error for nil renderer")
	}
}
