package render

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/theSLWayne/notebook-doc/pkg/model"
)

type stubRenderer struct{ name string }

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(_ context.Context, _ model.DocumentModel, _ RenderOptions) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(stubRenderer{name: "html"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	renderer, err := registry.Get("html")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if renderer.Name() != "html" {
		t.Fatalf("unexpected renderer %q", renderer.Name())
	}
	if !registry.Has("html") {
		t.Fatal("expected Has to report the renderer")
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(stubRenderer{name: "html"})

	if err := registry.Register(stubRenderer{name: "html"}); err == nil {
		t.Fatal("expected duplicate registration error")
	}
}

func TestRegistryRejectsInvalidRenderers(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(nil); err == nil {
		t.Fatal("expected error for nil renderer")
	}
	if err := registry.Register(stubRenderer{}); err == nil {
		t.Fatal("expected error for empty name")
	}
}

func TestRegistryListIsSorted(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(stubRenderer{name: "zeta"})
	registry.MustRegister(stubRenderer{name: "alpha"})

	if diff := cmp.Diff([]string{"alpha", "zeta"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryMustGet(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(stubRenderer{name: "html"})

	if got := registry.MustGet("html").Name(); got != "html" {
		t.Fatalf("unexpected renderer %q", got)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for missing renderer")
		}
	}()
	registry.MustGet("nope")
}

func TestRegistryGetMissing(t *testing.T) {
	registry := NewRegistry()
	if _, err := registry.Get("nope"); err == nil {
		t.Fatal("expected not-found error")
	}
}
