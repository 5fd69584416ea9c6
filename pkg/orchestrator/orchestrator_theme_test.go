package orchestrator

import (
	"context"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/theSLWayne/notebook-doc/pkg/model"
	"github.com/theSLWayne/notebook-doc/pkg/namespace"
	"github.com/theSLWayne/notebook-doc/pkg/render"
	"github.com/theSLWayne/notebook-doc/pkg/testsupport"
)

func TestGeneratePassesThemeConfigToRenderer(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand": "#123456",
		},
	}
	selection := &theme.Selection{
		Theme:    "acme",
		Variant:  "custom-variant",
		Manifest: manifest,
	}
	selector := &stubThemeSelector{selection: selection}

	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	orch := New(
		WithRegistry(registry),
		WithDefaultRenderer(renderer.Name()),
		WithThemeSelector(selector),
	)

	_, err := orch.Generate(testsupport.Context(), Request{
		Namespace:    namespace.New(),
		Renderer:     renderer.Name(),
		ThemeName:    "custom-theme",
		ThemeVariant: "custom-variant",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(selector.calls) != 1 {
		t.Fatalf("expected selector called once, got %d", len(selector.calls))
	}
	if selector.calls[0].name != "custom-theme" || selector.calls[0].variant != "custom-variant" {
		t.Fatalf("unexpected selector args: %+v", selector.calls[0])
	}

	cfg := renderer.options.Theme
	if cfg == nil {
		t.Fatal("expected theme config passed to renderer")
	}
	if cfg.Theme != selection.Theme {
		t.Fatalf("theme name mismatch: want %s, got %s", selection.Theme, cfg.Theme)
	}
	if cfg.Variant != selection.Variant {
		t.Fatalf("theme variant mismatch: want %s, got %s", selection.Variant, cfg.Variant)
	}
	if cfg.Tokens["brand"] != manifest.Tokens["brand"] {
		t.Fatal("tokens not propagated")
	}
	if cfg.CSSVars["--brand"] != manifest.Tokens["brand"] {
		t.Fatal("css vars not derived from tokens")
	}
}

func TestGenerateMergesVariantTokens(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand":   "#123456",
			"surface": "#ffffff",
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"brand": "#654321",
				},
			},
		},
	}

	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	orch := New(
		WithRegistry(registry),
		WithDefaultRenderer(renderer.Name()),
		WithThemes(manifest),
		WithDefaultTheme("acme", "dark"),
	)

	_, err := orch.Generate(testsupport.Context(), Request{Namespace: namespace.New()})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	cfg := renderer.options.Theme
	if cfg == nil {
		t.Fatal("expected theme config passed to renderer")
	}
	if cfg.Theme != "acme" || cfg.Variant != "dark" {
		t.Fatalf("selection mismatch: %s/%s", cfg.Theme, cfg.Variant)
	}
	if cfg.Tokens["brand"] != "#654321" {
		t.Fatalf("tokens not merged with variant override, got %s", cfg.Tokens["brand"])
	}
	if cfg.Tokens["surface"] != "#ffffff" {
		t.Fatalf("base token lost, got %s", cfg.Tokens["surface"])
	}
	if cfg.CSSVars["--brand"] != "#654321" {
		t.Fatalf("css vars not derived from variant tokens, got %s", cfg.CSSVars["--brand"])
	}
}

func TestGenerateBuiltinThemeVariant(t *testing.T) {
	orch := New()

	output, err := orch.Generate(testsupport.Context(), Request{
		Namespace:    namespace.New(),
		ThemeName:    DefaultThemeName,
		ThemeVariant: "dark",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(output), "--surface: #15181e;") {
		t.Fatalf("dark variant variables missing:\n%s", output)
	}
}

func TestGenerateUnknownThemeFails(t *testing.T) {
	orch := New()

	_, err := orch.Generate(testsupport.Context(), Request{
		Namespace: namespace.New(),
		ThemeName: "no-such-theme",
	})
	if err == nil {
		t.Fatal("expected error for unknown theme")
	}
}

func TestGenerateWithoutThemeHasNoVariables(t *testing.T) {
	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	orch := New(WithRegistry(registry), WithDefaultRenderer(renderer.Name()))

	_, err := orch.Generate(testsupport.Context(), Request{Namespace: namespace.New()})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if renderer.options.Theme != nil {
		t.Fatalf("expected no theme config, got %+v", renderer.options.Theme)
	}
}

type captureRenderer struct {
	options render.RenderOptions
}

func (r *captureRenderer) Name() string {
	return "capture"
}

func (r *captureRenderer) ContentType() string {
	return "text/plain"
}

func (r *captureRenderer) Render(_ context.Context, doc model.DocumentModel, opts render.RenderOptions) ([]byte, error) {
	r.options = opts
	return []byte(doc.ModuleName), nil
}

type selectorCall struct {
	name    string
	variant string
}

type stubThemeSelector struct {
	selection *theme.Selection
	err       error
	calls     []selectorCall
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls = append(s.calls, selectorCall{name: name, variant: variant})
	return s.selection, s.err
}
