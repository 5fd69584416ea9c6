package notebookdoc

import (
	"context"

	theme "github.com/goliatone/go-theme"
	"github.com/theSLWayne/notebook-doc/pkg/namespace"
	"github.com/theSLWayne/notebook-doc/pkg/orchestrator"
	"github.com/theSLWayne/notebook-doc/pkg/render"
)

// Namespace aliases the ordered name→value mapping consumed by the
// documentation pipeline.
type Namespace = namespace.Namespace

// Func pairs a function value with an explicit doc comment for namespaces
// assembled at runtime.
type Func = namespace.Func

// RenderOptions describes per-request overrides that renderers can use, such
// as anchor links or a replacement stylesheet.
type RenderOptions = render.RenderOptions

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module for callers that want to configure the pipeline once and reuse it.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// RenderOption customises a single documentation request.
type RenderOption func(*orchestrator.Request)

// WithModuleName titles the generated document. The default title is
// "Notebook".
func WithModuleName(name string) RenderOption {
	return func(req *orchestrator.Request) {
		req.ModuleName = name
	}
}

// WithLinks renders the sidebar function list as in-page anchor links.
func WithLinks(enabled bool) RenderOption {
	return func(req *orchestrator.Request) {
		req.RenderOptions.Links = enabled
	}
}

// WithRenderer selects a renderer by name instead of the default HTML one.
func WithRenderer(name string) RenderOption {
	return func(req *orchestrator.Request) {
		req.Renderer = name
	}
}

// WithTheme selects a theme and variant for the request. The bundled
// "notebook" theme ships a "dark" variant.
func WithTheme(name, variant string) RenderOption {
	return func(req *orchestrator.Request) {
		req.ThemeName = name
		req.ThemeVariant = variant
	}
}

// WithStylesheet replaces the inlined stylesheet for the request. The output
// stays self-contained; the value is embedded, never referenced.
func WithStylesheet(css string) RenderOption {
	return func(req *orchestrator.Request) {
		req.RenderOptions.Stylesheet = css
	}
}

// RenderDocumentation extracts the plain functions bound in ns, parses their
// doc comments, and renders one self-contained HTML document. Non-function
// bindings are skipped and malformed doc comments degrade to description
// text; the call fails only on renderer or context errors.
func RenderDocumentation(ctx context.Context, ns *Namespace, options ...RenderOption) (string, error) {
	gen := orchestrator.New()
	req := orchestrator.Request{Namespace: ns}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&req)
	}
	output, err := gen.Generate(ctx, req)
	if err != nil {
		return "", err
	}
	return string(output), nil
}

// GenerateHTML loads a Go source document, extracts its top-level functions,
// and renders them. It is the simplest entry point for callers documenting a
// file instead of a live namespace.
func GenerateHTML(ctx context.Context, source namespace.Source, options ...RenderOption) ([]byte, error) {
	gen := orchestrator.New()
	req := orchestrator.Request{Source: source}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&req)
	}
	return gen.Generate(ctx, req)
}

// GenerateHTMLFromDocument renders documentation from a pre-loaded source
// document, bypassing the loader stage while still delegating to the
// orchestrator.
func GenerateHTMLFromDocument(ctx context.Context, doc namespace.Document, options ...RenderOption) ([]byte, error) {
	gen := orchestrator.New()
	req := orchestrator.Request{Document: &doc}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&req)
	}
	return gen.Generate(ctx, req)
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithThemes registers additional theme manifests with the built-in selector.
func WithThemes(manifests ...*theme.Manifest) orchestrator.Option {
	return orchestrator.WithThemes(manifests...)
}
