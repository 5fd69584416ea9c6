package htmldoc

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/theSLWayne/notebook-doc/pkg/model"
	"github.com/theSLWayne/notebook-doc/pkg/render"
	rendertemplate "github.com/theSLWayne/notebook-doc/pkg/render/template"
	"github.com/theSLWayne/notebook-doc/pkg/render/template/pongo"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	stylesheet       string
	stylesheetSet    bool
	withoutStyles    bool
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithStylesheet replaces the embedded stylesheet contents for every render
// call; per-request overrides still win via RenderOptions.Stylesheet.
func WithStylesheet(css string) Option {
	return func(cfg *config) {
		cfg.stylesheet = css
		cfg.stylesheetSet = true
	}
}

// WithoutStyles drops the inline stylesheet entirely, for hosts that inject
// their own document chrome.
func WithoutStyles() Option {
	return func(cfg *config) {
		cfg.withoutStyles = true
	}
}

// Renderer emits one self-contained HTML document per render call. The
// stylesheet is inlined and there are no external resource references, so
// the output displays identically with or without network access.
type Renderer struct {
	templates     rendertemplate.TemplateRenderer
	stylesheet    string
	withoutStyles bool
}

// Ensure the implementation satisfies the public interface.
var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := pongo.New(
			pongo.WithFS(cfg.templateFS),
			pongo.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("htmldoc renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	stylesheet := defaultStylesheet()
	if cfg.stylesheetSet {
		stylesheet = cfg.stylesheet
	}
	if cfg.withoutStyles {
		stylesheet = ""
	}

	return &Renderer{
		templates:     renderer,
		stylesheet:    stylesheet,
		withoutStyles: cfg.withoutStyles,
	}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render merges the document model with the template. Rendering depends only
// on the model and options, never on time or randomness.
func (r *Renderer) Render(ctx context.Context, doc model.DocumentModel, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("htmldoc renderer: template renderer is nil")
	}

	stylesheet := r.stylesheet
	if options.Stylesheet != "" && !r.withoutStyles {
		stylesheet = options.Stylesheet
	}

	result, err := r.templates.RenderTemplate(
		"templates/document.tmpl",
		buildContext(doc, options, stylesheet),
	)
	if err != nil {
		return nil, fmt.Errorf("htmldoc renderer: render template: %w", err)
	}
	return []byte(result), nil
}
