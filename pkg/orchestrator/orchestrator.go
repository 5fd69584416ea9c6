package orchestrator

import (
	"context"
	"errors"
	"fmt"

	theme "github.com/goliatone/go-theme"
	internalDocstring "github.com/theSLWayne/notebook-doc/internal/docstring"
	internalExtract "github.com/theSLWayne/notebook-doc/internal/extract"
	internalLoader "github.com/theSLWayne/notebook-doc/internal/loader"
	"github.com/theSLWayne/notebook-doc/pkg/docstring"
	"github.com/theSLWayne/notebook-doc/pkg/model"
	"github.com/theSLWayne/notebook-doc/pkg/namespace"
	"github.com/theSLWayne/notebook-doc/pkg/render"
	"github.com/theSLWayne/notebook-doc/pkg/renderers/htmldoc"
)

const defaultRendererName = "html"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom source document loader.
func WithLoader(loader namespace.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithExtractor injects a custom namespace extractor.
func WithExtractor(extractor namespace.Extractor) Option {
	return func(o *Orchestrator) {
		o.extractor = extractor
	}
}

// WithSourceExtractor injects a custom source-document extractor.
func WithSourceExtractor(extractor namespace.SourceExtractor) Option {
	return func(o *Orchestrator) {
		o.sourceExtractor = extractor
	}
}

// WithDocstringParser injects a custom docstring parser.
func WithDocstringParser(parser docstring.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithModelBuilder injects a custom document model builder.
func WithModelBuilder(builder model.Builder) Option {
	return func(o *Orchestrator) {
		o.builder = builder
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithDecorators registers decorators that run against the document model
// before rendering, after the built-in anchor decorator.
func WithDecorators(decorators ...model.Decorator) Option {
	return func(o *Orchestrator) {
		if len(decorators) == 0 {
			return
		}
		o.decorators = append(o.decorators, decorators...)
	}
}

// WithThemeSelector passes a go-theme selector so theme/variant choices can
// be resolved ahead of rendering. It replaces the built-in manifest set.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithThemes adds manifests to the built-in selector. Ignored when a custom
// selector is installed via WithThemeSelector.
func WithThemes(manifests ...*theme.Manifest) Option {
	return func(o *Orchestrator) {
		o.themes = append(o.themes, manifests...)
	}
}

// WithDefaultTheme selects the theme applied when a request carries no
// ThemeName of its own.
func WithDefaultTheme(name, variant string) Option {
	return func(o *Orchestrator) {
		o.defaultTheme = name
		o.defaultVariant = variant
	}
}

// Orchestrator coordinates the full pipeline from namespace (or source
// document) to rendered output. It applies sensible defaults (html renderer,
// embedded templates) while remaining open to dependency injection for
// advanced callers.
type Orchestrator struct {
	loader          namespace.Loader
	extractor       namespace.Extractor
	sourceExtractor namespace.SourceExtractor
	parser          docstring.Parser
	builder         model.Builder
	registry        *render.Registry
	defaultRenderer string
	decorators      []model.Decorator
	themeSelector   theme.ThemeSelector
	themes          []*theme.Manifest
	defaultTheme    string
	defaultVariant  string
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to render documentation. Exactly one
// of Namespace, Document, or Source must be set; Namespace wins when several
// are present.
type Request struct {
	// Namespace holds name→value bindings to document. Non-function values
	// are skipped during extraction.
	Namespace *namespace.Namespace

	// Document allows callers to bypass the loader when they already hold a
	// source payload.
	Document *namespace.Document

	// Source identifies where a Go source document lives. Optional when
	// Namespace or Document is supplied.
	Source namespace.Source

	// ModuleName titles the generated document. Empty falls back to the
	// renderer default.
	ModuleName string

	// Renderer names the renderer to use. If empty, the orchestrator falls
	// back to the configured default renderer.
	Renderer string

	// ThemeName and ThemeVariant select a theme for this request. Empty
	// ThemeName falls back to the orchestrator default, which may be none.
	ThemeName    string
	ThemeVariant string

	// RenderOptions carries per-request instructions such as anchor links or
	// a replacement stylesheet. When omitted, renderers receive the
	// zero-value struct.
	RenderOptions render.RenderOptions
}

// Generate executes the extractor → docstring parser → model builder →
// renderer sequence and returns the rendered bytes (HTML for the default
// renderer).
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
		if err := o.initialiseErr; err != nil {
			return nil, err
		}
	}

	records, err := o.resolveRecords(ctx, req)
	if err != nil {
		return nil, err
	}

	doc := model.DocumentModel{
		ModuleName: req.ModuleName,
		Functions:  make([]model.FunctionDoc, 0, len(records)),
	}
	for _, record := range records {
		parsed, err := o.parser.Parse(ctx, record.Doc)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: parse docstring for %q: %w", record.Name, err)
		}
		fn, err := o.builder.Build(record, parsed)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: build function %q: %w", record.Name, err)
		}
		doc.Functions = append(doc.Functions, fn)
	}

	if err := o.applyDecorators(&doc); err != nil {
		return nil, err
	}

	options := req.RenderOptions
	if options.Theme == nil {
		cfg, err := o.resolveTheme(req)
		if err != nil {
			return nil, err
		}
		options.Theme = cfg
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, doc, options)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}

	return output, nil
}

func (o *Orchestrator) resolveRecords(ctx context.Context, req Request) ([]namespace.FunctionRecord, error) {
	if req.Namespace != nil {
		records, err := o.extractor.Extract(ctx, req.Namespace)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: extract namespace: %w", err)
		}
		return records, nil
	}

	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return nil, err
	}
	records, err := o.sourceExtractor.ExtractSource(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: extract source: %w", err)
	}
	return records, nil
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (namespace.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return namespace.Document{}, errors.New("orchestrator: namespace, document, or source is required")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return namespace.Document{}, fmt.Errorf("orchestrator: load document: %w", err)
	}
	return doc, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDecorators(doc *model.DocumentModel) error {
	if len(o.decorators) == 0 || doc == nil {
		return nil
	}
	for _, decorator := range o.decorators {
		if decorator == nil {
			continue
		}
		if err := decorator.Decorate(doc); err != nil {
			return fmt.Errorf("orchestrator: decorate document: %w", err)
		}
	}
	return nil
}

func (o *Orchestrator) resolveTheme(req Request) (*theme.RendererConfig, error) {
	name := req.ThemeName
	variant := req.ThemeVariant
	if name == "" {
		name = o.defaultTheme
		if variant == "" {
			variant = o.defaultVariant
		}
	}
	if name == "" {
		return nil, nil
	}
	selection, err := o.themeSelector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme %q: %w", name, err)
	}
	return rendererConfigFromSelection(selection), nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.loader == nil {
		o.loader = internalLoader.New(namespace.NewLoaderOptions())
	}
	if o.extractor == nil {
		o.extractor = internalExtract.NewRuntime(namespace.NewExtractorOptions())
	}
	if o.sourceExtractor == nil {
		o.sourceExtractor = internalExtract.NewSource()
	}
	if o.parser == nil {
		o.parser = internalDocstring.New(docstring.NewParserOptions())
	}
	if o.builder == nil {
		o.builder = model.NewBuilder()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := htmldoc.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
	if o.themeSelector == nil {
		o.themeSelector = newManifestSelector(append(builtinManifests(), o.themes...)...)
	}

	o.decorators = append([]model.Decorator{model.NewAnchorDecorator()}, o.decorators...)

	o.defaultsApplied = true
}
