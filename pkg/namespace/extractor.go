package namespace

import (
	"context"
	"io/fs"
)

// Extractor walks a namespace and returns a record for every binding that
// qualifies as a plain function. Non-function values are skipped silently and
// an entry that cannot be introspected never fails the pass.
type Extractor interface {
	Extract(ctx context.Context, ns *Namespace) ([]FunctionRecord, error)
}

// SourceExtractor produces records from a parsed Go source document: one
// record per top-level function declaration, in declaration order. Methods
// are excluded.
type SourceExtractor interface {
	ExtractSource(ctx context.Context, doc Document) ([]FunctionRecord, error)
}

// Loader fetches Go source documents from different sources (filesystem,
// fs.FS). Implementations live under internal/loader but satisfy this
// contract.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// LoaderOptions configures how a Loader resolves sources.
type LoaderOptions struct {
	// FileSystem enables loading from an abstract filesystem; file sources
	// fall back to the operating system when nil.
	FileSystem fs.FS
}

// LoaderOption mutates LoaderOptions prior to construction.
type LoaderOption func(*LoaderOptions)

// WithFileSystem injects an fs.FS implementation for fs sources.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// NewLoaderOptions applies a set of LoaderOption values and returns the
// resulting configuration.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	cfg := LoaderOptions{}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}

// ExtractorOptions configures the runtime extractor.
type ExtractorOptions struct {
	// ResolveSource enables best-effort recovery of parameter names and doc
	// comments by locating the function's declaration on disk. Disabled
	// extraction still produces records with synthesised parameter names.
	ResolveSource bool
}

// ExtractorOption mutates ExtractorOptions prior to construction.
type ExtractorOption func(*ExtractorOptions)

// WithSourceResolution toggles declaration lookup for runtime function values.
func WithSourceResolution(enabled bool) ExtractorOption {
	return func(opts *ExtractorOptions) {
		opts.ResolveSource = enabled
	}
}

// NewExtractorOptions applies ExtractorOption values over the defaults.
// Source resolution defaults to on; it degrades silently when declarations
// cannot be found.
func NewExtractorOptions(options ...ExtractorOption) ExtractorOptions {
	cfg := ExtractorOptions{ResolveSource: true}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}
