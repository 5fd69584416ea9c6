package notebookdoc

import (
	internalDocstring "github.com/theSLWayne/notebook-doc/internal/docstring"
	internalExtract "github.com/theSLWayne/notebook-doc/internal/extract"
	internalLoader "github.com/theSLWayne/notebook-doc/internal/loader"
	"github.com/theSLWayne/notebook-doc/pkg/docstring"
	"github.com/theSLWayne/notebook-doc/pkg/namespace"
)

// NewLoader constructs a source document loader using the internal
// implementation while keeping the concrete type hidden from consumers.
func NewLoader(options ...namespace.LoaderOption) namespace.Loader {
	cfg := namespace.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewExtractor constructs a runtime namespace extractor backed by the
// internal implementation.
func NewExtractor(options ...namespace.ExtractorOption) namespace.Extractor {
	cfg := namespace.NewExtractorOptions(options...)
	return internalExtract.NewRuntime(cfg)
}

// NewSourceExtractor constructs an extractor for parsed Go source documents.
func NewSourceExtractor() namespace.SourceExtractor {
	return internalExtract.NewSource()
}

// NewDocstringParser constructs a docstring parser backed by the internal
// implementation.
func NewDocstringParser(options ...docstring.ParserOption) docstring.Parser {
	cfg := docstring.NewParserOptions(options...)
	return internalDocstring.New(cfg)
}
