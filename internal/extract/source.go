package extract

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"

	"github.com/theSLWayne/notebook-doc/pkg/namespace"
)

// Source implements namespace.SourceExtractor over a parsed Go file. It keeps
// only top-level function declarations: methods, types, and package-level
// values are not documentable functions and are skipped.
type Source struct{}

// Ensure the implementation satisfies the public interface.
var _ namespace.SourceExtractor = (*Source)(nil)

// NewSource constructs the go/ast-backed source extractor.
func NewSource() namespace.SourceExtractor {
	return &Source{}
}

// ExtractSource parses the document and returns one record per top-level
// function, in declaration order.
func (e *Source) ExtractSource(ctx context.Context, doc namespace.Document) ([]namespace.FunctionRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("source extractor: document payload is empty")
	}

	filename := doc.Location()
	if filename == "" {
		filename = "src.go"
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, raw, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("source extractor: parse %s: %w", filename, err)
	}

	var records []namespace.FunctionRecord
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Recv != nil || fn.Name == nil {
			continue
		}
		records = append(records, recordFromDecl(fset, fn))
	}
	return records, nil
}
