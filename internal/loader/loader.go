package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/theSLWayne/notebook-doc/pkg/namespace"
)

// Loader implements namespace.Loader by delegating to file or fs.FS
// strategies. Construction helpers live in the top-level notebookdoc package.
type Loader struct {
	fs fs.FS
}

// Ensure the implementation satisfies the public interface.
var _ namespace.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options namespace.LoaderOptions) namespace.Loader {
	return &Loader{fs: options.FileSystem}
}

// Load fetches a source document from the provided origin and wraps it in a
// Document.
func (l *Loader) Load(ctx context.Context, src namespace.Source) (namespace.Document, error) {
	if src == nil {
		return namespace.Document{}, errors.New("source loader: source is nil")
	}
	if err := ctx.Err(); err != nil {
		return namespace.Document{}, err
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case namespace.SourceKindFile:
		data, err = os.ReadFile(src.Location())
	case namespace.SourceKindFS:
		if l.fs == nil {
			return namespace.Document{}, errors.New("source loader: fs source requires a filesystem")
		}
		data, err = fs.ReadFile(l.fs, src.Location())
	default:
		err = fmt.Errorf("source loader: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return namespace.Document{}, fmt.Errorf("source loader: read %s: %w", src.Location(), err)
	}

	return namespace.NewDocument(src, data)
}
