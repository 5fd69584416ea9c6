package notebookdoc

import (
	"io/fs"

	htmldoc "github.com/theSLWayne/notebook-doc/pkg/renderers/htmldoc"
)

// EmbeddedTemplates exposes the built-in HTML renderer templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	fsys := htmldoc.TemplatesFS()
	return fsys
}

// EmbeddedAssets exposes the built-in stylesheet bundle for callers that
// serve the CSS separately instead of inlining it.
func EmbeddedAssets() fs.FS {
	return htmldoc.AssetsFS()
}
