package render

import (
	"context"

	"github.com/theSLWayne/notebook-doc/pkg/model"
)

// Renderer converts a DocumentModel into a byte representation. The default
// implementation emits HTML; the registry keeps the seam open for custom
// renderers.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, doc model.DocumentModel, options RenderOptions) ([]byte, error)
}
