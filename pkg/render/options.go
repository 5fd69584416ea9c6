package render

import (
	theme "github.com/goliatone/go-theme"
)

// RenderOptions describe per-request data that renderers can use to customise
// their output without mutating the document model pipeline.
type RenderOptions struct {
	// Links enables the sidebar function list as in-page anchor links. Some
	// notebook hosts strip fragment navigation, so plain text entries are the
	// default.
	Links bool
	// Stylesheet replaces the embedded stylesheet contents. The output stays
	// self-contained either way; the value is inlined, never referenced.
	Stylesheet string
	// Theme carries the resolved theme configuration. Renderers inline its
	// CSSVars as custom properties; nil renders with the stylesheet defaults.
	Theme *theme.RendererConfig
}
