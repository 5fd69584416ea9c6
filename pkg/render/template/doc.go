// Package template defines the renderer-agnostic template seam. The pongo
// subpackage provides the default engine; renderers depend only on the
// TemplateRenderer interface so engines stay swappable.
package template
