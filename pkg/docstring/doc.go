// Package docstring exposes the structured documentation model and the parser
// contract that turns raw docstring text into it. The section-header parser
// implementation lives under internal/docstring; callers that want a
// different convention can plug in their own Parser.
package docstring
