// Package notebookdoc renders HTML documentation for the functions bound in
// a namespace or declared in a Go source file. The pipeline extracts plain
// functions, parses their doc comments (Google and NumPy docstring styles),
// merges the result with signature information, and renders one
// self-contained HTML document. Rendering is deterministic: the same input
// always produces byte-identical output.
package notebookdoc
