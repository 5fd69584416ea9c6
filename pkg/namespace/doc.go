// Package namespace exposes the public contracts for the input side of the
// documentation pipeline: the ordered name-to-value Namespace consumed by the
// runtime extractor, the Source/Document pair consumed by the Go source
// extractor, and the FunctionRecord produced by both. Implementations live
// under internal/extract and internal/loader to keep reflection and go/ast
// details hidden from consumers.
package namespace
