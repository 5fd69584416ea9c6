// Package orchestrator wires the extractor → docstring parser → model builder
// → renderer pipeline behind a single entry point, with dependency injection
// friendly options for consumers that want to swap stages.
package orchestrator
