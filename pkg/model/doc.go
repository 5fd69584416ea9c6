// Package model defines the typed documentation model consumed by renderers:
// one DocumentModel per rendering call, one FunctionDoc per extracted
// function, with parameters merged from the declared signature and the parsed
// docstring. JSON tags keep golden snapshots deterministic and diffable.
package model
