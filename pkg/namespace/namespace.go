package namespace

import "sort"

// Namespace is an ordered mapping of identifier names to arbitrary values,
// modelling a snapshot of top-level bindings in an interactive session. Go
// maps do not preserve iteration order, so the namespace keeps its own
// insertion order; rendering walks bindings in that order and never sorts.
type Namespace struct {
	names  []string
	values map[string]any
}

// New returns an empty namespace.
func New() *Namespace {
	return &Namespace{values: make(map[string]any)}
}

// FromMap builds a namespace from a plain map. Map iteration order is
// randomised in Go, so bindings are ordered by name to keep downstream
// rendering deterministic.
func FromMap(bindings map[string]any) *Namespace {
	ns := New()
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		ns.Set(name, bindings[name])
	}
	return ns
}

// Set binds a value under a name, appending to the iteration order. Setting an
// existing name overwrites the value in place without changing its position.
func (n *Namespace) Set(name string, value any) *Namespace {
	if name == "" {
		return n
	}
	if n.values == nil {
		n.values = make(map[string]any)
	}
	if _, exists := n.values[name]; !exists {
		n.names = append(n.names, name)
	}
	n.values[name] = value
	return n
}

// Get returns the value bound under a name.
func (n *Namespace) Get(name string) (any, bool) {
	if n == nil || n.values == nil {
		return nil, false
	}
	value, ok := n.values[name]
	return value, ok
}

// Names returns the binding names in iteration order. The slice is a copy.
func (n *Namespace) Names() []string {
	if n == nil {
		return nil
	}
	return append([]string(nil), n.names...)
}

// Len reports the number of bindings.
func (n *Namespace) Len() int {
	if n == nil {
		return 0
	}
	return len(n.names)
}

// Func attaches an explicit docstring to a function value. Go functions carry
// no documentation at runtime, so callers that want docstring content in the
// rendered output without relying on source recovery bind a Func instead of
// the bare function:
//
//	ns.Set("add", namespace.Func{Fn: add, Doc: "Adds two numbers."})
//
// The extractor introspects Fn for the signature and uses Doc verbatim.
type Func struct {
	Fn  any
	Doc string
}
