package render

import (
	"sort"

	theme "github.com/goliatone/go-theme"
)

// CSSVar is one custom property ready for template emission.
type CSSVar struct {
	Name  string
	Value string
}

// SortedCSSVars returns the configuration's custom properties sorted by name.
// Map iteration order would leak into the rendered document otherwise,
// breaking the byte-identical output guarantee.
func SortedCSSVars(cfg *theme.RendererConfig) []CSSVar {
	if cfg == nil || len(cfg.CSSVars) == 0 {
		return nil
	}
	names := make([]string, 0, len(cfg.CSSVars))
	for name := range cfg.CSSVars {
		names = append(names, name)
	}
	sort.Strings(names)

	vars := make([]CSSVar, 0, len(names))
	for _, name := range names {
		vars = append(vars, CSSVar{Name: name, Value: cfg.CSSVars[name]})
	}
	return vars
}
