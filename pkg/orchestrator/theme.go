package orchestrator

import (
	"fmt"

	theme "github.com/goliatone/go-theme"
)

// DefaultThemeName identifies the bundled theme. Requests that name it get
// the same palette the embedded stylesheet falls back to, and its "dark"
// variant flips the document to a dark palette.
const DefaultThemeName = "notebook"

// manifestSelector resolves selections from an in-memory manifest set. It is
// the built-in theme.ThemeSelector used when callers do not install one.
type manifestSelector struct {
	manifests map[string]*theme.Manifest
}

func newManifestSelector(manifests ...*theme.Manifest) theme.ThemeSelector {
	s := &manifestSelector{manifests: make(map[string]*theme.Manifest, len(manifests))}
	for _, manifest := range manifests {
		if manifest == nil || manifest.Name == "" {
			continue
		}
		s.manifests[manifest.Name] = manifest
	}
	return s
}

func (s *manifestSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	manifest, ok := s.manifests[name]
	if !ok {
		return nil, fmt.Errorf("theme %q not registered", name)
	}
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("theme %q has no variant %q", name, variant)
		}
	}
	return &theme.Selection{
		Theme:    name,
		Variant:  variant,
		Manifest: manifest,
	}, nil
}

// rendererConfigFromSelection merges the manifest's base tokens with the
// selected variant's overrides and derives one CSS custom property per token.
// The output document is self-contained, so asset resolution and template
// partials from the manifest are not carried over.
func rendererConfigFromSelection(selection *theme.Selection) *theme.RendererConfig {
	if selection == nil || selection.Manifest == nil {
		return nil
	}

	manifest := selection.Manifest
	tokens := make(map[string]string, len(manifest.Tokens))
	for name, value := range manifest.Tokens {
		tokens[name] = value
	}
	if variant, ok := manifest.Variants[selection.Variant]; ok {
		for name, value := range variant.Tokens {
			tokens[name] = value
		}
	}

	cssVars := make(map[string]string, len(tokens))
	for name, value := range tokens {
		cssVars["--"+name] = value
	}

	return &theme.RendererConfig{
		Theme:   selection.Theme,
		Variant: selection.Variant,
		Tokens:  tokens,
		CSSVars: cssVars,
	}
}

func builtinManifests() []*theme.Manifest {
	return []*theme.Manifest{
		{
			Name:    DefaultThemeName,
			Version: "1.0.0",
			Tokens: map[string]string{
				"surface":           "#eef0f4",
				"ink":               "#1f2430",
				"header-surface":    "#20242d",
				"header-ink":        "#ffffff",
				"card-surface":      "#ffffff",
				"signature-surface": "#f4f6f9",
				"edge":              "#d5d9e0",
				"accent":            "#2457c5",
				"muted":             "#5a6372",
				"snippet-surface":   "#20242d",
				"snippet-ink":       "#e8eaf0",
			},
			Variants: map[string]theme.Variant{
				"dark": {
					Tokens: map[string]string{
						"surface":           "#15181e",
						"ink":               "#dde1e8",
						"header-surface":    "#0d0f13",
						"header-ink":        "#f2f4f8",
						"card-surface":      "#1d2129",
						"signature-surface": "#232834",
						"edge":              "#343b48",
						"accent":            "#7aa2f7",
						"muted":             "#8b93a3",
						"snippet-surface":   "#0d0f13",
						"snippet-ink":       "#dde1e8",
					},
				},
			},
		},
	}
}
