package model

import (
	"errors"
	"strings"

	"github.com/theSLWayne/notebook-doc/pkg/docstring"
	"github.com/theSLWayne/notebook-doc/pkg/namespace"
)

// Builder merges an extracted FunctionRecord with its parsed docstring into
// the per-function view model.
type Builder interface {
	Build(record namespace.FunctionRecord, parsed docstring.ParsedDoc) (FunctionDoc, error)
}

// NewBuilder returns the default Builder.
func NewBuilder() Builder {
	return &builder{}
}

type builder struct{}

// Build folds signature and docstring data together. Signature parameters
// come first in declaration order, even when the docstring never mentions
// them; documented parameters missing from the signature are appended after
// in docstring order, since the docstring stays the source of truth for
// documentation content. Where both sides name a type, the signature wins.
func (b *builder) Build(record namespace.FunctionRecord, parsed docstring.ParsedDoc) (FunctionDoc, error) {
	if record.Name == "" {
		return FunctionDoc{}, errors.New("model: function record has no name")
	}

	fn := FunctionDoc{
		Name:             record.Name,
		Signature:        record.Signature(),
		ShortDescription: parsed.ShortDescription,
		LongDescription:  parsed.LongDescription,
	}

	documented := make(map[string]docstring.Param, len(parsed.Params))
	for _, param := range parsed.Params {
		documented[param.Name] = param
	}

	seen := make(map[string]struct{}, len(record.Params))
	for _, declared := range record.Params {
		seen[declared.Name] = struct{}{}
		merged := ParamDoc{
			Name:     declared.Name,
			Type:     declared.Type,
			Declared: true,
		}
		if declared.Variadic {
			merged.Type = "..." + merged.Type
		}
		if entry, ok := documented[declared.Name]; ok {
			merged.Description = entry.Description
			merged.Default = entry.Default
			merged.Optional = entry.Optional
			if merged.Type == "" {
				merged.Type = entry.Type
			}
		}
		fn.Params = append(fn.Params, merged)
	}

	for _, entry := range parsed.Params {
		if _, ok := seen[entry.Name]; ok {
			continue
		}
		fn.Params = append(fn.Params, ParamDoc{
			Name:        entry.Name,
			Type:        entry.Type,
			Default:     entry.Default,
			Description: entry.Description,
			Optional:    entry.Optional,
		})
	}

	fn.Returns = mergeReturns(record, parsed.Returns)

	for _, raise := range parsed.Raises {
		fn.Raises = append(fn.Raises, RaiseDoc{Type: raise.Type, Description: raise.Description})
	}
	for _, example := range parsed.Examples {
		fn.Examples = append(fn.Examples, ExampleDoc{Description: example.Description, Snippet: example.Snippet})
	}

	return fn, nil
}

// mergeReturns prefers the declared result type over the documented one; a
// function with declared results but no Returns section still gets a row so
// the signature's return type is visible in the output.
func mergeReturns(record namespace.FunctionRecord, documented *docstring.Returns) *ReturnsDoc {
	declaredType := record.ReturnType()
	if documented == nil {
		if declaredType == "" {
			return nil
		}
		return &ReturnsDoc{Type: declaredType}
	}

	merged := &ReturnsDoc{
		Name:        documented.Name,
		Type:        declaredType,
		Description: documented.Description,
	}
	if merged.Type == "" {
		merged.Type = strings.TrimSpace(documented.Type)
	}
	return merged
}
