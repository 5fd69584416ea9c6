package htmldoc

import (
	"html"
	"strings"

	"github.com/theSLWayne/notebook-doc/pkg/model"
	"github.com/theSLWayne/notebook-doc/pkg/render"
)

// richText escapes a description and converts its whitespace structure into
// markup: newlines become <br> and tabs become non-breaking indentation. The
// result is sanitized and then safe to mark |safe in the template.
func richText(text string) string {
	if text == "" {
		return ""
	}
	escaped := html.EscapeString(text)
	escaped = strings.ReplaceAll(escaped, "\n", "<br>")
	escaped = strings.ReplaceAll(escaped, "\t", "&nbsp;&nbsp;&nbsp;&nbsp;")
	return sanitizeFragment(escaped)
}

// buildContext flattens the document model into the template context. All
// collection values are slices so the rendered bytes depend only on the
// model, keeping output byte-identical across calls.
func buildContext(doc model.DocumentModel, options render.RenderOptions, stylesheet string) map[string]any {
	moduleName := doc.ModuleName
	if moduleName == "" {
		moduleName = model.DefaultModuleName
	}

	functions := make([]any, 0, len(doc.Functions))
	for _, fn := range doc.Functions {
		functions = append(functions, functionContext(fn))
	}

	var cssVars []any
	for _, cssVar := range render.SortedCSSVars(options.Theme) {
		cssVars = append(cssVars, map[string]any{
			"name":  cssVar.Name,
			"value": cssVar.Value,
		})
	}

	return map[string]any{
		"moduleName": moduleName,
		"links":      options.Links,
		"stylesheet": stylesheet,
		"cssVars":    cssVars,
		"functions":  functions,
	}
}

func functionContext(fn model.FunctionDoc) map[string]any {
	anchor := fn.Anchor
	if anchor == "" {
		anchor = fn.Name
	}

	params := make([]any, 0, len(fn.Params))
	for _, param := range fn.Params {
		params = append(params, map[string]any{
			"name":        param.Name,
			"type":        param.Type,
			"description": richText(param.Description),
			"default":     param.Default,
			"optional":    param.Optional,
			"declared":    param.Declared,
		})
	}

	var returns any
	if fn.Returns != nil {
		returns = map[string]any{
			"name":        fn.Returns.Name,
			"type":        fn.Returns.Type,
			"description": richText(fn.Returns.Description),
		}
	}

	raises := make([]any, 0, len(fn.Raises))
	for _, raise := range fn.Raises {
		raises = append(raises, map[string]any{
			"type":        raise.Type,
			"description": richText(raise.Description),
		})
	}

	examples := make([]any, 0, len(fn.Examples))
	for _, example := range fn.Examples {
		examples = append(examples, map[string]any{
			"description": richText(example.Description),
			"snippet":     example.Snippet,
		})
	}

	return map[string]any{
		"name":             fn.Name,
		"anchor":           anchor,
		"signature":        fn.Signature,
		"shortDescription": fn.ShortDescription,
		"longDescription":  richText(fn.LongDescription),
		"params":           params,
		"returns":          returns,
		"raises":           raises,
		"examples":         examples,
	}
}
