package docstring

import (
	"regexp"
	"strings"

	pkgdocstring "github.com/theSLWayne/notebook-doc/pkg/docstring"
)

type sectionKind int

const (
	sectionNone sectionKind = iota
	sectionParams
	sectionReturns
	sectionRaises
	sectionExamples
)

var googleHeaderRe = regexp.MustCompile(`^([A-Za-z][A-Za-z ]*):[ \t]*$`)

func googleSectionKind(header string) sectionKind {
	switch strings.ToLower(strings.TrimSpace(header)) {
	case "args", "arguments", "params", "parameters", "keyword args", "keyword arguments":
		return sectionParams
	case "returns", "return", "yields", "yield":
		return sectionReturns
	case "raises", "raise", "except", "exceptions":
		return sectionRaises
	case "examples", "example":
		return sectionExamples
	default:
		return sectionNone
	}
}

// parseGoogle handles the Args:/Returns:/Raises: family. Text before the
// first recognised header becomes the description; unrecognised headers are
// treated as plain text so loosely structured docstrings keep their content.
func parseGoogle(text string) pkgdocstring.ParsedDoc {
	lines := strings.Split(text, "\n")

	var descriptionLines []string
	sections := make(map[sectionKind][]string)
	current := sectionNone

	for _, line := range lines {
		if indentOf(line) == 0 {
			if match := googleHeaderRe.FindStringSubmatch(strings.TrimRight(line, " \t")); match != nil {
				if kind := googleSectionKind(match[1]); kind != sectionNone {
					current = kind
					continue
				}
			}
		}
		if current == sectionNone {
			descriptionLines = append(descriptionLines, line)
		} else {
			sections[current] = append(sections[current], line)
		}
	}

	doc := pkgdocstring.ParsedDoc{}
	doc.ShortDescription, doc.LongDescription = splitDescription(strings.Join(descriptionLines, "\n"))
	doc.Params = parseGoogleParams(sections[sectionParams])
	doc.Returns = parseGoogleReturns(sections[sectionReturns])
	doc.Raises = parseGoogleRaises(sections[sectionRaises])
	doc.Examples = parseExampleBlock(sections[sectionExamples])
	return doc
}

var googleParamRe = regexp.MustCompile(`^(\*{0,2}[A-Za-z_][\w]*)(?:[ \t]*\(([^)]*)\))?[ \t]*:[ \t]*(.*)$`)

func parseGoogleParams(block []string) []pkgdocstring.Param {
	entries := splitEntries(block, func(line string) bool {
		return googleParamRe.MatchString(strings.TrimSpace(line))
	})

	var params []pkgdocstring.Param
	for _, entry := range entries {
		match := googleParamRe.FindStringSubmatch(strings.TrimSpace(entry[0]))
		if match == nil {
			continue
		}
		param := pkgdocstring.Param{Name: match[1]}
		param.Type, param.Optional = splitTypeInfo(match[2])
		descLines := []string{strings.TrimSpace(match[3])}
		for _, cont := range entry[1:] {
			descLines = append(descLines, strings.TrimSpace(cont))
		}
		param.Description = strings.TrimSpace(strings.Join(descLines, "\n"))
		param.Default = defaultFromDescription(param.Description)
		params = append(params, param)
	}
	return params
}

var googleTypedLineRe = regexp.MustCompile(`^([\w\.\[\], ]+?)[ \t]*:[ \t]*(.*)$`)

func parseGoogleReturns(block []string) *pkgdocstring.Returns {
	var content []string
	for _, line := range block {
		if !isBlank(line) {
			content = append(content, strings.TrimSpace(line))
		}
	}
	if len(content) == 0 {
		return nil
	}

	returns := &pkgdocstring.Returns{}
	rest := content
	if match := googleTypedLineRe.FindStringSubmatch(content[0]); match != nil {
		returns.Type = strings.TrimSpace(match[1])
		if desc := strings.TrimSpace(match[2]); desc != "" {
			rest = append([]string{desc}, content[1:]...)
		} else {
			rest = content[1:]
		}
	}
	returns.Description = strings.TrimSpace(strings.Join(rest, "\n"))
	if returns.Type == "" && returns.Description == "" {
		return nil
	}
	return returns
}

var googleRaiseRe = regexp.MustCompile(`^([\w\.]+)[ \t]*:[ \t]*(.*)$`)

func parseGoogleRaises(block []string) []pkgdocstring.Raise {
	entries := splitEntries(block, func(line string) bool {
		return googleRaiseRe.MatchString(strings.TrimSpace(line))
	})

	var raises []pkgdocstring.Raise
	for _, entry := range entries {
		match := googleRaiseRe.FindStringSubmatch(strings.TrimSpace(entry[0]))
		if match == nil {
			continue
		}
		descLines := []string{strings.TrimSpace(match[2])}
		for _, cont := range entry[1:] {
			descLines = append(descLines, strings.TrimSpace(cont))
		}
		raises = append(raises, pkgdocstring.Raise{
			Type:        match[1],
			Description: strings.TrimSpace(strings.Join(descLines, "\n")),
		})
	}
	return raises
}

// splitEntries groups a section block into entries: a line matching isEntry
// at the shallowest indent starts a new entry and deeper lines continue it.
func splitEntries(block []string, isEntry func(string) bool) [][]string {
	baseIndent := -1
	for _, line := range block {
		if isBlank(line) {
			continue
		}
		indent := indentOf(line)
		if baseIndent == -1 || indent < baseIndent {
			baseIndent = indent
		}
	}

	var entries [][]string
	for _, line := range block {
		if isBlank(line) {
			continue
		}
		if indentOf(line) == baseIndent && isEntry(line) {
			entries = append(entries, []string{line})
			continue
		}
		if len(entries) == 0 {
			continue
		}
		last := len(entries) - 1
		entries[last] = append(entries[last], line)
	}
	return entries
}

// splitTypeInfo separates "int, optional" style annotations into the type
// name and the optional marker.
func splitTypeInfo(info string) (typeName string, optional bool) {
	trimmed := strings.TrimSpace(info)
	if trimmed == "" {
		return "", false
	}

	parts := strings.Split(trimmed, ",")
	var kept []string
	for _, part := range parts {
		if strings.EqualFold(strings.TrimSpace(part), "optional") {
			optional = true
			continue
		}
		if cleaned := strings.TrimSpace(part); cleaned != "" {
			kept = append(kept, cleaned)
		}
	}
	return strings.Join(kept, ", "), optional
}
