package docstring

import (
	"regexp"
	"strings"

	pkgdocstring "github.com/theSLWayne/notebook-doc/pkg/docstring"
)

var numpyUnderlineRe = regexp.MustCompile(`^[ \t]*-{3,}[ \t]*$`)

func numpySectionKind(header string) sectionKind {
	switch strings.ToLower(strings.TrimSpace(header)) {
	case "parameters", "other parameters", "args", "arguments":
		return sectionParams
	case "returns", "yields":
		return sectionReturns
	case "raises", "warns":
		return sectionRaises
	case "examples":
		return sectionExamples
	default:
		return sectionNone
	}
}

// parseNumpy handles underlined-header sections:
//
//	Parameters
//	----------
//	a : int
//	    first operand
//
// Unknown sections are dropped from the structured output but their header
// underlines never leak into descriptions.
func parseNumpy(text string) pkgdocstring.ParsedDoc {
	lines := strings.Split(text, "\n")

	var descriptionLines []string
	sections := make(map[sectionKind][]string)
	current := sectionNone
	known := true

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if i+1 < len(lines) && !isBlank(line) && numpyUnderlineRe.MatchString(lines[i+1]) {
			current = numpySectionKind(line)
			known = current != sectionNone
			i++
			continue
		}
		switch {
		case current == sectionNone && known:
			descriptionLines = append(descriptionLines, line)
		case known:
			sections[current] = append(sections[current], line)
		}
	}

	doc := pkgdocstring.ParsedDoc{}
	doc.ShortDescription, doc.LongDescription = splitDescription(strings.Join(descriptionLines, "\n"))
	doc.Params = parseNumpyParams(sections[sectionParams])
	doc.Returns = parseNumpyReturns(sections[sectionReturns])
	doc.Raises = parseNumpyRaises(sections[sectionRaises])
	doc.Examples = parseExampleBlock(sections[sectionExamples])
	return doc
}

var numpyEntryRe = regexp.MustCompile(`^(\*{0,2}[A-Za-z_][\w]*)(?:[ \t]*:[ \t]*(.*))?$`)

func parseNumpyParams(block []string) []pkgdocstring.Param {
	var params []pkgdocstring.Param
	for _, entry := range numpyEntries(block) {
		match := numpyEntryRe.FindStringSubmatch(strings.TrimSpace(entry[0]))
		if match == nil {
			continue
		}
		param := pkgdocstring.Param{Name: match[1]}
		param.Type, param.Optional = splitTypeInfo(match[2])
		var descLines []string
		for _, cont := range entry[1:] {
			descLines = append(descLines, strings.TrimSpace(cont))
		}
		param.Description = strings.TrimSpace(strings.Join(descLines, "\n"))
		param.Default = defaultFromDescription(param.Description)
		params = append(params, param)
	}
	return params
}

func parseNumpyReturns(block []string) *pkgdocstring.Returns {
	entries := numpyEntries(block)
	if len(entries) == 0 {
		return nil
	}

	// NumPy allows several return entries; the first carries the headline
	// type, matching how the HTML output presents a single return row.
	entry := entries[0]
	returns := &pkgdocstring.Returns{}
	head := strings.TrimSpace(entry[0])
	if name, typeName, ok := strings.Cut(head, ":"); ok {
		returns.Name = strings.TrimSpace(name)
		returns.Type = strings.TrimSpace(typeName)
	} else {
		returns.Type = head
	}
	var descLines []string
	for _, cont := range entry[1:] {
		descLines = append(descLines, strings.TrimSpace(cont))
	}
	returns.Description = strings.TrimSpace(strings.Join(descLines, "\n"))
	if returns.Type == "" && returns.Description == "" {
		return nil
	}
	return returns
}

func parseNumpyRaises(block []string) []pkgdocstring.Raise {
	var raises []pkgdocstring.Raise
	for _, entry := range numpyEntries(block) {
		raise := pkgdocstring.Raise{Type: strings.TrimSpace(entry[0])}
		var descLines []string
		for _, cont := range entry[1:] {
			descLines = append(descLines, strings.TrimSpace(cont))
		}
		raise.Description = strings.TrimSpace(strings.Join(descLines, "\n"))
		if raise.Type == "" {
			continue
		}
		raises = append(raises, raise)
	}
	return raises
}

// numpyEntries groups a section block: lines at the shallowest indent start
// entries, deeper lines continue them.
func numpyEntries(block []string) [][]string {
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
		if indentOf(line) == baseIndent {
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
