package docstring

import (
	"context"
	"regexp"
	"strings"

	pkgdocstring "github.com/theSLWayne/notebook-doc/pkg/docstring"
)

// Parser implements pkgdocstring.Parser with a section-header parser covering
// the Google and NumPy docstring families. Parsing is total: any input that
// fails to match a convention degrades to plain short/long description text.
type Parser struct {
	opts pkgdocstring.ParserOptions
}

// Ensure the implementation satisfies the public interface.
var _ pkgdocstring.Parser = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options pkgdocstring.ParserOptions) pkgdocstring.Parser {
	if options.Style == "" {
		options.Style = pkgdocstring.StyleAuto
	}
	return &Parser{opts: options}
}

// Parse converts raw docstring text into its structured form. The error
// return is reserved for context cancellation.
func (p *Parser) Parse(ctx context.Context, text string) (pkgdocstring.ParsedDoc, error) {
	if err := ctx.Err(); err != nil {
		return pkgdocstring.ParsedDoc{}, err
	}

	cleaned := dedent(strings.ReplaceAll(text, "\r\n", "\n"))
	if strings.TrimSpace(cleaned) == "" {
		return pkgdocstring.ParsedDoc{}, nil
	}

	style := p.opts.Style
	if style == pkgdocstring.StyleAuto {
		style = detectStyle(cleaned)
	}

	switch style {
	case pkgdocstring.StyleNumpy:
		return parseNumpy(cleaned), nil
	default:
		return parseGoogle(cleaned), nil
	}
}

var numpyHeaderRe = regexp.MustCompile(`(?m)^[ \t]*(Parameters|Returns|Yields|Raises|Examples|Notes|See Also|Attributes)[ \t]*\n[ \t]*-{3,}[ \t]*$`)

// detectStyle picks the convention per docstring. Underlined NumPy headers
// are unambiguous, so they win; everything else goes through the Google
// parser, which degrades to plain description text for free-form input.
func detectStyle(text string) pkgdocstring.Style {
	if numpyHeaderRe.MatchString(text) {
		return pkgdocstring.StyleNumpy
	}
	return pkgdocstring.StyleGoogle
}

// dedent strips the common leading indentation shared by every line after the
// first, the shape triple-quoted docstrings arrive in.
func dedent(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		return strings.TrimSpace(text)
	}

	minIndent := -1
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if minIndent == -1 || indent < minIndent {
			minIndent = indent
		}
	}
	if minIndent <= 0 {
		return strings.TrimSpace(text)
	}

	out := make([]string, len(lines))
	out[0] = strings.TrimSpace(lines[0])
	for i, line := range lines[1:] {
		if len(line) >= minIndent {
			line = line[minIndent:]
		} else {
			line = strings.TrimLeft(line, " \t")
		}
		out[i+1] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

// splitDescription divides free text into the summary paragraph and the
// remainder. Internal newlines in the long description are preserved so the
// renderer can translate them into line breaks.
func splitDescription(text string) (short, long string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", ""
	}

	paragraphBreak := strings.Index(trimmed, "\n\n")
	if paragraphBreak < 0 {
		return collapseLines(trimmed), ""
	}
	return collapseLines(trimmed[:paragraphBreak]), strings.TrimSpace(trimmed[paragraphBreak+2:])
}

// collapseLines joins a wrapped paragraph into a single line.
func collapseLines(text string) string {
	fields := strings.Fields(text)
	return strings.Join(fields, " ")
}

func indentOf(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// parseExampleBlock splits an examples section into prose and snippet lines.
// Interpreter-style lines (">>>", "...") form the snippet, everything else
// the description, both preserving line breaks.
func parseExampleBlock(block []string) []pkgdocstring.Example {
	var description, snippet []string
	for _, line := range block {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, ">>>") || strings.HasPrefix(trimmed, "...") {
			snippet = append(snippet, trimmed)
			continue
		}
		if trimmed != "" {
			description = append(description, trimmed)
		}
	}
	if len(description) == 0 && len(snippet) == 0 {
		return nil
	}
	return []pkgdocstring.Example{{
		Description: strings.Join(description, "\n"),
		Snippet:     strings.Join(snippet, "\n"),
	}}
}

var defaultsRe = regexp.MustCompile(`[Dd]efaults? to ` + "`?" + `([^.` + "`" + `]+)` + "`?" + `\.?`)

// defaultFromDescription recovers "Defaults to X." metadata from a parameter
// description.
func defaultFromDescription(description string) string {
	match := defaultsRe.FindStringSubmatch(description)
	if match == nil {
		return ""
	}
	return strings.TrimSpace(match[1])
}
