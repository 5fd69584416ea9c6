package docstring

import "context"

// Style selects the docstring convention a parser should assume.
type Style string

const (
	// StyleAuto detects the convention per docstring; NumPy-style underlined
	// headers win over Google-style "Args:" sections when both could match.
	StyleAuto   Style = "auto"
	StyleGoogle Style = "google"
	StyleNumpy  Style = "numpy"
)

// Parser converts raw docstring text into a ParsedDoc. Implementations must
// be total: empty or free-form input yields a degraded ParsedDoc, and the
// error return is reserved for context cancellation.
type Parser interface {
	Parse(ctx context.Context, text string) (ParsedDoc, error)
}

// ParserOptions configures parser construction.
type ParserOptions struct {
	Style Style
}

// ParserOption mutates ParserOptions prior to construction.
type ParserOption func(*ParserOptions)

// WithStyle pins the docstring convention instead of auto-detecting.
func WithStyle(style Style) ParserOption {
	return func(opts *ParserOptions) {
		if style != "" {
			opts.Style = style
		}
	}
}

// NewParserOptions applies ParserOption values over the defaults.
func NewParserOptions(options ...ParserOption) ParserOptions {
	cfg := ParserOptions{Style: StyleAuto}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}
