package namespace

import "strings"

// Param describes a single declared parameter of an extracted function.
type Param struct {
	// Name is the declared identifier, or a synthesised arg0..argN placeholder
	// when the declaration is unavailable (runtime-only function values).
	Name string
	// Type is the parameter type rendered as source text, "" when unknown.
	Type string
	// Variadic marks a trailing ...T parameter.
	Variadic bool
}

// FunctionRecord is the extraction output for one documented function: the
// name it was bound under, its declared parameters in declaration order, its
// result types, and the raw docstring text ("" when absent). Records are
// built once per extraction pass and never mutated afterwards.
type FunctionRecord struct {
	Name    string
	Params  []Param
	Results []string
	Doc     string
}

// Signature renders the record as a compact header line, e.g.
// "add(a int, b int) int". Multiple results are parenthesised the way Go
// declarations print them.
func (r FunctionRecord) Signature() string {
	var b strings.Builder
	b.WriteString(r.Name)
	b.WriteByte('(')
	for i, param := range r.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(param.Name)
		if param.Type != "" {
			b.WriteByte(' ')
			if param.Variadic {
				b.WriteString("...")
			}
			b.WriteString(param.Type)
		}
	}
	b.WriteByte(')')

	switch len(r.Results) {
	case 0:
	case 1:
		b.WriteByte(' ')
		b.WriteString(r.Results[0])
	default:
		b.WriteString(" (")
		b.WriteString(strings.Join(r.Results, ", "))
		b.WriteByte(')')
	}
	return b.String()
}

// ReturnType joins the result types for display, "" when the function returns
// nothing.
func (r FunctionRecord) ReturnType() string {
	return strings.Join(r.Results, ", ")
}
