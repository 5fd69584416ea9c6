package docstring

// Param documents a single parameter as described in the docstring. The name
// is matched against signature parameters downstream; a documented parameter
// with no matching signature entry is still rendered.
type Param struct {
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
	Default     string `json:"default,omitempty"`
	Optional    bool   `json:"optional,omitempty"`
}

// Returns documents the return value.
type Returns struct {
	Name        string `json:"name,omitempty"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

// Raise documents one error condition the function surfaces.
type Raise struct {
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

// Example holds one usage example block.
type Example struct {
	Description string `json:"description,omitempty"`
	Snippet     string `json:"snippet,omitempty"`
}

// ParsedDoc is the structured form of a docstring. Every field is optional:
// parsing is total and missing structure degrades to empty fields, never to
// an error.
type ParsedDoc struct {
	ShortDescription string    `json:"shortDescription,omitempty"`
	LongDescription  string    `json:"longDescription,omitempty"`
	Params           []Param   `json:"params,omitempty"`
	Returns          *Returns  `json:"returns,omitempty"`
	Raises           []Raise   `json:"raises,omitempty"`
	Examples         []Example `json:"examples,omitempty"`
}

// Empty reports whether the docstring produced no content at all.
func (d ParsedDoc) Empty() bool {
	return d.ShortDescription == "" &&
		d.LongDescription == "" &&
		len(d.Params) == 0 &&
		d.Returns == nil &&
		len(d.Raises) == 0 &&
		len(d.Examples) == 0
}
