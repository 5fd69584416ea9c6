package model

// DefaultModuleName is the title used when a rendering call does not supply
// one, matching the notebook origin of the pipeline.
const DefaultModuleName = "Notebook"

// ParamDoc is the merged view of one parameter: declaration metadata from the
// signature folded together with the docstring entry of the same name.
type ParamDoc struct {
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Default     string `json:"default,omitempty"`
	Description string `json:"description,omitempty"`
	Optional    bool   `json:"optional,omitempty"`
	// Declared marks parameters present in the function signature; documented
	// parameters missing from the signature render with Declared false.
	Declared bool `json:"declared"`
}

// ReturnsDoc describes the return value.
type ReturnsDoc struct {
	Name        string `json:"name,omitempty"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

// RaiseDoc describes one documented error condition.
type RaiseDoc struct {
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

// ExampleDoc holds one usage example.
type ExampleDoc struct {
	Description string `json:"description,omitempty"`
	Snippet     string `json:"snippet,omitempty"`
}

// FunctionDoc is the per-function view model renderers consume.
type FunctionDoc struct {
	Name             string       `json:"name"`
	Anchor           string       `json:"anchor,omitempty"`
	Signature        string       `json:"signature"`
	ShortDescription string       `json:"shortDescription,omitempty"`
	LongDescription  string       `json:"longDescription,omitempty"`
	Params           []ParamDoc   `json:"params,omitempty"`
	Returns          *ReturnsDoc  `json:"returns,omitempty"`
	Raises           []RaiseDoc   `json:"raises,omitempty"`
	Examples         []ExampleDoc `json:"examples,omitempty"`
}

// DocumentModel is the top-level representation a renderer turns into HTML.
// Functions keep namespace iteration order; no sorting is applied anywhere in
// the pipeline.
type DocumentModel struct {
	ModuleName string        `json:"moduleName"`
	Functions  []FunctionDoc `json:"functions"`
}
