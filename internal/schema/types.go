package schema

import "regexp"

// Document is the parsed raw reference document: a set of property nodes
// plus the shared definitions they reference.
type Document struct {
	Properties map[string]*Node            `json:"properties"`
	Defs       map[string]map[string]*Node `json:"$defs"`
}

// Node is one raw schema node. The same shape serves a property entry, a
// $defs definition, and a oneOf alternative; resolution flattens it into a
// Property.
type Node struct {
	Ref                 string  `json:"$ref,omitempty"`
	Description         string  `json:"description,omitempty"`
	DeprecationMessage  string  `json:"deprecationMessage,omitempty"`
	Pattern             string  `json:"pattern,omitempty"`
	PatternErrorMessage string  `json:"patternErrorMessage,omitempty"`
	Sample              string  `json:"sample,omitempty"`
	OneOf               []*Node `json:"oneOf,omitempty"`
}

// Property is a fully resolved schema entry: all references merged, the
// transparency requirement derived, and a sample value assigned. Built once
// per schema load and read-only afterwards.
type Property struct {
	Key                string        `json:"key" yaml:"key"`
	Description        string        `json:"description,omitempty" yaml:"description,omitempty"`
	OneOf              []Alternative `json:"oneOf,omitempty" yaml:"oneOf,omitempty"`
	DeprecationMessage string        `json:"deprecationMessage,omitempty" yaml:"deprecationMessage,omitempty"`
	AlphaRequired      bool          `json:"alphaRequired" yaml:"alphaRequired"`
	Sample             string        `json:"sample" yaml:"sample"`
}

// Alternative is one pattern branch of a property's oneOf list.
type Alternative struct {
	Pattern             string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	PatternErrorMessage string `json:"patternErrorMessage,omitempty" yaml:"patternErrorMessage,omitempty"`

	// Compiled is set during resolution; nil when Pattern is absent or did
	// not compile. Validation never compiles patterns itself.
	Compiled *regexp.Regexp `json:"-" yaml:"-"`
}

// Map is the flat resolved schema: property name -> descriptor. Its key set
// is exactly the raw document's properties key set.
type Map map[string]*Property

// Declaration is one user-supplied color customization entry. Values are
// usually strings but may be any JSON value; the validator rejects
// non-strings rather than crashing on them. Declarations carry document
// order, which a plain map would lose.
type Declaration struct {
	Property string
	Value    any
}

// Status classifies one validated declaration.
type Status string

const (
	StatusValid   Status = "valid"
	StatusWarn    Status = "warn"
	StatusInvalid Status = "invalid"
)

// Result is the verdict for a single declaration. Message is empty when the
// declaration is valid.
type Result struct {
	Property    string `json:"property"`
	Status      Status `json:"status"`
	Description string `json:"description"`
	Value       any    `json:"value"`
	Message     string `json:"message,omitempty"`
}

// Verdict represents the overall assessment of a customization file.
type Verdict string

const (
	VerdictClean      Verdict = "CLEAN"
	VerdictDeprecated Verdict = "DEPRECATED"
	VerdictInvalid    Verdict = "INVALID"
)

// VerdictOrdinal returns the numeric ordering for a verdict, used by
// --fail-on comparison. CLEAN(0) < DEPRECATED(1) < INVALID(2).
// Returns -1 for an unrecognised verdict.
func VerdictOrdinal(v Verdict) int {
	switch v {
	case VerdictClean:
		return 0
	case VerdictDeprecated:
		return 1
	case VerdictInvalid:
		return 2
	default:
		return -1
	}
}

// Report is the top-level output structure for a check run.
type Report struct {
	Tool    string   `json:"tool"`
	Version string   `json:"version"`
	Input   Input    `json:"input"`
	Summary Summary  `json:"summary"`
	Results []Result `json:"results"`
}

// Input captures the parameters used for this run.
type Input struct {
	ColorsFile string `json:"colors_file"`
	ColorsHash string `json:"colors_hash"` // SHA-256 of the file as read from disk
	SchemaFile string `json:"schema_file"` // "builtin" when the bundled reference was used
}

// Summary holds the computed verdict and per-status counts.
type Summary struct {
	Verdict      Verdict `json:"verdict"`
	ValidCount   int     `json:"valid_count"`
	WarnCount    int     `json:"warn_count"`
	InvalidCount int     `json:"invalid_count"`
}
