// Package validator statically checks Robot Framework source text and
// produces a structured, severity-tagged diagnostic report.
//
// The check is line-oriented and structural: it classifies sections,
// verifies format rules, and suggests improvements. It is not a compiler
// front end; it never resolves keywords across files and never executes
// anything. Malformed input is the expected case and never a failure.
package validator

// Severity classifies a diagnostic.
type Severity string

const (
	SeverityError      Severity = "error"
	SeverityWarning    Severity = "warning"
	SeveritySuggestion Severity = "suggestion"
)

// Rule identifiers. Stable across releases; callers key automation off them.
const (
	RuleNoExecutableContent     = "no-executable-content"
	RuleUnknownSection          = "unknown-section"
	RuleMalformedSectionHeader  = "malformed-section-header"
	RuleDuplicateName           = "duplicate-name"
	RuleOrphanStep              = "orphan-step"
	RuleBlankBody               = "blank-body"
	RuleInconsistentIndentation = "inconsistent-indentation"
	RuleLineTooLong             = "line-too-long"
	RuleUnknownLibrary          = "unknown-library"
	RuleUnclosedVariable        = "unclosed-variable"
)

// Diagnostic is one finding. Line is 1-based; 0 means file-scoped.
type Diagnostic struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Line     int      `json:"line,omitempty" yaml:"line,omitempty"`
	Message  string   `json:"message" yaml:"message"`
	Rule     string   `json:"rule" yaml:"rule"`
}

// Report is the ordered diagnostic list plus the structural verdict.
// Valid is true iff no error-severity diagnostic was produced.
type Report struct {
	Diagnostics []Diagnostic `json:"diagnostics" yaml:"diagnostics"`
	Valid       bool         `json:"valid" yaml:"valid"`
}

// Count returns the number of diagnostics with the given severity.
func (r Report) Count(sev Severity) int {
	n := 0
	for _, d := range r.Diagnostics {
		if d.Severity == sev {
			n++
		}
	}

	return n
}
