package validator

import (
	"fmt"
	"sort"
	"strings"
)

// Options configures limits the validator itself does not own. The core
// never reads configuration; the hosting command layer fills this in.
type Options struct {
	// MaxLineLength is the length beyond which a wrap suggestion is
	// emitted. Zero means the default of 120.
	MaxLineLength int
	// KnownLibraries overrides the set of library names that settings
	// sections may import without a suggestion. Nil means the default set.
	KnownLibraries []string
}

// DefaultMaxLineLength is the wrap-suggestion threshold.
const DefaultMaxLineLength = 120

// defaultLibraries are the standard and commonly bundled libraries.
// Anything else yields a suggestion, not an error: library availability
// cannot be verified without the target environment.
var defaultLibraries = []string{
	"BuiltIn", "Collections", "DateTime", "Dialogs", "OperatingSystem",
	"Process", "Screenshot", "String", "Telnet", "XML",
	"SeleniumLibrary", "RequestsLibrary", "DataDriver", "Browser",
}

// state enumerates the section scanner states.
type state int

const (
	statePreamble state = iota
	stateSettings
	stateVariables
	stateTestCases
	stateKeywords
	stateComments
	stateUnknown
)

// sectionTable is the transition table from a recognized header name
// (lower-cased) to the next state. Any state may transition to any other.
var sectionTable = map[string]state{
	"settings":   stateSettings,
	"variables":  stateVariables,
	"test cases": stateTestCases,
	"keywords":   stateKeywords,
	"comments":   stateComments,
}

// executable reports whether a state holds test or keyword definitions.
func (s state) executable() bool {
	return s == stateTestCases || s == stateKeywords
}

// block tracks the test/keyword definition currently being scanned.
type block struct {
	nameLine   int
	steps      int
	indent     string // indentation of the first step
	hasTabs    bool
	hasSpaces  bool
	indentDiag bool // one indentation diagnostic per block
}

// Validate scans text line by line and returns the diagnostic report.
// The scan is single-pass and completes on any input; a truncated final
// section is simply abandoned with the diagnostics gathered so far.
func Validate(text string, opts Options) Report {
	maxLine := opts.MaxLineLength
	if maxLine <= 0 {
		maxLine = DefaultMaxLineLength
	}
	libraries := opts.KnownLibraries
	if libraries == nil {
		libraries = defaultLibraries
	}
	knownLibs := make(map[string]struct{}, len(libraries))
	for _, lib := range libraries {
		knownLibs[lib] = struct{}{}
	}

	var diags []Diagnostic
	add := func(sev Severity, line int, rule, format string, args ...interface{}) {
		diags = append(diags, Diagnostic{
			Severity: sev,
			Line:     line,
			Rule:     rule,
			Message:  fmt.Sprintf(format, args...),
		})
	}

	current := statePreamble
	sawExecutableSection := false

	// Per-section bookkeeping, reset on every header.
	var names map[string]int
	var open *block

	closeBlock := func() {
		if open != nil && open.steps == 0 {
			add(SeverityWarning, open.nameLine, RuleBlankBody,
				"test or keyword has no steps")
		}
		open = nil
	}

	lines := strings.Split(text, "\n")
	for i, raw := range lines {
		lineNo := i + 1
		line := strings.TrimRight(raw, "\r")
		trimmed := strings.TrimSpace(line)

		if len(line) > maxLine {
			add(SeveritySuggestion, lineNo, RuleLineTooLong,
				"line is %d characters long, consider wrapping at %d", len(line), maxLine)
		}

		if trimmed == "" {
			continue
		}

		// Section headers switch state from anywhere. Headers start in
		// the first column; an indented asterisk is just cell content.
		if strings.HasPrefix(line, "*") {
			closeBlock()
			name, wellFormed := parseSectionHeader(trimmed)
			if !wellFormed {
				add(SeverityWarning, lineNo, RuleMalformedSectionHeader,
					"section header must match '*** <Name> ***'")
				current = stateUnknown

				continue
			}
			next, known := sectionTable[strings.ToLower(name)]
			if !known {
				add(SeverityWarning, lineNo, RuleUnknownSection,
					"unknown section %q", name)
				current = stateUnknown

				continue
			}
			current = next
			if current.executable() {
				sawExecutableSection = true
				names = make(map[string]int)
			}

			continue
		}

		if strings.HasPrefix(trimmed, "#") {
			continue
		}

		// Unclosed ${...} is broken on any content line. Check the last
		// opener so earlier closed references do not mask a dangling one.
		if idx := strings.LastIndex(line, "${"); idx >= 0 && !strings.Contains(line[idx:], "}") {
			add(SeverityError, lineNo, RuleUnclosedVariable,
				"unclosed variable syntax")
		}

		switch {
		case current == stateSettings:
			checkSettingsLine(line, lineNo, knownLibs, add)
		case current.executable():
			scanExecutableLine(line, trimmed, lineNo, names, &open, add)
		default:
			// Preamble, variables, comments, unknown: nothing structural
			// to verify beyond the generic checks above.
		}
	}
	closeBlock()

	if !sawExecutableSection {
		add(SeverityError, 0, RuleNoExecutableContent,
			"no executable content found: at least one Test Cases or Keywords section is required")
	}

	// File-scoped diagnostics sort first, then ascending line. Stable so
	// same-line findings keep discovery order.
	sort.SliceStable(diags, func(a, b int) bool {
		return diags[a].Line < diags[b].Line
	})

	return Report{
		Diagnostics: diags,
		Valid:       countSeverity(diags, SeverityError) == 0,
	}
}

// parseSectionHeader recognizes '*** <Name> ***' exactly. The name match
// is case-insensitive but the frame must be well-formed.
func parseSectionHeader(trimmed string) (name string, wellFormed bool) {
	if !strings.HasPrefix(trimmed, "*** ") || !strings.HasSuffix(trimmed, " ***") {
		return "", false
	}
	inner := strings.TrimSpace(trimmed[4 : len(trimmed)-4])
	if inner == "" || strings.Contains(inner, "*") {
		return "", false
	}

	return inner, true
}

// checkSettingsLine flags imports of libraries that are not in the known
// set. Only a suggestion: availability depends on the target environment.
func checkSettingsLine(line string, lineNo int, knownLibs map[string]struct{}, add func(Severity, int, string, string, ...interface{})) {
	cells := splitCells(line)
	if len(cells) < 2 || !strings.EqualFold(cells[0], "Library") {
		return
	}
	lib := cells[1]
	// Imports by path (MyLib.py) are file references, not names.
	if strings.ContainsAny(lib, "/.") {
		return
	}
	if _, ok := knownLibs[lib]; !ok {
		add(SeveritySuggestion, lineNo, RuleUnknownLibrary,
			"library %q is not a known library, verify it is installed", lib)
	}
}

// scanExecutableLine handles one line within a Test Cases or Keywords
// section: name declarations are flush-left, steps indented beneath them.
func scanExecutableLine(line, trimmed string, lineNo int, names map[string]int, open **block, add func(Severity, int, string, string, ...interface{})) {
	indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]

	if indent == "" {
		// Name declaration line.
		if *open != nil && (*open).steps == 0 {
			add(SeverityWarning, (*open).nameLine, RuleBlankBody,
				"test or keyword has no steps")
		}
		key := strings.ToLower(trimmed)
		if first, dup := names[key]; dup {
			add(SeverityError, lineNo, RuleDuplicateName,
				"duplicate test or keyword name %q (first defined on line %d); the first definition is shadowed", trimmed, first)
		} else {
			names[key] = lineNo
		}
		*open = &block{nameLine: lineNo}

		return
	}

	// Step line.
	if *open == nil {
		add(SeverityWarning, lineNo, RuleOrphanStep,
			"indented step has no test or keyword name above it")

		return
	}

	b := *open
	b.steps++

	mixed := strings.Contains(indent, " ") && strings.Contains(indent, "\t")
	if b.indent == "" {
		b.indent = indent
		b.hasTabs = strings.Contains(indent, "\t")
		b.hasSpaces = strings.Contains(indent, " ")
	}

	// Continuation rows may be indented deeper; only flag style breaks.
	sameStyle := strings.Contains(indent, "\t") == b.hasTabs &&
		strings.Contains(indent, " ") == b.hasSpaces
	if !b.indentDiag && (mixed || !sameStyle) {
		add(SeverityWarning, lineNo, RuleInconsistentIndentation,
			"inconsistent indentation: mixed tabs and spaces or changed style within one block")
		b.indentDiag = true
	}
}

// splitCells splits a line into cells on runs of two or more spaces or a
// tab, the separators of the space-separated format.
func splitCells(line string) []string {
	var cells []string
	for _, part := range strings.Split(strings.TrimSpace(line), "\t") {
		for _, cell := range strings.Split(part, "  ") {
			cell = strings.TrimSpace(cell)
			if cell != "" {
				cells = append(cells, cell)
			}
		}
	}

	return cells
}

func countSeverity(diags []Diagnostic, sev Severity) int {
	n := 0
	for _, d := range diags {
		if d.Severity == sev {
			n++
		}
	}

	return n
}
