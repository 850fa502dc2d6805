package validator

import (
	"strings"
	"testing"
)

// FuzzValidate checks the structural invariants that must hold for every
// input: the scan completes, the diagnostic order is stable, and the
// verdict agrees with the error count.
func FuzzValidate(f *testing.F) {
	f.Add("")
	f.Add("*** Test Cases ***\nTest\n    Log    hi\n")
	f.Add("*** Settings ***\nLibrary    NoSuchLibrary\n")
	f.Add("***Test Cases***")
	f.Add("*** Tasks ***\nTask\n    Log    x")
	f.Add("    orphan step\n*** Keywords ***\nK\n")
	f.Add("*** Test Cases ***\nDup\n    Log    a\nDup\n    Log    b\n")
	f.Add("*** Test Cases ***\nT\n    Log    ${unclosed")
	f.Add("*** Test Cases ***\nT\n\tLog\ttab\n    Log    spaces\n")
	f.Add("* \x00 *\n${\n#")
	f.Add(strings.Repeat("x", 500))
	f.Add("*** Variables ***\r\n${X}    1\r\n")

	f.Fuzz(func(t *testing.T, text string) {
		if len(text) > 100000 {
			t.Skip("input too large")
		}

		report := Validate(text, Options{})

		for i := 1; i < len(report.Diagnostics); i++ {
			if report.Diagnostics[i-1].Line > report.Diagnostics[i].Line {
				t.Errorf("diagnostics out of order: line %d before line %d",
					report.Diagnostics[i-1].Line, report.Diagnostics[i].Line)
			}
		}

		for _, d := range report.Diagnostics {
			if d.Line < 0 {
				t.Errorf("negative diagnostic line %d", d.Line)
			}
			if d.Rule == "" {
				t.Errorf("diagnostic without a rule: %+v", d)
			}
			if d.Severity != SeverityError && d.Severity != SeverityWarning && d.Severity != SeveritySuggestion {
				t.Errorf("unknown severity %q", d.Severity)
			}
		}

		if report.Valid != (report.Count(SeverityError) == 0) {
			t.Errorf("verdict %v disagrees with error count %d",
				report.Valid, report.Count(SeverityError))
		}
	})
}
