//go:build property

package generator

import (
	"strings"
	"testing"
	"unicode"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"robogen/internal/artifact"
	"robogen/internal/dialect"
	"robogen/internal/sanitize"
)

// TestRenderProperties validates the rendering invariants over arbitrary
// printable credentials: determinism, and that an embedded credential can
// be recovered exactly from the rendered text.
func TestRenderProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(2468)
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	// Credentials the sanitizer accepts: printable, trim-stable, within the
	// length cap.
	credential := gen.UnicodeString().SuchThat(func(s string) bool {
		if s == "" || len(s) > sanitize.MaxCredentialLength {
			return false
		}
		if strings.TrimSpace(s) != s {
			return false
		}
		for _, r := range s {
			if unicode.IsControl(r) {
				return false
			}
		}

		return true
	})

	d, _ := dialect.Resolve("appLocator")
	baseParams := func(password sanitize.Value) Params {
		url, _ := sanitize.URL("url", "https://app.example.com")
		user, _ := sanitize.Credential("username", "user")

		return Params{ParamURL: url, ParamUsername: user, ParamPassword: password}
	}

	properties.Property("rendering is deterministic", prop.ForAll(
		func(raw string) bool {
			password, err := sanitize.Credential("password", raw)
			if err != nil {
				return false
			}
			first, err1 := Render(artifact.KindLoginTest, baseParams(password), d, false)
			second, err2 := Render(artifact.KindLoginTest, baseParams(password), d, false)

			return err1 == nil && err2 == nil && first.Body == second.Body
		},
		credential,
	))

	properties.Property("embedded credential unescapes to the original", prop.ForAll(
		func(raw string) bool {
			password, err := sanitize.Credential("password", raw)
			if err != nil {
				return false
			}
			a, err := Render(artifact.KindLoginTest, baseParams(password), d, false)
			if err != nil {
				return false
			}

			for _, line := range strings.Split(a.Body, "\n") {
				if strings.HasPrefix(line, "${PASSWORD}") {
					embedded := strings.TrimLeft(strings.TrimPrefix(line, "${PASSWORD}"), " ")

					return sanitize.Unescape(embedded) == raw
				}
			}

			return false
		},
		credential,
	))

	properties.TestingRun(t)
}
