// Package generator renders Robot Framework artifact text from named
// template skeletons, sanitized parameters, and a selector dialect.
//
// Substitution is positional-by-name through text/template only; the
// renderer never builds output by concatenating caller-supplied strings.
// Every substituted value is a sanitize.Value, which closes the second
// half of the injection-safety contract.
package generator

import (
	"strings"
	"text/template"

	"robogen/internal/artifact"
	"robogen/internal/dialect"
	"robogen/internal/errors"
	"robogen/internal/sanitize"
)

// Parameter names accepted by the skeletons.
const (
	ParamURL      = "url"
	ParamUsername = "username"
	ParamPassword = "password"
	ParamDataFile = "test_data_file"
	ParamBaseURL  = "base_url"
	ParamEndpoint = "endpoint"
	ParamMethod   = "method"
)

// Params maps parameter names to sanitized values for one render call.
type Params map[string]sanitize.Value

// requiredParams lists each skeleton's mandatory substitution points.
var requiredParams = map[artifact.Kind][]string{
	artifact.KindLoginTest:        {ParamURL, ParamUsername, ParamPassword},
	artifact.KindPageObject:       {},
	artifact.KindDataDriven:       {ParamDataFile},
	artifact.KindAPIIntegration:   {ParamBaseURL, ParamEndpoint, ParamMethod},
	artifact.KindAdvancedKeywords: {},
	artifact.KindExtendedKeywords: {},
	artifact.KindPerformanceTest:  {},
}

// skeletons holds the parsed templates, built once at init. Option("missingkey=error")
// turns any skeleton/data mismatch into an error instead of "<no value>"
// output.
var skeletons = func() map[artifact.Kind]*template.Template {
	parsed := make(map[artifact.Kind]*template.Template, len(skeletonText))
	for kind, text := range skeletonText {
		parsed[kind] = template.Must(
			template.New(string(kind)).Option("missingkey=error").Parse(text),
		)
	}

	return parsed
}()

// RequiredParams returns the mandatory parameter names for a kind, or nil
// for an unknown kind.
func RequiredParams(kind artifact.Kind) []string {
	return requiredParams[kind]
}

// Render fills the named skeleton with sanitized values and the chosen
// dialect. Identical inputs always produce byte-identical output.
func Render(kind artifact.Kind, params Params, d dialect.Dialect, usedDefault bool) (artifact.Artifact, error) {
	tmpl, ok := skeletons[kind]
	if !ok {
		return artifact.Artifact{}, errors.ErrUnknownTemplateKind(string(kind))
	}

	data := map[string]string{
		"dialect":           string(d.ID()),
		"dialect_upper":     strings.ToUpper(string(d.ID())),
		"username_field":    d.Locator(dialect.RoleUsernameField).String(),
		"password_field":    d.Locator(dialect.RolePasswordField).String(),
		"login_button":      d.Locator(dialect.RoleLoginButton).String(),
		"success_indicator": d.Locator(dialect.RoleSuccessIndicator).String(),
		"error_message":     d.Locator(dialect.RoleErrorMessage).String(),
		"logout_button":     d.Locator(dialect.RoleLogoutButton).String(),
	}

	for _, name := range requiredParams[kind] {
		value, present := params[name]
		if !present || value.IsZero() {
			return artifact.Artifact{}, errors.ErrMissingRequiredParameter(name)
		}
		data[name] = value.String()
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return artifact.Artifact{}, errors.NewInternalError("template execution failed", err)
	}

	return artifact.Artifact{
		Kind:               kind,
		Body:               b.String(),
		Dialect:            string(d.ID()),
		UsedDefaultDialect: usedDefault,
	}, nil
}
