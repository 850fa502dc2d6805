// Package tools defines the callable tool surface of robogen: named tools
// that map plain string parameters onto the core sanitize → resolve →
// render pipeline, or onto the syntax validator. Both the CLI and the MCP
// transport dispatch through this table.
package tools

import (
	"robogen/internal/artifact"
	"robogen/internal/dialect"
	"robogen/internal/generator"
	"robogen/internal/sanitize"
	"robogen/internal/validator"
)

// Default values for optional parameters.
const (
	DefaultDataFile = "test_data.csv"
	DefaultMethod   = "GET"
)

// Options carries transport-level configuration into a tool call. The core
// components never read configuration themselves.
type Options struct {
	// MaxLineLength for validator wrap suggestions; 0 uses the default.
	MaxLineLength int
	// MaxPayload caps validator input size; 0 uses the default.
	MaxPayload int
}

// Result is a tool outcome: exactly one of Artifact or Report is set.
type Result struct {
	Artifact *artifact.Artifact
	Report   *validator.Report
}

// ParamSpec describes one tool parameter for schema generation and help.
type ParamSpec struct {
	Name        string
	Description string
	Required    bool
	Default     string
	Enum        []string
}

// Tool is one entry in the callable tool table.
type Tool struct {
	Name        string
	Description string
	Params      []ParamSpec
	Run         func(args map[string]string, opts Options) (Result, error)
}

var templateTypeParam = ParamSpec{
	Name:        "template_type",
	Description: "Selector dialect for the target application",
	Default:     string(dialect.DefaultID),
	Enum:        dialect.Names(),
}

// table preserves the tool order of the external interface contract.
var table = []Tool{
	{
		Name:        "create_login_test_case",
		Description: "Generate Robot Framework test case code for login functionality. Returns the complete .robot file content as text - does not execute the test.",
		Params: []ParamSpec{
			{Name: "url", Description: "Application URL (http or https)", Required: true},
			{Name: "username", Description: "Login username", Required: true},
			{Name: "password", Description: "Login password", Required: true},
			templateTypeParam,
		},
		Run: runLoginTest,
	},
	{
		Name:        "create_page_object_login",
		Description: "Generate Robot Framework page object model code for login page. Returns .robot file content as text - does not execute.",
		Params:      []ParamSpec{templateTypeParam},
		Run:         runPageObject,
	},
	{
		Name:        "create_data_driven_test",
		Description: "Generate Robot Framework data-driven test template code. Returns .robot file content as text - does not execute.",
		Params: []ParamSpec{
			{Name: "test_data_file", Description: "CSV data file name", Default: DefaultDataFile},
		},
		Run: runDataDriven,
	},
	{
		Name:        "create_api_integration_test",
		Description: "Generate Robot Framework API integration test code. Returns .robot file content as text - does not execute.",
		Params: []ParamSpec{
			{Name: "base_url", Description: "API base URL (http or https)", Required: true},
			{Name: "endpoint", Description: "API endpoint path", Required: true},
			{Name: "method", Description: "HTTP method", Default: DefaultMethod, Enum: []string{"GET", "POST", "PUT", "DELETE", "PATCH"}},
		},
		Run: runAPIIntegration,
	},
	{
		Name:        "create_advanced_selenium_keywords",
		Description: "Generate Robot Framework keywords for advanced Selenium operations. Returns .robot file content as text - does not execute.",
		Run:         staticRenderer(artifact.KindAdvancedKeywords),
	},
	{
		Name:        "create_extended_selenium_keywords",
		Description: "Generate extended Robot Framework keywords for screenshots, performance monitoring, and window management. Returns .robot file content as text - does not execute.",
		Run:         staticRenderer(artifact.KindExtendedKeywords),
	},
	{
		Name:        "create_performance_monitoring_test",
		Description: "Generate Robot Framework performance monitoring test code. Returns complete .robot file content as text - does not execute.",
		Run:         staticRenderer(artifact.KindPerformanceTest),
	},
	{
		Name:        "validate_robot_framework_syntax",
		Description: "Validate Robot Framework syntax and provide suggestions. Returns a structured validation report - does not execute code.",
		Params: []ParamSpec{
			{Name: "robot_code", Description: "Robot Framework source text to validate", Required: true},
		},
		Run: runValidate,
	},
}

// All returns the tool table in contract order.
func All() []Tool {
	out := make([]Tool, len(table))
	copy(out, table)

	return out
}

// Lookup finds a tool by name.
func Lookup(name string) (Tool, bool) {
	for _, t := range table {
		if t.Name == name {
			return t, true
		}
	}

	return Tool{}, false
}

func runLoginTest(args map[string]string, _ Options) (Result, error) {
	url, err := sanitize.URL("url", args["url"])
	if err != nil {
		return Result{}, err
	}
	username, err := sanitize.Credential("username", args["username"])
	if err != nil {
		return Result{}, err
	}
	password, err := sanitize.Credential("password", args["password"])
	if err != nil {
		return Result{}, err
	}

	d, usedDefault := dialect.Resolve(args["template_type"])
	a, err := generator.Render(artifact.KindLoginTest, generator.Params{
		generator.ParamURL:      url,
		generator.ParamUsername: username,
		generator.ParamPassword: password,
	}, d, surfaceDefault(usedDefault, args))
	if err != nil {
		return Result{}, err
	}

	return Result{Artifact: &a}, nil
}

// surfaceDefault decides whether the used-default flag reaches the caller.
// An omitted template_type means the documented default was chosen
// deliberately; only an identifier that missed the catalog is worth a
// warning.
func surfaceDefault(usedDefault bool, args map[string]string) bool {
	return usedDefault && args["template_type"] != ""
}

func runPageObject(args map[string]string, _ Options) (Result, error) {
	d, usedDefault := dialect.Resolve(args["template_type"])
	a, err := generator.Render(artifact.KindPageObject, nil, d, surfaceDefault(usedDefault, args))
	if err != nil {
		return Result{}, err
	}

	return Result{Artifact: &a}, nil
}

func runDataDriven(args map[string]string, _ Options) (Result, error) {
	name := args["test_data_file"]
	if name == "" {
		name = DefaultDataFile
	}
	file, err := sanitize.FileName("test_data_file", name)
	if err != nil {
		return Result{}, err
	}

	d, usedDefault := dialect.Resolve(args["template_type"])
	a, err := generator.Render(artifact.KindDataDriven, generator.Params{
		generator.ParamDataFile: file,
	}, d, surfaceDefault(usedDefault, args))
	if err != nil {
		return Result{}, err
	}

	return Result{Artifact: &a}, nil
}

func runAPIIntegration(args map[string]string, _ Options) (Result, error) {
	baseURL, err := sanitize.URL("base_url", args["base_url"])
	if err != nil {
		return Result{}, err
	}
	endpoint, err := sanitize.Endpoint("endpoint", args["endpoint"])
	if err != nil {
		return Result{}, err
	}
	methodArg := args["method"]
	if methodArg == "" {
		methodArg = DefaultMethod
	}
	method, err := sanitize.Method(methodArg)
	if err != nil {
		return Result{}, err
	}

	d, usedDefault := dialect.Resolve(args["template_type"])
	a, err := generator.Render(artifact.KindAPIIntegration, generator.Params{
		generator.ParamBaseURL:  baseURL,
		generator.ParamEndpoint: endpoint,
		generator.ParamMethod:   method,
	}, d, surfaceDefault(usedDefault, args))
	if err != nil {
		return Result{}, err
	}

	return Result{Artifact: &a}, nil
}

// staticRenderer builds a Run function for parameterless keyword library
// and suite skeletons.
func staticRenderer(kind artifact.Kind) func(map[string]string, Options) (Result, error) {
	return func(args map[string]string, _ Options) (Result, error) {
		d, usedDefault := dialect.Resolve(args["template_type"])
		a, err := generator.Render(kind, nil, d, surfaceDefault(usedDefault, args))
		if err != nil {
			return Result{}, err
		}

		return Result{Artifact: &a}, nil
	}
}

func runValidate(args map[string]string, opts Options) (Result, error) {
	code, err := sanitize.CodeText(args["robot_code"], opts.MaxPayload)
	if err != nil {
		return Result{}, err
	}

	report := validator.Validate(code.String(), validator.Options{
		MaxLineLength: opts.MaxLineLength,
	})

	return Result{Report: &report}, nil
}
