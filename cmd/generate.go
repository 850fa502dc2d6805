package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"robogen/internal/dialect"
	"robogen/internal/sanitize"
	"robogen/internal/tools"
)

var (
	generateURL          string
	generateUsername     string
	generatePassword     string
	generateTemplateType string
	generateDataFile     string
	generateBaseURL      string
	generateEndpoint     string
	generateMethod       string
	generateOutput       string
)

// generateKinds maps CLI names to tool-table entries.
var generateKinds = map[string]string{
	"login":             "create_login_test_case",
	"page-object":       "create_page_object_login",
	"data-driven":       "create_data_driven_test",
	"api":               "create_api_integration_test",
	"advanced-keywords": "create_advanced_selenium_keywords",
	"extended-keywords": "create_extended_selenium_keywords",
	"performance":       "create_performance_monitoring_test",
}

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:   "generate <kind>",
	Short: "Generate Robot Framework test artifacts",
	Long: `Generate a Robot Framework artifact and print it to stdout (or write it
to a file with --output).

Kinds:
  login               Login test case (requires --url, --username, --password)
  page-object         Login page object keyword module
  data-driven         Data-driven login test suite (--data-file)
  api                 API + UI integration test (requires --base-url, --endpoint)
  advanced-keywords   Advanced Selenium keyword library
  extended-keywords   Screenshot/performance/window keyword library
  performance         Performance monitoring test suite

Examples:
  robogen generate login --url https://app.example.com --username bob --password s3cret
  robogen generate api --base-url https://api.example.com --endpoint /users --method post
  robogen generate page-object --template-type bootstrap --output login_page.robot`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"login", "page-object", "data-driven", "api", "advanced-keywords", "extended-keywords", "performance"},
	RunE:      runGenerateCommand,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&generateURL, "url", "", "application URL for the login test")
	generateCmd.Flags().StringVarP(&generateUsername, "username", "u", "", "login username")
	generateCmd.Flags().StringVarP(&generatePassword, "password", "p", "", "login password")
	generateCmd.Flags().StringVarP(&generateTemplateType, "template-type", "t", "",
		fmt.Sprintf("selector dialect %v (default %q)", dialect.Names(), dialect.DefaultID))
	generateCmd.Flags().StringVar(&generateDataFile, "data-file", "", "CSV data file name for data-driven tests")
	generateCmd.Flags().StringVar(&generateBaseURL, "base-url", "", "API base URL")
	generateCmd.Flags().StringVar(&generateEndpoint, "endpoint", "", "API endpoint path")
	generateCmd.Flags().StringVar(&generateMethod, "method", "", "HTTP method (GET, POST, PUT, DELETE, PATCH)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "write the artifact to a file instead of stdout")
}

func runGenerateCommand(cmd *cobra.Command, args []string) error {
	toolName, ok := generateKinds[args[0]]
	if !ok {
		return fmt.Errorf("unknown artifact kind %q", args[0])
	}
	tool, _ := tools.Lookup(toolName)

	callArgs := map[string]string{}
	setIfPresent := func(key, value string) {
		if value != "" {
			callArgs[key] = value
		}
	}
	// The flag wins over the configured default dialect. Unlike the tool
	// layer, which falls back silently, the CLI rejects unknown dialects
	// outright since the user can just rerun with a valid one.
	templateType := generateTemplateType
	if templateType == "" {
		templateType = viper.GetString("generator.default_dialect")
	}
	if templateType != "" {
		canonical, err := sanitize.Identifier("template-type", templateType, dialect.Names())
		if err != nil {
			return err
		}
		templateType = canonical.String()
	}

	setIfPresent("url", generateURL)
	setIfPresent("username", generateUsername)
	setIfPresent("password", generatePassword)
	setIfPresent("template_type", templateType)
	setIfPresent("test_data_file", generateDataFile)
	setIfPresent("base_url", generateBaseURL)
	setIfPresent("endpoint", generateEndpoint)
	setIfPresent("method", generateMethod)

	result, err := tool.Run(callArgs, toolOptions())
	if err != nil {
		return err
	}

	a := result.Artifact
	if generateOutput != "" {
		if err := os.WriteFile(generateOutput, []byte(a.Body), 0644); err != nil {
			return fmt.Errorf("writing artifact: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s artifact to %s\n", a.Kind, generateOutput)

		return nil
	}

	fmt.Print(a.Body)

	return nil
}
