package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"robogen/internal/tools"
	"robogen/internal/validator"
)

var (
	validateFormat string
	validateWatch  bool
)

// validateCmd represents the validate command.
var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Statically validate Robot Framework source text",
	Long: `Validate Robot Framework source text and report findings grouped by
severity (error, warning, suggestion). Reads from a file, or from stdin
when no file (or "-") is given.

The check is structural and line-oriented: section layout, duplicate test
or keyword names, indentation consistency, line length, and library
imports. It never executes the input.

Examples:
  robogen validate suite.robot
  robogen validate suite.robot --format json
  cat suite.robot | robogen validate
  robogen validate suite.robot --watch`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidateCommand,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateFormat, "format", "f", "text", "output format (text, json, yaml)")
	validateCmd.Flags().BoolVarP(&validateWatch, "watch", "w", false, "re-validate the file whenever it changes")
}

func runValidateCommand(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 && args[0] != "-" {
		path = args[0]
	}

	if validateWatch && path == "" {
		return fmt.Errorf("--watch requires a file argument")
	}

	report, err := validateSource(path)
	if err != nil {
		return err
	}
	if err := printReport(report, validateFormat); err != nil {
		return err
	}

	if validateWatch {
		return watchAndRevalidate(path)
	}

	if !report.Valid {
		os.Exit(1)
	}

	return nil
}

// validateSource reads the input (file or stdin) and runs it through the
// validation tool, so size caps and options apply the same way as for any
// other transport.
func validateSource(path string) (*validator.Report, error) {
	var (
		text []byte
		err  error
	)
	if path == "" {
		text, err = io.ReadAll(os.Stdin)
	} else {
		text, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	tool, _ := tools.Lookup("validate_robot_framework_syntax")
	result, err := tool.Run(map[string]string{"robot_code": string(text)}, toolOptions())
	if err != nil {
		return nil, err
	}

	return result.Report, nil
}

func printReport(report *validator.Report, format string) error {
	switch format {
	case "json":
		encoded, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(encoded))
	case "yaml":
		encoded, err := yaml.Marshal(report)
		if err != nil {
			return err
		}
		fmt.Print(string(encoded))
	case "text":
		printTextReport(report)
	default:
		return fmt.Errorf("unknown format %q (want text, json, or yaml)", format)
	}

	return nil
}

// printTextReport renders the report grouped by severity with a final
// verdict line.
func printTextReport(report *validator.Report) {
	severityColors := map[validator.Severity]*color.Color{
		validator.SeverityError:      color.New(color.FgRed, color.Bold),
		validator.SeverityWarning:    color.New(color.FgYellow),
		validator.SeveritySuggestion: color.New(color.FgCyan),
	}
	headings := []struct {
		severity validator.Severity
		title    string
	}{
		{validator.SeverityError, "Errors (must fix)"},
		{validator.SeverityWarning, "Warnings (recommended fixes)"},
		{validator.SeveritySuggestion, "Suggestions"},
	}

	for _, h := range headings {
		if report.Count(h.severity) == 0 {
			continue
		}
		fmt.Println(h.title + ":")
		for _, d := range report.Diagnostics {
			if d.Severity != h.severity {
				continue
			}
			location := "file"
			if d.Line > 0 {
				location = fmt.Sprintf("line %d", d.Line)
			}
			severityColors[h.severity].Printf("  %-10s", d.Severity)
			fmt.Printf(" %-9s %s [%s]\n", location, d.Message, d.Rule)
		}
		fmt.Println()
	}

	switch {
	case report.Valid && len(report.Diagnostics) == 0:
		color.New(color.FgGreen).Println("Validation passed: no findings")
	case report.Valid:
		color.New(color.FgYellow).Println("Validation passed with findings: no errors, but consider the items above")
	default:
		color.New(color.FgRed).Printf("Validation failed: %d error(s)\n", report.Count(validator.SeverityError))
	}
}

// watchAndRevalidate re-runs validation whenever the file changes. The
// parent directory is watched because editors typically replace files on
// save rather than writing in place.
func watchAndRevalidate(path string) error {
	logger := newLogger().WithComponent("validate")

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	logger.Info(context.Background(), "watching for changes", "file", path)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			changed, err := filepath.Abs(event.Name)
			if err != nil || changed != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			report, err := validateSource(path)
			if err != nil {
				logger.Error(context.Background(), err, "validation failed", "file", path)

				continue
			}
			fmt.Printf("--- %s ---\n", path)
			printTextReport(report)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error(context.Background(), err, "watch error")
		}
	}
}
