package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/classwind/internal/lint"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Lint class lists in Go/templ files",
	Long: `Scan Go and templ files for class attributes and report utility conflicts
and duplicate classes. Conflicts are errors, duplicates are warnings.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return runLint()
	},
}

func init() {
	f := lintCmd.Flags()
	f.StringSlice("paths", []string{
		"**/*.templ",
		"**/*.go",
	}, "File patterns to scan for class lists")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.String("output-format", "", "Output format: issues|summary|full|json")
	f.Int("max-issues-per-linter", 0, "Max issues to show per linter (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (classlint) suffix on issues")
}

// runLint is shared between `classwind lint` and the root command.
func runLint() error {
	composer, err := buildComposer()
	if err != nil {
		return err
	}

	lintConfig := buildLintConfig()

	result, err := lint.Run(composer, lintConfig)
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "lint.output-format", "")
	format := lint.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		lint.WriteOutput(os.Stdout, result, format, lintConfig)
	}

	// Exit code logic - "Soft Gate" approach
	strict := getBoolWithFallback("strict", "lint.strict", false)
	if strict {
		// Strict mode: any issue (error or warning) fails the build
		if len(result.Issues) > 0 {
			os.Exit(1)
		}
	} else if result.ErrorCount > 0 {
		// Default "Soft Gate" mode: only errors fail the build
		os.Exit(1)
	}

	return nil
}
