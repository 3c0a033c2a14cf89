package lint

import (
	"io"
	"os"
)

// OutputFormat represents the linter output format.
type OutputFormat string

const (
	// OutputIssues shows only errors/warnings in golangci-lint format (CI-friendly).
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows statistics and conflict hotspots only.
	OutputSummary OutputFormat = "summary"
	// OutputFull shows issues + statistics + hotspots.
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data in JSON format (tooling integration).
	OutputJSON OutputFormat = "json"
)

// DetermineOutputFormat selects the output format from the flag value.
// Following golangci-lint's UX, the default is issues only: clean, fast,
// consistent everywhere.
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	// Explicit quiet flag wins (exit code only, output suppressed by the caller)
	if quiet {
		return OutputIssues
	}

	switch formatFlag {
	case "issues":
		return OutputIssues
	case "summary":
		return OutputSummary
	case "full":
		return OutputFull
	case "json":
		return OutputJSON
	}

	return OutputIssues
}

// WriteOutput writes the lint result in the specified format.
func WriteOutput(w io.Writer, result *Result, format OutputFormat, config Config) {
	switch format {
	case OutputIssues:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)

	case OutputSummary:
		useColors := shouldUseColors(config)
		verbose := NewVerboseReporter(w, useColors)
		verbose.PrintStatistics(*result)
		verbose.PrintCleanProgress(*result)
		verbose.PrintHotspots(*result)
		verbose.PrintWarnings(*result)

	case OutputFull:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)

		verbose := NewVerboseReporter(w, reporter.UseColors())
		verbose.PrintStatistics(*result)
		verbose.PrintCleanProgress(*result)
		verbose.PrintHotspots(*result)
		verbose.PrintWarnings(*result)

	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			os.Stderr.WriteString("Error writing JSON: " + err.Error() + "\n")
		}
	}
}
