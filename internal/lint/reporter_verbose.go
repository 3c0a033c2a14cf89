package lint

import (
	"fmt"
	"io"
)

// VerboseReporter handles detailed statistics and hotspot output.
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter.
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs detailed linting statistics.
func (r *VerboseReporter) PrintStatistics(result Result) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Class List Statistics", r.useColors))
	fmt.Fprintln(r.w, "------------------------")

	fmt.Fprintf(r.w, "Files Scanned:       %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "Class Lists Checked: %d\n", result.ListsChecked)
	fmt.Fprintf(r.w, "Clean Lists:         %d (%.1f%%)\n", result.CleanLists, result.CleanPercentage)
	fmt.Fprintf(r.w, "Conflicts Found:     %d\n", result.ConflictsFound)
	fmt.Fprintf(r.w, "Duplicates Found:    %d\n", result.DuplicatesFound)
}

// PrintCleanProgress shows a visual bar of conflict-free class lists.
func (r *VerboseReporter) PrintCleanProgress(result Result) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Clean Class Lists", r.useColors))
	fmt.Fprintln(r.w, "-------------------")
	printProgressBar(r.w, result.CleanPercentage)
}

// printProgressBar prints a visual progress bar.
func printProgressBar(w io.Writer, percentage float64) {
	barWidth := 20
	filled := int(percentage / 100 * float64(barWidth))

	fmt.Fprint(w, "[")
	for i := 0; i < barWidth; i++ {
		if i < filled {
			fmt.Fprint(w, "█")
		} else {
			fmt.Fprint(w, "░")
		}
	}
	fmt.Fprintf(w, "] %.1f%%\n", percentage)
}

// PrintHotspots shows the most frequently conflicting class lists.
func (r *VerboseReporter) PrintHotspots(result Result) {
	if len(result.Hotspots) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleGreen, "Conflict Hotspots", r.useColors))
	fmt.Fprintln(r.w, "-------------")
	fmt.Fprintln(r.w, "\nMost frequent conflicting class lists:")

	for i, spot := range result.Hotspots {
		if i >= 10 {
			break
		}
		fmt.Fprintf(r.w, "%d. \"%s\" - %d occurrence%s → Replace with \"%s\"\n",
			i+1, spot.ClassList, spot.Occurrences, pluralize(spot.Occurrences), spot.Suggestion)
	}
}

// PrintWarnings shows linter warnings.
func (r *VerboseReporter) PrintWarnings(result Result) {
	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "-----------")

	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}

// pluralize returns "s" if count != 1.
func pluralize(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
