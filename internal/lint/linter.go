package lint

import (
	"fmt"
	"sort"

	"github.com/yacobolo/classwind"
)

// Config holds linting configuration.
type Config struct {
	ScanPaths []string // Patterns to scan (e.g., "internal/web/**/*.templ")
	Verbose   bool
	Strict    bool // Exit with code 1 if any issue found

	// golangci-style output configuration
	MaxIssuesPerLinter int  // 0 = unlimited (default)
	MaxSameIssues      int  // 0 = unlimited (default)
	ShowStats          bool // Show statistics summary
	PrintIssuedLines   bool // Show source lines with issues (default: true)
	PrintLinterName    bool // Show (classlint) suffix (default: true)
	UseColors          bool // Enable color output (default: auto-detect)
}

// Result contains linting analysis results.
type Result struct {
	// Statistics
	FilesScanned    int
	ListsChecked    int     // Class lists examined
	CleanLists      int     // Lists with no drops
	ConflictsFound  int     // Tokens displaced by a same-family token
	DuplicatesFound int     // Exact duplicate tokens
	CleanPercentage float64 // Share of lists with no issues

	// Issues in golangci-lint format
	Issues           []Issue
	IssuesByCategory map[string][]Issue // Grouped by severity for stats
	ErrorCount       int
	TruncatedCount   int // Issues removed due to limits

	// Detailed findings (verbose mode)
	Findings []Finding

	// Most frequently conflicting class lists
	Hotspots []Hotspot

	Warnings []string
}

// Finding is one class list that lost tokens during resolution.
type Finding struct {
	ClassList   string // "btn px-2 px-4"
	Merged      string // "btn px-4"
	Drops       []classwind.Drop
	Location    FileLocation
	LineContent string
}

// Hotspot is a conflicting class list that appears repeatedly.
type Hotspot struct {
	ClassList   string
	Occurrences int
	Suggestion  string // The resolved list
}

// Run scans the configured paths and reports class lists whose tokens
// are displaced when resolved with the given composer.
func Run(composer *classwind.Composer, config Config) (*Result, error) {
	references, stats, err := ScanFiles(config.ScanPaths)
	if err != nil {
		return nil, fmt.Errorf("failed to scan files: %w", err)
	}

	result := analyze(composer, references)
	result.FilesScanned = stats.FilesScanned

	if config.MaxIssuesPerLinter > 0 || config.MaxSameIssues > 0 {
		result.Issues, result.TruncatedCount = limitIssues(result.Issues, config)
	}

	return result, nil
}

// analyze resolves every class list and converts drops into issues.
func analyze(composer *classwind.Composer, references []ClassReference) *Result {
	result := &Result{}

	var issues []Issue
	occurrences := make(map[string]int)
	suggestions := make(map[string]string)

	for _, ref := range references {
		result.ListsChecked++

		merged, drops := composer.Resolve(ref.ClassList)
		if len(drops) == 0 {
			result.CleanLists++
			continue
		}

		result.Findings = append(result.Findings, Finding{
			ClassList:   ref.ClassList,
			Merged:      merged,
			Drops:       drops,
			Location:    ref.Location,
			LineContent: ref.LineContent,
		})

		hasConflict := false
		for _, drop := range drops {
			column := findClassColumn(ref.Location.Text, drop.Token)
			if column == 0 {
				column = ref.Location.Column // fallback to list start
			}

			issue := Issue{
				FromLinter:  linterName,
				SourceLines: []string{ref.Location.Text},
				Pos: IssuePos{
					Filename: GetRelativePath(ref.Location.File),
					Line:     ref.Location.Line,
					Column:   column,
				},
				Replacement: &Replacement{NewText: merged},
			}

			switch drop.Reason {
			case classwind.DropConflict:
				hasConflict = true
				result.ConflictsFound++
				issue.Text = fmt.Sprintf(IssueConflictingClass, drop.Token, drop.Winner)
				issue.Severity = SeverityError
				result.ErrorCount++
			case classwind.DropDuplicate:
				result.DuplicatesFound++
				issue.Text = fmt.Sprintf(IssueDuplicateClass, drop.Token)
				issue.Severity = SeverityWarning
			}

			issues = append(issues, issue)
		}

		if hasConflict {
			occurrences[ref.ClassList]++
			suggestions[ref.ClassList] = merged
		}
	}

	if result.ListsChecked > 0 {
		result.CleanPercentage = float64(result.CleanLists) / float64(result.ListsChecked) * 100
	}

	result.Issues = issues
	result.IssuesByCategory = make(map[string][]Issue)
	for _, issue := range issues {
		result.IssuesByCategory[issue.Severity] = append(result.IssuesByCategory[issue.Severity], issue)
	}

	result.Hotspots = buildHotspots(occurrences, suggestions)

	return result
}

// buildHotspots sorts conflicting class lists by frequency, keeping the
// top 10.
func buildHotspots(occurrences map[string]int, suggestions map[string]string) []Hotspot {
	var hotspots []Hotspot

	for classList, count := range occurrences {
		hotspots = append(hotspots, Hotspot{
			ClassList:   classList,
			Occurrences: count,
			Suggestion:  suggestions[classList],
		})
	}

	sort.Slice(hotspots, func(i, j int) bool {
		if hotspots[i].Occurrences != hotspots[j].Occurrences {
			return hotspots[i].Occurrences > hotspots[j].Occurrences
		}
		return hotspots[i].ClassList < hotspots[j].ClassList
	})

	if len(hotspots) > 10 {
		hotspots = hotspots[:10]
	}

	return hotspots
}

// limitIssues applies max-issues-per-linter and max-same-issues
// constraints.
func limitIssues(issues []Issue, config Config) ([]Issue, int) {
	originalCount := len(issues)

	if config.MaxIssuesPerLinter > 0 && len(issues) > config.MaxIssuesPerLinter {
		issues = issues[:config.MaxIssuesPerLinter]
	}

	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	return issues, originalCount - len(issues)
}

// deduplicateSameIssues limits how many times the same message appears.
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		if messageCounts[issue.Text] < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}
