package lint

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema.
type JSONOutput struct {
	Version   string        `json:"version"`
	Timestamp string        `json:"timestamp"`
	Summary   JSONSummary   `json:"summary"`
	Stats     JSONStats     `json:"stats"`
	Issues    []JSONIssue   `json:"issues"`
	Hotspots  []JSONHotspot `json:"hotspots"`
}

// JSONSummary contains high-level issue counts.
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	FilesScanned int `json:"files_scanned"`
}

// JSONStats contains class list statistics.
type JSONStats struct {
	ListsChecked    int     `json:"lists_checked"`
	CleanLists      int     `json:"clean_lists"`
	Conflicts       int     `json:"conflicts"`
	Duplicates      int     `json:"duplicates"`
	CleanPercentage float64 `json:"clean_percentage"`
}

// JSONIssue represents a single linting issue.
type JSONIssue struct {
	File        string `json:"file"`
	Line        int    `json:"line"`
	Column      int    `json:"column"`
	Severity    string `json:"severity"`
	Message     string `json:"message"`
	Linter      string `json:"linter"`
	Source      string `json:"source,omitempty"`      // Optional source line
	Replacement string `json:"replacement,omitempty"` // Resolved class list
}

// JSONHotspot is a frequently conflicting class list.
type JSONHotspot struct {
	ClassList   string `json:"class_list"`
	Occurrences int    `json:"occurrences"`
	Suggestion  string `json:"suggestion"`
}

// WriteJSON writes the lint result as JSON.
func WriteJSON(w io.Writer, result *Result) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts Result to JSONOutput.
func buildJSONOutput(result *Result) JSONOutput {
	var errors, warnings int
	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}

	jsonIssues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		replacement := ""
		if issue.Replacement != nil {
			replacement = issue.Replacement.NewText
		}
		jsonIssues[i] = JSONIssue{
			File:        issue.Pos.Filename,
			Line:        issue.Pos.Line,
			Column:      issue.Pos.Column,
			Severity:    issue.Severity,
			Message:     issue.Text,
			Linter:      issue.FromLinter,
			Source:      source,
			Replacement: replacement,
		}
	}

	hotspots := make([]JSONHotspot, len(result.Hotspots))
	for i, spot := range result.Hotspots {
		hotspots[i] = JSONHotspot{
			ClassList:   spot.ClassList,
			Occurrences: spot.Occurrences,
			Suggestion:  spot.Suggestion,
		}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			Errors:       errors,
			Warnings:     warnings,
			FilesScanned: result.FilesScanned,
		},
		Stats: JSONStats{
			ListsChecked:    result.ListsChecked,
			CleanLists:      result.CleanLists,
			Conflicts:       result.ConflictsFound,
			Duplicates:      result.DuplicatesFound,
			CleanPercentage: result.CleanPercentage,
		},
		Issues:   jsonIssues,
		Hotspots: hotspots,
	}
}
