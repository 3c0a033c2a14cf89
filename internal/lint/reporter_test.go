package lint

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCaretIndicator(t *testing.T) {
	reporter := &Reporter{}

	tests := []struct {
		name       string
		sourceLine string
		column     int
		want       string
	}{
		{
			name:       "spaces only",
			sourceLine: "  <div class=\"btn\">",
			column:     15,
			want:       "              ^", // 14 spaces + caret
		},
		{
			name:       "tabs and spaces",
			sourceLine: "\t\t<button class=\"icon\">",
			column:     17,
			want:       "\t\t              ^", // 2 tabs + 14 spaces + caret
		},
		{
			name:       "start of line",
			sourceLine: "class=\"btn\"",
			column:     1,
			want:       "^",
		},
		{
			name:       "column 0 fallback",
			sourceLine: "some line",
			column:     0,
			want:       "^",
		},
		{
			name:       "column beyond line length",
			sourceLine: "short",
			column:     100,
			want:       "     ^", // Pads to line length only
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reporter.buildCaretIndicator(tt.sourceLine, tt.column)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestPrintIssues(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, Config{PrintIssuedLines: true, PrintLinterName: true})
	reporter.useColors = false

	issues := []Issue{
		{
			FromLinter:  linterName,
			Text:        `duplicate class "card" in class list`,
			Severity:    SeverityWarning,
			SourceLines: []string{`<div class="card card">`},
			Pos:         IssuePos{Filename: "b.templ", Line: 2, Column: 18},
		},
		{
			FromLinter:  linterName,
			Text:        `utility class "px-2" is overridden by later "px-4" in the same class list`,
			Severity:    SeverityError,
			SourceLines: []string{`<div class="px-2 px-4">`},
			Pos:         IssuePos{Filename: "a.templ", Line: 5, Column: 13},
		},
	}

	reporter.PrintIssues(issues)
	out := buf.String()

	// Sorted by filename: a.templ first despite input order
	aIdx := strings.Index(out, "a.templ:5:13:")
	bIdx := strings.Index(out, "b.templ:2:18:")
	require.NotEqual(t, -1, aIdx)
	require.NotEqual(t, -1, bIdx)
	assert.Less(t, aIdx, bIdx)

	assert.Contains(t, out, "(classlint)")
	assert.Contains(t, out, `<div class="px-2 px-4">`)
	assert.Contains(t, out, "^")
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, Config{})
	reporter.useColors = false

	result := Result{
		Issues: []Issue{
			{FromLinter: linterName, Severity: SeverityError},
			{FromLinter: linterName, Severity: SeverityWarning},
			{FromLinter: linterName, Severity: SeverityWarning},
		},
	}

	reporter.PrintSummary(result)
	out := buf.String()

	assert.Contains(t, out, "3 issues (1 error, 2 warnings):")
	assert.Contains(t, out, "* classlint: 3")
}

func TestPluralizeCount(t *testing.T) {
	assert.Equal(t, "1 issue", pluralizeCount(1, "issue", "issues"))
	assert.Equal(t, "2 issues", pluralizeCount(2, "issue", "issues"))
	assert.Equal(t, "0 issues", pluralizeCount(0, "issue", "issues"))
}
