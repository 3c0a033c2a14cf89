package lint

// Issue represents a single linting violation in golangci-lint format.
type Issue struct {
	FromLinter  string       `json:"FromLinter"`  // "classlint"
	Text        string       `json:"Text"`        // "utility class \"px-2\" is overridden ..."
	Severity    string       `json:"Severity"`    // "", "warning", "error"
	SourceLines []string     `json:"SourceLines"` // Lines of code with issue
	Pos         IssuePos     `json:"Pos"`         // File location
	Replacement *Replacement `json:"Replacement"` // Optional fix suggestion
}

// IssuePos specifies the exact location of an issue.
type IssuePos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`
	Column   int    `json:"Column"` // 1-based, exact start of the offending token
}

// Replacement provides an automated fix suggestion: the class list with
// conflicts resolved.
type Replacement struct {
	NewText string `json:"NewText"`
}

// Issue severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue message formats.
const (
	IssueConflictingClass = "utility class %q is overridden by later %q in the same class list"
	IssueDuplicateClass   = "duplicate class %q in class list"
)

// linterName tags every issue this package produces.
const linterName = "classlint"
