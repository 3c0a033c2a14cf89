// Package lint scans Go and templ sources for utility class lists and
// reports conflicting or duplicated classes within a single attribute.
package lint

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ClassReference is one class list found in source code.
type ClassReference struct {
	ClassList   string       // Full attribute value: "btn px-2 px-4"
	Location    FileLocation // Where it was found
	LineContent string       // The full line for context
}

// FileLocation tracks where a class reference was found.
type FileLocation struct {
	File   string
	Line   int
	Column int    // 1-based column (start of the class list)
	Text   string // Full line content for source display
}

// ScanStats tracks file scanning statistics.
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files actually scanned (after filtering)
	FilesSkipped    int // Files skipped due to filtering
}

// scanPattern is a regex for finding class lists in source lines.
type scanPattern struct {
	name  string
	regex *regexp.Regexp
}

var (
	// Ordered from most specific to least specific.
	patterns = []scanPattern{
		{
			name:  "class attribute with quotes",
			regex: regexp.MustCompile(`class="([^"]+)"`),
		},
		{
			name:  "class with string literal in braces",
			regex: regexp.MustCompile(`class=\{\s*"([^"]+)"`),
		},
		{
			name:  "templ.Classes with string",
			regex: regexp.MustCompile(`templ\.Classes\(\s*"([^"]+)"`),
		},
		{
			name:  "templ.KV with string",
			regex: regexp.MustCompile(`templ\.KV\(\s*"([^"]+)"`),
		},
	}

	// templ.Classes and templ.KV with comma-separated values
	templClassesMulti = regexp.MustCompile(`templ\.Classes\(([^)]+)\)`)
	templKVMulti      = regexp.MustCompile(`templ\.KV\(([^)]+)\)`)

	commentPattern = regexp.MustCompile(`^\s*//`)

	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// isTemplGenerated checks if a file is a templ-generated Go file.
// Handles both _templ.go and .templ.go suffix variations.
func isTemplGenerated(path string) bool {
	return strings.HasSuffix(path, "_templ.go") ||
		strings.HasSuffix(path, ".templ.go")
}

// loadGitIgnore loads the .gitignore file once (thread-safe).
// Gracefully degrades if .gitignore doesn't exist.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile determines if a file should be excluded from scanning.
//
// Two-layer filtering:
//  1. Pattern check (fast): skip *_templ.go files
//  2. Gitignore check: skip gitignored files (only for relative paths)
func shouldSkipFile(path string) bool {
	if isTemplGenerated(path) {
		return true
	}

	// Only apply gitignore to relative paths (paths within the project).
	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}

	return false
}

// ScanFiles scans files matching the given glob patterns for class lists.
func ScanFiles(scanPatterns []string) ([]ClassReference, ScanStats, error) {
	files, stats, err := expandGlobPatterns(scanPatterns)
	if err != nil {
		return nil, stats, err
	}

	var allRefs []ClassReference
	for _, file := range files {
		refs, err := scanFile(file)
		if err != nil {
			// Unreadable file, keep scanning the rest
			continue
		}
		allRefs = append(allRefs, refs...)
	}

	return allRefs, stats, nil
}

// expandGlobPatterns expands glob patterns to actual file paths and
// tracks filtering statistics.
func expandGlobPatterns(patterns []string) ([]string, ScanStats, error) {
	var allFiles []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
			} else {
				allFiles = append(allFiles, match)
				seen[match] = true
				stats.FilesScanned++
			}
		}
	}

	return allFiles, stats, nil
}

// scanFile scans a single file for class lists.
func scanFile(filePath string) ([]ClassReference, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var refs []ClassReference
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		refs = append(refs, extractClassListsFromLine(line, lineNum, filePath)...)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return refs, nil
}

// extractClassListsFromLine extracts all class lists from a source line.
func extractClassListsFromLine(line string, lineNum int, file string) []ClassReference {
	// Skip comments
	if commentPattern.MatchString(line) {
		return nil
	}

	var refs []ClassReference

	hasTemplClasses := strings.Contains(line, "templ.Classes(")
	hasTemplKV := strings.Contains(line, "templ.KV(")

	if hasTemplClasses {
		refs = append(refs, extractFromTemplCall(templClassesMulti, line, lineNum, file, false)...)
	}
	if hasTemplKV {
		refs = append(refs, extractFromTemplCall(templKVMulti, line, lineNum, file, true)...)
	}

	// templ calls already handled; skip standard patterns to avoid
	// duplicates.
	if hasTemplClasses || hasTemplKV {
		return refs
	}

	for _, pattern := range patterns {
		matches := pattern.regex.FindAllStringSubmatchIndex(line, -1)
		for _, match := range matches {
			if len(match) < 4 {
				continue
			}

			captured := line[match[2]:match[3]]

			refs = append(refs, ClassReference{
				ClassList: captured,
				Location: FileLocation{
					File:   file,
					Line:   lineNum,
					Column: match[2] + 1, // 1-indexed
					Text:   line,
				},
				LineContent: strings.TrimSpace(line),
			})
		}
	}

	return refs
}

// extractFromTemplCall extracts string-literal class lists from
// templ.Classes(...) or templ.KV(...) calls. For KV only the first
// argument is a class list.
func extractFromTemplCall(re *regexp.Regexp, line string, lineNum int, file string, firstArgOnly bool) []ClassReference {
	var refs []ClassReference

	matches := re.FindAllStringSubmatchIndex(line, -1)
	for _, match := range matches {
		if len(match) < 4 {
			continue
		}

		args := splitTemplArgs(line[match[2]:match[3]])
		if firstArgOnly && len(args) > 1 {
			args = args[:1]
		}

		for _, arg := range args {
			arg = strings.TrimSpace(arg)
			if !strings.HasPrefix(arg, `"`) || !strings.HasSuffix(arg, `"`) {
				// Constants and expressions are not literal class lists
				continue
			}
			classList := strings.Trim(arg, `"`)

			refs = append(refs, ClassReference{
				ClassList: classList,
				Location: FileLocation{
					File:   file,
					Line:   lineNum,
					Column: strings.Index(line, classList) + 1,
					Text:   line,
				},
				LineContent: strings.TrimSpace(line),
			})
		}
	}

	return refs
}

// splitTemplArgs splits comma-separated arguments, not descending into
// nested calls.
func splitTemplArgs(s string) []string {
	var parts []string
	var current strings.Builder
	parenDepth := 0

	for _, r := range s {
		switch r {
		case '(':
			parenDepth++
			current.WriteRune(r)
		case ')':
			parenDepth--
			current.WriteRune(r)
		case ',':
			if parenDepth == 0 {
				parts = append(parts, current.String())
				current.Reset()
			} else {
				current.WriteRune(r)
			}
		default:
			current.WriteRune(r)
		}
	}

	if current.Len() > 0 {
		parts = append(parts, current.String())
	}

	return parts
}

// findClassColumn locates the exact column where className starts within
// line. Used to point the caret at the offending token rather than the
// start of the attribute.
func findClassColumn(line string, className string) int {
	// Strategy 1: look inside a class= attribute first
	classAttrIdx := strings.Index(line, "class=")
	if classAttrIdx != -1 {
		quoteIdx := strings.IndexAny(line[classAttrIdx:], `"'`)
		if quoteIdx != -1 {
			searchStart := classAttrIdx + quoteIdx + 1

			classesStr := line[searchStart:]
			endQuote := strings.IndexAny(classesStr, `"'`)
			if endQuote != -1 {
				classesStr = classesStr[:endQuote]
			}

			idx := indexToken(classesStr, className)
			if idx != -1 {
				return searchStart + idx + 1 // 1-based column
			}
		}
	}

	// Strategy 2: direct token search
	idx := indexToken(line, className)
	if idx != -1 {
		return idx + 1
	}

	// Fallback
	return 0
}

// indexToken finds a whitespace-delimited token so "px-2" does not match
// inside "px-20".
func indexToken(s, token string) int {
	offset := 0
	for {
		idx := strings.Index(s[offset:], token)
		if idx == -1 {
			return -1
		}
		idx += offset

		before := idx == 0 || isTokenBoundary(s[idx-1])
		end := idx + len(token)
		after := end == len(s) || isTokenBoundary(s[end])
		if before && after {
			return idx
		}
		offset = idx + 1
	}
}

func isTokenBoundary(b byte) bool {
	switch b {
	case ' ', '\t', '"', '\'', '{', '}', '(', ')', ',':
		return true
	}
	return false
}

// GetRelativePath returns a path relative to the current working
// directory, falling back to the absolute path.
func GetRelativePath(absPath string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return absPath
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil {
		return absPath
	}

	return rel
}
