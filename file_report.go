package lintreport

import (
	"strings"
)

// FileReport accumulates the findings of one file grouped by line.
// Lines keep the order in which their first finding was accepted.
type FileReport struct {
	Path         string
	UniqueIssues int

	lines   []int
	byLine  map[int][]Finding
	content []string
}

// NewFileReport creates an empty report for path. The source text is split
// into lines once, after dropping carriage returns.
func NewFileReport(path, source string) *FileReport {
	return &FileReport{
		Path:    path,
		byLine:  make(map[int][]Finding),
		content: SplitLines(source),
	}
}

// SplitLines normalizes source text into its lines
func SplitLines(source string) []string {
	return strings.Split(strings.ReplaceAll(source, "\r", ""), "\n")
}

// Add records f unless an identical finding was already accepted for the
// same line. It reports whether f was accepted.
func (r *FileReport) Add(f Finding) bool {
	bucket, found := r.byLine[f.Line]
	for _, existing := range bucket {
		if existing.Equal(f) {
			return false
		}
	}
	if !found {
		r.lines = append(r.lines, f.Line)
	}
	r.byLine[f.Line] = append(bucket, f)
	r.UniqueIssues++
	return true
}

// Lines returns the lines that have findings in first-seen order
func (r *FileReport) Lines() []int {
	return append([]int(nil), r.lines...)
}

// FindingsAt returns the accepted findings of a line in acceptance order
func (r *FileReport) FindingsAt(line int) []Finding {
	return append([]Finding(nil), r.byLine[line]...)
}

// SourceLine returns the text of the 1-based line n, or "" when n is out of range
func (r *FileReport) SourceLine(n int) string {
	if n < 1 || n > len(r.content) {
		return ""
	}
	return r.content[n-1]
}

// Summary takes a snapshot of the file that is not affected by later additions
func (r *FileReport) Summary() FileSummary {
	s := FileSummary{
		Path:     r.Path,
		Issues:   r.UniqueIssues,
		Findings: []Finding{},
	}
	for _, line := range r.lines {
		s.Findings = append(s.Findings, r.byLine[line]...)
	}
	return s
}
