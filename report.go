package lintreport

import (
	"github.com/google/uuid"
)

// FileSummary is the frozen state of one file at the time a report was built
type FileSummary struct {
	Path     string    `json:"path" yaml:"path"`
	Issues   int       `json:"issues" yaml:"issues"`
	Findings []Finding `json:"findings" yaml:"findings"`
}

// Report is the result of a build: the rendered text and the number of
// accepted findings across all files.
type Report struct {
	ID          string        `json:"id" yaml:"id"`
	TotalIssues int           `json:"total_issues" yaml:"total_issues"`
	Files       []FileSummary `json:"files" yaml:"files"`

	text string
}

// NewReport instantiate a Report
func NewReport(text string, total int, files []FileSummary) *Report {
	return &Report{
		ID:          uuid.NewString(),
		TotalIssues: total,
		Files:       files,
		text:        text,
	}
}

// String returns the rendered report
func (r *Report) String() string {
	return r.text
}
