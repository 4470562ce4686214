// Package text renders findings as a column aligned, colorized terminal report.
package text

import (
	"fmt"
	"strconv"

	"github.com/securego/lintreport"
)

// ReportBuilder accumulates findings per file and renders them on demand.
// It is not safe for concurrent use.
type ReportBuilder struct {
	layout  lintreport.Layout
	wrap    bool
	painter painter

	paths   []string
	reports map[string]*lintreport.FileReport
}

// NewReportBuilder creates a builder for the given configuration. The column
// widths are derived once from the configured width.
func NewReportBuilder(cfg lintreport.Config) *ReportBuilder {
	return &ReportBuilder{
		layout:  lintreport.NewLayout(cfg.Width),
		wrap:    cfg.Wrap,
		painter: painter{enabled: cfg.Color},
		reports: make(map[string]*lintreport.FileReport),
	}
}

// AddFile records findings for the file at path. The source text is only
// captured the first time a path is seen. Findings identical to one already
// accepted for the same line are dropped. An empty path is ignored.
func (b *ReportBuilder) AddFile(path, source string, findings ...lintreport.Finding) *ReportBuilder {
	if path == "" {
		return b
	}
	report := b.fileReport(path, source)
	for _, f := range findings {
		report.Add(f)
	}
	return b
}

func (b *ReportBuilder) fileReport(path, source string) *lintreport.FileReport {
	if r, ok := b.reports[path]; ok {
		return r
	}
	r := lintreport.NewFileReport(path, source)
	b.reports[path] = r
	b.paths = append(b.paths, path)
	return r
}

// BuildReport renders everything accumulated so far. It can be called any
// number of times and the builder stays usable afterwards.
func (b *ReportBuilder) BuildReport() *lintreport.Report {
	out := newUI(b.layout.Width, b.wrap)
	total := 0
	files := make([]lintreport.FileSummary, 0, len(b.paths))

	for _, path := range b.paths {
		report := b.reports[path]
		files = append(files, report.Summary())
		out.div(column{text: "File:   " + path, padding: padTop1})

		lines := report.Lines()
		if len(lines) == 0 {
			out.div(column{text: "Issues: " + b.painter.success("None found") + " 👍"})
			continue
		}
		total += report.UniqueIssues
		out.div(column{text: "Issues: " + strconv.Itoa(report.UniqueIssues)})

		num := 1
		for _, line := range lines {
			out.div(column{
				text:    fmt.Sprintf("Line %d: %s", line, b.painter.source(report.SourceLine(line))),
				padding: padTop1,
			})
			out.div(b.headerRow()...)
			for _, f := range report.FindingsAt(line) {
				out.div(b.findingRow(num, f)...)
				num++
			}
		}
	}
	out.div()

	return lintreport.NewReport(out.String(), total, files)
}

func (b *ReportBuilder) headerRow() []column {
	return []column{
		{text: "Issue", width: b.layout.IssueWidth},
		{text: "Category", width: b.layout.CategoryWidth, padding: padLeft2},
		{text: "Title", width: b.layout.TitleWidth, padding: padLeft2},
		{text: "Description", padding: padLeft2},
	}
}

func (b *ReportBuilder) findingRow(num int, f lintreport.Finding) []column {
	p := b.painter
	return []column{
		{text: p.index(f.Category, num), width: b.layout.IssueWidth, align: alignRight},
		{text: p.category(f.Category), width: b.layout.CategoryWidth, padding: padLeft2},
		{text: p.title(f.Category, f.Title), width: b.layout.TitleWidth, padding: padLeft2},
		{text: p.description(f.Description), padding: padLeft2},
	}
}
