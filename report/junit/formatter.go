package junit

import (
	"fmt"
	"html"

	"github.com/securego/lintreport"
)

func generatePlaintext(path string, finding lintreport.Finding) string {
	return "Results:\n" +
		"[" + html.EscapeString(finding.LineLocation(path)) + "] - " +
		html.EscapeString(finding.Title) + " (Category: " + html.EscapeString(finding.Category.String()) + ")\n" +
		"> " + html.EscapeString(finding.Description)
}

func newFailure(path string, finding lintreport.Finding) *Failure {
	return &Failure{
		Message: fmt.Sprintf("Found 1 %s issue. See stacktrace for details.", finding.Category),
		Type:    finding.Category.String(),
		Text:    generatePlaintext(path, finding),
	}
}

// GenerateReport converts a report to a JUnit Report, one testsuite per file.
// Files without findings get a single passing testcase.
func GenerateReport(data *lintreport.Report) Report {
	var xmlReport Report

	for _, file := range data.Files {
		testsuite := &Testsuite{Name: file.Path}
		for _, finding := range file.Findings {
			testsuite.Testcases = append(testsuite.Testcases, &Testcase{
				Name:      finding.Title,
				Classname: finding.LineLocation(file.Path),
				Failure:   newFailure(file.Path, finding),
			})
			testsuite.Tests++
			testsuite.Failures++
		}
		if testsuite.Tests == 0 {
			testsuite.Testcases = append(testsuite.Testcases, &Testcase{Name: "no issues", Classname: file.Path})
			testsuite.Tests++
		}
		xmlReport.Testsuites = append(xmlReport.Testsuites, testsuite)
	}

	return xmlReport
}
