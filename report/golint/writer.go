package golint

import (
	"fmt"
	"io"

	"github.com/securego/lintreport"
)

// WriteReport write a report in golint format to the output writer
func WriteReport(w io.Writer, data *lintreport.Report) error {
	// Output Sample:
	// /tmp/main.js:11: [Possible Bug] Unused var: x is never read

	for _, file := range data.Files {
		for _, finding := range file.Findings {
			_, err := fmt.Fprintf(w, "%s: [%s] %s: %s\n",
				finding.LineLocation(file.Path),
				finding.Category,
				finding.Title,
				finding.Description,
			)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
