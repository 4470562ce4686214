package text

import (
	"io"

	"github.com/securego/lintreport"
)

// WriteReport writes the rendered text of a report to the output writer
func WriteReport(w io.Writer, data *lintreport.Report) error {
	_, err := io.WriteString(w, data.String())
	return err
}
