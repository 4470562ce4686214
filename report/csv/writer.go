package csv

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/securego/lintreport"
)

// WriteReport write a report in csv format to the output writer, one row per finding
func WriteReport(w io.Writer, data *lintreport.Report) error {
	out := csv.NewWriter(w)
	for _, file := range data.Files {
		for _, finding := range file.Findings {
			err := out.Write([]string{
				file.Path,
				strconv.Itoa(finding.Line),
				finding.Category.String(),
				finding.Title,
				finding.Description,
			})
			if err != nil {
				return err
			}
		}
	}
	out.Flush()
	return out.Error()
}
