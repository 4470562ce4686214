// (c) Copyright 2016 Hewlett Packard Enterprise Development LP
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package report

import (
	"io"

	"github.com/securego/lintreport"
	"github.com/securego/lintreport/report/csv"
	"github.com/securego/lintreport/report/golint"
	"github.com/securego/lintreport/report/json"
	"github.com/securego/lintreport/report/junit"
	"github.com/securego/lintreport/report/text"
	"github.com/securego/lintreport/report/yaml"
)

// Formats lists the accepted output formats
var Formats = []string{"text", "json", "yaml", "csv", "junit-xml", "golint"}

// CreateReport writes the report in the specified format. The formats
// currently accepted are: json, yaml, csv, junit-xml, golint and text.
// Unknown formats fall back to text.
func CreateReport(w io.Writer, format string, data *lintreport.Report) error {
	var err error
	switch format {
	case "json":
		err = json.WriteReport(w, data)
	case "yaml":
		err = yaml.WriteReport(w, data)
	case "csv":
		err = csv.WriteReport(w, data)
	case "junit-xml":
		err = junit.WriteReport(w, data)
	case "golint":
		err = golint.WriteReport(w, data)
	case "text":
		err = text.WriteReport(w, data)
	default:
		err = text.WriteReport(w, data)
	}
	return err
}
