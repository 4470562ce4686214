package lintreport

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Record is one entry of a findings document as produced by an analysis engine
type Record struct {
	File    string `json:"file" yaml:"file"`
	Finding `yaml:",inline"`
}

// FileFindings groups the findings of a findings document by file
type FileFindings struct {
	Path     string
	Findings []Finding
}

// LoadFindings decodes a findings document, a YAML or JSON list of records,
// and groups the records by file in the order the files first appear.
// Records without a file are kept under the empty path so callers can decide
// what to do with them.
func LoadFindings(r io.Reader) ([]FileFindings, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading findings: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrNoFindingsDocument
	}
	var records []Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing findings: %w", err)
	}
	return GroupByFile(records), nil
}

// GroupByFile groups records by file keeping the first-seen file order
func GroupByFile(records []Record) []FileFindings {
	index := make(map[string]int)
	var groups []FileFindings
	for _, rec := range records {
		i, ok := index[rec.File]
		if !ok {
			i = len(groups)
			index[rec.File] = i
			groups = append(groups, FileFindings{Path: rec.File})
		}
		groups[i].Findings = append(groups[i].Findings, rec.Finding)
	}
	return groups
}
