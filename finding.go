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

package lintreport

import (
	"fmt"

	"golang.org/x/text/cases"
)

// Category classifies a finding
type Category string

const (
	// Deprecation flags use of deprecated language or API features
	Deprecation Category = "Deprecation"
	// PossibleBug flags code that is likely to misbehave
	PossibleBug Category = "Possible Bug"
	// Clarity flags code that is correct but hard to read
	Clarity Category = "Clarity"
	// Optimization flags code that could run faster
	Optimization Category = "Optimization"
)

// Categories lists the known categories in display order
var Categories = []Category{Deprecation, PossibleBug, Clarity, Optimization}

// ParseCategory matches s against the known categories ignoring case.
// Unknown values are kept as they are.
func ParseCategory(s string) Category {
	folder := cases.Fold()
	folded := folder.String(s)
	for _, c := range Categories {
		if folder.String(string(c)) == folded {
			return c
		}
	}
	return Category(s)
}

// Known reports whether c is one of the four known categories
func (c Category) Known() bool {
	switch c {
	case Deprecation, PossibleBug, Clarity, Optimization:
		return true
	}
	return false
}

// String converts a Category into a string
func (c Category) String() string {
	return string(c)
}

// UnmarshalText normalizes the category name while decoding
func (c *Category) UnmarshalText(text []byte) error {
	*c = ParseCategory(string(text))
	return nil
}

// Finding is a single issue reported by an analysis engine for one line of a file.
type Finding struct {
	Line        int      `json:"line" yaml:"line"`               // 1-based line number in file
	Category    Category `json:"category" yaml:"category"`       // kind of issue
	Title       string   `json:"title" yaml:"title"`             // short summary
	Description string   `json:"description" yaml:"description"` // human readable explanation
}

// Equal reports whether f and other describe the same finding
func (f Finding) Equal(other Finding) bool {
	return f == other
}

// LineLocation points out the line of the finding in the given file
func (f Finding) LineLocation(file string) string {
	return fmt.Sprintf("%s:%d", file, f.Line)
}
