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
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultWidth is the render width used when none or an invalid one is configured
	DefaultWidth = 110

	// IssueColumnWidth is the width of the right aligned issue index column
	IssueColumnWidth = 5
	// CategoryColumnWidth is the width of the category column
	CategoryColumnWidth = 14
	// MaxTitleWidth caps the width of the title column
	MaxTitleWidth = 40
)

// Width is the overall render width. Non-positive values mean "use the default".
type Width int

// ParseWidth coerces s into a Width. Anything that is not a positive integer
// yields 0, which resolves to DefaultWidth.
func ParseWidth(s string) Width {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0
	}
	return Width(n)
}

// Value returns the effective width
func (w Width) Value() int {
	if w <= 0 {
		return DefaultWidth
	}
	return int(w)
}

// UnmarshalYAML accepts numbers as well as numeric strings and never fails
func (w *Width) UnmarshalYAML(node *yaml.Node) error {
	*w = ParseWidth(node.Value)
	return nil
}

// UnmarshalJSON accepts numbers as well as numeric strings and never fails
func (w *Width) UnmarshalJSON(data []byte) error {
	*w = ParseWidth(strings.Trim(string(data), `"`))
	return nil
}

// Config holds the rendering options of a report
type Config struct {
	Width   Width             `json:"width" yaml:"width"`
	Wrap    bool              `json:"wrap" yaml:"wrap"`
	Color   bool              `json:"color" yaml:"color"`
	Exclude []PathExcludeRule `json:"exclude,omitempty" yaml:"exclude,omitempty"`
}

// DefaultConfig returns the configuration used when nothing else is given
func DefaultConfig() Config {
	return Config{
		Width: DefaultWidth,
		Wrap:  true,
		Color: true,
	}
}

// ReadFrom implements the io.ReaderFrom interface. The data is decoded as YAML
// (JSON is accepted too) on top of the current values, so keys that are not
// present keep their value.
func (c *Config) ReadFrom(r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return int64(len(data)), fmt.Errorf("reading config: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return int64(len(data)), nil
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return int64(len(data)), fmt.Errorf("parsing config: %w", err)
	}
	return int64(len(data)), nil
}

// WriteTo implements the io.WriterTo interface. This should
// be used to save or print out the configuration information.
func (c Config) WriteTo(w io.Writer) (int64, error) {
	c.Width = Width(c.Width.Value())
	data, err := yaml.Marshal(c)
	if err != nil {
		return 0, fmt.Errorf("encoding config: %w", err)
	}
	return io.Copy(w, bytes.NewReader(data))
}

// Layout holds the column widths derived from the render width
type Layout struct {
	Width         int
	IssueWidth    int
	CategoryWidth int
	TitleWidth    int
}

// NewLayout derives the fixed column widths for the given render width
func NewLayout(w Width) Layout {
	width := w.Value()
	title := int(float64(width-IssueColumnWidth-CategoryColumnWidth-2) / 3.95)
	if title > MaxTitleWidth {
		title = MaxTitleWidth
	}
	if title < 1 {
		title = 1
	}
	return Layout{
		Width:         width,
		IssueWidth:    IssueColumnWidth,
		CategoryWidth: CategoryColumnWidth,
		TitleWidth:    title,
	}
}
