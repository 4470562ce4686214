package lintreport

import (
	"fmt"
	"regexp"
	"strings"
)

// PathExcludeRule drops findings of the given categories for matching file paths
type PathExcludeRule struct {
	Path       string   `json:"path" yaml:"path"`             // Regex pattern for matching file paths
	Categories []string `json:"categories" yaml:"categories"` // Categories to exclude. Use "*" to exclude all
}

type compiledPathRule struct {
	pathRegex  *regexp.Regexp
	categories map[Category]bool
	excludeAll bool
	original   PathExcludeRule
}

// PathExclusionFilter filters findings based on path and category combinations
type PathExclusionFilter struct {
	rules []compiledPathRule
}

// NewPathExclusionFilter creates a new filter from the provided exclusion rules.
// Returns an error if any path regex is invalid.
func NewPathExclusionFilter(rules []PathExcludeRule) (*PathExclusionFilter, error) {
	if len(rules) == 0 {
		return &PathExclusionFilter{}, nil
	}

	compiled := make([]compiledPathRule, 0, len(rules))
	for i, rule := range rules {
		if rule.Path == "" {
			return nil, fmt.Errorf("exclude[%d]: path cannot be empty", i)
		}
		regex, err := regexp.Compile(rule.Path)
		if err != nil {
			return nil, fmt.Errorf("exclude[%d]: invalid path regex %q: %w", i, rule.Path, err)
		}

		c := compiledPathRule{
			pathRegex:  regex,
			categories: make(map[Category]bool),
			original:   rule,
		}
		for _, name := range rule.Categories {
			name = strings.TrimSpace(name)
			if name == "*" {
				c.excludeAll = true
			} else if name != "" {
				c.categories[ParseCategory(name)] = true
			}
		}
		compiled = append(compiled, c)
	}

	return &PathExclusionFilter{rules: compiled}, nil
}

// ShouldExclude returns true if a finding of category c in filePath is excluded
func (f *PathExclusionFilter) ShouldExclude(filePath string, c Category) bool {
	if f == nil || len(f.rules) == 0 {
		return false
	}

	normalizedPath := strings.ReplaceAll(filePath, "\\", "/")
	for _, rule := range f.rules {
		if rule.pathRegex.MatchString(normalizedPath) && (rule.excludeAll || rule.categories[c]) {
			return true
		}
	}
	return false
}

// FilterFindings returns the findings of filePath that are not excluded and
// the number of excluded ones.
func (f *PathExclusionFilter) FilterFindings(filePath string, findings []Finding) ([]Finding, int) {
	if f == nil || len(f.rules) == 0 || len(findings) == 0 {
		return findings, 0
	}

	filtered := make([]Finding, 0, len(findings))
	excluded := 0
	for _, finding := range findings {
		if f.ShouldExclude(filePath, finding.Category) {
			excluded++
			continue
		}
		filtered = append(filtered, finding)
	}
	return filtered, excluded
}

// ParseCLIExcludeRules parses the CLI format for exclude rules.
// Format: "path:category1,category2;path2:*"
// Example: "vendor/.*:*;test/.*:Clarity,Optimization"
func ParseCLIExcludeRules(input string) ([]PathExcludeRule, error) {
	if input == "" {
		return nil, nil
	}

	var rules []PathExcludeRule
	for i, part := range strings.Split(input, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		colonIdx := strings.LastIndex(part, ":")
		if colonIdx == -1 {
			return nil, fmt.Errorf("exclude part %d: missing ':' separator in %q", i+1, part)
		}
		pathPattern := strings.TrimSpace(part[:colonIdx])
		if pathPattern == "" {
			return nil, fmt.Errorf("exclude part %d: path pattern cannot be empty", i+1)
		}

		var categories []string
		for _, c := range strings.Split(part[colonIdx+1:], ",") {
			if c = strings.TrimSpace(c); c != "" {
				categories = append(categories, c)
			}
		}
		if len(categories) == 0 {
			return nil, fmt.Errorf("exclude part %d: no categories specified", i+1)
		}

		rules = append(rules, PathExcludeRule{Path: pathPattern, Categories: categories})
	}
	return rules, nil
}

// MergeExcludeRules combines exclude rules from the config file and the CLI.
// CLI rules come first.
func MergeExcludeRules(configRules, cliRules []PathExcludeRule) []PathExcludeRule {
	if len(cliRules) == 0 {
		return configRules
	}
	if len(configRules) == 0 {
		return cliRules
	}
	merged := make([]PathExcludeRule, 0, len(cliRules)+len(configRules))
	merged = append(merged, cliRules...)
	return append(merged, configRules...)
}

func (f *PathExclusionFilter) String() string {
	if f == nil || len(f.rules) == 0 {
		return "PathExclusionFilter{empty}"
	}
	parts := make([]string, 0, len(f.rules))
	for _, rule := range f.rules {
		parts = append(parts, fmt.Sprintf("%s:%s", rule.original.Path, strings.Join(rule.original.Categories, ",")))
	}
	return fmt.Sprintf("PathExclusionFilter{%s}", strings.Join(parts, "; "))
}
