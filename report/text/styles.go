package text

import (
	"fmt"

	"github.com/gookit/color"
	"github.com/securego/lintreport"
)

// theme colors one category: the plain style is used for the index and the
// title, the inverse style for the category cell.
type theme struct {
	plain   color.Style
	inverse color.Style
}

var (
	deprecationTheme = newTheme(color.FgRed)
	possibleBugTheme = newTheme(color.FgYellow)
	clarityTheme     = newTheme(color.FgCyan)
	optimizeTheme    = newTheme(color.FgCyan)

	sourceStyle      = color.New(color.FgMagenta)
	descriptionStyle = color.New(color.FgGray)
	successStyle     = color.New(color.FgGreen)
)

func newTheme(fg color.Color) theme {
	return theme{
		plain:   color.New(fg),
		inverse: color.New(fg, color.OpReverse),
	}
}

// themeFor selects the theme of a category. Unknown categories are shown
// like Clarity.
func themeFor(c lintreport.Category) theme {
	switch c {
	case lintreport.Deprecation:
		return deprecationTheme
	case lintreport.PossibleBug:
		return possibleBugTheme
	case lintreport.Optimization:
		return optimizeTheme
	default:
		return clarityTheme
	}
}

// painter applies styles, or leaves the text untouched when colors are disabled
type painter struct {
	enabled bool
}

func (p painter) paint(s color.Style, text string) string {
	if !p.enabled || text == "" {
		return text
	}
	return s.Sprint(text)
}

func (p painter) index(c lintreport.Category, n int) string {
	return p.paint(themeFor(c).plain, fmt.Sprint(n))
}

func (p painter) category(c lintreport.Category) string {
	return p.paint(themeFor(c).inverse, c.String())
}

func (p painter) title(c lintreport.Category, title string) string {
	return p.paint(themeFor(c).plain, title)
}

func (p painter) description(s string) string {
	return p.paint(descriptionStyle, s)
}

func (p painter) source(s string) string {
	return p.paint(sourceStyle, s)
}

func (p painter) success(s string) string {
	return p.paint(successStyle, s)
}
