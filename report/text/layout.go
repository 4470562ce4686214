package text

import (
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"
)

type align int

const (
	alignLeft align = iota
	alignRight
)

// padding is given as top, right, bottom, left
type padding [4]int

var (
	padTop1  = padding{1, 0, 0, 0}
	padLeft2 = padding{0, 0, 0, 2}
)

// column is one cell of a row. A zero width shares the remaining space.
type column struct {
	text    string
	width   int
	align   align
	padding padding
}

// ui lays out rows of columns in a fixed total width
type ui struct {
	width int
	wrap  bool
	rows  []string
}

func newUI(width int, wrap bool) *ui {
	return &ui{width: width, wrap: wrap}
}

// div appends one row. Without columns it appends a blank line.
func (u *ui) div(cols ...column) {
	if len(cols) == 0 {
		u.rows = append(u.rows, "")
		return
	}
	widths := u.columnWidths(cols)

	top, bottom := 0, 0
	cells := make([][]string, len(cols))
	height := 0
	for i, c := range cols {
		top = max(top, c.padding[0])
		bottom = max(bottom, c.padding[2])
		inner := widths[i] - c.padding[1] - c.padding[3]
		cells[i] = u.lines(c.text, inner)
		height = max(height, len(cells[i]))
	}

	for i := 0; i < top; i++ {
		u.rows = append(u.rows, "")
	}
	for n := 0; n < height; n++ {
		var b strings.Builder
		for i, c := range cols {
			inner := widths[i] - c.padding[1] - c.padding[3]
			cell := ""
			if n < len(cells[i]) {
				cell = cells[i][n]
			}
			b.WriteString(strings.Repeat(" ", c.padding[3]))
			b.WriteString(fill(cell, inner, c.align))
			b.WriteString(strings.Repeat(" ", c.padding[1]))
		}
		u.rows = append(u.rows, trimRight(b.String()))
	}
	for i := 0; i < bottom; i++ {
		u.rows = append(u.rows, "")
	}
}

func (u *ui) String() string {
	return strings.Join(u.rows, "\n")
}

func (u *ui) columnWidths(cols []column) []int {
	widths := make([]int, len(cols))
	remaining := u.width
	unset := 0
	for i, c := range cols {
		if c.width > 0 {
			widths[i] = c.width
			remaining -= c.width
		} else {
			unset++
		}
	}
	if unset == 0 {
		return widths
	}
	share := remaining / unset
	for i, c := range cols {
		if widths[i] == 0 {
			widths[i] = max(share, c.padding[1]+c.padding[3]+1)
		}
	}
	return widths
}

// lines splits text into the lines of a cell that is width cells wide
func (u *ui) lines(text string, width int) []string {
	var out []string
	for _, paragraph := range strings.Split(text, "\n") {
		if !u.wrap || width <= 0 {
			out = append(out, paragraph)
			continue
		}
		out = append(out, wrap(paragraph, width)...)
	}
	return out
}

// escapeCode matches color escapes whether or not the string also holds a reset
var escapeCode = regexp.MustCompile(color.CodeExpr)

var trailingCode = regexp.MustCompile("(?:" + color.CodeExpr + ")$")

const resetCode = "\x1b[0m"

// visibleWidth is the number of terminal cells s occupies once styling is removed
func visibleWidth(s string) int {
	return runewidth.StringWidth(escapeCode.ReplaceAllString(s, ""))
}

// carryStyles closes the style still open at the end of a wrapped line and
// reopens it on the next one, so colors never leak into other columns.
func carryStyles(lines []string) []string {
	active := ""
	for i, line := range lines {
		prefix := active
		for _, code := range escapeCode.FindAllString(line, -1) {
			if code == resetCode {
				active = ""
			} else {
				active += code
			}
		}
		if active != "" {
			line += resetCode
		}
		lines[i] = prefix + line
	}
	return lines
}

// trimRight drops trailing spaces, including those hidden behind trailing escapes
func trimRight(s string) string {
	suffix := ""
	for {
		s = strings.TrimRight(s, " ")
		loc := trailingCode.FindStringIndex(s)
		if loc == nil {
			return s + suffix
		}
		suffix = s[loc[0]:] + suffix
		s = s[:loc[0]]
	}
}

func fill(s string, width int, a align) string {
	pad := width - visibleWidth(s)
	if pad <= 0 {
		return s
	}
	if a == alignRight {
		return strings.Repeat(" ", pad) + s
	}
	return s + strings.Repeat(" ", pad)
}

// wrap breaks s into lines of at most width cells. Runs of spaces are kept
// inside a line and dropped at line breaks. Words longer than width are split.
func wrap(s string, width int) []string {
	var (
		out     []string
		line    strings.Builder
		lineLen int
	)
	flush := func() {
		out = append(out, trimRight(line.String()))
		line.Reset()
		lineLen = 0
	}
	for _, tok := range tokenize(s) {
		w := visibleWidth(tok)
		if lineLen+w <= width {
			line.WriteString(tok)
			lineLen += w
			continue
		}
		if tok[0] == ' ' {
			if lineLen > 0 {
				flush()
			}
			continue
		}
		if lineLen > 0 {
			flush()
		}
		for w > width {
			head, tail := splitAt(tok, width)
			out = append(out, head)
			tok = tail
			w = visibleWidth(tok)
		}
		line.WriteString(tok)
		lineLen = w
	}
	if lineLen > 0 || len(out) == 0 {
		flush()
	}
	return carryStyles(out)
}

// tokenize splits s into alternating runs of spaces and non-spaces
func tokenize(s string) []string {
	var toks []string
	start := 0
	for i := 1; i <= len(s); i++ {
		if i == len(s) || (s[i] == ' ') != (s[start] == ' ') {
			if start < i {
				toks = append(toks, s[start:i])
			}
			start = i
		}
	}
	return toks
}

// splitAt cuts s after width visible cells. Escape sequences take no room
// and are never cut.
func splitAt(s string, width int) (string, string) {
	used := 0
	inEscape := false
	for i, r := range s {
		switch {
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
			continue
		case r == '\x1b':
			inEscape = true
			continue
		}
		rw := runewidth.RuneWidth(r)
		if used+rw > width && used > 0 {
			return s[:i], s[i:]
		}
		used += rw
	}
	return s, ""
}
