package jsontable

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Replacement rewrites every occurrence of Old in a cell with New.
type Replacement struct {
	Old string
	New string
}

// Params controls how a [Matrix] is serialized. The zero value joins cells
// with nothing and applies no escaping; start from a preset such as
// [CSVParams] when in doubt.
type Params struct {
	// Delimiter separates cells within a line.
	Delimiter string
	// Left and Right wrap a cell containing any character of Escape.
	Left  string
	Right string
	// Escape lists the characters that trigger wrapping.
	Escape string
	// HeaderSeparator, when non-zero, is repeated across the full line width
	// on a line of its own after the last header row.
	HeaderSeparator rune
	// Replacements run in order on every cell before the escape check.
	Replacements []Replacement
	// Pad right-pads every cell with spaces to its column's widest cell.
	Pad bool
}

// Render flattens records and serializes the resulting table with p.
func Render(records []Value, p Params) string {
	m := Flatten(records)
	m.RemoveHeaderDuplicates()
	return m.Render(p)
}

// Render serializes header rows, the optional separator line, and data rows,
// each terminated by a newline. A matrix without columns renders as "".
func (m *Matrix) Render(p Params) string {
	if m.Width() == 0 {
		return ""
	}
	lines := make([][]string, 0, len(m.header)+len(m.rows))
	for _, row := range m.header {
		lines = append(lines, p.cells(row))
	}
	for _, row := range m.rows {
		lines = append(lines, p.cells(row))
	}

	var widths []int
	if p.Pad {
		widths = columnWidths(lines, m.Width())
	}
	delimWidth := runewidth.StringWidth(p.Delimiter)

	var sb strings.Builder
	text := make([]string, len(lines))
	lineWidth := 0
	for i, cells := range lines {
		sb.Reset()
		w := 0
		for c, cell := range cells {
			if c > 0 {
				sb.WriteString(p.Delimiter)
				w += delimWidth
			}
			sb.WriteString(cell)
			cw := runewidth.StringWidth(cell)
			if widths != nil && cw < widths[c] {
				sb.WriteString(strings.Repeat(" ", widths[c]-cw))
				cw = widths[c]
			}
			w += cw
		}
		text[i] = sb.String()
		lineWidth = max(lineWidth, w)
	}

	sb.Reset()
	for i, line := range text {
		sb.WriteString(line)
		sb.WriteByte('\n')
		if i == len(m.header)-1 && p.HeaderSeparator != 0 {
			sb.WriteString(strings.Repeat(string(p.HeaderSeparator), lineWidth))
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// cells returns the escaped form of every cell in row.
func (p Params) cells(row []string) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		out[i] = p.escape(cell)
	}
	return out
}

func (p Params) escape(cell string) string {
	for _, r := range p.Replacements {
		if r.Old != "" {
			cell = strings.ReplaceAll(cell, r.Old, r.New)
		}
	}
	if p.Escape != "" && strings.ContainsAny(cell, p.Escape) {
		return p.Left + cell + p.Right
	}
	return cell
}

func columnWidths(lines [][]string, numCols int) []int {
	widths := make([]int, numCols)
	for _, cells := range lines {
		for i, cell := range cells {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}
