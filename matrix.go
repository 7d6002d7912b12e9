package jsontable

import (
	"fmt"
	"slices"
	"strings"
)

const pathSep = "."

// Matrix is a rectangular table built while flattening: a stack of header
// rows followed by data rows, all sharing the same columns.
//
// Header cells hold the full dotted key path of their column at that depth
// until [Matrix.RemoveHeaderDuplicates] scopes them to the local key. An
// empty cell means the column has no segment at that depth.
//
// A Matrix is owned by a single conversion and is not safe for concurrent use.
type Matrix struct {
	header [][]string
	rows   [][]string

	depth   int  // current header row
	base    int  // first data row of the current record
	cursor  int  // last data row reached by the current record
	newLine bool // next Inject starts a new record
}

// NewMatrix returns an empty matrix with a single header row.
func NewMatrix() *Matrix {
	return &Matrix{header: [][]string{{}}, cursor: -1}
}

// Width returns the number of columns.
func (m *Matrix) Width() int { return len(m.header[0]) }

// Header returns a copy of the header rows.
func (m *Matrix) Header() [][]string { return cloneRows(m.header) }

// Rows returns a copy of the data rows.
func (m *Matrix) Rows() [][]string { return cloneRows(m.rows) }

// Column returns the column index of the key path, creating the column on
// first use.
//
// A top-level key is appended after every existing column. A nested key takes
// over its parent's column when the parent has nothing at this depth yet;
// otherwise it is inserted right after the columns already holding the
// parent's descendants, so siblings stay grouped under their parent and
// unrelated columns shift right.
func (m *Matrix) Column(path ...string) int {
	if len(path) == 0 {
		panic("jsontable: empty key path")
	}
	row := len(path) - 1
	for len(m.header) <= row {
		m.addHeaderRow()
	}
	label := strings.Join(path, pathSep)
	if col := slices.Index(m.header[row], label); col >= 0 {
		return col
	}
	if row == 0 {
		col := m.Width()
		m.insertColumn(col)
		m.header[0][col] = label
		return col
	}

	parent := m.Column(path[:row]...)
	if m.header[row][parent] == "" {
		m.header[row][parent] = label
		return parent
	}
	prefix := strings.Join(path[:row], pathSep) + pathSep
	col := parent + 1
	for col < m.Width() && m.descends(col, row, prefix) {
		col++
	}
	m.insertColumn(col)
	m.header[row][col] = label
	return col
}

// descends reports whether any header cell of col at or below row belongs to
// the subtree named by prefix.
func (m *Matrix) descends(col, row int, prefix string) bool {
	for _, h := range m.header[row:] {
		if strings.HasPrefix(h[col], prefix) {
			return true
		}
	}
	return false
}

// ChildHeader descends one header row, adding it on first reach.
func (m *Matrix) ChildHeader() {
	m.depth++
	for len(m.header) <= m.depth {
		m.addHeaderRow()
	}
}

// ParentHeader ascends one header row.
func (m *Matrix) ParentHeader() {
	if m.depth == 0 {
		panic("jsontable: parent header above the top row")
	}
	m.depth--
}

// Depth returns the current header row.
func (m *Matrix) Depth() int { return m.depth }

// NewLine makes the next [Matrix.Inject] open a new record block.
func (m *Matrix) NewLine() { m.newLine = true }

// Inject writes value into column col of the current record.
//
// With sameRow set, the value goes to the record's base row when that cell
// is free, else to the cursor row when that cell is free. In every other case
// the cursor advances to the next row with a free cell in col, adding rows as
// needed. An occupied cell is never overwritten.
func (m *Matrix) Inject(col int, sameRow bool, value string) {
	if col < 0 || col >= m.Width() {
		panic(fmt.Sprintf("jsontable: column %d out of range [0,%d)", col, m.Width()))
	}
	if m.newLine {
		m.base = len(m.rows)
		m.cursor = m.base - 1
		m.newLine = false
	}
	if sameRow {
		if m.free(m.base, col) {
			m.set(m.base, col, value)
			m.cursor = m.base
			return
		}
		if m.cursor >= m.base && m.free(m.cursor, col) {
			m.set(m.cursor, col, value)
			return
		}
	}
	m.cursor++
	for !m.free(m.cursor, col) {
		m.cursor++
	}
	m.set(m.cursor, col, value)
}

// RemoveHeaderDuplicates strips every ancestor label, plus the separator,
// from the front of the header cells below it. After the pass a nested cell
// shows only its own key, e.g. "name" under "user" instead of "user.name".
func (m *Matrix) RemoveHeaderDuplicates() {
	for r, row := range m.header {
		for _, label := range row {
			if label == "" {
				continue
			}
			prefix := label + pathSep
			for _, deeper := range m.header[r+1:] {
				for c, cell := range deeper {
					if rest, ok := strings.CutPrefix(cell, prefix); ok {
						deeper[c] = rest
					}
				}
			}
		}
	}
}

// free reports whether the cell is empty. Rows past the end are free.
func (m *Matrix) free(row, col int) bool {
	return row >= len(m.rows) || m.rows[row][col] == ""
}

func (m *Matrix) set(row, col int, value string) {
	for len(m.rows) <= row {
		m.rows = append(m.rows, make([]string, m.Width()))
	}
	m.rows[row][col] = value
}

func (m *Matrix) addHeaderRow() {
	m.header = append(m.header, make([]string, m.Width()))
}

// insertColumn adds a blank column at col to every header and data row.
func (m *Matrix) insertColumn(col int) {
	for i := range m.header {
		m.header[i] = slices.Insert(m.header[i], col, "")
	}
	for i := range m.rows {
		m.rows[i] = slices.Insert(m.rows[i], col, "")
	}
}

func cloneRows(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = slices.Clone(row)
	}
	return out
}
