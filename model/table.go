package model

import "strings"

// Table represents a table with cells organized in rows and columns
type Table struct {
	Rows    int
	Columns int
	Style   string // Named table style if the service reports one
	Cells   [][]Cell
	Span    Range
}

func (t *Table) Type() ElementType { return ElementTypeTable }
func (t *Table) Bounds() Range     { return t.Span }

// GetText returns the table content as tab-separated rows.
func (t *Table) GetText() string {
	var sb strings.Builder
	for _, row := range t.Cells {
		for j := range row {
			sb.WriteString(row[j].Text)
			if j < len(row)-1 {
				sb.WriteString("\t")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// CellAt returns the cell at the given row and column (0-indexed), or nil
// if the position is out of bounds.
func (t *Table) CellAt(row, col int) *Cell {
	if row < 0 || row >= len(t.Cells) {
		return nil
	}
	if col < 0 || col >= len(t.Cells[row]) {
		return nil
	}
	return &t.Cells[row][col]
}

// CellCount returns the total number of cells in the table.
func (t *Table) CellCount() int {
	var n int
	for _, row := range t.Cells {
		n += len(row)
	}
	return n
}

// CellIndices returns the [start, end] index pair for every cell in
// row-major order. Pairs are only valid until the next mutation.
func (t *Table) CellIndices() [][2]int64 {
	pairs := make([][2]int64, 0, t.CellCount())
	for _, row := range t.Cells {
		for _, cell := range row {
			pairs = append(pairs, [2]int64{cell.Span.Start, cell.Span.End})
		}
	}
	return pairs
}

// ToMarkdown converts the table to markdown format, treating the first row
// as the header row.
func (t *Table) ToMarkdown() string {
	if len(t.Cells) == 0 {
		return ""
	}

	var sb strings.Builder

	// Header row
	for j, cell := range t.Cells[0] {
		sb.WriteString("| ")
		sb.WriteString(strings.ReplaceAll(cell.Text, "\n", " "))
		sb.WriteString(" ")
		if j == len(t.Cells[0])-1 {
			sb.WriteString("|")
		}
	}
	sb.WriteString("\n")

	// Separator
	for j := range t.Cells[0] {
		sb.WriteString("|---")
		if j == len(t.Cells[0])-1 {
			sb.WriteString("|")
		}
	}
	sb.WriteString("\n")

	// Data rows
	for i := 1; i < len(t.Cells); i++ {
		for j, cell := range t.Cells[i] {
			sb.WriteString("| ")
			sb.WriteString(strings.ReplaceAll(cell.Text, "\n", " "))
			sb.WriteString(" ")
			if j == len(t.Cells[i])-1 {
				sb.WriteString("|")
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// Cell represents a table cell
type Cell struct {
	Row    int
	Column int
	Span   Range
	// InsertionIndex is the position at which new text should be inserted
	// to land inside the cell's first paragraph. For a well-formed cell it
	// lies within [Span.Start+1, Span.End-1]. It is recomputed on every
	// fetch; cell boundaries depend on prior mutations.
	InsertionIndex int64
	Text           string
}

// IsEmpty reports whether the cell has no text content.
func (c *Cell) IsEmpty() bool {
	return strings.TrimSpace(c.Text) == ""
}
