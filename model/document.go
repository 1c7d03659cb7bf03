package model

import "sort"

// Document represents a complete document snapshot with resolved structure
type Document struct {
	DocumentID string
	Title      string
	Elements   []Element
	Headers    map[string]*Section
	Footers    map[string]*Section
	// TotalLength is the end index of the last body element.
	TotalLength int64
}

// NewDocument creates a new empty document snapshot
func NewDocument(id string) *Document {
	return &Document{
		DocumentID: id,
		Elements:   make([]Element, 0),
		Headers:    make(map[string]*Section),
		Footers:    make(map[string]*Section),
	}
}

// Tables returns all tables in body order
func (d *Document) Tables() []*Table {
	var tables []*Table
	for _, el := range d.Elements {
		if t, ok := el.(*Table); ok {
			tables = append(tables, t)
		}
	}
	return tables
}

// Paragraphs returns all body paragraphs in order
func (d *Document) Paragraphs() []*Paragraph {
	var paragraphs []*Paragraph
	for _, el := range d.Elements {
		if p, ok := el.(*Paragraph); ok {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// ExtractText returns all paragraph text concatenated
func (d *Document) ExtractText() string {
	var text string
	for _, p := range d.Paragraphs() {
		text += p.Text + "\n"
	}
	return text
}

// ElementAt returns the element whose range contains index i. If that
// element is a table, the containing cell (if any) is returned as well.
// Returns (nil, nil) when no element contains i.
func (d *Document) ElementAt(i int64) (Element, *Cell) {
	for _, el := range d.Elements {
		if !el.Bounds().Contains(i) {
			continue
		}
		if t, ok := el.(*Table); ok {
			for r := range t.Cells {
				for c := range t.Cells[r] {
					if t.Cells[r][c].Span.Contains(i) {
						return t, &t.Cells[r][c]
					}
				}
			}
		}
		return el, nil
	}
	return nil, nil
}

// NextParagraphIndex returns the smallest paragraph start index strictly
// greater than after. When no such paragraph exists it returns
// max(TotalLength-1, 1), the last position at which text can still be
// inserted.
func (d *Document) NextParagraphIndex(after int64) int64 {
	best := int64(-1)
	for _, p := range d.Paragraphs() {
		start := p.Span.Start
		if start > after && (best == -1 || start < best) {
			best = start
		}
	}
	if best != -1 {
		return best
	}
	if d.TotalLength-1 > 1 {
		return d.TotalLength - 1
	}
	return 1
}

// Sections returns the header or footer sections of the given type, sorted
// by section id for deterministic iteration.
func (d *Document) Sections(kind SectionType) []*Section {
	src := d.Headers
	if kind == SectionFooter {
		src = d.Footers
	}
	sections := make([]*Section, 0, len(src))
	for _, s := range src {
		sections = append(sections, s)
	}
	sort.Slice(sections, func(i, j int) bool { return sections[i].ID < sections[j].ID })
	return sections
}

// Complexity holds aggregate structure statistics for a document
type Complexity struct {
	ElementCount      int
	ParagraphCount    int
	TableCount        int
	SectionBreakCount int
	TotalTableCells   int
	LargestTableCells int
	HasHeaders        bool
	HasFooters        bool
}

// Complexity computes aggregate structure statistics for the document
func (d *Document) Complexity() Complexity {
	c := Complexity{
		ElementCount: len(d.Elements),
		HasHeaders:   len(d.Headers) > 0,
		HasFooters:   len(d.Footers) > 0,
	}
	for _, el := range d.Elements {
		switch e := el.(type) {
		case *Paragraph:
			c.ParagraphCount++
		case *Table:
			c.TableCount++
			cells := e.CellCount()
			c.TotalTableCells += cells
			if cells > c.LargestTableCells {
				c.LargestTableCells = cells
			}
		case *SectionBreak:
			c.SectionBreakCount++
		}
	}
	return c
}
