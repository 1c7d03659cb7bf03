package model

// ElementType represents the type of a body element
type ElementType int

const (
	ElementTypeUnknown ElementType = iota
	ElementTypeParagraph
	ElementTypeTable
	ElementTypeSectionBreak
	ElementTypeTableOfContents
)

func (et ElementType) String() string {
	switch et {
	case ElementTypeParagraph:
		return "Paragraph"
	case ElementTypeTable:
		return "Table"
	case ElementTypeSectionBreak:
		return "SectionBreak"
	case ElementTypeTableOfContents:
		return "TableOfContents"
	default:
		return "Unknown"
	}
}

// Range is a half-open index interval [Start, End) in the document's flat
// text-position space. End is always strictly greater than Start for a
// well-formed element.
type Range struct {
	Start int64
	End   int64
}

// Contains reports whether index i falls inside the range.
func (r Range) Contains(i int64) bool {
	return i >= r.Start && i < r.End
}

// Length returns the number of index units the range spans.
func (r Range) Length() int64 {
	return r.End - r.Start
}

// Element is the interface for all body elements
type Element interface {
	Type() ElementType
	Bounds() Range
}

// TextElement is an interface for elements containing text
type TextElement interface {
	Element
	GetText() string
}

// Paragraph represents a paragraph of text
type Paragraph struct {
	Text  string
	Style string // Named paragraph style, e.g. "NORMAL_TEXT", "HEADING_1"
	Span  Range
}

func (p *Paragraph) Type() ElementType { return ElementTypeParagraph }
func (p *Paragraph) Bounds() Range     { return p.Span }
func (p *Paragraph) GetText() string   { return p.Text }

// SectionBreak represents a section break
type SectionBreak struct {
	Span Range
}

func (s *SectionBreak) Type() ElementType { return ElementTypeSectionBreak }
func (s *SectionBreak) Bounds() Range     { return s.Span }

// TableOfContents represents an auto-generated table of contents
type TableOfContents struct {
	Span Range
}

func (t *TableOfContents) Type() ElementType { return ElementTypeTableOfContents }
func (t *TableOfContents) Bounds() Range     { return t.Span }

// SectionType distinguishes header sections from footer sections
type SectionType int

const (
	SectionHeader SectionType = iota
	SectionFooter
)

func (st SectionType) String() string {
	if st == SectionFooter {
		return "footer"
	}
	return "header"
}

// Section represents a header or footer instance, addressed by the
// service-assigned id.
type Section struct {
	ID         string
	Kind       SectionType
	Span       Range
	Preview    string // Concatenated paragraph text, truncated to 100 characters
	Paragraphs []*Paragraph
}

// FirstParagraph returns the section's first paragraph, or nil if the
// section has no paragraph content.
func (s *Section) FirstParagraph() *Paragraph {
	if len(s.Paragraphs) == 0 {
		return nil
	}
	return s.Paragraphs[0]
}
