package structure

// DocumentPayload represents the raw nested JSON tree returned by the
// document service for a single document.
type DocumentPayload struct {
	DocumentID string                     `json:"documentId"`
	Title      string                     `json:"title"`
	Body       *BodyPayload               `json:"body,omitempty"`
	Headers    map[string]*SegmentPayload `json:"headers,omitempty"`
	Footers    map[string]*SegmentPayload `json:"footers,omitempty"`
}

// BodyPayload represents the document body.
type BodyPayload struct {
	Content []StructuralElement `json:"content,omitempty"`
}

// SegmentPayload represents a header or footer segment.
type SegmentPayload struct {
	SegmentID string              `json:"segmentId,omitempty"`
	Content   []StructuralElement `json:"content,omitempty"`
}

// StructuralElement is one entry in a content list. Exactly one of the
// variant fields is set; absent indices default to zero.
type StructuralElement struct {
	StartIndex      int64                   `json:"startIndex,omitempty"`
	EndIndex        int64                   `json:"endIndex,omitempty"`
	Paragraph       *ParagraphPayload       `json:"paragraph,omitempty"`
	Table           *TablePayload           `json:"table,omitempty"`
	SectionBreak    *SectionBreakPayload    `json:"sectionBreak,omitempty"`
	TableOfContents *TableOfContentsPayload `json:"tableOfContents,omitempty"`
}

// ParagraphPayload represents a paragraph element.
type ParagraphPayload struct {
	Elements []ParagraphElement `json:"elements,omitempty"`
	Style    *ParagraphStyle    `json:"paragraphStyle,omitempty"`
}

// ParagraphStyle carries the named style applied to a paragraph.
type ParagraphStyle struct {
	NamedStyleType string `json:"namedStyleType,omitempty"`
}

// ParagraphElement is one run-level entry inside a paragraph.
type ParagraphElement struct {
	StartIndex int64           `json:"startIndex,omitempty"`
	EndIndex   int64           `json:"endIndex,omitempty"`
	TextRun    *TextRunPayload `json:"textRun,omitempty"`
}

// TextRunPayload represents a contiguous run of styled text.
type TextRunPayload struct {
	Content string `json:"content,omitempty"`
}

// TablePayload represents a table element.
type TablePayload struct {
	Rows    int               `json:"rows,omitempty"`
	Columns int               `json:"columns,omitempty"`
	Style   *TableStyle       `json:"tableStyle,omitempty"`
	Rows2D  []TableRowPayload `json:"tableRows,omitempty"`
}

// TableStyle carries table-level styling reported by the service.
type TableStyle struct {
	Name string `json:"name,omitempty"`
}

// TableRowPayload represents one table row.
type TableRowPayload struct {
	StartIndex int64              `json:"startIndex,omitempty"`
	EndIndex   int64              `json:"endIndex,omitempty"`
	Cells      []TableCellPayload `json:"tableCells,omitempty"`
}

// TableCellPayload represents one table cell. Cell content is a nested
// content list, normally beginning with a paragraph.
type TableCellPayload struct {
	StartIndex int64               `json:"startIndex,omitempty"`
	EndIndex   int64               `json:"endIndex,omitempty"`
	Content    []StructuralElement `json:"content,omitempty"`
}

// SectionBreakPayload represents a section break element.
type SectionBreakPayload struct {
	SectionStyle *SectionStyle `json:"sectionStyle,omitempty"`
}

// SectionStyle carries section-level styling reported by the service.
type SectionStyle struct {
	SectionType string `json:"sectionType,omitempty"`
}

// TableOfContentsPayload represents an auto-generated table of contents.
type TableOfContentsPayload struct {
	Content []StructuralElement `json:"content,omitempty"`
}
