package request

// Location addresses a single insertion point. SegmentID is empty for the
// document body; header and footer edits carry the section's id and use
// segment-local indices.
type Location struct {
	Index     int64  `json:"index"`
	SegmentID string `json:"segmentId,omitempty"`
}

// Range addresses the half-open interval [StartIndex, EndIndex). SegmentID
// follows the same convention as [Location].
type Range struct {
	StartIndex int64  `json:"startIndex"`
	EndIndex   int64  `json:"endIndex"`
	SegmentID  string `json:"segmentId,omitempty"`
}

// Dimension is a magnitude with a unit (the service uses points).
type Dimension struct {
	Magnitude float64 `json:"magnitude"`
	Unit      string  `json:"unit"`
}

// Points builds a Dimension in points.
func Points(magnitude float64) Dimension {
	return Dimension{Magnitude: magnitude, Unit: "PT"}
}

// WeightedFontFamily names a font family.
type WeightedFontFamily struct {
	FontFamily string `json:"fontFamily"`
}

// TextStyle carries the optional character-style fields of an
// updateTextStyle record. Only fields named in the record's field mask are
// applied by the service.
type TextStyle struct {
	Bold               *bool               `json:"bold,omitempty"`
	Italic             *bool               `json:"italic,omitempty"`
	Underline          *bool               `json:"underline,omitempty"`
	FontSize           *Dimension          `json:"fontSize,omitempty"`
	WeightedFontFamily *WeightedFontFamily `json:"weightedFontFamily,omitempty"`
}

// InsertText inserts text at a single index.
type InsertText struct {
	Location Location `json:"location"`
	Text     string   `json:"text"`
}

// DeleteContentRange deletes everything in a range.
type DeleteContentRange struct {
	Range Range `json:"range"`
}

// UpdateTextStyle applies character styling to a range. Fields is the
// comma-separated mask of style fields to touch.
type UpdateTextStyle struct {
	Range  Range     `json:"range"`
	Style  TextStyle `json:"textStyle"`
	Fields string    `json:"fields"`
}

// InsertTable inserts an empty table at an index.
type InsertTable struct {
	Location Location `json:"location"`
	Rows     int      `json:"rows"`
	Columns  int      `json:"columns"`
}

// InsertPageBreak inserts a page break at an index.
type InsertPageBreak struct {
	Location Location `json:"location"`
}

// CreateParagraphBullets applies a bullet preset to the paragraphs in a
// range.
type CreateParagraphBullets struct {
	Range        Range  `json:"range"`
	BulletPreset string `json:"bulletPreset"`
}

// SubstringMatch describes the text a replaceAllText record searches for.
type SubstringMatch struct {
	Text      string `json:"text"`
	MatchCase bool   `json:"matchCase"`
}

// ReplaceAllText replaces every match in the document.
type ReplaceAllText struct {
	ContainsText SubstringMatch `json:"containsText"`
	ReplaceText  string         `json:"replaceText"`
}

// Size is a width/height pair.
type Size struct {
	Width  Dimension `json:"width"`
	Height Dimension `json:"height"`
}

// InsertInlineImage inserts an image fetched from a URI at an index.
type InsertInlineImage struct {
	Location Location `json:"location"`
	URI      string   `json:"uri"`
	Size     *Size    `json:"objectSize,omitempty"`
}

// TableCellLocation addresses one cell of a table that starts at
// TableStart.
type TableCellLocation struct {
	TableStart  Location `json:"tableStartLocation"`
	RowIndex    int      `json:"rowIndex"`
	ColumnIndex int      `json:"columnIndex"`
}

// TableRange addresses a rectangular block of cells.
type TableRange struct {
	Cell       TableCellLocation `json:"tableCellLocation"`
	RowSpan    int               `json:"rowSpan"`
	ColumnSpan int               `json:"columnSpan"`
}

// TableCellStyle carries the optional cell-style fields of an
// updateTableCellStyle record.
type TableCellStyle struct {
	BackgroundColor *OptionalColor `json:"backgroundColor,omitempty"`
}

// OptionalColor is a color that may be unset.
type OptionalColor struct {
	Color *RGBColor `json:"color,omitempty"`
}

// RGBColor is a color with components in [0, 1].
type RGBColor struct {
	Red   float64 `json:"red"`
	Green float64 `json:"green"`
	Blue  float64 `json:"blue"`
}

// UpdateTableCellStyle applies styling to a block of table cells.
type UpdateTableCellStyle struct {
	TableRange TableRange     `json:"tableRange"`
	Style      TableCellStyle `json:"tableCellStyle"`
	Fields     string         `json:"fields"`
}

// CreateHeader asks the service to create a header of the given variant.
type CreateHeader struct {
	Type string `json:"type"`
}

// CreateFooter asks the service to create a footer of the given variant.
type CreateFooter struct {
	Type string `json:"type"`
}

// DocumentStyle carries the optional document-level style fields of an
// updateDocumentStyle record.
type DocumentStyle struct {
	UseFirstPageHeaderFooter *bool `json:"useFirstPageHeaderFooter,omitempty"`
}

// UpdateDocumentStyle applies document-level styling.
type UpdateDocumentStyle struct {
	Style  DocumentStyle `json:"documentStyle"`
	Fields string        `json:"fields"`
}

// Record is one atomic low-level edit instruction. Exactly one variant
// field is set; the JSON shape maps 1:1 to the service's request union.
type Record struct {
	InsertText             *InsertText             `json:"insertText,omitempty"`
	DeleteContentRange     *DeleteContentRange     `json:"deleteContentRange,omitempty"`
	UpdateTextStyle        *UpdateTextStyle        `json:"updateTextStyle,omitempty"`
	InsertTable            *InsertTable            `json:"insertTable,omitempty"`
	InsertPageBreak        *InsertPageBreak        `json:"insertPageBreak,omitempty"`
	CreateParagraphBullets *CreateParagraphBullets `json:"createParagraphBullets,omitempty"`
	ReplaceAllText         *ReplaceAllText         `json:"replaceAllText,omitempty"`
	InsertInlineImage      *InsertInlineImage      `json:"insertInlineImage,omitempty"`
	UpdateTableCellStyle   *UpdateTableCellStyle   `json:"updateTableCellStyle,omitempty"`
	CreateHeader           *CreateHeader           `json:"createHeader,omitempty"`
	CreateFooter           *CreateFooter           `json:"createFooter,omitempty"`
	UpdateDocumentStyle    *UpdateDocumentStyle    `json:"updateDocumentStyle,omitempty"`
}

// Kind returns the name of the variant this record carries, or "empty".
func (r Record) Kind() string {
	switch {
	case r.InsertText != nil:
		return "insertText"
	case r.DeleteContentRange != nil:
		return "deleteContentRange"
	case r.UpdateTextStyle != nil:
		return "updateTextStyle"
	case r.InsertTable != nil:
		return "insertTable"
	case r.InsertPageBreak != nil:
		return "insertPageBreak"
	case r.CreateParagraphBullets != nil:
		return "createParagraphBullets"
	case r.ReplaceAllText != nil:
		return "replaceAllText"
	case r.InsertInlineImage != nil:
		return "insertInlineImage"
	case r.UpdateTableCellStyle != nil:
		return "updateTableCellStyle"
	case r.CreateHeader != nil:
		return "createHeader"
	case r.CreateFooter != nil:
		return "createFooter"
	case r.UpdateDocumentStyle != nil:
		return "updateDocumentStyle"
	default:
		return "empty"
	}
}

// NewInsertText builds an insert-text record.
func NewInsertText(index int64, text string) Record {
	return Record{InsertText: &InsertText{Location: Location{Index: index}, Text: text}}
}

// NewSegmentInsertText builds an insert-text record targeting a header or
// footer segment.
func NewSegmentInsertText(segmentID string, index int64, text string) Record {
	return Record{InsertText: &InsertText{
		Location: Location{Index: index, SegmentID: segmentID},
		Text:     text,
	}}
}

// NewDeleteRange builds a delete-range record.
func NewDeleteRange(start, end int64) Record {
	return Record{DeleteContentRange: &DeleteContentRange{Range: Range{StartIndex: start, EndIndex: end}}}
}

// NewSegmentDeleteRange builds a delete-range record targeting a header or
// footer segment.
func NewSegmentDeleteRange(segmentID string, start, end int64) Record {
	return Record{DeleteContentRange: &DeleteContentRange{
		Range: Range{StartIndex: start, EndIndex: end, SegmentID: segmentID},
	}}
}

// NewUpdateTextStyle builds an update-text-style record with the given
// field mask.
func NewUpdateTextStyle(start, end int64, style TextStyle, fields string) Record {
	return Record{UpdateTextStyle: &UpdateTextStyle{
		Range:  Range{StartIndex: start, EndIndex: end},
		Style:  style,
		Fields: fields,
	}}
}

// NewBold builds an update-text-style record that sets bold over a range.
func NewBold(start, end int64) Record {
	bold := true
	return NewUpdateTextStyle(start, end, TextStyle{Bold: &bold}, "bold")
}

// NewInsertTable builds an insert-table record.
func NewInsertTable(index int64, rows, cols int) Record {
	return Record{InsertTable: &InsertTable{Location: Location{Index: index}, Rows: rows, Columns: cols}}
}

// NewInsertPageBreak builds an insert-page-break record.
func NewInsertPageBreak(index int64) Record {
	return Record{InsertPageBreak: &InsertPageBreak{Location: Location{Index: index}}}
}

// NewBullets builds a create-paragraph-bullets record.
func NewBullets(start, end int64, preset string) Record {
	return Record{CreateParagraphBullets: &CreateParagraphBullets{
		Range:        Range{StartIndex: start, EndIndex: end},
		BulletPreset: preset,
	}}
}

// NewReplaceAllText builds a replace-all-text record.
func NewReplaceAllText(find, replace string, matchCase bool) Record {
	return Record{ReplaceAllText: &ReplaceAllText{
		ContainsText: SubstringMatch{Text: find, MatchCase: matchCase},
		ReplaceText:  replace,
	}}
}

// NewInlineImage builds an insert-inline-image record. Width and height
// are in points; zero means the service picks the size.
func NewInlineImage(index int64, uri string, width, height float64) Record {
	img := &InsertInlineImage{Location: Location{Index: index}, URI: uri}
	if width > 0 && height > 0 {
		img.Size = &Size{Width: Points(width), Height: Points(height)}
	}
	return Record{InsertInlineImage: img}
}

// NewCreateHeader builds a create-header record for the given variant.
func NewCreateHeader(variant string) Record {
	return Record{CreateHeader: &CreateHeader{Type: variant}}
}

// NewCreateFooter builds a create-footer record for the given variant.
func NewCreateFooter(variant string) Record {
	return Record{CreateFooter: &CreateFooter{Type: variant}}
}

// NewUseFirstPageHeaderFooter builds an update-document-style record that
// enables distinct first-page headers and footers.
func NewUseFirstPageHeaderFooter() Record {
	use := true
	return Record{UpdateDocumentStyle: &UpdateDocumentStyle{
		Style:  DocumentStyle{UseFirstPageHeaderFooter: &use},
		Fields: "useFirstPageHeaderFooter",
	}}
}
