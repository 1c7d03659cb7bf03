package structure

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/quill/model"
)

// previewLimit caps the length of section content previews.
const previewLimit = 100

// Parse converts a raw document payload into a semantic document snapshot.
// Parsing never fails: absent fields default to empty or zero, and derived
// indices must be treated as advisory until validated against the current
// document length.
func Parse(p *DocumentPayload) *model.Document {
	if p == nil {
		return model.NewDocument("")
	}

	doc := model.NewDocument(p.DocumentID)
	doc.Title = p.Title

	if p.Body != nil {
		for i := range p.Body.Content {
			el := parseElement(&p.Body.Content[i])
			if el == nil {
				continue
			}
			doc.Elements = append(doc.Elements, el)
			if end := el.Bounds().End; end > doc.TotalLength {
				doc.TotalLength = end
			}
		}
	}

	for id, seg := range p.Headers {
		doc.Headers[id] = parseSection(id, model.SectionHeader, seg)
	}
	for id, seg := range p.Footers {
		doc.Footers[id] = parseSection(id, model.SectionFooter, seg)
	}

	return doc
}

// parseElement resolves one structural element into its model counterpart.
// Unrecognized variants are dropped.
func parseElement(se *StructuralElement) model.Element {
	span := model.Range{Start: se.StartIndex, End: se.EndIndex}

	switch {
	case se.Paragraph != nil:
		return &model.Paragraph{
			Text:  paragraphText(se.Paragraph),
			Style: paragraphStyle(se.Paragraph),
			Span:  span,
		}
	case se.Table != nil:
		return parseTable(se.Table, span)
	case se.SectionBreak != nil:
		return &model.SectionBreak{Span: span}
	case se.TableOfContents != nil:
		return &model.TableOfContents{Span: span}
	default:
		return nil
	}
}

// parseTable walks rows x cells and resolves each cell's insertion index.
func parseTable(tp *TablePayload, span model.Range) *model.Table {
	t := &model.Table{
		Rows:    tp.Rows,
		Columns: tp.Columns,
		Span:    span,
	}
	if tp.Style != nil {
		t.Style = tp.Style.Name
	}
	if t.Rows == 0 {
		t.Rows = len(tp.Rows2D)
	}
	if t.Columns == 0 && len(tp.Rows2D) > 0 {
		t.Columns = len(tp.Rows2D[0].Cells)
	}

	t.Cells = make([][]model.Cell, len(tp.Rows2D))
	for r := range tp.Rows2D {
		row := tp.Rows2D[r].Cells
		t.Cells[r] = make([]model.Cell, len(row))
		for c := range row {
			t.Cells[r][c] = parseCell(&row[c], r, c)
		}
	}
	return t
}

// parseCell computes the cell's insertion index: the start of the first
// text run inside the cell's first paragraph when one exists, otherwise
// start_index + 1.
func parseCell(cp *TableCellPayload, row, col int) model.Cell {
	cell := model.Cell{
		Row:            row,
		Column:         col,
		Span:           model.Range{Start: cp.StartIndex, End: cp.EndIndex},
		InsertionIndex: cp.StartIndex + 1,
	}

	var text strings.Builder
	for i := range cp.Content {
		para := cp.Content[i].Paragraph
		if para == nil {
			continue
		}
		for j := range para.Elements {
			run := para.Elements[j].TextRun
			if run == nil {
				continue
			}
			if i == 0 && text.Len() == 0 {
				cell.InsertionIndex = para.Elements[j].StartIndex
			}
			text.WriteString(run.Content)
		}
	}
	cell.Text = strings.TrimRight(text.String(), "\n")
	return cell
}

// parseSection resolves a header or footer segment: bounds are taken from
// the first and last child elements, and all paragraph text is concatenated
// into a bounded preview.
func parseSection(id string, kind model.SectionType, seg *SegmentPayload) *model.Section {
	s := &model.Section{ID: id, Kind: kind}
	if seg == nil || len(seg.Content) == 0 {
		return s
	}

	s.Span = model.Range{
		Start: seg.Content[0].StartIndex,
		End:   seg.Content[len(seg.Content)-1].EndIndex,
	}

	var preview strings.Builder
	for i := range seg.Content {
		pp := seg.Content[i].Paragraph
		if pp == nil {
			continue
		}
		s.Paragraphs = append(s.Paragraphs, &model.Paragraph{
			Text:  paragraphText(pp),
			Style: paragraphStyle(pp),
			Span:  model.Range{Start: seg.Content[i].StartIndex, End: seg.Content[i].EndIndex},
		})
		preview.WriteString(paragraphText(pp))
	}
	s.Preview = truncatePreview(preview.String(), previewLimit)
	return s
}

// paragraphText concatenates the text content of every run in a paragraph,
// trimming the trailing newline the service appends to each paragraph.
func paragraphText(pp *ParagraphPayload) string {
	var sb strings.Builder
	for i := range pp.Elements {
		if run := pp.Elements[i].TextRun; run != nil {
			sb.WriteString(run.Content)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func paragraphStyle(pp *ParagraphPayload) string {
	if pp.Style == nil {
		return ""
	}
	return pp.Style.NamedStyleType
}

// truncatePreview normalizes the text and truncates it to at most limit
// runes without splitting a multi-byte sequence.
func truncatePreview(s string, limit int) string {
	s = norm.NFC.String(s)
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
