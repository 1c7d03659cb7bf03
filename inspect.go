package quill

import (
	"context"
	"fmt"

	"github.com/tsawler/quill/model"
)

// elementPreviewLen caps the text preview attached to each listed element.
const elementPreviewLen = 80

// InspectStructure fetches the document and reports its structure: element
// counts, table statistics, header/footer presence, and a bounded listing
// of body elements with their index ranges.
//
// The reported indices are advisory. They describe the snapshot that was
// fetched; any subsequent mutation shifts them.
func (e *Editor) InspectStructure(ctx context.Context, documentID string) Result {
	if res, ok := checkDocumentID(documentID); !ok {
		return res
	}

	doc, err := e.snapshot(ctx, documentID)
	if err != nil {
		return serviceFailure("Failed to fetch document", err)
	}

	c := doc.Complexity()

	elements := make([]map[string]any, 0, min(len(doc.Elements), e.previewLimit))
	for i, el := range doc.Elements {
		if i >= e.previewLimit {
			break
		}
		entry := map[string]any{
			"type":        el.Type().String(),
			"start_index": el.Bounds().Start,
			"end_index":   el.Bounds().End,
		}
		switch v := el.(type) {
		case *model.Paragraph:
			entry["preview"] = truncate(v.Text, elementPreviewLen)
			if v.Style != "" {
				entry["style"] = v.Style
			}
		case *model.Table:
			entry["rows"] = v.Rows
			entry["columns"] = v.Columns
			entry["markdown"] = v.ToMarkdown()
		}
		elements = append(elements, entry)
	}

	message := fmt.Sprintf("Document %q has %d elements: %d paragraphs, %d tables, %d section breaks",
		doc.Title, c.ElementCount, c.ParagraphCount, c.TableCount, c.SectionBreakCount)

	return success(message, map[string]any{
		"title":               doc.Title,
		"total_length":        doc.TotalLength,
		"element_count":       c.ElementCount,
		"paragraph_count":     c.ParagraphCount,
		"table_count":         c.TableCount,
		"section_break_count": c.SectionBreakCount,
		"total_table_cells":   c.TotalTableCells,
		"largest_table_cells": c.LargestTableCells,
		"has_headers":         c.HasHeaders,
		"has_footers":         c.HasFooters,
		"elements":            elements,
	})
}

// DebugTableStructure reports the per-cell index map of one table: start
// and end boundaries, the resolved insertion index, and current text for
// every cell. It is the tool to reach for when a cell write lands in the
// wrong place.
func (e *Editor) DebugTableStructure(ctx context.Context, documentID string, tableIndex int) Result {
	if res, ok := checkDocumentID(documentID); !ok {
		return res
	}
	if tableIndex < 0 {
		return failure(fmt.Sprintf("table index must be non-negative, got %d", tableIndex))
	}

	doc, err := e.snapshot(ctx, documentID)
	if err != nil {
		return serviceFailure("Failed to fetch document", err)
	}

	tables := doc.Tables()
	if tableIndex >= len(tables) {
		return failure(fmt.Sprintf("Table index %d out of range; document has %d tables", tableIndex, len(tables)))
	}
	table := tables[tableIndex]

	cells := make([]map[string]any, 0, table.CellCount())
	for r := range table.Cells {
		for c := range table.Cells[r] {
			cell := &table.Cells[r][c]
			cells = append(cells, map[string]any{
				"row":             cell.Row,
				"column":          cell.Column,
				"start_index":     cell.Span.Start,
				"end_index":       cell.Span.End,
				"insertion_index": cell.InsertionIndex,
				"text":            cell.Text,
			})
		}
	}

	message := fmt.Sprintf("Table %d: %dx%d spanning [%d, %d)",
		tableIndex, table.Rows, table.Columns, table.Span.Start, table.Span.End)

	return success(message, map[string]any{
		"table_index": tableIndex,
		"rows":        table.Rows,
		"columns":     table.Columns,
		"start_index": table.Span.Start,
		"end_index":   table.Span.End,
		"cells":       cells,
	})
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
