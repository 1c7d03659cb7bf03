package quill

import (
	"context"
	"fmt"

	"github.com/tsawler/quill/model"
	"github.com/tsawler/quill/request"
	"github.com/tsawler/quill/validate"
)

// CreateTable creates a table at the given index and populates it with
// data, one cell per round. When boldHeaders is set, each populated cell
// of the first row also receives bold styling.
//
// Population is best-effort: a failure on one cell is recorded as a
// warning and does not abort the remaining cells. This deliberately
// diverges from ExecuteBatch's all-or-nothing rule - table population is a
// long sequence of independent single-cell writes, each re-resolved
// against a fresh snapshot, not one atomic transaction.
func (e *Editor) CreateTable(ctx context.Context, documentID string, data [][]string, index int64, boldHeaders bool) Result {
	if res, ok := checkDocumentID(documentID); !ok {
		return res
	}
	if ok, msg := validate.TableData(data); !ok {
		return failure(msg)
	}
	if ok, msg := validate.Index(index); !ok {
		return failure(msg)
	}

	rows := len(data)
	cols := len(data[0])

	_, err := e.svc.BatchUpdate(ctx, documentID, []request.Record{
		request.NewInsertTable(index, rows, cols),
	})
	if err != nil {
		return serviceFailure("Failed to create table", err)
	}

	// The table's cell boundaries are assigned by the service; only a
	// fresh fetch exposes them.
	doc, err := e.snapshot(ctx, documentID)
	if err != nil {
		return serviceFailure("Failed to re-fetch document after table creation", err)
	}
	tableIndex, found := locateTable(doc, index)
	if !found {
		return failure("Table was created but could not be located in the document")
	}

	populated, warnings := e.populateCells(ctx, documentID, tableIndex, data, boldHeaders)

	message := fmt.Sprintf("Created %dx%d table at index %d and populated %d of %d cells",
		rows, cols, index, populated, nonEmptyCells(data))
	res := success(message, map[string]any{
		"rows":            rows,
		"columns":         cols,
		"populated_cells": populated,
		"table_index":     tableIndex,
	})
	res.Warnings = warnings
	return res
}

// locateTable finds the position, within the document's table list, of the
// table created at insertIndex: the first table whose range contains or
// begins at or after the insertion point.
func locateTable(doc *model.Document, insertIndex int64) (int, bool) {
	tables := doc.Tables()
	for i, t := range tables {
		if t.Span.Contains(insertIndex) || t.Span.Start >= insertIndex {
			return i, true
		}
	}
	if len(tables) > 0 {
		return len(tables) - 1, true
	}
	return 0, false
}

// populateCells writes each non-empty cell in row-major order. Every write
// shifts the insertion index of every cell after it, so each round
// re-fetches the document and re-resolves the target cell before
// submitting.
func (e *Editor) populateCells(ctx context.Context, documentID string, tableIndex int, data [][]string, boldHeaders bool) (int, []Warning) {
	var populated int
	var warnings []Warning

	fail := func(row, col int, format string, args ...any) {
		warnings = append(warnings, Warning{
			Op:      fmt.Sprintf("populate cell (%d,%d)", row, col),
			Message: fmt.Sprintf(format, args...),
		})
	}

	for row := range data {
		for col, text := range data[row] {
			if text == "" {
				continue
			}

			doc, err := e.snapshot(ctx, documentID)
			if err != nil {
				fail(row, col, "failed to re-fetch document: %v", err)
				continue
			}
			tables := doc.Tables()
			if tableIndex >= len(tables) {
				fail(row, col, "table %d not found; document has %d tables", tableIndex, len(tables))
				continue
			}
			cell := tables[tableIndex].CellAt(row, col)
			if cell == nil {
				fail(row, col, "cell not found in table %d", tableIndex)
				continue
			}

			records := []request.Record{request.NewInsertText(cell.InsertionIndex, text)}
			if boldHeaders && row == 0 {
				records = append(records,
					request.NewBold(cell.InsertionIndex, cell.InsertionIndex+model.TextLength(text)))
			}
			if _, err := e.svc.BatchUpdate(ctx, documentID, records); err != nil {
				fail(row, col, "write failed: %v", err)
				continue
			}
			populated++
		}
	}
	return populated, warnings
}

// PopulateTable writes data into an existing table, appending each value
// at the target cell's current end boundary so pre-existing content is
// preserved. When clearExisting is set, each target cell's current content
// is deleted in the same per-cell round before the new text is inserted.
//
// The supplied data must fit the table: a row or column count exceeding
// the table's physical dimensions rejects the whole operation.
func (e *Editor) PopulateTable(ctx context.Context, documentID string, tableIndex int, data [][]string, clearExisting bool) Result {
	if res, ok := checkDocumentID(documentID); !ok {
		return res
	}
	if ok, msg := validate.TableData(data); !ok {
		return failure(msg)
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
	if len(data) > len(table.Cells) || len(data[0]) > table.Columns {
		return failure(fmt.Sprintf("data is %dx%d but table %d is %dx%d",
			len(data), len(data[0]), tableIndex, table.Rows, table.Columns))
	}

	var populated int
	var warnings []Warning

	fail := func(row, col int, format string, args ...any) {
		warnings = append(warnings, Warning{
			Op:      fmt.Sprintf("populate cell (%d,%d)", row, col),
			Message: fmt.Sprintf(format, args...),
		})
	}

	for row := range data {
		for col, text := range data[row] {
			if text == "" {
				continue
			}

			fresh, err := e.snapshot(ctx, documentID)
			if err != nil {
				fail(row, col, "failed to re-fetch document: %v", err)
				continue
			}
			freshTables := fresh.Tables()
			if tableIndex >= len(freshTables) {
				fail(row, col, "table %d not found; document has %d tables", tableIndex, len(freshTables))
				continue
			}
			cell := freshTables[tableIndex].CellAt(row, col)
			if cell == nil {
				fail(row, col, "cell not found in table %d", tableIndex)
				continue
			}

			var records []request.Record
			if clearExisting && cell.Text != "" && cell.Span.End-1 > cell.InsertionIndex {
				records = append(records,
					request.NewDeleteRange(cell.InsertionIndex, cell.Span.End-1),
					request.NewInsertText(cell.InsertionIndex, text))
			} else {
				// Append before the cell's closing marker.
				records = append(records, request.NewInsertText(cell.Span.End-1, text))
			}
			if _, err := e.svc.BatchUpdate(ctx, documentID, records); err != nil {
				fail(row, col, "write failed: %v", err)
				continue
			}
			populated++
		}
	}

	message := fmt.Sprintf("Populated %d of %d cells in table %d", populated, nonEmptyCells(data), tableIndex)
	res := success(message, map[string]any{
		"rows":            len(data),
		"columns":         len(data[0]),
		"populated_cells": populated,
		"table_index":     tableIndex,
		"cleared":         clearExisting,
	})
	res.Warnings = warnings
	return res
}

func nonEmptyCells(data [][]string) int {
	var n int
	for _, row := range data {
		for _, text := range row {
			if text != "" {
				n++
			}
		}
	}
	return n
}
