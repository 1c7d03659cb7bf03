// Package structure parses raw document payloads into semantic snapshots.
//
// The document service returns a document as a nested JSON tree of
// structural elements. The wire shape is mirrored by the payload types
// ([DocumentPayload], [StructuralElement], [TablePayload], ...) and
// converted into the flat, index-resolved [model.Document] by [Parse].
//
// Parsing is total: it never returns an error, and absent fields default
// to zero or empty. The cost of that leniency is that every derived index
// is advisory. A snapshot reflects the document at fetch time only; any
// mutation submitted afterwards shifts downstream offsets, so callers must
// re-fetch and re-parse before computing the next insertion point.
//
// Cell insertion indices deserve particular care. For each table cell the
// parser resolves the position at which new text should be inserted to land
// inside the cell's first paragraph: the start index of the first text run
// when the cell has content, or start_index + 1 for an empty cell.
package structure
