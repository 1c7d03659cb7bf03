// Package model defines the semantic document types produced by parsing a
// remote document payload.
//
// All types in this package are immutable snapshots: they describe the
// document as it existed at the moment it was fetched. Indices are 0-based
// offsets into the document's flat text-position space, measured in UTF-16
// code units (the remote service's convention). Every mutation submitted to
// the service can shift downstream offsets, so a snapshot must be discarded
// and rebuilt from a fresh fetch before any index-dependent write.
//
// The core types are:
//
//   - [Document] - the full document: title, ordered body elements,
//     header/footer sections, and total length
//   - [Element] - the interface implemented by body elements
//     ([Paragraph], [Table], [SectionBreak], [TableOfContents])
//   - [Cell] - a table cell with its resolved insertion index
//   - [Section] - a header or footer instance
//
// Position queries ([Document.ElementAt], [Document.NextParagraphIndex],
// [Cell.InsertionIndex]) return values that are only valid until the next
// mutation; callers must treat them as advisory and re-derive them after
// every write.
package model
