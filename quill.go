// Package quill plans and submits structural edits to a remote rich-text
// document service.
//
// The service owns the document and addresses every position as an offset
// into a flat text-position space. Each mutation shifts downstream
// offsets, so quill never carries an index across a write boundary:
// before any index-dependent write it fetches a fresh snapshot, parses it
// with the structure package, and re-derives the insertion point.
//
// Basic usage:
//
//	svc := service.NewClient("https://docs.example.com", token)
//	ed := quill.New(svc)
//
//	res := ed.ExecuteBatch(ctx, docID, []request.Operation{
//	    {Type: request.OpInsertText, Index: quill.Int64(1), Text: quill.String("Hello")},
//	})
//	if !res.Success {
//	    log.Println(res.Message)
//	}
//
// Every operation returns a [Result] rather than an error: Success and
// Message describe the outcome, Metadata carries operation-specific
// details, and Warnings report non-fatal issues such as individual cell
// failures during table population.
package quill

import (
	"strings"

	"github.com/tsawler/quill/service"
)

// New creates an Editor that plans edits against the given service.
func New(svc service.Service, opts ...Option) *Editor {
	ed := &Editor{
		svc:          svc,
		summaryLimit: defaultSummaryLimit,
		previewLimit: defaultPreviewLimit,
	}
	for _, opt := range opts {
		opt(ed)
	}
	return ed
}

// Result is the outcome of one caller-facing operation.
type Result struct {
	Success  bool
	Message  string
	Metadata map[string]any
	Warnings []Warning
}

// Warning describes a non-fatal issue encountered while processing an
// operation.
type Warning struct {
	Op      string
	Message string
}

// FormatWarnings renders warnings as a single human-readable string.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.Op + ": " + w.Message
	}
	return strings.Join(parts, "; ")
}

// Int64 returns a pointer to v. Helper for building request operations.
func Int64(v int64) *int64 { return &v }

// Int returns a pointer to v. Helper for building request operations.
func Int(v int) *int { return &v }

// String returns a pointer to v. Helper for building request operations.
func String(v string) *string { return &v }

// Bool returns a pointer to v. Helper for building request operations.
func Bool(v bool) *bool { return &v }

func failure(message string) Result {
	return Result{Success: false, Message: message}
}

func success(message string, metadata map[string]any) Result {
	return Result{Success: true, Message: message, Metadata: metadata}
}
