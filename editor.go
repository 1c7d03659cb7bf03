package quill

import (
	"context"
	"fmt"

	"github.com/tsawler/quill/model"
	"github.com/tsawler/quill/service"
	"github.com/tsawler/quill/structure"
	"github.com/tsawler/quill/validate"
)

const (
	// defaultSummaryLimit caps the number of per-operation summaries
	// included in a batch result message.
	defaultSummaryLimit = 5
	// defaultPreviewLimit caps the number of elements listed by
	// InspectStructure.
	defaultPreviewLimit = 50
)

// Editor plans and submits structural edits for documents owned by a
// remote document service.
//
// An Editor holds no document state. Every operation fetches a fresh
// snapshot before any index-dependent write, because indices derived from
// one snapshot are invalidated by the next mutation. Editors are safe for
// concurrent use across different documents; concurrent edits to the same
// document by different callers are not coordinated.
type Editor struct {
	svc          service.Service
	summaryLimit int
	previewLimit int
}

// Option configures an Editor.
type Option func(*Editor)

// WithSummaryLimit sets how many operation summaries a batch result
// message includes before truncating.
func WithSummaryLimit(n int) Option {
	return func(e *Editor) {
		if n > 0 {
			e.summaryLimit = n
		}
	}
}

// WithPreviewLimit sets how many elements InspectStructure lists.
func WithPreviewLimit(n int) Option {
	return func(e *Editor) {
		if n > 0 {
			e.previewLimit = n
		}
	}
}

// snapshot fetches and parses a fresh document snapshot.
func (e *Editor) snapshot(ctx context.Context, documentID string) (*model.Document, error) {
	payload, err := e.svc.Document(ctx, documentID)
	if err != nil {
		return nil, err
	}
	return structure.Parse(payload), nil
}

// checkDocumentID validates the document id shape, returning a failure
// Result when it is malformed.
func checkDocumentID(documentID string) (Result, bool) {
	if ok, msg := validate.DocumentID(documentID); !ok {
		return failure(msg), false
	}
	return Result{}, true
}

// serviceFailure wraps an underlying service error into a failure Result.
func serviceFailure(action string, err error) Result {
	return failure(fmt.Sprintf("%s: %v", action, err))
}
