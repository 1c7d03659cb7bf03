package quill

import (
	"context"
	"fmt"
	"strings"

	"github.com/tsawler/quill/request"
	"github.com/tsawler/quill/validate"
)

// ExecuteBatch validates and sequences a list of logical operations,
// submits the expanded records as one atomic call, and summarizes the
// result.
//
// The batch is all-or-nothing: every operation is validated and expanded
// before anything is sent, and any failure aborts the whole batch naming
// the 1-based operation index. Either all records from all operations are
// submitted together, or none are - the service interprets a batch as one
// transaction, and mixing partial submission with partial validation would
// create undefined intermediate states.
func (e *Editor) ExecuteBatch(ctx context.Context, documentID string, ops []request.Operation) Result {
	if res, ok := checkDocumentID(documentID); !ok {
		return res
	}
	if ok, msg := validate.OperationCount(len(ops)); !ok {
		return failure(msg)
	}

	var records []request.Record
	summaries := make([]string, 0, len(ops))
	for i, op := range ops {
		if op.Type == "" {
			return failure(fmt.Sprintf("Operation %d failed: missing operation type", i+1))
		}
		recs, desc, err := request.Build(op)
		if err != nil {
			return failure(fmt.Sprintf("Operation %d (%s) failed: %v", i+1, op.Type, err))
		}
		records = append(records, recs...)
		summaries = append(summaries, desc)
	}

	if len(records) == 0 {
		return failure("batch produced no mutation records")
	}

	result, err := e.svc.BatchUpdate(ctx, documentID, records)
	if err != nil {
		return serviceFailure("Batch update failed", err)
	}

	message := fmt.Sprintf("Applied %d operations (%d records, %d replies): %s",
		len(ops), len(records), len(result.Replies), e.summarize(summaries))

	return success(message, map[string]any{
		"operations":        len(ops),
		"submitted_records": len(records),
		"replies":           len(result.Replies),
		"summaries":         summaries,
	})
}

// summarize joins the first summaryLimit summaries, noting how many were
// omitted.
func (e *Editor) summarize(summaries []string) string {
	if len(summaries) <= e.summaryLimit {
		return strings.Join(summaries, "; ")
	}
	shown := strings.Join(summaries[:e.summaryLimit], "; ")
	return fmt.Sprintf("%s; ... and %d more", shown, len(summaries)-e.summaryLimit)
}
