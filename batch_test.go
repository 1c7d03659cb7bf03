package quill

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tsawler/quill/request"
)

func TestExecuteBatch(t *testing.T) {
	fake := &fakeService{}
	ed := New(fake)

	ops := []request.Operation{
		{Type: request.OpInsertText, Index: Int64(1), Text: String("Hello")},
		{Type: request.OpReplaceText, StartIndex: Int64(10), EndIndex: Int64(15), Text: String("World")},
		{Type: request.OpInsertPageBreak, Index: Int64(20)},
	}

	res := ed.ExecuteBatch(context.Background(), "doc1", ops)
	if !res.Success {
		t.Fatalf("ExecuteBatch failed: %s", res.Message)
	}

	if len(fake.batches) != 1 {
		t.Fatalf("expected a single atomic submission, got %d", len(fake.batches))
	}
	records := fake.batches[0]
	// replace_text contributes two records.
	if len(records) != 4 {
		t.Fatalf("expected 4 records, got %d", len(records))
	}
	kinds := make([]string, len(records))
	for i, r := range records {
		kinds[i] = r.Kind()
	}
	want := []string{"insertText", "deleteContentRange", "insertText", "insertPageBreak"}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("record %d = %s, want %s", i, kinds[i], want[i])
		}
	}

	if res.Metadata["operations"] != 3 || res.Metadata["submitted_records"] != 4 {
		t.Errorf("metadata = %+v", res.Metadata)
	}
}

func TestExecuteBatchAllOrNothing(t *testing.T) {
	fake := &fakeService{}
	ed := New(fake)

	ops := []request.Operation{
		{Type: request.OpInsertText, Index: Int64(1), Text: String("ok")},
		{Type: request.OpInsertText, Index: Int64(2)}, // missing text
		{Type: request.OpInsertText, Index: Int64(3), Text: String("never sent")},
	}

	res := ed.ExecuteBatch(context.Background(), "doc1", ops)
	if res.Success {
		t.Fatal("batch with an invalid operation must fail")
	}
	if !strings.Contains(res.Message, "Operation 2") {
		t.Errorf("message %q should name the 1-based failing operation", res.Message)
	}
	if !strings.Contains(res.Message, "insert_text") {
		t.Errorf("message %q should name the operation type", res.Message)
	}
	if len(fake.batches) != 0 {
		t.Errorf("no records may be submitted when validation fails, got %d batches", len(fake.batches))
	}
}

func TestExecuteBatchEmptyList(t *testing.T) {
	fake := &fakeService{}
	res := New(fake).ExecuteBatch(context.Background(), "doc1", nil)
	if res.Success {
		t.Fatal("empty batch must be rejected up front")
	}
	if len(fake.batches) != 0 || fake.fetches != 0 {
		t.Error("empty batch must not touch the service")
	}
}

func TestExecuteBatchMissingType(t *testing.T) {
	fake := &fakeService{}
	res := New(fake).ExecuteBatch(context.Background(), "doc1", []request.Operation{{}})
	if res.Success || !strings.Contains(res.Message, "Operation 1") {
		t.Errorf("result = %+v", res)
	}
}

func TestExecuteBatchServiceError(t *testing.T) {
	fake := &fakeService{batchErr: func(int) error { return errors.New("503 backend unavailable") }}
	res := New(fake).ExecuteBatch(context.Background(), "doc1", []request.Operation{
		{Type: request.OpInsertText, Index: Int64(1), Text: String("x")},
	})
	if res.Success {
		t.Fatal("service failure must fail the batch")
	}
	if !strings.Contains(res.Message, "503 backend unavailable") {
		t.Errorf("message %q should include the underlying error", res.Message)
	}
}

func TestExecuteBatchBadDocumentID(t *testing.T) {
	fake := &fakeService{}
	res := New(fake).ExecuteBatch(context.Background(), "not a valid id", []request.Operation{
		{Type: request.OpInsertText, Index: Int64(1), Text: String("x")},
	})
	if res.Success || len(fake.batches) != 0 {
		t.Error("malformed document id must fail before any network call")
	}
}

func TestExecuteBatchSummaryTruncation(t *testing.T) {
	fake := &fakeService{}
	ed := New(fake)

	var ops []request.Operation
	for i := 0; i < 7; i++ {
		ops = append(ops, request.Operation{
			Type: request.OpInsertText, Index: Int64(int64(i + 1)), Text: String("x"),
		})
	}

	res := ed.ExecuteBatch(context.Background(), "doc1", ops)
	if !res.Success {
		t.Fatalf("ExecuteBatch failed: %s", res.Message)
	}
	if !strings.Contains(res.Message, "and 2 more") {
		t.Errorf("message %q should note the 2 summaries beyond the first 5", res.Message)
	}
	if summaries := res.Metadata["summaries"].([]string); len(summaries) != 7 {
		t.Errorf("metadata must keep all %d summaries, got %d", 7, len(summaries))
	}
}

func TestWithSummaryLimit(t *testing.T) {
	fake := &fakeService{}
	ed := New(fake, WithSummaryLimit(2))

	ops := []request.Operation{
		{Type: request.OpInsertText, Index: Int64(1), Text: String("a")},
		{Type: request.OpInsertText, Index: Int64(2), Text: String("b")},
		{Type: request.OpInsertText, Index: Int64(3), Text: String("c")},
	}
	res := ed.ExecuteBatch(context.Background(), "doc1", ops)
	if !strings.Contains(res.Message, "and 1 more") {
		t.Errorf("message = %q", res.Message)
	}
}
