package quill

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tsawler/quill/service"
	"github.com/tsawler/quill/structure"
)

// sectionPayload builds a document with the given header and footer
// segments. Each segment holds a single paragraph with the given text.
func sectionPayload(headers, footers map[string]string) *structure.DocumentPayload {
	p := &structure.DocumentPayload{
		DocumentID: "doc1",
		Headers:    map[string]*structure.SegmentPayload{},
		Footers:    map[string]*structure.SegmentPayload{},
		Body: &structure.BodyPayload{Content: []structure.StructuralElement{
			run(0, 10, "body text\n"),
		}},
	}
	segment := func(text string) *structure.SegmentPayload {
		content := text + "\n"
		end := int64(len([]rune(content)))
		return &structure.SegmentPayload{Content: []structure.StructuralElement{run(0, end, content)}}
	}
	for id, text := range headers {
		p.Headers[id] = segment(text)
	}
	for id, text := range footers {
		p.Footers[id] = segment(text)
	}
	return p
}

func TestUpdateHeaderFooter(t *testing.T) {
	payload := sectionPayload(map[string]string{"kix.h1": "Old Header"}, nil)
	fake := &fakeService{payloads: []*structure.DocumentPayload{payload}}
	ed := New(fake)

	res := ed.UpdateHeaderFooter(context.Background(), "doc1", "header", "New Title", "DEFAULT")
	if !res.Success {
		t.Fatalf("UpdateHeaderFooter failed: %s", res.Message)
	}

	if len(fake.batches) != 1 {
		t.Fatalf("expected 1 submission, got %d", len(fake.batches))
	}
	records := fake.batches[0]
	if len(records) != 2 {
		t.Fatalf("expected delete+insert, got %d records", len(records))
	}

	// Delete precedes insert; both target the header segment. "Old
	// Header" spans [0, 11) with the newline at 10, so the delete is
	// [0, 10).
	del := records[0].DeleteContentRange
	if del == nil {
		t.Fatalf("record 0 = %s, want deleteContentRange", records[0].Kind())
	}
	if del.Range.SegmentID != "kix.h1" || del.Range.StartIndex != 0 || del.Range.EndIndex != 10 {
		t.Errorf("delete = %+v", del.Range)
	}
	ins := records[1].InsertText
	if ins == nil || ins.Location.SegmentID != "kix.h1" || ins.Location.Index != 0 {
		t.Errorf("insert = %+v", ins)
	}
	if ins.Text != "New Title" {
		t.Errorf("inserted text = %q", ins.Text)
	}

	if res.Metadata["section_id"] != "kix.h1" || res.Metadata["replaced"] != true {
		t.Errorf("metadata = %+v", res.Metadata)
	}
}

func TestUpdateHeaderFooterEmptyParagraph(t *testing.T) {
	payload := sectionPayload(map[string]string{"kix.h1": ""}, nil)
	fake := &fakeService{payloads: []*structure.DocumentPayload{payload}}

	res := New(fake).UpdateHeaderFooter(context.Background(), "doc1", "header", "Title", "DEFAULT")
	if !res.Success {
		t.Fatalf("UpdateHeaderFooter failed: %s", res.Message)
	}
	// Nothing to delete: a single insert record.
	records := fake.batches[0]
	if len(records) != 1 || records[0].InsertText == nil {
		t.Errorf("records = %+v", records)
	}
}

func TestUpdateHeaderFooterNoSections(t *testing.T) {
	payload := sectionPayload(nil, map[string]string{"kix.f1": "Footer"})
	fake := &fakeService{payloads: []*structure.DocumentPayload{payload}}

	res := New(fake).UpdateHeaderFooter(context.Background(), "doc1", "header", "New Title", "DEFAULT")
	if res.Success {
		t.Fatal("a document with no headers must fail")
	}
	if !strings.Contains(res.Message, "create one first") {
		t.Errorf("message %q should instruct the caller to create a header", res.Message)
	}
	if len(fake.batches) != 0 {
		t.Error("no mutation may be issued when resolution fails")
	}
}

func TestUpdateHeaderFooterVariantHeuristics(t *testing.T) {
	payload := sectionPayload(map[string]string{
		"kix.abc":    "Default Header",
		"kix.first9": "First Page Header",
	}, nil)
	fake := &fakeService{payloads: []*structure.DocumentPayload{payload}}

	res := New(fake).UpdateHeaderFooter(context.Background(), "doc1", "header", "X", "FIRST_PAGE_ONLY")
	if !res.Success {
		t.Fatalf("UpdateHeaderFooter failed: %s", res.Message)
	}
	if res.Metadata["section_id"] != "kix.first9" {
		t.Errorf("section_id = %v, want the id matching the variant hint", res.Metadata["section_id"])
	}
	if res.Metadata["variant_matched"] != true {
		t.Error("variant_matched should be true for a hint match")
	}
}

func TestUpdateHeaderFooterFallsBackToFirst(t *testing.T) {
	payload := sectionPayload(map[string]string{
		"kix.zz": "Z",
		"kix.aa": "A",
	}, nil)
	fake := &fakeService{payloads: []*structure.DocumentPayload{payload}}

	res := New(fake).UpdateHeaderFooter(context.Background(), "doc1", "header", "X", "EVEN_PAGE")
	if !res.Success {
		t.Fatalf("UpdateHeaderFooter failed: %s", res.Message)
	}
	// No id matches "even": the first section (sorted by id) is used.
	if res.Metadata["section_id"] != "kix.aa" {
		t.Errorf("section_id = %v, want first available", res.Metadata["section_id"])
	}
	if res.Metadata["variant_matched"] != false {
		t.Error("variant_matched should be false for the fallback")
	}
}

func TestUpdateHeaderFooterValidation(t *testing.T) {
	fake := &fakeService{}
	ed := New(fake)
	ctx := context.Background()

	if res := ed.UpdateHeaderFooter(ctx, "doc1", "margin", "X", "DEFAULT"); res.Success {
		t.Error("invalid section type must be rejected")
	}
	if res := ed.UpdateHeaderFooter(ctx, "doc1", "header", "X", "SOMETIMES"); res.Success {
		t.Error("invalid variant must be rejected")
	}
	if fake.fetches != 0 {
		t.Error("validation failures must not fetch")
	}
}

func TestCreateHeaderFooter(t *testing.T) {
	fake := &fakeService{replies: []service.Reply{
		{CreateHeader: &service.CreateHeaderReply{HeaderID: "kix.newh"}},
	}}
	ed := New(fake)

	res := ed.CreateHeaderFooter(context.Background(), "doc1", "header", "DEFAULT")
	if !res.Success {
		t.Fatalf("CreateHeaderFooter failed: %s", res.Message)
	}
	if res.Metadata["section_id"] != "kix.newh" {
		t.Errorf("section_id = %v, want the service-assigned id", res.Metadata["section_id"])
	}
	records := fake.batches[0]
	if len(records) != 1 || records[0].CreateHeader == nil || records[0].CreateHeader.Type != "DEFAULT" {
		t.Errorf("records = %+v", records)
	}
}

func TestCreateHeaderFooterFirstPage(t *testing.T) {
	fake := &fakeService{}
	res := New(fake).CreateHeaderFooter(context.Background(), "doc1", "footer", "FIRST_PAGE_ONLY")
	if !res.Success {
		t.Fatalf("CreateHeaderFooter failed: %s", res.Message)
	}
	records := fake.batches[0]
	if len(records) != 2 {
		t.Fatalf("first-page create should also enable the document flag, got %d records", len(records))
	}
	if records[0].CreateFooter == nil || records[1].UpdateDocumentStyle == nil {
		t.Errorf("records = %s, %s", records[0].Kind(), records[1].Kind())
	}
}

func TestCreateHeaderFooterAlreadyExists(t *testing.T) {
	fake := &fakeService{batchErr: func(int) error {
		return errors.New("service returned status 400: a default header already exists")
	}}
	res := New(fake).CreateHeaderFooter(context.Background(), "doc1", "header", "DEFAULT")
	if res.Success {
		t.Fatal("duplicate create must fail")
	}
	if !strings.Contains(res.Message, "already exists") {
		t.Errorf("message = %q", res.Message)
	}
}
