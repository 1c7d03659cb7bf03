package request

import (
	"strings"
	"testing"
)

func i64(v int64) *int64  { return &v }
func iv(v int) *int       { return &v }
func sv(v string) *string { return &v }
func bv(v bool) *bool     { return &v }

func TestBuildInsertText(t *testing.T) {
	records, desc, err := Build(Operation{Type: OpInsertText, Index: i64(5), Text: sv("hello")})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	it := records[0].InsertText
	if it == nil || it.Location.Index != 5 || it.Text != "hello" {
		t.Errorf("unexpected record: %+v", records[0])
	}
	if !strings.Contains(desc, "index 5") {
		t.Errorf("description %q should name the index", desc)
	}
}

func TestBuildReplaceTextOrder(t *testing.T) {
	records, _, err := Build(Operation{
		Type:       OpReplaceText,
		StartIndex: i64(3),
		EndIndex:   i64(9),
		Text:       sv("new"),
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("replace_text must expand to exactly 2 records, got %d", len(records))
	}
	// Delete must precede insert: the delete boundaries are computed
	// against the pre-insert document state.
	del := records[0].DeleteContentRange
	if del == nil || del.Range.StartIndex != 3 || del.Range.EndIndex != 9 {
		t.Fatalf("record 0 = %s, want deleteContentRange [3, 9)", records[0].Kind())
	}
	ins := records[1].InsertText
	if ins == nil || ins.Location.Index != 3 || ins.Text != "new" {
		t.Fatalf("record 1 = %s, want insertText at 3", records[1].Kind())
	}
}

func TestBuildFormatText(t *testing.T) {
	t.Run("no fields", func(t *testing.T) {
		_, _, err := Build(Operation{Type: OpFormatText, StartIndex: i64(1), EndIndex: i64(5)})
		if err == nil {
			t.Fatal("expected error for format_text with no style fields")
		}
		if !strings.Contains(err.Error(), "no formatting options provided") {
			t.Errorf("error = %v", err)
		}
	})

	t.Run("single field mask", func(t *testing.T) {
		records, _, err := Build(Operation{
			Type: OpFormatText, StartIndex: i64(1), EndIndex: i64(5), Italic: bv(true),
		})
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		uts := records[0].UpdateTextStyle
		if uts == nil {
			t.Fatalf("expected updateTextStyle, got %s", records[0].Kind())
		}
		if uts.Fields != "italic" {
			t.Errorf("field mask = %q, want exactly %q", uts.Fields, "italic")
		}
		if uts.Style.Italic == nil || !*uts.Style.Italic {
			t.Error("italic not set in style")
		}
		if uts.Style.Bold != nil || uts.Style.Underline != nil || uts.Style.FontSize != nil {
			t.Error("unsupplied fields must not appear in the style")
		}
	})

	t.Run("union mask", func(t *testing.T) {
		records, _, err := Build(Operation{
			Type: OpFormatText, StartIndex: i64(1), EndIndex: i64(5),
			Bold: bv(true), FontSize: iv(14), FontFamily: sv("Georgia"),
		})
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		uts := records[0].UpdateTextStyle
		if uts.Fields != "bold,fontSize,weightedFontFamily" {
			t.Errorf("field mask = %q", uts.Fields)
		}
		if uts.Style.FontSize == nil || uts.Style.FontSize.Magnitude != 14 || uts.Style.FontSize.Unit != "PT" {
			t.Errorf("font size = %+v", uts.Style.FontSize)
		}
	})

	t.Run("font size out of range", func(t *testing.T) {
		_, _, err := Build(Operation{
			Type: OpFormatText, StartIndex: i64(1), EndIndex: i64(5), FontSize: iv(500),
		})
		if err == nil {
			t.Fatal("expected error for font size 500")
		}
	})
}

func TestBuildInsertTable(t *testing.T) {
	records, desc, err := Build(Operation{
		Type: OpInsertTable, Index: i64(10), Rows: iv(2), Columns: iv(3),
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	it := records[0].InsertTable
	if it == nil || it.Rows != 2 || it.Columns != 3 || it.Location.Index != 10 {
		t.Errorf("unexpected record: %+v", records[0])
	}
	if !strings.Contains(desc, "2x3") {
		t.Errorf("description %q should name the dimensions", desc)
	}

	_, _, err = Build(Operation{Type: OpInsertTable, Index: i64(10), Rows: iv(1001), Columns: iv(2)})
	if err == nil {
		t.Error("expected error for 1001 rows")
	}
}

func TestBuildFindReplace(t *testing.T) {
	records, _, err := Build(Operation{Type: OpFindReplace, Find: sv("old"), Replace: sv("new")})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	rat := records[0].ReplaceAllText
	if rat == nil || rat.ContainsText.Text != "old" || rat.ReplaceText != "new" {
		t.Errorf("unexpected record: %+v", records[0])
	}
	if rat.ContainsText.MatchCase {
		t.Error("matchCase must default to false")
	}
}

func TestBuildRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		op   Operation
	}{
		{"insert_text without text", Operation{Type: OpInsertText, Index: i64(1)}},
		{"insert_text without index", Operation{Type: OpInsertText, Text: sv("x")}},
		{"delete_text without range", Operation{Type: OpDeleteText}},
		{"delete_text inverted range", Operation{Type: OpDeleteText, StartIndex: i64(5), EndIndex: i64(5)}},
		{"replace_text without text", Operation{Type: OpReplaceText, StartIndex: i64(1), EndIndex: i64(2)}},
		{"insert_table without dimensions", Operation{Type: OpInsertTable, Index: i64(1)}},
		{"insert_page_break without index", Operation{Type: OpInsertPageBreak}},
		{"find_replace without find", Operation{Type: OpFindReplace, Replace: sv("x")}},
		{"find_replace empty find", Operation{Type: OpFindReplace, Find: sv(""), Replace: sv("x")}},
		{"negative index", Operation{Type: OpInsertText, Index: i64(-2), Text: sv("x")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := Build(tt.op); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestBuildUnsupportedType(t *testing.T) {
	_, _, err := Build(Operation{Type: "rotate_text"})
	if err == nil {
		t.Fatal("expected error for unsupported type")
	}
	for _, op := range SupportedOps {
		if !strings.Contains(err.Error(), op) {
			t.Errorf("error %q should name supported type %s", err, op)
		}
	}
}

func TestRecordKind(t *testing.T) {
	tests := []struct {
		record Record
		want   string
	}{
		{NewInsertText(1, "x"), "insertText"},
		{NewDeleteRange(1, 2), "deleteContentRange"},
		{NewBold(1, 2), "updateTextStyle"},
		{NewInsertTable(1, 2, 2), "insertTable"},
		{NewInsertPageBreak(1), "insertPageBreak"},
		{NewBullets(1, 2, "BULLET_DISC_CIRCLE_SQUARE"), "createParagraphBullets"},
		{NewReplaceAllText("a", "b", true), "replaceAllText"},
		{NewInlineImage(1, "https://example.com/x.png", 0, 0), "insertInlineImage"},
		{NewCreateHeader("DEFAULT"), "createHeader"},
		{NewCreateFooter("DEFAULT"), "createFooter"},
		{NewUseFirstPageHeaderFooter(), "updateDocumentStyle"},
		{Record{}, "empty"},
	}
	for _, tt := range tests {
		if got := tt.record.Kind(); got != tt.want {
			t.Errorf("Kind() = %q, want %q", got, tt.want)
		}
	}
}

func TestSegmentRecords(t *testing.T) {
	del := NewSegmentDeleteRange("kix.h1", 0, 10)
	if del.DeleteContentRange.Range.SegmentID != "kix.h1" {
		t.Error("segment id not carried on delete range")
	}
	ins := NewSegmentInsertText("kix.h1", 0, "Title")
	if ins.InsertText.Location.SegmentID != "kix.h1" {
		t.Error("segment id not carried on insert location")
	}
}
