package request

import (
	"fmt"
	"strings"

	"github.com/tsawler/quill/validate"
)

// Logical operation types accepted in a batch.
const (
	OpInsertText      = "insert_text"
	OpDeleteText      = "delete_text"
	OpReplaceText     = "replace_text"
	OpFormatText      = "format_text"
	OpInsertTable     = "insert_table"
	OpInsertPageBreak = "insert_page_break"
	OpFindReplace     = "find_replace"
)

// SupportedOps lists the operation types Build accepts, in documentation
// order.
var SupportedOps = []string{
	OpInsertText, OpDeleteText, OpReplaceText, OpFormatText,
	OpInsertTable, OpInsertPageBreak, OpFindReplace,
}

// Operation is one caller-supplied logical edit intent. Optional fields
// are pointers so a missing field can be told apart from a zero value when
// the required-field schedule is checked.
type Operation struct {
	Type       string  `json:"type"`
	Index      *int64  `json:"index,omitempty"`
	StartIndex *int64  `json:"start_index,omitempty"`
	EndIndex   *int64  `json:"end_index,omitempty"`
	Text       *string `json:"text,omitempty"`
	Rows       *int    `json:"rows,omitempty"`
	Columns    *int    `json:"columns,omitempty"`
	Find       *string `json:"find_text,omitempty"`
	Replace    *string `json:"replace_text,omitempty"`
	MatchCase  bool    `json:"match_case,omitempty"`
	Bold       *bool   `json:"bold,omitempty"`
	Italic     *bool   `json:"italic,omitempty"`
	Underline  *bool   `json:"underline,omitempty"`
	FontSize   *int    `json:"font_size,omitempty"`
	FontFamily *string `json:"font_family,omitempty"`
}

// Format collects the operation's text-formatting parameters.
func (op Operation) Format() validate.TextFormat {
	return validate.TextFormat{
		Bold:       op.Bold,
		Italic:     op.Italic,
		Underline:  op.Underline,
		FontSize:   op.FontSize,
		FontFamily: op.FontFamily,
	}
}

// Build translates one logical operation into its ordered mutation records
// and a short human-readable description. It returns an error when the
// operation type is unsupported or a required field is missing or invalid;
// no partial record list is ever returned alongside an error.
func Build(op Operation) ([]Record, string, error) {
	switch op.Type {
	case OpInsertText:
		return buildInsertText(op)
	case OpDeleteText:
		return buildDeleteText(op)
	case OpReplaceText:
		return buildReplaceText(op)
	case OpFormatText:
		return buildFormatText(op)
	case OpInsertTable:
		return buildInsertTable(op)
	case OpInsertPageBreak:
		return buildInsertPageBreak(op)
	case OpFindReplace:
		return buildFindReplace(op)
	default:
		return nil, "", fmt.Errorf("unsupported operation type %q; supported types are %s",
			op.Type, strings.Join(SupportedOps, ", "))
	}
}

func buildInsertText(op Operation) ([]Record, string, error) {
	if op.Text == nil || op.Index == nil {
		return nil, "", fmt.Errorf("insert_text requires text and index")
	}
	if ok, msg := validate.Index(*op.Index); !ok {
		return nil, "", fmt.Errorf("insert_text: %s", msg)
	}
	desc := fmt.Sprintf("Insert text at index %d", *op.Index)
	return []Record{NewInsertText(*op.Index, *op.Text)}, desc, nil
}

func buildDeleteText(op Operation) ([]Record, string, error) {
	if op.StartIndex == nil || op.EndIndex == nil {
		return nil, "", fmt.Errorf("delete_text requires start_index and end_index")
	}
	if ok, msg := validate.IndexRange(*op.StartIndex, *op.EndIndex, 0); !ok {
		return nil, "", fmt.Errorf("delete_text: %s", msg)
	}
	desc := fmt.Sprintf("Delete text from index %d to %d", *op.StartIndex, *op.EndIndex)
	return []Record{NewDeleteRange(*op.StartIndex, *op.EndIndex)}, desc, nil
}

// buildReplaceText expands to exactly two records with a fixed order:
// delete-range then insert-text. The delete boundaries are computed
// against the pre-insert document state, so the delete must go first.
func buildReplaceText(op Operation) ([]Record, string, error) {
	if op.StartIndex == nil || op.EndIndex == nil || op.Text == nil {
		return nil, "", fmt.Errorf("replace_text requires start_index, end_index and text")
	}
	if ok, msg := validate.IndexRange(*op.StartIndex, *op.EndIndex, 0); !ok {
		return nil, "", fmt.Errorf("replace_text: %s", msg)
	}
	records := []Record{
		NewDeleteRange(*op.StartIndex, *op.EndIndex),
		NewInsertText(*op.StartIndex, *op.Text),
	}
	desc := fmt.Sprintf("Replace text from index %d to %d", *op.StartIndex, *op.EndIndex)
	return records, desc, nil
}

func buildFormatText(op Operation) ([]Record, string, error) {
	if op.StartIndex == nil || op.EndIndex == nil {
		return nil, "", fmt.Errorf("format_text requires start_index and end_index")
	}
	if ok, msg := validate.IndexRange(*op.StartIndex, *op.EndIndex, 0); !ok {
		return nil, "", fmt.Errorf("format_text: %s", msg)
	}
	if ok, msg := validate.Formatting(op.Format()); !ok {
		return nil, "", fmt.Errorf("format_text: %s", msg)
	}

	style, fields := styleFromFormat(op)
	desc := fmt.Sprintf("Format text from index %d to %d (%s)", *op.StartIndex, *op.EndIndex, fields)
	return []Record{NewUpdateTextStyle(*op.StartIndex, *op.EndIndex, style, fields)}, desc, nil
}

// styleFromFormat builds the text style and its field mask. The mask is
// exactly the union of the supplied style keys.
func styleFromFormat(op Operation) (TextStyle, string) {
	var style TextStyle
	var mask []string
	if op.Bold != nil {
		style.Bold = op.Bold
		mask = append(mask, "bold")
	}
	if op.Italic != nil {
		style.Italic = op.Italic
		mask = append(mask, "italic")
	}
	if op.Underline != nil {
		style.Underline = op.Underline
		mask = append(mask, "underline")
	}
	if op.FontSize != nil {
		size := Points(float64(*op.FontSize))
		style.FontSize = &size
		mask = append(mask, "fontSize")
	}
	if op.FontFamily != nil {
		style.WeightedFontFamily = &WeightedFontFamily{FontFamily: *op.FontFamily}
		mask = append(mask, "weightedFontFamily")
	}
	return style, strings.Join(mask, ",")
}

func buildInsertTable(op Operation) ([]Record, string, error) {
	if op.Index == nil || op.Rows == nil || op.Columns == nil {
		return nil, "", fmt.Errorf("insert_table requires index, rows and columns")
	}
	if ok, msg := validate.Index(*op.Index); !ok {
		return nil, "", fmt.Errorf("insert_table: %s", msg)
	}
	if ok, msg := validate.ElementInsertion("table", *op.Rows, *op.Columns); !ok {
		return nil, "", fmt.Errorf("insert_table: %s", msg)
	}
	desc := fmt.Sprintf("Insert %dx%d table at index %d", *op.Rows, *op.Columns, *op.Index)
	return []Record{NewInsertTable(*op.Index, *op.Rows, *op.Columns)}, desc, nil
}

func buildInsertPageBreak(op Operation) ([]Record, string, error) {
	if op.Index == nil {
		return nil, "", fmt.Errorf("insert_page_break requires index")
	}
	if ok, msg := validate.Index(*op.Index); !ok {
		return nil, "", fmt.Errorf("insert_page_break: %s", msg)
	}
	desc := fmt.Sprintf("Insert page break at index %d", *op.Index)
	return []Record{NewInsertPageBreak(*op.Index)}, desc, nil
}

func buildFindReplace(op Operation) ([]Record, string, error) {
	if op.Find == nil || op.Replace == nil {
		return nil, "", fmt.Errorf("find_replace requires find_text and replace_text")
	}
	if *op.Find == "" {
		return nil, "", fmt.Errorf("find_replace: find_text must not be empty")
	}
	desc := fmt.Sprintf("Replace all %q with %q", *op.Find, *op.Replace)
	return []Record{NewReplaceAllText(*op.Find, *op.Replace, op.MatchCase)}, desc, nil
}
