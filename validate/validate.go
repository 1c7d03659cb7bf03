package validate

import (
	"fmt"
	"strings"
)

// Policy limits mirrored from the document service's own constraints.
// Enforcing them client-side fails fast instead of round-tripping a
// request the service will reject.
const (
	MaxTableRows    = 1000
	MaxTableColumns = 20
	MinFontSize     = 1
	MaxFontSize     = 400
)

// HeaderFooterVariants lists the accepted header/footer variant names.
var HeaderFooterVariants = []string{"DEFAULT", "FIRST_PAGE_ONLY", "EVEN_PAGE"}

// DocumentID checks that id has the shape of a service document id.
func DocumentID(id string) (bool, string) {
	if id == "" {
		return false, "document ID is required"
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false, fmt.Sprintf("document ID contains invalid character %q", r)
		}
	}
	return true, ""
}

// TableData checks that rows form a non-empty rectangular grid within the
// service's row and column ceilings.
func TableData(rows [][]string) (bool, string) {
	if len(rows) == 0 {
		return false, "table data must contain at least one row"
	}
	if len(rows) > MaxTableRows {
		return false, fmt.Sprintf("table has %d rows; the maximum is %d", len(rows), MaxTableRows)
	}
	width := len(rows[0])
	if width == 0 {
		return false, "table rows must contain at least one cell"
	}
	if width > MaxTableColumns {
		return false, fmt.Sprintf("table has %d columns; the maximum is %d", width, MaxTableColumns)
	}
	for i, row := range rows {
		if len(row) != width {
			return false, fmt.Sprintf("table data is not rectangular: row %d has %d cells, expected %d", i+1, len(row), width)
		}
	}
	return true, ""
}

// CellGrid rejects null cells and converts a decoded JSON grid into the
// [][]string form the rest of the planner works with. The pointer layer
// exists only at the JSON boundary; inside the library a cell cannot be
// null.
func CellGrid(rows [][]*string) ([][]string, bool, string) {
	grid := make([][]string, len(rows))
	for i, row := range rows {
		grid[i] = make([]string, len(row))
		for j, cell := range row {
			if cell == nil {
				return nil, false, fmt.Sprintf("table cell at row %d, column %d is null; every cell must be a string", i+1, j+1)
			}
			grid[i][j] = *cell
		}
	}
	if ok, msg := TableData(grid); !ok {
		return nil, false, msg
	}
	return grid, true, ""
}

// TextFormat holds the optional text-formatting parameters of a format
// request. Nil means the parameter was not supplied.
type TextFormat struct {
	Bold       *bool
	Italic     *bool
	Underline  *bool
	FontSize   *int
	FontFamily *string
}

// IsZero reports whether no formatting parameter was supplied.
func (f TextFormat) IsZero() bool {
	return f.Bold == nil && f.Italic == nil && f.Underline == nil &&
		f.FontSize == nil && f.FontFamily == nil
}

// Formatting checks the text-formatting parameters of a format request.
// At least one parameter must be supplied.
func Formatting(f TextFormat) (bool, string) {
	if f.IsZero() {
		return false, "no formatting options provided"
	}
	if f.FontSize != nil {
		if *f.FontSize < MinFontSize || *f.FontSize > MaxFontSize {
			return false, fmt.Sprintf("font size must be between %d and %d, got %d", MinFontSize, MaxFontSize, *f.FontSize)
		}
	}
	if f.FontFamily != nil && strings.TrimSpace(*f.FontFamily) == "" {
		return false, "font family must be a non-empty string"
	}
	return true, ""
}

// Index checks that i is a usable document index. A negative index is a
// hard user error: the caller should inspect the document structure first
// to learn current offsets.
func Index(i int64) (bool, string) {
	if i < 0 {
		return false, fmt.Sprintf("index must be non-negative, got %d; inspect the document structure to find current indices", i)
	}
	return true, ""
}

// IndexRange checks that [start, end) is a well-formed range. When
// docLength is positive, both bounds must also fall within
// [0, docLength].
func IndexRange(start, end, docLength int64) (bool, string) {
	if ok, msg := Index(start); !ok {
		return false, msg
	}
	if end <= start {
		return false, fmt.Sprintf("end index %d must be greater than start index %d", end, start)
	}
	if docLength > 0 && end > docLength {
		return false, fmt.Sprintf("range [%d, %d) extends past the end of the document (length %d)", start, end, docLength)
	}
	return true, ""
}

// ElementInsertion checks the parameters of a structural element insertion.
func ElementInsertion(kind string, rows, cols int) (bool, string) {
	switch kind {
	case "table":
		if rows < 1 || cols < 1 {
			return false, "table insertion requires positive row and column counts"
		}
		if rows > MaxTableRows {
			return false, fmt.Sprintf("table has %d rows; the maximum is %d", rows, MaxTableRows)
		}
		if cols > MaxTableColumns {
			return false, fmt.Sprintf("table has %d columns; the maximum is %d", cols, MaxTableColumns)
		}
		return true, ""
	case "list", "page_break":
		return true, ""
	default:
		return false, fmt.Sprintf("unsupported element type %q; supported types are table, list, page_break", kind)
	}
}

// HeaderFooter checks a section type and variant pair.
func HeaderFooter(sectionType, variant string) (bool, string) {
	if sectionType != "header" && sectionType != "footer" {
		return false, fmt.Sprintf("section type must be %q or %q, got %q", "header", "footer", sectionType)
	}
	for _, v := range HeaderFooterVariants {
		if variant == v {
			return true, ""
		}
	}
	return false, fmt.Sprintf("unsupported header/footer variant %q; supported variants are %s", variant, strings.Join(HeaderFooterVariants, ", "))
}

// OperationCount checks that a batch contains at least one operation.
func OperationCount(n int) (bool, string) {
	if n == 0 {
		return false, "operation list must contain at least one operation"
	}
	return true, ""
}
