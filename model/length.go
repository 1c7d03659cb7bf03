package model

import "unicode/utf16"

// TextLength returns the length of s in the document's index units, which
// are UTF-16 code units. Characters outside the basic multilingual plane
// occupy two units.
func TextLength(s string) int64 {
	return int64(len(utf16.Encode([]rune(s))))
}
