package property

import "unicode/utf16"

// StringHash returns the 32-bit polynomial hash s[0]*31^(n-1) + ... + s[n-1]
// computed over the UTF-16 code units of s with wrap-around arithmetic.
// Invalid UTF-8 sequences hash as U+FFFD.
func StringHash(s string) int32 {
	var h int32

	for _, unit := range utf16.Encode([]rune(s)) {
		h = 31*h + int32(unit)
	}

	return h
}
