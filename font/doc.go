// Package font provides 7-segment glyph tables.
//
// Segments are named the usual way, one bit each:
//
//	 --A--
//	|     |
//	F     B
//	|     |
//	 --G--
//	|     |
//	E     C
//	|     |
//	 --D--  DP
//
// For example '7' is drawn as A|B|C|F (0x27) in the TINKER font, which gives
// it a little hook.
//
// Example usage:
//
//	f := font.Tinker()
//	g, ok := f.Lookup('7') // 0x27, true
//
//	// Add a glyph for '#'
//	f = f.With(map[rune]byte{'#': font.SegB | font.SegC | font.SegE | font.SegF | font.SegG})
package font
