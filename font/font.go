// Package font maps characters to 7-segment glyphs.
//
// A glyph is one byte: bits 0-6 are the segments A-G and bit 7 is the
// decimal point (or colon, depending on the module wiring).
package font

// Segment bits of a glyph.
const (
	SegA  byte = 1 << iota // top
	SegB                   // top right
	SegC                   // bottom right
	SegD                   // bottom
	SegE                   // bottom left
	SegF                   // top left
	SegG                   // middle
	SegDP                  // decimal point or colon
)

// Font is an immutable character to glyph table.
//
// The zero value is an empty font.
type Font struct {
	glyphs map[rune]byte
}

// New returns a Font holding a copy of glyphs.
func New(glyphs map[rune]byte) Font {
	m := make(map[rune]byte, len(glyphs))
	for r, g := range glyphs {
		m[r] = g
	}
	return Font{glyphs: m}
}

// Lookup returns the glyph for r. Lookup is exact: there is no case folding.
func (f Font) Lookup(r rune) (byte, bool) {
	g, ok := f.glyphs[r]
	return g, ok
}

// Has reports whether the font defines r.
func (f Font) Has(r rune) bool {
	_, ok := f.glyphs[r]
	return ok
}

// Len returns the number of characters defined by the font.
func (f Font) Len() int {
	return len(f.glyphs)
}

// Runes calls fn for every character of the font, in no particular order.
func (f Font) Runes(fn func(r rune, glyph byte)) {
	for r, g := range f.glyphs {
		fn(r, g)
	}
}

// With returns a copy of f with the extra glyphs added or replaced.
func (f Font) With(extra map[rune]byte) Font {
	m := make(map[rune]byte, len(f.glyphs)+len(extra))
	for r, g := range f.glyphs {
		m[r] = g
	}
	for r, g := range extra {
		m[r] = g
	}
	return Font{glyphs: m}
}
