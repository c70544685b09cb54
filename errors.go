package tm74hc595

import (
	"errors"
	"fmt"
)

var (
	// ErrNoGlyph is returned when a character is missing from the font and
	// no fallback is configured.
	ErrNoGlyph = errors.New("tm74hc595: no glyph")
	// ErrBadEscape is returned for a literal escape that is not followed by
	// two hex digits.
	ErrBadEscape = errors.New("tm74hc595: malformed escape")
	// ErrNoScroll is returned when scrolling before ScrollInit.
	ErrNoScroll = errors.New("tm74hc595: no scroll message")
	// ErrHalted is returned by every operation after Halt.
	ErrHalted = errors.New("tm74hc595: halted")
)

// GlyphError reports a character missing from the font.
type GlyphError struct {
	Rune rune
}

func (e *GlyphError) Error() string {
	return fmt.Sprintf("tm74hc595: no glyph for %q", e.Rune)
}

func (e *GlyphError) Unwrap() error { return ErrNoGlyph }

// EscapeError reports a malformed literal escape.
type EscapeError struct {
	Pos int    // Rune offset of the escape marker
	Seq string // Offending text, possibly truncated
}

func (e *EscapeError) Error() string {
	return fmt.Sprintf("tm74hc595: malformed escape %q at %d", e.Seq, e.Pos)
}

func (e *EscapeError) Unwrap() error { return ErrBadEscape }
