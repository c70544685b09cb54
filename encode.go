package tm74hc595

import (
	"encoding/hex"
	"strings"

	"github.com/flavioheleno/tm74hc595/font"
)

// Escape starts a literal glyph in text: "#3F" is the raw byte 0x3F and
// "##" is the font's own glyph for '#'.
const Escape = '#'

// PadAuto pads encoded text with as many blanks as there are digits.
const PadAuto = -1

// Message is a sequence of encoded glyphs, one per digit.
type Message []byte

// Len returns the number of glyphs.
func (m Message) Len() int {
	return len(m)
}

// Content is something that can be shown: a Text or an already encoded
// Message.
type Content interface {
	message(d *Dev) (Message, error)
}

// Text is unencoded content.
type Text string

func (t Text) message(d *Dev) (Message, error) {
	return d.Encode(string(t), 0)
}

func (m Message) message(*Dev) (Message, error) {
	return m, nil
}

// Encode turns text into glyphs.
//
// padding blanks are added on both sides of text; PadAuto uses the digit
// count, which lets a scroller start and end off-screen.
//
// The point character is merged into the previous glyph and dropped when
// nothing precedes it. Characters missing from the font are replaced by the
// fallback glyph, or reported as a *GlyphError when the fallback is
// disabled. A malformed escape is always reported as an *EscapeError.
//
// For compatibility with the TINKER font, when '?' is drawn as 0x53 and the
// point character is '.', a '?' also lights the point of the previous glyph.
func (d *Dev) Encode(text string, padding int) (Message, error) {
	if padding == PadAuto {
		padding = len(d.digits)
	}
	if padding > 0 {
		pad := strings.Repeat(string(font.Blank), padding)
		text = pad + text + pad
	}

	rs := []rune(text)
	out := make(Message, 0, len(rs))
	for i := 0; i < len(rs); i++ {
		c := rs[i]
		switch {
		case c == d.point:
			if len(out) > 0 {
				out[len(out)-1] |= font.SegDP
			}

		case c == Escape:
			if i+1 < len(rs) && rs[i+1] == Escape {
				i++
				g, err := d.glyph(Escape)
				if err != nil {
					return nil, err
				}
				out = append(out, g)
				continue
			}
			g, err := unescape(rs, i)
			if err != nil {
				return nil, err
			}
			out = append(out, g)
			i += 2

		case c == '?' && d.quirk:
			if len(out) > 0 {
				out[len(out)-1] |= font.SegDP
			}
			g, _ := d.font.Lookup(c)
			out = append(out, g)

		default:
			g, err := d.glyph(c)
			if err != nil {
				return nil, err
			}
			out = append(out, g)
		}
	}
	return out, nil
}

// glyph looks r up, applying the fallback policy.
func (d *Dev) glyph(r rune) (byte, error) {
	if g, ok := d.font.Lookup(r); ok {
		return g, nil
	}
	if d.noFallback {
		return 0, &GlyphError{Rune: r}
	}
	d.log.Debug().Str("char", string(r)).Msg("tm74hc595: no glyph, using fallback")
	return d.undef, nil
}

// unescape decodes the two hex digits following the escape marker at i.
func unescape(rs []rune, i int) (byte, error) {
	end := i + 3
	if end > len(rs) {
		return 0, &EscapeError{Pos: i, Seq: string(rs[i:])}
	}
	b, err := hex.DecodeString(string(rs[i+1 : end]))
	if err != nil {
		return 0, &EscapeError{Pos: i, Seq: string(rs[i:end])}
	}
	return b[0], nil
}
