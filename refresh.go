package tm74hc595

// place assigns each of n glyphs a digit mask for a layout starting at pos.
// Unplaced glyphs get a zero mask.
//
// With pos >= 0 glyph i goes to digit pos+i. With pos < 0 the layout is
// right-aligned: glyph i goes to digit len(digits)-n+pos+i+1, so pos -1 ends
// on the last digit.
func (d *Dev) place(n, pos int) []DigitMask {
	masks := make([]DigitMask, n)
	nd := len(d.digits)
	if pos >= 0 {
		for i := range masks {
			j := pos + i
			if j >= nd {
				// Later glyphs land even further right.
				break
			}
			masks[i] = d.digits[j]
		}
		return masks
	}
	for i := range masks {
		j := nd - n + pos + i + 1
		if j < 0 || j >= nd {
			continue
		}
		masks[i] = d.digits[j]
	}
	return masks
}

// pass walks a placed message once, sending each glyph ANDed with fade to its
// digits. With emit unset nothing is sent. It returns the digits addressed.
func (d *Dev) pass(msg Message, masks []DigitMask, fade byte, emit bool) (DigitMask, error) {
	var used DigitMask
	for i, m := range masks {
		if m == 0 {
			continue
		}
		if emit {
			if err := d.transmit(msg[i]&fade, m); err != nil {
				return used, err
			}
		}
		used |= m
	}
	return used, nil
}
