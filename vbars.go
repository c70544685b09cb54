package tm74hc595

import (
	"context"
	"strings"
	"time"
)

// Bar glyphs, as literal escapes. Each digit holds two units, one per column
// of vertical segments, and each column lights up one segment at a time.
const (
	barFull = "#36" // E F B C

	barRise3 = "#32" // E F B
	barRise2 = "#30" // E F
	barRise1 = "#20" // F

	barFall3 = "#16" // E B C
	barFall2 = "#06" // B C
	barFall1 = "#04" // C
)

// BarText returns the text of a bar gauge of magnitude n, two units per
// digit. Positive values grow from the left, negative values from the right.
// Fractions are rounded down to the nearest half unit.
func BarText(n float64) string {
	var b strings.Builder
	if n >= 0 {
		for n > 1.999 {
			b.WriteString(barFull)
			n -= 2
		}
		switch {
		case n > 1.499:
			b.WriteString(barRise3)
		case n > 0.999:
			b.WriteString(barRise2)
		case n > 0.499:
			b.WriteString(barRise1)
		}
		return b.String()
	}

	n = -n
	full := 0
	for n > 1.999 {
		full++
		n -= 2
	}
	switch {
	case n > 1.499:
		b.WriteString(barFall3)
	case n > 0.999:
		b.WriteString(barFall2)
	case n > 0.499:
		b.WriteString(barFall1)
	}
	b.WriteString(strings.Repeat(barFull, full))
	return b.String()
}

// NewVBars returns the animation behind VBars.
func (d *Dev) NewVBars(n float64, duration time.Duration) (*PrintAnim, error) {
	pos := 0
	if n < 0 {
		pos = -1
	}
	return d.NewPrint(Text(BarText(n)), &PrintOpts{Pos: pos, Duration: duration, Clear: ClearAlways})
}

// VBars shows n as a bar gauge for duration, then clears it.
func (d *Dev) VBars(n float64, duration time.Duration) error {
	a, err := d.NewVBars(n, duration)
	if err != nil {
		return err
	}
	return Play(context.Background(), a)
}
