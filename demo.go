package tm74hc595

import (
	"context"
	"strings"
	"time"
)

// Demo runs through every effect. It returns early when ctx is done.
func (d *Dev) Demo(ctx context.Context) error {
	nd := len(d.digits)
	play := func(a Animation, err error) error {
		if err != nil {
			return err
		}
		return Play(ctx, a)
	}
	sweep := func(amount int, dur time.Duration) error {
		for {
			a, err := d.NewScroll(amount, dur)
			if err != nil {
				return err
			}
			if err := Play(ctx, a); err != nil {
				return err
			}
			if !a.InRange() {
				return nil
			}
		}
	}

	if err := d.Clear(AllDigits); err != nil {
		return err
	}
	if err := play(d.NewPrint(Text("dEMO"), nil)); err != nil {
		return err
	}

	for i := 0; i <= nd*4; i++ {
		if err := play(d.NewVBars(float64(i)/2, 250*time.Millisecond)); err != nil {
			return err
		}
	}

	if err := play(d.NewBlast(Text("1234567890 "), &BlastOpts{Duration: 500 * time.Millisecond})); err != nil {
		return err
	}
	if err := play(d.NewPrint(Text("YO!"), &PrintOpts{Duration: 2 * time.Second})); err != nil {
		return err
	}

	msg, err := d.Encode("WASS"+strings.Repeat("U", nd)+"P?", PadAuto)
	if err != nil {
		return err
	}
	if err := d.ScrollInit(msg, 0); err != nil {
		return err
	}
	if err := sweep(1, 500*time.Millisecond); err != nil {
		return err
	}

	if err := d.ScrollInit(Text(strings.Repeat(" ", nd-1)+"CHILLIN'"), 0); err != nil {
		return err
	}
	if err := sweep(1, 500*time.Millisecond); err != nil {
		return err
	}
	if err := d.SetDirection(-1); err != nil {
		return err
	}
	if err := sweep(-1, 500*time.Millisecond); err != nil {
		return err
	}
	if err := d.Clear(AllDigits); err != nil {
		return err
	}
	d.clk.Sleep(500 * time.Millisecond)

	fadeIn := []byte{0b00000001, 0b00100011, 0b01100011, 0b01110111, 0b11111111}
	fadeOut := []byte{0b11111110, 0b11011100, 0b10011100, 0b10001000, 0b00000000}
	for _, fade := range [][]byte{fadeIn, fadeOut} {
		if err := play(d.NewPrint(Text("FADE"), &PrintOpts{Duration: 500 * time.Millisecond, Fade: fade})); err != nil {
			return err
		}
	}

	if err := play(d.NewFlash(Text("LOOK"), nil)); err != nil {
		return err
	}

	// A figure of eight, one segment at a time.
	if err := play(d.NewBlast(Text("#01#02#40#10#08#04#40#20#01"), &BlastOpts{Duration: 500 * time.Millisecond})); err != nil {
		return err
	}

	msg, err = d.Encode("ABCDEFGHIJKLMNOPQRSTUVWXYZ abcdefghijklmnopqrstuvwxyz", PadAuto)
	if err != nil {
		return err
	}
	if err := d.ScrollInit(msg, 0); err != nil {
		return err
	}
	if err := sweep(1, 250*time.Millisecond); err != nil {
		return err
	}

	return play(d.NewPrint(Text("dONE"), nil))
}
