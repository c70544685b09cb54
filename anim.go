package tm74hc595

import (
	"context"
	"time"
)

// Animation is a display effect rendered one frame at a time.
//
// Step renders exactly one frame and reports whether the animation is
// finished. Steps block for as long as the frame takes, which for timed
// effects is one refresh pass over the digits.
type Animation interface {
	Step() (bool, error)
}

// Play runs a to completion. It stops between frames when ctx is done,
// leaving whatever was last latched on the display.
func Play(ctx context.Context, a Animation) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		done, err := a.Step()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// ClearMode controls whether an effect blanks the digits it used when done.
type ClearMode int

const (
	// ClearAuto clears when more than one glyph was shown.
	ClearAuto ClearMode = iota
	// ClearAlways always clears.
	ClearAlways
	// ClearNever leaves the last frame latched.
	ClearNever
)

func (c ClearMode) wanted(msg Message) bool {
	switch c {
	case ClearAlways:
		return true
	case ClearNever:
		return false
	default:
		return len(msg) > 1
	}
}

// PrintOpts configures Print.
type PrintOpts struct {
	Pos      int           // First digit, or right-aligned when negative
	Duration time.Duration // Per fade step; ≤0 renders nothing, only places
	Fade     []byte        // Brightness masks, one step each (default: 0xFF)
	Clear    ClearMode
}

// PrintAnim multiplexes a message across the digits.
type PrintAnim struct {
	d       *Dev
	msg     Message
	masks   []DigitMask
	fade    []byte
	fi      int
	b       budget
	running bool
	clear   bool
	used    DigitMask
	done    bool
}

// NewPrint returns the animation behind Print.
func (d *Dev) NewPrint(c Content, o *PrintOpts) (*PrintAnim, error) {
	if o == nil {
		o = &PrintOpts{Duration: time.Second}
	}
	msg, err := c.message(d)
	if err != nil {
		return nil, err
	}
	fade := o.Fade
	if fade == nil {
		fade = []byte{0xFF}
	}
	return &PrintAnim{
		d:     d,
		msg:   msg,
		masks: d.place(len(msg), o.Pos),
		fade:  fade,
		b:     budget{clk: d.clk, d: o.Duration},
		clear: o.Clear.wanted(msg),
	}, nil
}

// Step renders one refresh pass.
func (p *PrintAnim) Step() (bool, error) {
	if p.done {
		return true, nil
	}
	if p.fi < len(p.fade) {
		if !p.running {
			p.b.start()
			p.running = true
		}
		used, err := p.d.pass(p.msg, p.masks, p.fade[p.fi], p.b.d > 0)
		p.used |= used
		if err != nil {
			return false, err
		}
		if p.b.expired() {
			p.fi++
			p.running = false
		}
		if p.fi < len(p.fade) {
			return false, nil
		}
	}
	p.done = true
	if p.clear && p.used != 0 {
		return true, p.d.Clear(p.used)
	}
	return true, nil
}

// Touched returns every digit the animation has addressed so far.
func (p *PrintAnim) Touched() DigitMask {
	return p.used
}

// Print shows c for a while, one digit at a time, fast enough that all
// digits appear lit.
//
// A sequence of Fade masks animates brightness: each mask is ANDed with the
// glyphs for one Duration, so masks with more and more bits set fade in.
// opts can be nil to show c at the first digit for one second.
func (d *Dev) Print(c Content, opts *PrintOpts) error {
	a, err := d.NewPrint(c, opts)
	if err != nil {
		return err
	}
	return Play(context.Background(), a)
}

// BlastOpts configures Blast.
type BlastOpts struct {
	Digits   DigitMask     // Digits to drive (default: AllDigits)
	Duration time.Duration // Per glyph
	Clear    ClearMode
}

// BlastAnim shows glyphs one after another on the same digits.
type BlastAnim struct {
	d      *Dev
	msg    Message
	digits DigitMask
	dur    time.Duration
	clear  bool
	i      int
	done   bool
}

// NewBlast returns the animation behind Blast.
func (d *Dev) NewBlast(c Content, o *BlastOpts) (*BlastAnim, error) {
	if o == nil {
		o = &BlastOpts{Duration: time.Second}
	}
	msg, err := c.message(d)
	if err != nil {
		return nil, err
	}
	digits := o.Digits
	if digits == 0 {
		digits = AllDigits
	}
	return &BlastAnim{
		d:      d,
		msg:    msg,
		digits: digits,
		dur:    o.Duration,
		clear:  o.Clear.wanted(msg),
	}, nil
}

// Step shows one glyph.
func (b *BlastAnim) Step() (bool, error) {
	if b.done {
		return true, nil
	}
	if b.i < len(b.msg) {
		if err := b.d.transmit(b.msg[b.i], b.digits); err != nil {
			return false, err
		}
		if b.dur > 0 {
			b.d.clk.Sleep(b.dur)
		}
		b.i++
		if b.i < len(b.msg) {
			return false, nil
		}
	}
	b.done = true
	if b.clear {
		return true, b.d.Clear(b.digits)
	}
	return true, nil
}

// Blast shows every glyph of c in turn on the same digits, all of them by
// default. No multiplexing is involved, so the display stays lit between
// calls. opts can be nil for one second per glyph.
func (d *Dev) Blast(c Content, opts *BlastOpts) error {
	a, err := d.NewBlast(c, opts)
	if err != nil {
		return err
	}
	return Play(context.Background(), a)
}

// FlashOpts configures Flash.
type FlashOpts struct {
	Pos   int
	On    time.Duration
	Off   time.Duration
	Count int
}

// FlashAnim blinks a message.
type FlashAnim struct {
	d       *Dev
	msg     Message
	o       FlashOpts
	cleared bool
	n       int
	cur     *PrintAnim
}

// NewFlash returns the animation behind Flash.
func (d *Dev) NewFlash(c Content, o *FlashOpts) (*FlashAnim, error) {
	if o == nil {
		o = &FlashOpts{On: 500 * time.Millisecond, Off: 500 * time.Millisecond, Count: 3}
	}
	msg, err := c.message(d)
	if err != nil {
		return nil, err
	}
	return &FlashAnim{d: d, msg: msg, o: *o}, nil
}

// Step renders one frame of the current blink. The dark phase of a blink is
// slept through at the end of its last frame.
func (f *FlashAnim) Step() (bool, error) {
	if !f.cleared {
		if err := f.d.Clear(AllDigits); err != nil {
			return false, err
		}
		f.cleared = true
	}
	if f.n >= f.o.Count {
		return true, nil
	}
	if f.cur == nil {
		f.cur = &PrintAnim{
			d:     f.d,
			msg:   f.msg,
			masks: f.d.place(len(f.msg), f.o.Pos),
			fade:  []byte{0xFF},
			b:     budget{clk: f.d.clk, d: f.o.On},
			clear: true,
		}
	}
	done, err := f.cur.Step()
	if err != nil || !done {
		return false, err
	}
	f.cur = nil
	f.n++
	if f.o.Off > 0 {
		f.d.clk.Sleep(f.o.Off)
	}
	return f.n >= f.o.Count, nil
}

// Flash clears the display, then blinks c Count times. opts can be nil for
// three blinks of half a second on and half a second off.
func (d *Dev) Flash(c Content, opts *FlashOpts) error {
	a, err := d.NewFlash(c, opts)
	if err != nil {
		return err
	}
	return Play(context.Background(), a)
}
