package tm74hc595

import (
	"context"
	"time"
)

// scrollState is the circular window of the current scroll session.
type scrollState struct {
	msg    Message
	cursor int
	last   int // amount of the previous step, 0 before the first one
}

// ScrollInit starts a scroll session over c, replacing any previous one.
//
// Messages shorter than the display are left-padded with blanks. A negative
// start counts from the end: -1 puts the last glyph on the last digit.
func (d *Dev) ScrollInit(c Content, start int) error {
	msg, err := c.message(d)
	if err != nil {
		return err
	}
	nd := len(d.digits)
	m := make(Message, 0, max(len(msg), nd))
	for i := len(msg); i < nd; i++ {
		m = append(m, d.blank)
	}
	m = append(m, msg...)

	cursor := start
	if start < 0 {
		cursor = len(m) - nd + start + 1
	}
	d.scroll = scrollState{msg: m, cursor: mod(cursor, len(m))}
	d.log.Debug().Int("len", len(m)).Int("cursor", d.scroll.cursor).Msg("tm74hc595: scroll")
	return nil
}

// ScrollReset ends the scroll session.
func (d *Dev) ScrollReset() {
	d.scroll = scrollState{}
}

// ScrollCursor returns the index of the glyph shown on the first digit by
// the next step, or -1 without a session.
func (d *Dev) ScrollCursor() int {
	if d.scroll.msg == nil {
		return -1
	}
	return d.scroll.cursor
}

// ScrollAnim renders one scroll step.
type ScrollAnim struct {
	d       *Dev
	amount  int
	b       budget
	running bool
	done    bool
	inRange bool
}

// NewScroll returns the animation behind Scroll.
func (d *Dev) NewScroll(amount int, duration time.Duration) (*ScrollAnim, error) {
	if d.scroll.msg == nil {
		return nil, ErrNoScroll
	}
	return &ScrollAnim{d: d, amount: amount, b: budget{clk: d.clk, d: duration}}, nil
}

// Step renders one refresh pass of the window. The cursor moves after the
// last pass.
func (a *ScrollAnim) Step() (bool, error) {
	if a.done {
		return true, nil
	}
	if !a.running {
		a.b.start()
		a.running = true
	}
	s := &a.d.scroll
	n := len(s.msg)
	if a.b.d > 0 {
		for i, m := range a.d.digits {
			if err := a.d.transmit(s.msg[(s.cursor+i)%n], m); err != nil {
				return false, err
			}
		}
	}
	if !a.b.expired() {
		return false, nil
	}

	a.done = true
	next := s.cursor + a.amount
	a.inRange = next >= 0 && next+len(a.d.digits) <= n
	s.cursor = mod(next, n)
	s.last = a.amount
	return true, a.d.Clear(AllDigits)
}

// InRange reports whether, after the step, the window fits the message
// without wrapping around.
func (a *ScrollAnim) InRange() bool {
	return a.inRange
}

// Scroll shows the current window for duration, clears the display, then
// moves the cursor by amount, which may be negative.
//
// It returns false once the new window wraps around or runs off the message,
// so a single sweep is:
//
//	for {
//		ok, err := dev.Scroll(1, 500*time.Millisecond)
//		if err != nil || !ok {
//			break
//		}
//	}
//
// The in-range check depends on the direction. After a forward sweep, one
// zero-duration step in the new direction is needed before sweeping back;
// SetDirection does that.
func (d *Dev) Scroll(amount int, duration time.Duration) (bool, error) {
	a, err := d.NewScroll(amount, duration)
	if err != nil {
		return false, err
	}
	if err := Play(context.Background(), a); err != nil {
		return false, err
	}
	return a.InRange(), nil
}

// SetDirection prepares a sweep with steps of delta. When delta reverses the
// direction of the previous step, it takes the zero-duration priming step
// that Scroll requires; otherwise it does nothing.
func (d *Dev) SetDirection(delta int) error {
	if d.scroll.msg == nil {
		return ErrNoScroll
	}
	last := d.scroll.last
	if delta == 0 || last == 0 || (delta > 0) == (last > 0) {
		return nil
	}
	_, err := d.Scroll(delta, 0)
	return err
}

// mod is the non-negative remainder.
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
