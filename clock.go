package tm74hc595

import "time"

// Clock is the time source used to bound animations.
//
// Ticks is a monotonic millisecond counter which is allowed to wrap around.
type Clock interface {
	Ticks() uint32
	Sleep(d time.Duration)
}

type systemClock struct {
	start time.Time
}

func newSystemClock() *systemClock {
	return &systemClock{start: time.Now()}
}

func (c *systemClock) Ticks() uint32 {
	return uint32(time.Since(c.start).Milliseconds())
}

func (c *systemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// budget bounds a refresh loop to a duration.
type budget struct {
	clk     Clock
	d       time.Duration
	t0      uint32
	wrapped bool
}

func (b *budget) start() {
	b.t0 = b.clk.Ticks()
	b.wrapped = false
}

// expired reports whether the pass just rendered was the last one.
//
// A tick below the start tick means the counter wrapped: one more pass is
// allowed, then the budget is considered spent.
func (b *budget) expired() bool {
	if b.d <= 0 {
		return true
	}
	t := b.clk.Ticks()
	if t < b.t0 {
		if b.wrapped {
			return true
		}
		b.wrapped = true
		return false
	}
	return time.Duration(t-b.t0)*time.Millisecond >= b.d
}
