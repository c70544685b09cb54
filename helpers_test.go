package tm74hc595

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

// frame is one latched 16-bit frame, as line levels.
type frame struct {
	seg    byte
	digits DigitMask
	bits   int // shift clock edges since the previous latch
}

// line is a gpiotest pin that reports its level changes to a bus.
type line struct {
	gpiotest.Pin
	bus *bus
}

func (l *line) Out(level gpio.Level) error {
	prev := l.L
	l.L = level
	l.bus.edge(l, prev, level)
	return nil
}

// bus decodes the frames shifted into a pair of 74HC595.
type bus struct {
	sclk, rclk, dio *line
	reg             uint16
	n               int
	frames          []frame
	levels          []string
}

func newBus() *bus {
	b := &bus{}
	b.sclk = &line{Pin: gpiotest.Pin{N: "SCLK"}, bus: b}
	b.rclk = &line{Pin: gpiotest.Pin{N: "RCLK"}, bus: b}
	b.dio = &line{Pin: gpiotest.Pin{N: "DIO"}, bus: b}
	return b
}

func (b *bus) edge(l *line, prev, level gpio.Level) {
	b.levels = append(b.levels, l.N+"="+level.String())
	if prev || !level {
		return
	}
	switch l {
	case b.sclk:
		b.reg <<= 1
		if b.dio.L {
			b.reg |= 1
		}
		b.n++
	case b.rclk:
		b.frames = append(b.frames, frame{seg: byte(b.reg >> 8), digits: DigitMask(b.reg), bits: b.n})
		b.n = 0
	}
}

func (b *bus) reset() {
	b.frames = nil
	b.levels = nil
}

// digits returns the digit mask of every frame.
func (b *bus) digits() []DigitMask {
	out := make([]DigitMask, len(b.frames))
	for i, f := range b.frames {
		out[i] = f.digits
	}
	return out
}

// segs returns the segment byte of every frame.
func (b *bus) segs() []byte {
	out := make([]byte, len(b.frames))
	for i, f := range b.frames {
		out[i] = f.seg
	}
	return out
}

// fakeClock advances by step milliseconds on every read.
type fakeClock struct {
	now   uint32
	step  uint32
	slept []time.Duration
}

func (c *fakeClock) Ticks() uint32 {
	t := c.now
	c.now += c.step
	return t
}

func (c *fakeClock) Sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	c.now += uint32(d / time.Millisecond)
}

// newTestDev returns a device on a recording bus. Segments are active high
// unless opts says otherwise, so frames read like glyphs. The bus is reset
// after the power-on clear.
func newTestDev(t *testing.T, opts *Opts) (*Dev, *bus, *fakeClock) {
	t.Helper()
	if opts == nil {
		opts = &Opts{ActiveHigh: true}
	}
	clk := &fakeClock{step: 1000}
	if opts.Clock == nil {
		opts.Clock = clk
	}
	b := newBus()
	d, err := NewGPIO(b.sclk, b.rclk, b.dio, opts)
	require.NoError(t, err)
	b.reset()
	return d, b, clk
}

// glyphs encodes text with the default font, failing the test on error.
func glyphs(t *testing.T, d *Dev, text string) Message {
	t.Helper()
	m, err := d.Encode(text, 0)
	require.NoError(t, err)
	return m
}
