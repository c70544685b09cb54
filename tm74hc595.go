// Package tm74hc595 drives 7-segment display modules built around a pair of
// 74HC595 shift registers, such as the TM74HC595 boards sold as "4-bit LED
// digital tube" modules.
//
// The modules have no memory and no refresh logic: only one digit pattern is
// latched at a time, so anything that spans several digits must be
// continuously re-driven by software. See the examples for how to use this
// package.
package tm74hc595

import (
	"errors"
	"fmt"
	"sync"

	"github.com/flavioheleno/tm74hc595/font"
	"github.com/rs/zerolog"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// DigitMask selects digit positions. Each set bit enables one digit.
type DigitMask uint8

// AllDigits addresses every digit at once.
const AllDigits DigitMask = 0xFF

// MaxDigits is the number of digit-select bits carried by one frame.
const MaxDigits = 8

// Opts is the configuration for the display.
type Opts struct {
	// Digit layout
	Count  int         // Number of digits (default: 4, must be ≤8); ignored when Digits is set
	Digits []DigitMask // Explicit select mask per digit, left to right

	// Rendering
	Font       *font.Font // Glyph table (default: font.Tinker())
	ActiveHigh bool       // Segments are lit by a high level (default: lit by a low level)
	Point      rune       // Decimal point character, '.' or ':' (default: '.')
	Fallback   rune       // Stand-in for characters missing from Font (default: '_')
	NoFallback bool       // Fail on characters missing from Font instead

	// Collaborators
	Clock  Clock           // Millisecond clock (default: system clock)
	Logger *zerolog.Logger // Debug logging (default: disabled)

	// SPI only
	SPIFreq physic.Frequency // Shift clock frequency (default: 1MHz)
}

// Dev is the device handle for a display module.
type Dev struct {
	// Output
	mu     sync.Mutex
	sh     shifter
	invert byte // XORed into segment bytes to get line levels

	// Layout and glyphs
	digits     []DigitMask
	font       font.Font
	point      rune
	noFallback bool
	undef      byte
	blank      byte
	quirk      bool // '?' also lights the previous point, see Encode

	clk Clock
	log zerolog.Logger

	scroll scrollState
	halted bool
}

// NewGPIO creates a new display driven by bit-banging three output lines.
//
// sclk is the shift clock (SCLK), rclk the latch clock (RCLK) and dio the
// serial data line (DIO).
//
// opts can be nil to use defaults (4 digits, TINKER font).
func NewGPIO(sclk, rclk, dio gpio.PinOut, opts *Opts) (*Dev, error) {
	if sclk == nil || rclk == nil || dio == nil {
		return nil, errors.New("tm74hc595: sclk, rclk and dio are required")
	}
	return newDev(&gpioShifter{sclk: sclk, rclk: rclk, dio: dio}, opts)
}

// NewSPI creates a new display whose frames are clocked out by a SPI port.
//
// MOSI goes to DIO and SCLK to SCLK; rclk is the GPIO line wired to RCLK.
// The port is configured for Mode0 (the registers sample on the rising edge)
// with 8-bit words.
func NewSPI(p spi.Port, rclk gpio.PinOut, opts *Opts) (*Dev, error) {
	if rclk == nil {
		return nil, errors.New("tm74hc595: rclk is required")
	}
	freq := physic.MegaHertz
	if opts != nil && opts.SPIFreq > 0 {
		freq = opts.SPIFreq
	}
	c, err := p.Connect(freq, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("tm74hc595: %w", err)
	}
	return newDev(&spiShifter{c: c, rclk: rclk}, opts)
}

func newDev(sh shifter, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{}
	}

	digits, err := digitMasks(opts)
	if err != nil {
		return nil, err
	}

	f := font.Tinker()
	if opts.Font != nil {
		f = *opts.Font
	}

	point := opts.Point
	if point == 0 {
		point = '.'
	}
	if point != '.' && point != ':' {
		return nil, errors.New("tm74hc595: point must be '.' or ':'")
	}

	d := &Dev{
		sh:         sh,
		digits:     digits,
		font:       f,
		point:      point,
		noFallback: opts.NoFallback,
		clk:        opts.Clock,
		log:        zerolog.Nop(),
	}
	if !opts.ActiveHigh {
		d.invert = 0xFF
	}
	if opts.Logger != nil {
		d.log = *opts.Logger
	}
	if d.clk == nil {
		d.clk = newSystemClock()
	}

	if !d.noFallback {
		fallback := opts.Fallback
		if fallback == 0 {
			fallback = font.Undef
		}
		g, ok := f.Lookup(fallback)
		if !ok {
			return nil, fmt.Errorf("tm74hc595: fallback %q is not in the font", fallback)
		}
		d.undef = g
	}
	d.blank, _ = f.Lookup(font.Blank)
	if g, ok := f.Lookup('?'); ok && g == 0x53 && point == '.' {
		d.quirk = true
	}

	// Start from a dark display.
	if err := d.Clear(AllDigits); err != nil {
		return nil, err
	}

	d.log.Debug().Int("digits", len(d.digits)).Bool("active_high", opts.ActiveHigh).Msg("tm74hc595: ready")
	return d, nil
}

// digitMasks returns the select mask of each digit, left to right.
func digitMasks(opts *Opts) ([]DigitMask, error) {
	if len(opts.Digits) > 0 {
		if len(opts.Digits) > MaxDigits {
			return nil, errors.New("tm74hc595: at most 8 digits are supported")
		}
		masks := make([]DigitMask, len(opts.Digits))
		copy(masks, opts.Digits)
		return masks, nil
	}

	n := opts.Count
	if n == 0 {
		n = 4
	}
	if n < 0 || n > MaxDigits {
		return nil, errors.New("tm74hc595: count must be between 1 and 8")
	}
	masks := make([]DigitMask, n)
	for i := range masks {
		masks[i] = 1 << (n - i - 1)
	}
	return masks, nil
}

// transmit shifts one frame out and latches it.
func (d *Dev) transmit(seg byte, digits DigitMask) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.halted {
		return ErrHalted
	}
	return d.sh.shift(seg^d.invert, byte(digits))
}

// Clear blanks the selected digits.
func (d *Dev) Clear(digits DigitMask) error {
	return d.transmit(d.blank, digits)
}

// Digits returns the select mask of each digit, left to right.
func (d *Dev) Digits() []DigitMask {
	masks := make([]DigitMask, len(d.digits))
	copy(masks, d.digits)
	return masks
}

// Halt blanks the display.
// After calling Halt, the display will not respond to further operations.
func (d *Dev) Halt() error {
	err := d.Clear(AllDigits)
	d.mu.Lock()
	d.halted = true
	d.mu.Unlock()
	return err
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("tm74hc595.Dev{%d digits}", len(d.digits))
}
