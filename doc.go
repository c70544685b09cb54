// Package tm74hc595 controls 7-segment LED modules driven by 74HC595 shift
// registers.
//
// The common "TM74HC595" boards chain two 74HC595: the first one holds the
// segment pattern, the second one selects the digits. Only one pattern is
// latched at a time, so the driver multiplexes: it keeps re-sending each
// digit in turn for as long as something has to stay on screen.
//
// # Display Characteristics
//
// - 1 to 8 digits, each with seven segments and a decimal point (or colon)
// - No memory: the display goes dark, or freezes on one digit, when not refreshed
// - Segment polarity depends on the module (common anode or common cathode)
// - Brightness can only be faked by masking segments
//
// # Hardware Connection
//
// Connect the module to three output lines:
//
//	Module Pin → System Pin
//	VCC        → 3.3V
//	GND        → GND
//	SCLK       → GPIO (shift clock) or SPI Clock
//	RCLK       → GPIO (latch clock)
//	DIO        → GPIO (serial data) or SPI Data (MOSI)
//
// Most modules have no current limiting resistors: power them with 3.3V and
// keep each digit lit as briefly as possible.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"github.com/flavioheleno/tm74hc595"
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		host.Init()
//
//		dev, _ := tm74hc595.NewGPIO(
//			gpioreg.ByName("GPIO17"), // SCLK
//			gpioreg.ByName("GPIO27"), // RCLK
//			gpioreg.ByName("GPIO22"), // DIO
//			&tm74hc595.Opts{Count: 4},
//		)
//		defer dev.Halt()
//
//		dev.Print(tm74hc595.Text("HI.5"), nil)
//	}
//
// # Wire Protocol
//
// Each update is a 16-bit frame: the segment byte MSB first, then the digit
// select byte MSB first, each bit clocked on the rising edge of SCLK, then a
// single rising edge on RCLK to latch both bytes at once. Segment bits are
// inverted for active-low modules (the default); digit bits never are.
//
// NewSPI sends the same frame through a SPI port, which is much faster than
// bit-banging and gives brighter, steadier digits.
//
// # Text
//
// Encode turns text into glyphs using the font (font.Tinker by default):
//
//	"12.5"  the point lights the decimal point of the previous digit
//	"#63"   a literal glyph, two hex digits
//	"##"    the font's glyph for '#'
//
// Characters missing from the font are drawn with a fallback glyph, '_' by
// default. With Opts.NoFallback set, they are reported as errors instead.
//
// # Effects
//
// Print, Blast, Flash, VBars and Scroll block until done. Each has a
// counterpart returning an Animation, which renders one frame per Step;
// Play runs one with a context:
//
//	a, _ := dev.NewPrint(tm74hc595.Text("WAIT"), &tm74hc595.PrintOpts{Duration: time.Minute})
//	err := tm74hc595.Play(ctx, a) // returns early when ctx is cancelled
//
// Scrolling keeps a cursor over a message:
//
//	dev.ScrollInit(tm74hc595.Text("HELLO"), 0)
//	for ok := true; ok; {
//		ok, _ = dev.Scroll(1, 300*time.Millisecond)
//	}
//	dev.SetDirection(-1) // before sweeping back
//
// # Concurrency
//
// A Dev is meant to be used by a single goroutine. Frames are serialised so
// that concurrent callers never interleave bits, but their effects will
// fight over the digits.
package tm74hc595
