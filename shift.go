package tm74hc595

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/spi"
)

// shifter puts one 16-bit frame on the wire: seg then digits, each MSB
// first, followed by a single latch pulse. seg already carries the segment
// polarity; digits is always active high.
type shifter interface {
	shift(seg, digits byte) error
}

// gpioShifter bit-bangs the frame on three output lines.
type gpioShifter struct {
	sclk gpio.PinOut
	rclk gpio.PinOut
	dio  gpio.PinOut
}

func (s *gpioShifter) shift(seg, digits byte) error {
	frame := uint16(seg)<<8 | uint16(digits)
	for m := uint16(0x8000); m != 0; m >>= 1 {
		if err := s.dio.Out(frame&m != 0); err != nil {
			return fmt.Errorf("tm74hc595: dio: %w", err)
		}
		if err := pulse(s.sclk); err != nil {
			return fmt.Errorf("tm74hc595: sclk: %w", err)
		}
	}
	if err := pulse(s.rclk); err != nil {
		return fmt.Errorf("tm74hc595: rclk: %w", err)
	}
	return nil
}

// spiShifter clocks the frame out of a SPI port and latches it on a GPIO
// line.
type spiShifter struct {
	c    spi.Conn
	rclk gpio.PinOut
	buf  [2]byte
}

func (s *spiShifter) shift(seg, digits byte) error {
	s.buf[0], s.buf[1] = seg, digits
	if err := s.c.Tx(s.buf[:], nil); err != nil {
		return fmt.Errorf("tm74hc595: spi: %w", err)
	}
	if err := pulse(s.rclk); err != nil {
		return fmt.Errorf("tm74hc595: rclk: %w", err)
	}
	return nil
}

// pulse drives a clock line low then high; the registers act on the rising
// edge.
func pulse(p gpio.PinOut) error {
	if err := p.Out(gpio.Low); err != nil {
		return err
	}
	return p.Out(gpio.High)
}
