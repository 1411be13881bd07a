/*
NAME
  frequency.go

DESCRIPTION
  frequency.go implements the scalar frequency and pixel-clock value types
  shared by the detailed-timing and display-range-limits descriptors.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package value

// PixelClock10kHz is a detailed timing's pixel clock, stored in units of
// 10 kHz (i.e. the wire value), 1..=65535 (10..=655350 kHz; 0 is invalid).
type PixelClock10kHz uint16

// NewPixelClockHz builds a PixelClock10kHz from a clock in whole Hz,
// requiring it to be a multiple of 10000 and nonzero.
func NewPixelClockHz(hz int) (PixelClock10kHz, error) {
	if hz <= 0 || hz%10000 != 0 {
		return 0, &InvalidField{Field: "pixel_clock", Reason: "must be a positive multiple of 10kHz"}
	}
	units := hz / 10000
	if units > 0xffff {
		return 0, &InvalidField{Field: "pixel_clock", Reason: "exceeds 655350 kHz"}
	}
	return PixelClock10kHz(units), nil
}

// Bytes returns the little-endian encoding of the pixel clock.
func (p PixelClock10kHz) Bytes() [2]byte { return [2]byte{byte(p), byte(p >> 8)} }

// RateRange is a validated (min, max) pair used for the display range
// limits descriptor's vertical (Hz) and horizontal (kHz) frequency axes.
// The single-byte wire range is 1..=255 under R3; R4 extends this to
// 1..=510 via an offset bit elsewhere in the descriptor, so RateRange
// itself only enforces min < max and the release's maximum.
type RateRange struct {
	Min int
	Max int
}

// NewRateRange validates that 1 <= min < max <= release's ceiling (255 for
// R3, 510 for R4).
func NewRateRange(release Release, field string, min, max int) (RateRange, error) {
	ceiling := 255
	if release == R4 {
		ceiling = 510
	}
	if min < 1 || min > ceiling {
		return RateRange{}, &InvalidField{Field: field + ".min", Reason: "out of range for release"}
	}
	if max < 1 || max > ceiling {
		return RateRange{}, &InvalidField{Field: field + ".max", Reason: "out of range for release"}
	}
	if min >= max {
		return RateRange{}, &CrossFieldInconsistent{Fields: []string{field + ".min", field + ".max"}, Reason: "min must be less than max"}
	}
	return RateRange{Min: min, Max: max}, nil
}

// boundBytes returns the (base byte, offset bit) encoding for one bound:
// base is the byte to write (0..=255) and offset is true when the +255 R4
// offset bit must be set alongside it.
func (r RateRange) boundBytes(v int) (base byte, offset bool) {
	if v > 255 {
		return byte(v - 255), true
	}
	return byte(v), false
}

// MinBytes returns the minimum bound's (base, offset) pair.
func (r RateRange) MinBytes() (base byte, offset bool) { return r.boundBytes(r.Min) }

// MaxBytes returns the maximum bound's (base, offset) pair.
func (r RateRange) MaxBytes() (base byte, offset bool) { return r.boundBytes(r.Max) }

// MaxPixelClockMHz is the optional maximum pixel clock carried by a display
// range limits descriptor, a positive multiple of 10 MHz.
type MaxPixelClockMHz int

// NewMaxPixelClockMHz validates mhz as a positive multiple of 10.
func NewMaxPixelClockMHz(mhz int) (MaxPixelClockMHz, error) {
	if mhz <= 0 || mhz%10 != 0 {
		return 0, &InvalidField{Field: "max_pixel_clock_mhz", Reason: "must be a positive multiple of 10"}
	}
	return MaxPixelClockMHz(mhz), nil
}

// Byte returns the /10 encoding of the max pixel clock, or 0 if absent.
func (m MaxPixelClockMHz) Byte() byte { return byte(m / 10) }
