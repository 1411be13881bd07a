/*
NAME
  display_range_limits.go

DESCRIPTION
  display_range_limits.go implements the Display Range Limits descriptor
  (tag 0xfd): the display's supported vertical and horizontal refresh
  ranges, an optional max pixel clock, and one of four timing-support
  subvariants (default GTF, secondary-curve GTF, range-limits-only, or
  CVT). Unlike every other non-detailed-timing descriptor, byte 4 here is
  not a literal zero: it is the R4 "+255 offset" flags byte. See
  DESIGN.md for the resolution of this layout against the source
  specification's internally inconsistent byte count.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package descriptor

import "github.com/ausocean/edid/value"

// TimingSupport is the tagged timing-support subvariant carried in a
// DisplayRangeLimits descriptor's trailing seven bytes (offsets 11-17).
type TimingSupport interface {
	isTimingSupport()
	selector() byte
	payload() [7]byte
}

// DefaultGTF indicates the display uses the default GTF formula for any
// timing within its supported range.
type DefaultGTF struct{}

func (DefaultGTF) isTimingSupport() {}
func (DefaultGTF) selector() byte   { return 0x0a }
func (DefaultGTF) payload() [7]byte {
	return [7]byte{0x0a, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20}
}

// RangeLimitsOnly declares that the display accepts no timing formula
// beyond the stated ranges; R4 only.
type RangeLimitsOnly struct{}

func (RangeLimitsOnly) isTimingSupport() {}
func (RangeLimitsOnly) selector() byte   { return 0x01 }
func (RangeLimitsOnly) payload() [7]byte {
	return [7]byte{0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20}
}

// SecondaryGTF declares a secondary GTF curve, active above StartFreqKHz,
// described by the standard C/M/K/J parameters.
type SecondaryGTF struct {
	StartFreqKHz int
	C            float64 // in units of 0.5, e.g. 40.0 -> C byte 80
	M            int
	K            int
	J            float64 // in units of 0.5
}

func (SecondaryGTF) isTimingSupport() {}
func (SecondaryGTF) selector() byte   { return 0x00 }

func (s SecondaryGTF) payload() [7]byte {
	var out [7]byte
	out[0] = byte(s.StartFreqKHz / 2)
	out[1] = byte(s.C * 2)
	out[2] = byte(s.M)
	out[3] = byte(s.M >> 8)
	out[4] = byte(s.K)
	out[5] = byte(s.J * 2)
	return out
}

// CVTSupported declares CVT (Coordinated Video Timings) support; R4
// only. Version is the CVT standard version/revision byte.
type CVTSupported struct {
	Version byte
}

func (CVTSupported) isTimingSupport() {}
func (CVTSupported) selector() byte   { return 0x04 }
func (c CVTSupported) payload() [7]byte {
	return [7]byte{c.Version, 0, 0, 0, 0, 0, 0}
}

// DisplayRangeLimits is the Display Range Limits descriptor (tag 0xfd).
type DisplayRangeLimits struct {
	VerticalHz    value.RateRange
	HorizontalKHz value.RateRange
	// MaxPixelClockMHz is optional; its zero value means absent.
	MaxPixelClockMHz value.MaxPixelClockMHz
	Timing           TimingSupport
}

// IsDetailedTiming always returns false for DisplayRangeLimits.
func (DisplayRangeLimits) IsDetailedTiming() bool { return false }

func offsetPair(r value.RateRange) (bits byte) {
	_, minOff := r.MinBytes()
	_, maxOff := r.MaxBytes()
	switch {
	case minOff && maxOff:
		return 0x3
	case maxOff:
		return 0x2
	default:
		return 0x0
	}
}

func (d DisplayRangeLimits) encode(slot int, release value.Release) ([18]byte, error) {
	if d.Timing == nil {
		return [18]byte{}, &value.InvalidField{Field: "display_range_limits.timing", Reason: "must not be nil"}
	}
	if _, ok := d.Timing.(RangeLimitsOnly); ok && release != value.R4 {
		return [18]byte{}, &value.VersionUnsupported{Field: "display_range_limits.timing", Release: release}
	}
	if _, ok := d.Timing.(CVTSupported); ok && release != value.R4 {
		return [18]byte{}, &value.VersionUnsupported{Field: "display_range_limits.timing", Release: release}
	}

	vBits := offsetPair(d.VerticalHz)
	hBits := offsetPair(d.HorizontalKHz)
	if (vBits != 0 || hBits != 0) && release != value.R4 {
		return [18]byte{}, &value.VersionUnsupported{Field: "display_range_limits.offset", Release: release}
	}

	var out [18]byte
	h := sentinelHeader(TagDisplayRangeLimits)
	copy(out[0:4], h[0:4])
	out[4] = vBits | hBits<<2

	minV, _ := d.VerticalHz.MinBytes()
	maxV, _ := d.VerticalHz.MaxBytes()
	minH, _ := d.HorizontalKHz.MinBytes()
	maxH, _ := d.HorizontalKHz.MaxBytes()
	out[5] = minV
	out[6] = maxV
	out[7] = minH
	out[8] = maxH
	out[9] = d.MaxPixelClockMHz.Byte()

	out[10] = d.Timing.selector()
	payload := d.Timing.payload()
	copy(out[11:18], payload[:])

	return out, nil
}
