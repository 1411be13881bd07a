/*
NAME
  timings.go

DESCRIPTION
  timings.go implements the established-timings bitmap (base-block bytes
  0x23-0x25) and the eight standard-timing slots (base-block bytes
  0x26-0x35).

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package value

// EstablishedMode identifies one of the 17 legacy modes in the
// established-timings bitmap. The bit position of each mode below matches
// the VESA byte layout: byte 0 (0x23) holds modes 0-7, byte 1 (0x24) holds
// modes 8-15, byte 2 (0x25) holds mode 16 in its top bit.
type EstablishedMode int

const (
	Mode800x600At60Hz EstablishedMode = iota
	Mode800x600At56Hz
	Mode640x480At75Hz
	Mode640x480At72Hz
	Mode640x480At67Hz
	Mode640x480At60Hz
	Mode720x400At88Hz
	Mode720x400At70Hz
	Mode1280x1024At75Hz
	Mode1024x768At75Hz
	Mode1024x768At70Hz
	Mode1024x768At60Hz
	Mode1024x768At87HzInterlaced
	Mode832x624At75Hz
	Mode800x600At75Hz
	Mode800x600At72Hz
	Mode1152x870At75Hz
)

const establishedModeCount = 17

// EstablishedTimings is the set of legacy modes the display natively
// supports, bytes 0x23-0x25 of the base block.
type EstablishedTimings struct {
	modes [establishedModeCount]bool
}

// NewEstablishedTimings builds an EstablishedTimings set from the given
// modes.
func NewEstablishedTimings(modes ...EstablishedMode) EstablishedTimings {
	var e EstablishedTimings
	for _, m := range modes {
		e.modes[m] = true
	}
	return e
}

// Has reports whether m is present in the set.
func (e EstablishedTimings) Has(m EstablishedMode) bool { return e.modes[m] }

// Bytes packs the established-timings bitmap into its three-byte wire
// representation.
func (e EstablishedTimings) Bytes() [3]byte {
	var out [3]byte
	for m := EstablishedMode(0); m < establishedModeCount; m++ {
		if !e.modes[m] {
			continue
		}
		byteIdx := m / 8
		bitIdx := uint(m % 8)
		if m == Mode1152x870At75Hz {
			bitIdx = 7
		}
		out[byteIdx] |= 1 << bitIdx
	}
	return out
}

// AspectRatio is the aspect-ratio code for a standard timing (byte 1,
// bits 7-6).
type AspectRatio byte

const (
	Aspect16x10 AspectRatio = 0
	Aspect4x3   AspectRatio = 1
	Aspect5x4   AspectRatio = 2
	Aspect16x9  AspectRatio = 3
)

// StandardTiming is one of up to eight legacy "standard timing" entries,
// two bytes each, at base-block bytes 0x26-0x35.
type StandardTiming struct {
	HActive    int
	Aspect     AspectRatio
	RefreshHz  int
}

// NewStandardTiming validates hActive (a multiple of 8 in 256..=2288),
// aspect and refreshHz (60..=123).
func NewStandardTiming(hActive int, aspect AspectRatio, refreshHz int) (StandardTiming, error) {
	if hActive < 256 || hActive > 2288 || hActive%8 != 0 {
		return StandardTiming{}, &InvalidField{Field: "standard_timing.h_active", Reason: "must be a multiple of 8 in 256..2288"}
	}
	if aspect > Aspect16x9 {
		return StandardTiming{}, &InvalidField{Field: "standard_timing.aspect", Reason: "must be 0..3"}
	}
	if refreshHz < 60 || refreshHz > 123 {
		return StandardTiming{}, &InvalidField{Field: "standard_timing.refresh_hz", Reason: "must be 60..123"}
	}
	return StandardTiming{HActive: hActive, Aspect: aspect, RefreshHz: refreshHz}, nil
}

// Bytes packs the standard timing into its two-byte wire representation.
func (s StandardTiming) Bytes() [2]byte {
	return [2]byte{
		byte(s.HActive/8 - 31),
		byte(s.Aspect)<<6 | byte(s.RefreshHz-60),
	}
}

// UnusedStandardTimingBytes is the sentinel two-byte value written for any
// of the eight standard-timing slots not in use.
var UnusedStandardTimingBytes = [2]byte{0x01, 0x01}

// MaxStandardTimings is the number of standard-timing slots in the base
// block.
const MaxStandardTimings = 8
