/*
NAME
  detailed_timing.go

DESCRIPTION
  detailed_timing.go implements the DetailedTiming descriptor, the only
  descriptor variant that does not use the "00 00 00 TT 00" sentinel
  header: its 18 bytes are entirely bit-packed timing data, starting with
  the pixel clock.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package descriptor

import "github.com/ausocean/edid/value"

// Stereo identifies one of the seven detailed-timing stereo-viewing modes,
// byte 17 bits 6, 5 and 0.
type Stereo byte

const (
	StereoNone Stereo = iota
	StereoFieldSequentialRight
	StereoTwoWayRight
	StereoFieldSequentialLeft
	StereoTwoWayLeft
	StereoFourWay
	StereoSideBySide
)

// bits returns the (bit6, bit5, bit0) triple for the stereo mode.
func (s Stereo) bits() (bit6, bit5, bit0 byte) {
	switch s {
	case StereoFieldSequentialRight:
		return 0, 1, 0
	case StereoTwoWayRight:
		return 0, 1, 1
	case StereoFieldSequentialLeft:
		return 1, 0, 0
	case StereoTwoWayLeft:
		return 1, 0, 1
	case StereoFourWay:
		return 1, 1, 0
	case StereoSideBySide:
		return 1, 1, 1
	default:
		return 0, 0, 0
	}
}

// AnalogSyncOn is the sync-routing option for an AnalogSignal (byte 17 bit
// 1).
type AnalogSyncOn byte

const (
	SyncOnGreenOnly AnalogSyncOn = iota
	SyncOnAllThreeRGB
)

// Signal is the tagged sync-signal-type value at byte 17 bits 4-1:
// analog composite/bipolar, or digital composite/separate.
type Signal interface {
	isSignal()
	// fields returns the 2-bit sync-type code (bits 4-3), bit 2 and bit 1.
	fields() (syncType, bit2, bit1 byte)
}

// AnalogSignal is the analog-composite-sync family (byte 17 bits 4-3 = 00
// or 01).
type AnalogSignal struct {
	Bipolar  bool
	Serrated bool
	SyncOn   AnalogSyncOn
}

func (AnalogSignal) isSignal() {}

func (a AnalogSignal) fields() (syncType, bit2, bit1 byte) {
	if a.Bipolar {
		syncType = 1
	}
	if a.Serrated {
		bit2 = 1
	}
	if a.SyncOn == SyncOnAllThreeRGB {
		bit1 = 1
	}
	return syncType, bit2, bit1
}

// DigitalCompositeSignal is digital composite sync (byte 17 bits 4-3 =
// 10).
type DigitalCompositeSignal struct {
	Serrated      bool
	HsyncPositive bool
}

func (DigitalCompositeSignal) isSignal() {}

func (d DigitalCompositeSignal) fields() (syncType, bit2, bit1 byte) {
	syncType = 2
	if d.Serrated {
		bit2 = 1
	}
	if d.HsyncPositive {
		bit1 = 1
	}
	return syncType, bit2, bit1
}

// DigitalSeparateSignal is digital separate sync (byte 17 bits 4-3 = 11),
// with independently polarised H and V sync.
type DigitalSeparateSignal struct {
	HsyncPositive bool
	VsyncPositive bool
}

func (DigitalSeparateSignal) isSignal() {}

func (d DigitalSeparateSignal) fields() (syncType, bit2, bit1 byte) {
	syncType = 3
	if d.VsyncPositive {
		bit2 = 1
	}
	if d.HsyncPositive {
		bit1 = 1
	}
	return syncType, bit2, bit1
}

// DetailedTiming is the 18-byte detailed timing descriptor (CEA/VESA
// "DTD"). The base block accepts it only in slot 0, where it is the
// display's preferred timing.
type DetailedTiming struct {
	PixelClock value.PixelClock10kHz

	HActive, HBlanking int
	VActive, VBlanking int

	HFrontPorch, HSyncPulse int
	VFrontPorch, VSyncPulse int

	// HBorder and VBorder are each a single shared value for both the
	// leading and trailing border of their axis, matching the wire format.
	HBorder, VBorder int

	HImageSizeMM, VImageSizeMM int

	Signal     Signal
	Stereo     Stereo
	Interlaced bool
}

// IsDetailedTiming always returns true for DetailedTiming.
func (DetailedTiming) IsDetailedTiming() bool { return true }

func need12(field string, v int) error {
	if v < 0 || v > 0xfff {
		return &value.InvalidField{Field: field, Reason: "must be 0..4095"}
	}
	return nil
}

func need10(field string, v int) error {
	if v < 0 || v > 0x3ff {
		return &value.InvalidField{Field: field, Reason: "must be 0..1023"}
	}
	return nil
}

func need6(field string, v int) error {
	if v < 0 || v > 0x3f {
		return &value.InvalidField{Field: field, Reason: "must be 0..63"}
	}
	return nil
}

func need8(field string, v int) error {
	if v < 0 || v > 0xff {
		return &value.InvalidField{Field: field, Reason: "must be 0..255"}
	}
	return nil
}

func (dt DetailedTiming) encode(slot int, release value.Release) ([18]byte, error) {
	if dt.Signal == nil {
		return [18]byte{}, &value.InvalidField{Field: "detailed_timing.signal", Reason: "must not be nil"}
	}
	for _, f := range []struct {
		name string
		v    int
		fn   func(string, int) error
	}{
		{"detailed_timing.h_active", dt.HActive, need12},
		{"detailed_timing.h_blanking", dt.HBlanking, need12},
		{"detailed_timing.v_active", dt.VActive, need12},
		{"detailed_timing.v_blanking", dt.VBlanking, need12},
		{"detailed_timing.h_front_porch", dt.HFrontPorch, need10},
		{"detailed_timing.h_sync_pulse", dt.HSyncPulse, need10},
		{"detailed_timing.v_front_porch", dt.VFrontPorch, need6},
		{"detailed_timing.v_sync_pulse", dt.VSyncPulse, need6},
		{"detailed_timing.h_image_size_mm", dt.HImageSizeMM, need12},
		{"detailed_timing.v_image_size_mm", dt.VImageSizeMM, need12},
		{"detailed_timing.h_border", dt.HBorder, need8},
		{"detailed_timing.v_border", dt.VBorder, need8},
	} {
		if err := f.fn(f.name, f.v); err != nil {
			return [18]byte{}, err
		}
	}

	var out [18]byte
	pc := dt.PixelClock.Bytes()
	out[0], out[1] = pc[0], pc[1]

	out[2] = byte(dt.HActive)
	out[3] = byte(dt.HBlanking)
	out[4] = byte(dt.HActive>>8)<<4 | byte(dt.HBlanking>>8)

	out[5] = byte(dt.VActive)
	out[6] = byte(dt.VBlanking)
	out[7] = byte(dt.VActive>>8)<<4 | byte(dt.VBlanking>>8)

	out[8] = byte(dt.HFrontPorch)
	out[9] = byte(dt.HSyncPulse)
	out[10] = byte(dt.VFrontPorch)<<4 | byte(dt.VSyncPulse)&0x0f
	out[11] = byte(dt.HFrontPorch>>8)<<6 | byte(dt.HSyncPulse>>8)<<4 | byte(dt.VFrontPorch>>4)<<2 | byte(dt.VSyncPulse>>4)

	out[12] = byte(dt.HImageSizeMM)
	out[13] = byte(dt.VImageSizeMM)
	out[14] = byte(dt.HImageSizeMM>>8)<<4 | byte(dt.VImageSizeMM>>8)

	out[15] = byte(dt.HBorder)
	out[16] = byte(dt.VBorder)

	syncType, bit2, bit1 := dt.Signal.fields()
	bit6, bit5, bit0 := dt.Stereo.bits()
	var flags byte
	if dt.Interlaced {
		flags |= 1 << 7
	}
	flags |= bit6 << 6
	flags |= bit5 << 5
	flags |= syncType << 3
	flags |= bit2 << 2
	flags |= bit1 << 1
	flags |= bit0
	out[17] = flags

	return out, nil
}
