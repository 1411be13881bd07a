/*
NAME
  videoinput.go

DESCRIPTION
  videoinput.go implements the video input definition at base-block byte
  0x14: analog sync parameters, or digital compatibility/interface bits.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package value

// AnalogSignalLevel is the white/sync signal level standard in volts (byte
// 0x14, bits 6-5, analog input only).
type AnalogSignalLevel byte

const (
	SignalLevel0700_0300 AnalogSignalLevel = 0 // +0.700/-0.300 V
	SignalLevel0714_0286 AnalogSignalLevel = 1 // +0.714/-0.286 V
	SignalLevel1000_0400 AnalogSignalLevel = 2 // +1.000/-0.400 V
	SignalLevel0700_0000 AnalogSignalLevel = 3 // +0.700/0 V (EVC)
)

// AnalogSyncCapabilities describes which sync arrangements the analog input
// supports (byte 0x14, bits 3-0).
type AnalogSyncCapabilities struct {
	SeparateSyncSupported       bool
	CompositeSyncOnHsyncSupported bool
	SyncOnGreenSupported        bool
	SerrationOnVsyncSupported   bool
}

// VideoInterface is the digital video interface standard (R4 digital input
// only, byte 0x14 bits 3-0).
type VideoInterface byte

const (
	InterfaceUndefined    VideoInterface = 0
	InterfaceDVI          VideoInterface = 1
	InterfaceHDMIa        VideoInterface = 2
	InterfaceHDMIb        VideoInterface = 3
	InterfaceMDDI         VideoInterface = 4
	InterfaceDisplayPort  VideoInterface = 5
)

// BitDepth is the digital interface colour bit depth (R4 digital input
// only, byte 0x14 bits 6-4).
type BitDepth byte

const (
	BitDepthUndefined BitDepth = 0
	BitDepth6         BitDepth = 1
	BitDepth8         BitDepth = 2
	BitDepth10        BitDepth = 3
	BitDepth12        BitDepth = 4
	BitDepth14        BitDepth = 5
	BitDepth16        BitDepth = 6
)

// VideoInput is the tagged analog/digital video input description. Concrete
// types are AnalogVideoInput and DigitalVideoInput.
type VideoInput interface {
	isVideoInput()
	// byte encodes the full byte 0x14, validating release-gated sub-fields.
	byte(release Release) (byte, error)
	// IsDigital reports whether the high bit of byte 0x14 is set.
	IsDigital() bool
}

// AnalogVideoInput is the analog variant of VideoInput.
type AnalogVideoInput struct {
	SignalLevel AnalogSignalLevel
	Setup       bool // blank-to-black setup (pedestal) expected
	Sync        AnalogSyncCapabilities
}

func (AnalogVideoInput) isVideoInput()      {}
func (AnalogVideoInput) IsDigital() bool    { return false }

func (a AnalogVideoInput) byte(Release) (byte, error) {
	if a.SignalLevel > 3 {
		return 0, &InvalidField{Field: "video_input.signal_level", Reason: "must be 0..3"}
	}
	b := byte(a.SignalLevel) << 5
	if a.Setup {
		b |= 1 << 4
	}
	if a.Sync.SeparateSyncSupported {
		b |= 1 << 3
	}
	if a.Sync.CompositeSyncOnHsyncSupported {
		b |= 1 << 2
	}
	if a.Sync.SyncOnGreenSupported {
		b |= 1 << 1
	}
	if a.Sync.SerrationOnVsyncSupported {
		b |= 1 << 0
	}
	return b, nil
}

// DigitalVideoInput is the digital variant of VideoInput. Under R3 only
// DFP1Compatible is meaningful; under R4 only BitDepth and Interface are
// meaningful. Setting an R4-only field under R3 (or vice versa) is rejected
// at encode time with VersionUnsupported, per the Open Question in spec §9
// resolved in favour of treating bit-depth/interface as R4-only.
type DigitalVideoInput struct {
	DFP1Compatible bool // R3 only

	BitDepth  BitDepth       // R4 only
	Interface VideoInterface // R4 only
}

func (DigitalVideoInput) isVideoInput()   {}
func (DigitalVideoInput) IsDigital() bool { return true }

func (d DigitalVideoInput) byte(release Release) (byte, error) {
	switch release {
	case R3:
		if d.BitDepth != BitDepthUndefined || d.Interface != InterfaceUndefined {
			return 0, &VersionUnsupported{Field: "video_input.bit_depth_or_interface", Release: release}
		}
		b := byte(0x80)
		if d.DFP1Compatible {
			b |= 0x01
		}
		return b, nil
	case R4:
		if d.DFP1Compatible {
			return 0, &VersionUnsupported{Field: "video_input.dfp1_compatible", Release: release}
		}
		if d.BitDepth > BitDepth16 {
			return 0, &InvalidField{Field: "video_input.bit_depth", Reason: "must be 0..6"}
		}
		if d.Interface > InterfaceDisplayPort {
			return 0, &InvalidField{Field: "video_input.interface", Reason: "must be 0..5"}
		}
		return 0x80 | byte(d.BitDepth)<<4 | byte(d.Interface), nil
	default:
		return 0, &InvalidField{Field: "release", Reason: "unsupported release"}
	}
}

// EncodeVideoInput encodes the full video-input byte (0x14) for the given
// release.
func EncodeVideoInput(v VideoInput, release Release) (byte, error) {
	return v.byte(release)
}
