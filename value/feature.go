/*
NAME
  feature.go

DESCRIPTION
  feature.go implements the feature-support bitmap at base-block byte 0x18:
  DPMS power modes, display colour-format capability, sRGB default,
  preferred-timing semantics and the GTF-default/continuous-frequency bit
  whose meaning is release-dependent.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package value

// AnalogColorType is the display-type encoding used when the video input is
// analog (byte 0x18, bits 4-3).
type AnalogColorType byte

const (
	ColorMonochrome AnalogColorType = 0
	ColorRGB        AnalogColorType = 1
	ColorNonRGB     AnalogColorType = 2
	ColorUndefined  AnalogColorType = 3
)

// DigitalColorType is the display-type encoding used when the video input
// is digital (byte 0x18, bits 4-3): which of RGB 4:4:4, YCbCr 4:4:4 and
// YCbCr 4:2:2 the display accepts in addition to RGB 4:4:4.
type DigitalColorType byte

const (
	ColorRGB444                   DigitalColorType = 0
	ColorRGB444YCbCr444           DigitalColorType = 1
	ColorRGB444YCbCr422           DigitalColorType = 2
	ColorRGB444YCbCr444AndYCbCr422 DigitalColorType = 3
)

// ColorSupport is the tagged analog/digital display-type value stored in
// FeatureSupport. Its tag must agree with the VideoInput it is paired with
// in a Description; that cross-field check is performed by the base-block
// assembler, not here, since the two values are constructed independently.
type ColorSupport interface {
	isColorSupport()
	bits() byte
	isDigital() bool
}

func (AnalogColorType) isColorSupport()  {}
func (a AnalogColorType) bits() byte     { return byte(a) }
func (AnalogColorType) isDigital() bool  { return false }

func (DigitalColorType) isColorSupport() {}
func (d DigitalColorType) bits() byte    { return byte(d) }
func (DigitalColorType) isDigital() bool { return true }

// ColorSupportBits returns the raw 2-bit display-type code and whether it
// is the digital-family encoding.
func ColorSupportBits(c ColorSupport) (bits byte, digital bool) { return c.bits(), c.isDigital() }

// FeatureSupport is the feature-support bitmap, byte 0x18 of the base
// block.
type FeatureSupport struct {
	Standby   bool // R3 only; deprecated (rejected) under R4
	Suspend   bool // R3 only; deprecated (rejected) under R4
	ActiveOff bool

	Color ColorSupport

	SRGBDefault             bool
	PreferredTimingIsNative bool

	// Exactly one of GTFDefault (R3) / ContinuousFrequency (R4) is
	// meaningful for a given release; the other must be left false.
	GTFDefault          bool // R3
	ContinuousFrequency bool // R4
}

// NewFeatureSupport validates fs against release and returns a copy with
// its release-gated bits enforced.
func NewFeatureSupport(release Release, fs FeatureSupport) (FeatureSupport, error) {
	if fs.Color == nil {
		return FeatureSupport{}, &InvalidField{Field: "feature_support.color", Reason: "must not be nil"}
	}
	if release == R4 && (fs.Standby || fs.Suspend) {
		return FeatureSupport{}, &VersionUnsupported{Field: "feature_support.standby_or_suspend", Release: release}
	}
	if release == R3 && fs.ContinuousFrequency {
		return FeatureSupport{}, &VersionUnsupported{Field: "feature_support.continuous_frequency", Release: release}
	}
	if release == R4 && fs.GTFDefault {
		return FeatureSupport{}, &VersionUnsupported{Field: "feature_support.gtf_default", Release: release}
	}
	return fs, nil
}

// Byte packs the feature-support bitmap into its one-byte wire
// representation. The analog/digital family of fs.Color must match the
// video input's; the base-block assembler checks that invariant before
// calling Byte.
func (fs FeatureSupport) Byte() byte {
	var b byte
	if fs.Standby {
		b |= 1 << 7
	}
	if fs.Suspend {
		b |= 1 << 6
	}
	if fs.ActiveOff {
		b |= 1 << 5
	}
	b |= fs.Color.bits() << 3
	if fs.SRGBDefault {
		b |= 1 << 2
	}
	if fs.PreferredTimingIsNative {
		b |= 1 << 1
	}
	if fs.GTFDefault || fs.ContinuousFrequency {
		b |= 1 << 0
	}
	return b
}
