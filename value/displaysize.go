/*
NAME
  displaysize.go

DESCRIPTION
  displaysize.go implements the physical display size / aspect ratio fields
  at base-block bytes 0x15-0x16.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package value

import "math"

// displaySizeKind distinguishes the four wire forms of DisplaySize.
type displaySizeKind byte

const (
	sizeUndefined displaySizeKind = iota
	sizeDimensions
	sizeAspectLandscape
	sizeAspectPortrait
)

// DisplaySize is the physical screen size, or (R4 only) an aspect ratio in
// place of absolute dimensions.
type DisplaySize struct {
	kind  displaySizeKind
	hCm   int
	vCm   int
	ratio float64
}

// UndefinedDisplaySize returns a DisplaySize that declares no physical size
// (bytes 0x15/0x16 both zero).
func UndefinedDisplaySize() DisplaySize { return DisplaySize{kind: sizeUndefined} }

// NewDisplayDimensions builds a DisplaySize from physical horizontal and
// vertical dimensions in centimetres, each in 1..=255.
func NewDisplayDimensions(hCm, vCm int) (DisplaySize, error) {
	if hCm < 1 || hCm > 255 {
		return DisplaySize{}, &InvalidField{Field: "display_size.h_cm", Reason: "must be 1..255"}
	}
	if vCm < 1 || vCm > 255 {
		return DisplaySize{}, &InvalidField{Field: "display_size.v_cm", Reason: "must be 1..255"}
	}
	return DisplaySize{kind: sizeDimensions, hCm: hCm, vCm: vCm}, nil
}

// aspectByte converts a ratio to the (+99)/100 VESA aspect byte, erroring
// if the ratio doesn't fit a single byte (0.99..=3.54).
func aspectByte(field string, ratio float64) (byte, error) {
	v := int(math.Round(ratio*100)) - 99
	if v < 0 || v > 255 {
		return 0, &InvalidField{Field: field, Reason: "ratio out of encodable range"}
	}
	return byte(v), nil
}

// NewAspectLandscape builds an R4-only DisplaySize declaring a
// landscape (horizontal > vertical) aspect ratio in place of absolute
// dimensions (byte 0x16 is zero, byte 0x15 carries the ratio). ratio is
// horizontal/vertical.
func NewAspectLandscape(release Release, ratio float64) (DisplaySize, error) {
	if release != R4 {
		return DisplaySize{}, &VersionUnsupported{Field: "display_size.aspect", Release: release}
	}
	if _, err := aspectByte("display_size.aspect", ratio); err != nil {
		return DisplaySize{}, err
	}
	return DisplaySize{kind: sizeAspectLandscape, ratio: ratio}, nil
}

// NewAspectPortrait builds an R4-only DisplaySize declaring a portrait
// (vertical > horizontal) aspect ratio in place of absolute dimensions
// (byte 0x15 is zero, byte 0x16 carries the ratio). ratio is
// vertical/horizontal.
func NewAspectPortrait(release Release, ratio float64) (DisplaySize, error) {
	if release != R4 {
		return DisplaySize{}, &VersionUnsupported{Field: "display_size.aspect", Release: release}
	}
	if _, err := aspectByte("display_size.aspect", ratio); err != nil {
		return DisplaySize{}, err
	}
	return DisplaySize{kind: sizeAspectPortrait, ratio: ratio}, nil
}

// Bytes packs the display size into its two-byte wire representation.
func (d DisplaySize) Bytes() ([2]byte, error) {
	switch d.kind {
	case sizeDimensions:
		return [2]byte{byte(d.hCm), byte(d.vCm)}, nil
	case sizeAspectLandscape:
		b, err := aspectByte("display_size.aspect", d.ratio)
		if err != nil {
			return [2]byte{}, err
		}
		return [2]byte{b, 0x00}, nil
	case sizeAspectPortrait:
		b, err := aspectByte("display_size.aspect", d.ratio)
		if err != nil {
			return [2]byte{}, err
		}
		return [2]byte{0x00, b}, nil
	default:
		return [2]byte{0x00, 0x00}, nil
	}
}
