/*
NAME
  base.go

DESCRIPTION
  base.go assembles the 128-byte EDID base block from validated domain
  values: header, manufacturer/product/serial identity, manufacture date,
  video input, display size, gamma, feature support, chromaticity,
  established and standard timings, the four 18-byte descriptor slots,
  extension count and checksum.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package base assembles the 128-byte EDID base block.
package base

import (
	"github.com/ausocean/edid/descriptor"
	"github.com/ausocean/edid/pack"
	"github.com/ausocean/edid/value"
)

// header is the fixed eight-byte EDID signature (base-block bytes 0x00-0x07).
var header = [8]byte{0x00, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x00}

const edidVersion = 1

// Size is the length in bytes of an EDID base block.
const Size = 128

// MaxDescriptors is the number of 18-byte descriptor slots in the base
// block.
const MaxDescriptors = 4

// BaseBlock is the fully validated contents of an EDID base block, ready
// to be packed into its 128-byte wire form by Encode.
type BaseBlock struct {
	Release value.Release

	Manufacturer value.ManufacturerID
	Product      value.ProductCode
	Serial       value.SerialNumber
	Date         value.Date

	VideoInput  value.VideoInput
	DisplaySize value.DisplaySize
	Gamma       value.Gamma
	Feature     value.FeatureSupport

	Chromaticity value.Chromaticity
	Established  value.EstablishedTimings
	Standard     []value.StandardTiming

	// Descriptors holds up to MaxDescriptors entries. A nil entry in a
	// trailing position is encoded as descriptor.Dummy{}. When Descriptors[0]
	// is a descriptor.DetailedTiming it is treated as the display's
	// preferred timing; no other slot may hold a DetailedTiming.
	Descriptors []descriptor.Descriptor

	ExtensionCount int
}

// Encode packs b into its 128-byte wire form, or returns an error if b
// violates a cross-field invariant or release-gated constraint.
func Encode(b BaseBlock) ([Size]byte, error) {
	if err := validate(b); err != nil {
		return [Size]byte{}, err
	}

	var out [Size]byte
	copy(out[0:8], header[:])

	mfg := b.Manufacturer.Bytes()
	copy(out[8:10], mfg[:])

	prod := b.Product.Bytes()
	copy(out[10:12], prod[:])

	serial := b.Serial.Bytes()
	copy(out[12:16], serial[:])

	date := b.Date.Bytes()
	out[16], out[17] = date[0], date[1]

	out[18] = edidVersion
	out[19] = b.Release.RevisionByte()

	vi, err := value.EncodeVideoInput(b.VideoInput, b.Release)
	if err != nil {
		return [Size]byte{}, err
	}
	out[20] = vi

	size, err := b.DisplaySize.Bytes()
	if err != nil {
		return [Size]byte{}, err
	}
	out[21], out[22] = size[0], size[1]

	out[23] = b.Gamma.Byte()
	out[24] = b.Feature.Byte()

	chroma := b.Chromaticity.Bytes()
	copy(out[25:35], chroma[:])

	est := b.Established.Bytes()
	copy(out[35:38], est[:])

	for i := 0; i < value.MaxStandardTimings; i++ {
		off := 38 + i*2
		if i < len(b.Standard) {
			st := b.Standard[i].Bytes()
			out[off], out[off+1] = st[0], st[1]
			continue
		}
		out[off], out[off+1] = value.UnusedStandardTimingBytes[0], value.UnusedStandardTimingBytes[1]
	}

	for slot := 0; slot < MaxDescriptors; slot++ {
		d := descriptorAt(b.Descriptors, slot)
		enc, err := descriptor.Encode(d, slot, b.Release)
		if err != nil {
			return [Size]byte{}, err
		}
		off := 54 + slot*18
		copy(out[off:off+18], enc[:])
	}

	if b.ExtensionCount < 0 || b.ExtensionCount > 255 {
		return [Size]byte{}, &value.InvalidField{Field: "extension_count", Reason: "must be 0..255"}
	}
	out[126] = byte(b.ExtensionCount)

	out[127] = pack.Checksum(out[:127])

	return out, nil
}

// descriptorAt returns descriptors[slot] if present, otherwise
// descriptor.Dummy{}.
func descriptorAt(descriptors []descriptor.Descriptor, slot int) descriptor.Descriptor {
	if slot < len(descriptors) && descriptors[slot] != nil {
		return descriptors[slot]
	}
	return descriptor.Dummy{}
}

// validate enforces the base block's cross-field invariants and
// release-gated constraints that no single value type can check on its
// own, because it is the only place where every value is visible at once.
func validate(b BaseBlock) error {
	if !b.Release.Valid() {
		return &value.InvalidField{Field: "release", Reason: "must be R3 or R4"}
	}
	if b.VideoInput == nil {
		return &value.InvalidField{Field: "video_input", Reason: "must not be nil"}
	}
	if b.Feature.Color == nil {
		return &value.InvalidField{Field: "feature_support.color", Reason: "must not be nil"}
	}
	if _, err := value.NewFeatureSupport(b.Release, b.Feature); err != nil {
		return err
	}

	_, colorIsDigital := value.ColorSupportBits(b.Feature.Color)
	if b.VideoInput.IsDigital() != colorIsDigital {
		return &value.CrossFieldInconsistent{
			Fields: []string{"video_input", "feature_support.color"},
			Reason: "display-type colour encoding must match the video input's analog/digital family",
		}
	}

	if len(b.Standard) > value.MaxStandardTimings {
		return &value.SlotOverflow{Region: "standard_timings", Needed: len(b.Standard), Available: value.MaxStandardTimings}
	}
	if len(b.Descriptors) > MaxDescriptors {
		return &value.SlotOverflow{Region: "descriptors", Needed: len(b.Descriptors), Available: MaxDescriptors}
	}

	for i, d := range b.Descriptors {
		if d == nil {
			continue
		}
		if d.IsDetailedTiming() && i != 0 {
			return &value.CrossFieldInconsistent{
				Fields: []string{"descriptors"},
				Reason: "a DetailedTiming descriptor may only occupy slot 0",
			}
		}
	}

	if !b.Established.Has(value.Mode640x480At60Hz) {
		return &value.MissingRequired{Field: "established_timings.640x480_60hz", Release: b.Release}
	}

	if b.Release == value.R3 {
		if err := requireDescriptor(b.Descriptors, func(d descriptor.Descriptor) bool {
			_, ok := d.(descriptor.DisplayRangeLimits)
			return ok
		}, "display_range_limits"); err != nil {
			return err
		}
		if err := requireDescriptor(b.Descriptors, func(d descriptor.Descriptor) bool {
			_, ok := d.(descriptor.ProductName)
			return ok
		}, "product_name"); err != nil {
			return err
		}
	}

	return nil
}

func requireDescriptor(descriptors []descriptor.Descriptor, match func(descriptor.Descriptor) bool, name string) error {
	for _, d := range descriptors {
		if d != nil && match(d) {
			return nil
		}
	}
	return &value.MissingRequired{Field: "descriptors." + name, Release: value.R3}
}
