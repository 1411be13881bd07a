/*
NAME
  datablock.go

DESCRIPTION
  datablock.go implements the CTA-861 data-block encoders: Audio (Short
  Audio Descriptors), Video (VIC list), Vendor-Specific HDMI, Speaker
  Allocation, and the two Extended sub-blocks (Colorimetry and Video
  Capability). Every block shares the same tag(3 bits)|length(5 bits)
  framing byte.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package cta861 implements the CTA-861 data-block encoders and the
// CTA-861 extension block assembler.
package cta861

import "github.com/ausocean/edid/value"

// blockTag is the 3-bit CTA data-block tag code.
type blockTag byte

const (
	tagAudio             blockTag = 1
	tagVideo             blockTag = 2
	tagVendorSpecific    blockTag = 3
	tagSpeakerAllocation blockTag = 4
	tagExtended          blockTag = 7
)

const (
	extendedTagVideoCapability byte = 0x00
	extendedTagColorimetry     byte = 0x05
)

// maxPayloadLen is the largest payload a single CTA data block can carry,
// bounded by the 5-bit length field.
const maxPayloadLen = 31

// DataBlock is the interface implemented by every CTA-861 data-block
// variant.
type DataBlock interface {
	// encode returns the block's complete wire bytes: the tag|length
	// framing byte followed by its payload.
	encode() ([]byte, error)
}

func frame(tag blockTag, payload []byte) ([]byte, error) {
	if len(payload) > maxPayloadLen {
		return nil, &value.SlotOverflow{Region: "cta_data_block", Needed: len(payload), Available: maxPayloadLen}
	}
	out := make([]byte, 0, len(payload)+1)
	out = append(out, byte(tag)<<5|byte(len(payload)))
	out = append(out, payload...)
	return out, nil
}

// SamplingRates is a bitmap of supported LPCM sampling rates for a Short
// Audio Descriptor, byte 1 bits 6-0.
type SamplingRates byte

const (
	Rate32kHz  SamplingRates = 1 << 0
	Rate44_1kHz SamplingRates = 1 << 1
	Rate48kHz  SamplingRates = 1 << 2
	Rate88_2kHz SamplingRates = 1 << 3
	Rate96kHz  SamplingRates = 1 << 4
	Rate176_4kHz SamplingRates = 1 << 5
	Rate192kHz SamplingRates = 1 << 6
)

// BitDepths is a bitmap of supported LPCM sample bit depths for a Short
// Audio Descriptor, byte 2 bits 2-0.
type BitDepths byte

const (
	Depth16Bit BitDepths = 1 << 0
	Depth20Bit BitDepths = 1 << 1
	Depth24Bit BitDepths = 1 << 2
)

// SAD is a single 3-byte Short Audio Descriptor, LPCM format only.
type SAD struct {
	Channels int // 1..=8
	Rates    SamplingRates
	Depths   BitDepths
}

const lpcmFormat = 1

// Bytes packs the SAD into its three-byte wire representation.
func (s SAD) Bytes() ([3]byte, error) {
	if s.Channels < 1 || s.Channels > 8 {
		return [3]byte{}, &value.InvalidField{Field: "sad.channels", Reason: "must be 1..8"}
	}
	return [3]byte{
		lpcmFormat<<3 | byte(s.Channels-1),
		byte(s.Rates),
		byte(s.Depths),
	}, nil
}

// Audio is the CTA-861 Audio data block: a list of Short Audio
// Descriptors.
type Audio struct {
	SADs []SAD
}

func (a Audio) encode() ([]byte, error) {
	payload := make([]byte, 0, 3*len(a.SADs))
	for _, s := range a.SADs {
		b, err := s.Bytes()
		if err != nil {
			return nil, err
		}
		payload = append(payload, b[:]...)
	}
	return frame(tagAudio, payload)
}

// VIC is a CTA-861 Video Identification Code paired with whether it is
// the display's native format.
type VIC struct {
	Code   byte
	Native bool
}

// Video is the CTA-861 Video data block: an ordered list of VICs.
type Video struct {
	VICs []VIC
}

func (v Video) encode() ([]byte, error) {
	payload := make([]byte, 0, len(v.VICs))
	for _, vic := range v.VICs {
		b := vic.Code
		if vic.Native {
			b |= 0x80
		}
		payload = append(payload, b)
	}
	return frame(tagVideo, payload)
}

// DeepColorSupport is the HDMI VSDB's deep-colour bitmap, byte 6 bits
// 6-3.
type DeepColorSupport byte

const (
	DeepColorYCbCr444 DeepColorSupport = 1 << 3
	DeepColor30Bit    DeepColorSupport = 1 << 4
	DeepColor36Bit    DeepColorSupport = 1 << 5
	DeepColor48Bit    DeepColorSupport = 1 << 6
)

// VendorSpecificHdmi is the CTA-861 HDMI Vendor-Specific Data Block
// (OUI 00-0C-03).
type VendorSpecificHdmi struct {
	// SourcePhysicalAddress is the four HDMI CEC physical-address nibbles
	// A.B.C.D.
	SourcePhysicalAddress [4]byte

	SupportsDVIDual bool
	SupportsACPISRC bool
	DeepColor       DeepColorSupport

	// MaxTMDSClockMHz is optional; zero means absent. If present it must be
	// >= 165 and a multiple of 5.
	MaxTMDSClockMHz int

	VICs []VIC
}

var hdmiOUI = [3]byte{0x03, 0x0c, 0x00} // 00-0C-03, little-endian on the wire

func (h VendorSpecificHdmi) encode() ([]byte, error) {
	for i, n := range h.SourcePhysicalAddress {
		if n > 0xf {
			return nil, &value.InvalidField{Field: "vendor_specific_hdmi.source_physical_address", Reason: "each nibble must be 0..15"}
		}
		_ = i
	}
	if h.MaxTMDSClockMHz != 0 {
		if h.MaxTMDSClockMHz < 165 || h.MaxTMDSClockMHz%5 != 0 {
			return nil, &value.InvalidField{Field: "vendor_specific_hdmi.max_tmds_clock_mhz", Reason: "must be >= 165 and a multiple of 5"}
		}
	}

	payload := make([]byte, 0, maxPayloadLen)
	payload = append(payload, hdmiOUI[:]...)
	payload = append(payload, h.SourcePhysicalAddress[0]<<4|h.SourcePhysicalAddress[1], h.SourcePhysicalAddress[2]<<4|h.SourcePhysicalAddress[3])

	var flags byte
	if h.SupportsACPISRC {
		flags |= 1 << 7
	}
	flags |= byte(h.DeepColor)
	if h.SupportsDVIDual {
		flags |= 1 << 2
	}
	payload = append(payload, flags)

	maxTMDS := byte(0)
	if h.MaxTMDSClockMHz != 0 {
		maxTMDS = byte(h.MaxTMDSClockMHz / 5)
	}
	payload = append(payload, maxTMDS)

	var latencyPresence byte // always 0 in this core: no latency fields supported
	payload = append(payload, latencyPresence)

	if len(h.VICs) > 0 {
		payload = append(payload, byte(len(h.VICs))<<5)
		for _, vic := range h.VICs {
			b := vic.Code
			if vic.Native {
				b |= 0x80
			}
			payload = append(payload, b)
		}
	}

	return frame(tagVendorSpecific, payload)
}

// SpeakerAllocation is the CTA-861 Speaker Allocation data block, a
// three-byte bitmap of supported channel groups.
type SpeakerAllocation struct {
	Flags [3]byte
}

func (s SpeakerAllocation) encode() ([]byte, error) {
	return frame(tagSpeakerAllocation, s.Flags[:])
}

// Colorimetry is the CTA-861 Extended::Colorimetry data block.
type Colorimetry struct {
	Flags    byte
	Metadata byte
}

func (c Colorimetry) encode() ([]byte, error) {
	payload := []byte{extendedTagColorimetry, c.Flags, c.Metadata}
	return frame(tagExtended, payload)
}

// QuantizationSelectable reports whether a quantization range is
// selectable via AVI infoframe (CTA-861 VideoCapability block).
type QuantizationSelectable bool

// ScanBehavior is the IT/CE overscan-underscan behaviour reported by the
// VideoCapability block.
type ScanBehavior byte

const (
	ScanUnknown      ScanBehavior = 0
	ScanAlwaysOverscanned ScanBehavior = 1
	ScanAlwaysUnderscanned ScanBehavior = 2
	ScanBoth         ScanBehavior = 3
)

// VideoCapability is the CTA-861 Extended::VideoCapability data block.
type VideoCapability struct {
	QYQuantSelectable QuantizationSelectable
	QSQuantSelectable QuantizationSelectable
	ITScan            ScanBehavior
	CEScan            ScanBehavior
}

func (v VideoCapability) encode() ([]byte, error) {
	var b byte
	if v.QYQuantSelectable {
		b |= 1 << 7
	}
	if v.QSQuantSelectable {
		b |= 1 << 6
	}
	b |= byte(v.ITScan) << 2
	b |= byte(v.CEScan)
	payload := []byte{extendedTagVideoCapability, b}
	return frame(tagExtended, payload)
}
