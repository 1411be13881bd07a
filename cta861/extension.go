/*
NAME
  extension.go

DESCRIPTION
  extension.go assembles the 128-byte CTA-861 extension block: header,
  flags, the data-block collection (length-budgeted against the 123
  bytes available after the header), the trailing detailed-timing list,
  zero-fill padding and checksum.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package cta861

import (
	"github.com/ausocean/edid/descriptor"
	"github.com/ausocean/edid/pack"
	"github.com/ausocean/edid/value"
)

// Size is the length in bytes of a CTA-861 extension block.
const Size = 128

const (
	extensionTag      = 0x02
	extensionRevision = 0x03
)

// noDataOffset is the byte-offset value written at offset 0x02 when the
// extension carries neither data blocks nor detailed timings. The real
// VESA wording ("0x00 means no data present") is ambiguous against the
// value edid-decode actually expects here; this implementation follows
// edid-decode's convention per the Open Question resolution in
// DESIGN.md and always writes the header length (4) in that case.
const noDataOffset = 0x04

// Extension is the fully validated contents of a CTA-861 extension
// block, ready to be packed into its 128-byte wire form by Encode.
type Extension struct {
	UnderscanITFormatsByDefault bool
	BasicAudio                  bool
	YCbCr444Supported           bool
	YCbCr422Supported           bool
	NativeFormats               int // 0..=15

	DataBlocks []DataBlock

	// DetailedTimings is the extension's own trailing DTD list; the first
	// entry, if any, is the preferred timing for this block.
	DetailedTimings []descriptor.DetailedTiming
}

// Encode packs e into its 128-byte wire form, or returns an error if e
// violates a cross-field invariant or overflows the data-block budget.
func Encode(e Extension) ([Size]byte, error) {
	if e.YCbCr444Supported != e.YCbCr422Supported {
		return [Size]byte{}, &value.CrossFieldInconsistent{
			Fields: []string{"ycbcr_444_supported", "ycbcr_422_supported"},
			Reason: "must be co-set",
		}
	}
	if e.NativeFormats < 0 || e.NativeFormats > 15 {
		return [Size]byte{}, &value.InvalidField{Field: "native_formats", Reason: "must be 0..15"}
	}

	var dataBytes []byte
	for _, db := range e.DataBlocks {
		b, err := db.encode()
		if err != nil {
			return [Size]byte{}, err
		}
		dataBytes = append(dataBytes, b...)
	}

	const headerLen = 4
	const payloadBudget = Size - headerLen - 1 // 123 bytes shared by data blocks + DTDs; the last byte is the checksum

	timingBytes := len(e.DetailedTimings) * 18
	if len(dataBytes)+timingBytes > payloadBudget {
		return [Size]byte{}, &value.SlotOverflow{
			Region:    "cta_extension_payload",
			Needed:    len(dataBytes) + timingBytes,
			Available: payloadBudget,
		}
	}

	var out [Size]byte
	out[0] = extensionTag
	out[1] = extensionRevision

	d := headerLen + len(dataBytes)
	if len(dataBytes) == 0 && len(e.DetailedTimings) == 0 {
		out[2] = noDataOffset
	} else {
		out[2] = byte(d)
	}

	var flags byte
	if e.UnderscanITFormatsByDefault {
		flags |= 1 << 7
	}
	if e.BasicAudio {
		flags |= 1 << 6
	}
	if e.YCbCr444Supported {
		flags |= 1 << 5
	}
	if e.YCbCr422Supported {
		flags |= 1 << 4
	}
	flags |= byte(e.NativeFormats)
	out[3] = flags

	copy(out[headerLen:], dataBytes)

	off := headerLen + len(dataBytes)
	for slot, dt := range e.DetailedTimings {
		enc, err := descriptor.Encode(dt, slot, value.R4)
		if err != nil {
			return [Size]byte{}, err
		}
		copy(out[off:off+18], enc[:])
		off += 18
	}
	// Bytes from off to 0x7D remain zero-filled (already the array's
	// zero value).

	out[127] = pack.Checksum(out[:127])

	return out, nil
}
