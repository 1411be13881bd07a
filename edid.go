/*
NAME
  edid.go

DESCRIPTION
  edid.go is the top-level encoder: it orchestrates the base block and the
  optional CTA-861 extension, checks the cross-block invariants that span
  both, and returns the final byte buffer.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package edid serializes a typed, validated in-memory description of a
// display device into a byte-exact VESA EDID 1.3/1.4 blob, with an
// optional CTA-861 extension block. It never decodes; a byte buffer goes
// in only in the reverse direction, via VerifyChecksums, which checks
// structure without reconstructing a Description.
package edid

import (
	"fmt"

	"github.com/ausocean/edid/base"
	"github.com/ausocean/edid/cta861"
	"github.com/ausocean/edid/value"
)

// Re-exported so callers never need to import the value package directly.
type (
	Release                = value.Release
	InvalidField           = value.InvalidField
	CrossFieldInconsistent = value.CrossFieldInconsistent
	VersionUnsupported     = value.VersionUnsupported
	SlotOverflow           = value.SlotOverflow
	MissingRequired        = value.MissingRequired
)

const (
	R3 = value.R3
	R4 = value.R4
)

// Description is the complete, not-yet-validated description of a
// display: an EDID base block plus an optional CTA-861 extension.
type Description struct {
	Base      base.BaseBlock
	Extension *cta861.Extension
}

// Encode packs d into its final byte buffer: 128 bytes when Extension is
// nil, 256 bytes otherwise. It never panics on a validly constructed
// Description.
func Encode(d Description) ([]byte, error) {
	extensionCount := 0
	if d.Extension != nil {
		extensionCount = 1
	}
	d.Base.ExtensionCount = extensionCount

	if d.Extension != nil && d.Extension.NativeFormats > 0 {
		dtds := countDetailedTimings(d.Base) + len(d.Extension.DetailedTimings)
		if dtds < d.Extension.NativeFormats {
			return nil, &value.CrossFieldInconsistent{
				Fields: []string{"extension.native_formats"},
				Reason: "fewer detailed timings present across base and extension than declared native formats",
			}
		}
	}

	baseBytes, err := base.Encode(d.Base)
	if err != nil {
		return nil, err
	}

	if d.Extension == nil {
		out := make([]byte, base.Size)
		copy(out, baseBytes[:])
		return out, nil
	}

	extBytes, err := cta861.Encode(*d.Extension)
	if err != nil {
		return nil, err
	}

	out := make([]byte, base.Size+cta861.Size)
	copy(out[:base.Size], baseBytes[:])
	copy(out[base.Size:], extBytes[:])
	return out, nil
}

func countDetailedTimings(b base.BaseBlock) int {
	n := 0
	for _, d := range b.Descriptors {
		if d != nil && d.IsDetailedTiming() {
			n++
		}
	}
	return n
}

// VerifyChecksums validates that buf is a well-formed output of Encode:
// its length is a multiple of 128, and every 128-byte block's checksum
// byte brings that block's byte sum to 0 mod 256.
func VerifyChecksums(buf []byte) error {
	if len(buf) == 0 || len(buf)%base.Size != 0 {
		return &value.InvalidField{Field: "buf", Reason: "length must be a positive multiple of 128"}
	}
	for i := 0; i < len(buf); i += base.Size {
		block := buf[i : i+base.Size]
		var sum byte
		for _, b := range block {
			sum += b
		}
		if sum != 0 {
			return &value.InvalidField{Field: "buf", Reason: fmt.Sprintf("checksum mismatch in block starting at offset %d", i)}
		}
	}
	return nil
}
