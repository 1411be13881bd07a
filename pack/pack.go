/*
NAME
  pack.go

DESCRIPTION
  pack.go provides the primitive wire-format encoders shared by the
  descriptor, base and cta861 packages: VESA's 5-bit-letter manufacturer
  code, 10-bit fixed-point chromaticity fractions, padded ASCII strings and
  the two's-complement checksum used by both the base block and the CTA-861
  extension. These are pure, total functions over already-validated values;
  they never allocate more than the fixed buffer they're asked to fill and
  they never reach into caller state.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package pack implements the fixed-width primitive encoders that the rest
// of the edid module builds its byte layouts from.
package pack

// Manufacturer packs three uppercase ASCII letters into the two-byte,
// five-bit-per-letter big-endian VESA manufacturer code (bytes 0x08-0x09 of
// the base block). Callers are expected to have already validated that id
// is exactly three uppercase letters; Manufacturer panics otherwise, as this
// is a programmer error unreachable through the public, validating API.
func Manufacturer(id string) [2]byte {
	if len(id) != 3 {
		panic("pack: manufacturer id must be exactly three letters")
	}
	v1 := letterCode(id[0])
	v2 := letterCode(id[1])
	v3 := letterCode(id[2])
	return [2]byte{
		(v1 << 2) | (v2 >> 3),
		((v2 & 0x07) << 5) | v3,
	}
}

func letterCode(c byte) byte {
	if c < 'A' || c > 'Z' {
		panic("pack: manufacturer id must be uppercase A-Z")
	}
	return c - 'A' + 1
}

// UnpackManufacturer is the inverse of Manufacturer, used by tests to
// confirm the round-trip property required by §8.5.
func UnpackManufacturer(b [2]byte) string {
	hi := uint16(b[0])<<8 | uint16(b[1])
	v1 := byte(hi>>10) & 0x1f
	v2 := byte(hi>>5) & 0x1f
	v3 := byte(hi) & 0x1f
	return string([]byte{'A' + v1 - 1, 'A' + v2 - 1, 'A' + v3 - 1})
}

// Chroma10 converts x in [0,1) to its 10-bit unsigned fixed-point
// representation, clamped to 0..1023, per VESA's chromaticity encoding.
func Chroma10(x float64) uint16 {
	v := int(x*1024 + 0.5)
	if v < 0 {
		v = 0
	}
	if v > 1023 {
		v = 1023
	}
	return uint16(v)
}

// SplitChroma10 splits a 10-bit chromaticity fraction into its low two bits
// (as stored packed two-per-nibble-pair in bytes 0x19/0x1A) and its high
// eight bits (stored in the channel's own byte at 0x1B-0x22).
func SplitChroma10(v uint16) (lo2, hi8 byte) {
	return byte(v & 0x3), byte(v >> 2)
}

// PaddedString writes s left-justified into a buffer of exactly n bytes:
// the raw ASCII bytes of s, then (if s is shorter than n) a 0x0A terminator,
// then 0x20 padding to fill the remainder. Callers must have validated that
// 1 <= len(s) <= n and that s is ASCII; PaddedString panics otherwise.
func PaddedString(s string, n int) []byte {
	if len(s) < 1 || len(s) > n {
		panic("pack: string length out of range for PaddedString")
	}
	out := make([]byte, n)
	copy(out, s)
	if len(s) < n {
		out[len(s)] = 0x0a
		for i := len(s) + 1; i < n; i++ {
			out[i] = 0x20
		}
	}
	return out
}

// Checksum computes the VESA base/extension-block checksum: the byte that,
// added to the sum of all other bytes in the block, brings the sum mod 256
// to zero.
func Checksum(block []byte) byte {
	var sum byte
	for _, b := range block {
		sum += b
	}
	return byte(256 - int(sum))
}
