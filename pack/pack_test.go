/*
DESCRIPTION
  pack_test.go tests the stdlib-only bit-packing primitives shared by the
  higher-level value, descriptor, base and cta861 packages.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package pack

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestManufacturer(t *testing.T) {
	cases := []struct {
		id   string
		want [2]byte
	}{
		{"LNX", [2]byte{0x31, 0xd8}},
		{"AAA", [2]byte{0x04, 0x21}},
	}
	for _, c := range cases {
		got := Manufacturer(c.id)
		if !cmp.Equal(got, c.want) {
			t.Errorf("Manufacturer(%q) = %v, want %v", c.id, got, c.want)
		}
		if back := UnpackManufacturer(got); back != c.id {
			t.Errorf("UnpackManufacturer(Manufacturer(%q)) = %q, want %q", c.id, back, c.id)
		}
	}
}

func TestChroma10RoundTrip(t *testing.T) {
	for _, x := range []float64{0, 0.3127, 0.64, 0.999} {
		v := Chroma10(x)
		lo, hi := SplitChroma10(v)
		recombined := uint16(hi)<<2 | uint16(lo)
		if recombined != v {
			t.Errorf("Chroma10(%v) split/recombine mismatch: got %v, want %v", x, recombined, v)
		}
	}
}

func TestPaddedString(t *testing.T) {
	got := PaddedString("abc", 6)
	want := []byte("abc\x0a\x20\x20")
	if !cmp.Equal(got, want) {
		t.Errorf("PaddedString() = %v, want %v", got, want)
	}
}

func TestChecksum(t *testing.T) {
	block := make([]byte, 127)
	block[3] = 0x42
	sum := Checksum(block)
	block = append(block, sum)
	var total byte
	for _, b := range block {
		total += b
	}
	if total != 0 {
		t.Errorf("checksum %d did not bring sum to 0 mod 256, got %d", sum, total)
	}
}
