/*
NAME
  chromaticity.go

DESCRIPTION
  chromaticity.go implements the ten-byte CIE 1931 (x,y) chromaticity block
  at base-block bytes 0x19-0x22: red, green, blue and white, each a 10-bit
  fixed-point fraction split between a shared low-bits byte and a
  per-channel high-bits byte.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package value

import "github.com/ausocean/edid/pack"

// Chromaticity is the CIE 1931 (x,y) coordinates of the display's red,
// green and blue primaries and its white point.
type Chromaticity struct {
	RedX, RedY     float64
	GreenX, GreenY float64
	BlueX, BlueY   float64
	WhiteX, WhiteY float64
}

func validUnitInterval(field string, v float64) error {
	if v < 0 || v >= 1 {
		return &InvalidField{Field: field, Reason: "must be in [0,1)"}
	}
	return nil
}

// NewChromaticity validates that every coordinate lies in [0,1).
func NewChromaticity(c Chromaticity) (Chromaticity, error) {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"chromaticity.red_x", c.RedX}, {"chromaticity.red_y", c.RedY},
		{"chromaticity.green_x", c.GreenX}, {"chromaticity.green_y", c.GreenY},
		{"chromaticity.blue_x", c.BlueX}, {"chromaticity.blue_y", c.BlueY},
		{"chromaticity.white_x", c.WhiteX}, {"chromaticity.white_y", c.WhiteY},
	} {
		if err := validUnitInterval(f.name, f.v); err != nil {
			return Chromaticity{}, err
		}
	}
	return c, nil
}

// Bytes packs the chromaticity block into its ten-byte wire representation
// (base-block bytes 0x19-0x22).
func (c Chromaticity) Bytes() [10]byte {
	rx := pack.Chroma10(c.RedX)
	ry := pack.Chroma10(c.RedY)
	gx := pack.Chroma10(c.GreenX)
	gy := pack.Chroma10(c.GreenY)
	bx := pack.Chroma10(c.BlueX)
	by := pack.Chroma10(c.BlueY)
	wx := pack.Chroma10(c.WhiteX)
	wy := pack.Chroma10(c.WhiteY)

	rxLo, rxHi := pack.SplitChroma10(rx)
	ryLo, ryHi := pack.SplitChroma10(ry)
	gxLo, gxHi := pack.SplitChroma10(gx)
	gyLo, gyHi := pack.SplitChroma10(gy)
	bxLo, bxHi := pack.SplitChroma10(bx)
	byLo, byHi := pack.SplitChroma10(by)
	wxLo, wxHi := pack.SplitChroma10(wx)
	wyLo, wyHi := pack.SplitChroma10(wy)

	return [10]byte{
		rxLo<<6 | ryLo<<4 | gxLo<<2 | gyLo,
		bxLo<<6 | byLo<<4 | wxLo<<2 | wyLo,
		rxHi, ryHi, gxHi, gyHi, bxHi, byHi, wxHi, wyHi,
	}
}
