/*
NAME
  gamma.go

DESCRIPTION
  gamma.go implements the display gamma field at base-block byte 0x17.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package value

import "math"

// Gamma is the display transfer-function exponent, 1.00..=3.54, or
// undefined (encoded as 0xFF, meaning "gamma is stored in an extension
// block instead").
type Gamma struct {
	defined bool
	value   float64
}

// UndefinedGamma returns a Gamma that defers to an extension block.
func UndefinedGamma() Gamma { return Gamma{} }

// NewGamma validates g as being in 1.00..=3.54 and returns the
// corresponding Gamma.
func NewGamma(g float64) (Gamma, error) {
	if g < 1.00 || g > 3.54 {
		return Gamma{}, &InvalidField{Field: "gamma", Reason: "must be 1.00..3.54"}
	}
	return Gamma{defined: true, value: g}, nil
}

// Value returns the gamma value, or 0 if undefined.
func (g Gamma) Value() float64 { return g.value }

// Byte returns the one-byte wire representation of the gamma.
func (g Gamma) Byte() byte {
	if !g.defined {
		return 0xff
	}
	return byte(math.Round(g.value*100) - 100)
}
