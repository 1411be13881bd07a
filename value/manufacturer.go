/*
NAME
  manufacturer.go

DESCRIPTION
  manufacturer.go implements the VESA Plug-and-Play manufacturer ID, the
  product code and the serial number: bytes 0x08-0x0F of the base block.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package value

import "github.com/ausocean/edid/pack"

// ManufacturerID is the three-letter VESA Plug-and-Play manufacturer code,
// e.g. "LNX". It is always exactly three uppercase ASCII letters.
type ManufacturerID struct {
	letters string
}

// NewManufacturerID validates id as exactly three uppercase ASCII letters
// A-Z and returns the corresponding ManufacturerID.
func NewManufacturerID(id string) (ManufacturerID, error) {
	if len(id) != 3 {
		return ManufacturerID{}, &InvalidField{Field: "manufacturer_id", Reason: "must be exactly three letters"}
	}
	for _, c := range []byte(id) {
		if c < 'A' || c > 'Z' {
			return ManufacturerID{}, &InvalidField{Field: "manufacturer_id", Reason: "must be uppercase A-Z"}
		}
	}
	return ManufacturerID{letters: id}, nil
}

// String returns the three-letter code.
func (m ManufacturerID) String() string { return m.letters }

// Bytes packs the manufacturer ID into its two-byte wire representation.
func (m ManufacturerID) Bytes() [2]byte { return pack.Manufacturer(m.letters) }

// ProductCode is the manufacturer's 16-bit product code (little-endian on
// the wire). Every value in range is valid.
type ProductCode uint16

// Bytes returns the little-endian encoding of the product code.
func (p ProductCode) Bytes() [2]byte { return [2]byte{byte(p), byte(p >> 8)} }

// SerialNumber is the manufacturer's 32-bit serial number (little-endian on
// the wire, zero if absent). Every value in range is valid.
type SerialNumber uint32

// Bytes returns the little-endian encoding of the serial number.
func (s SerialNumber) Bytes() [4]byte {
	return [4]byte{byte(s), byte(s >> 8), byte(s >> 16), byte(s >> 24)}
}
