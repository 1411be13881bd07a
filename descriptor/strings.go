/*
NAME
  strings.go

DESCRIPTION
  strings.go implements the three text-payload descriptor variants
  (ProductName, ProductSerial, DataString), each a sentinel header
  followed by a 13-byte space-padded ASCII string.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package descriptor

import "github.com/ausocean/edid/value"

const stringPayloadLen = 13

func encodeTextDescriptor(tag Tag, text string) ([18]byte, error) {
	if len(text) > stringPayloadLen {
		return [18]byte{}, &value.InvalidField{Field: "text", Reason: "must be at most 13 characters"}
	}
	var out [18]byte
	h := sentinelHeader(tag)
	copy(out[0:5], h[:])
	padded := padText(text)
	copy(out[5:18], padded)
	return out, nil
}

// padText space-pads text to 13 bytes, terminating with 0x0a per the
// VESA convention when text is shorter than the field.
func padText(text string) []byte {
	out := make([]byte, stringPayloadLen)
	n := copy(out, text)
	if n < stringPayloadLen {
		out[n] = 0x0a
		n++
	}
	for ; n < stringPayloadLen; n++ {
		out[n] = 0x20
	}
	return out
}

// ProductName is the display's product name/model string (tag 0xfc).
type ProductName struct {
	Text string
}

// IsDetailedTiming always returns false for ProductName.
func (ProductName) IsDetailedTiming() bool { return false }

func (p ProductName) encode(slot int, release value.Release) ([18]byte, error) {
	return encodeTextDescriptor(TagProductName, p.Text)
}

// ProductSerial is the display's serial number string (tag 0xff).
type ProductSerial struct {
	Text string
}

// IsDetailedTiming always returns false for ProductSerial.
func (ProductSerial) IsDetailedTiming() bool { return false }

func (p ProductSerial) encode(slot int, release value.Release) ([18]byte, error) {
	return encodeTextDescriptor(TagProductSerial, p.Text)
}

// DataString is a free-form ASCII text descriptor (tag 0xfe).
type DataString struct {
	Text string
}

// IsDetailedTiming always returns false for DataString.
func (DataString) IsDetailedTiming() bool { return false }

func (d DataString) encode(slot int, release value.Release) ([18]byte, error) {
	return encodeTextDescriptor(TagDataString, d.Text)
}
