/*
NAME
  descriptor.go

DESCRIPTION
  descriptor.go defines the six 18-byte base-block descriptor variants and
  the single Encode operation that turns any of them into its 18-byte wire
  form. Every variant except DetailedTiming shares the sentinel header
  "00 00 00 TT 00" (with the Display Range Limits exception noted on that
  variant's own file, where byte 4 is repurposed as the offset-flags byte
  rather than staying a literal zero).

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package descriptor implements the base block's four 18-byte descriptor
// slots and their six variants.
package descriptor

import "github.com/ausocean/edid/value"

// Tag is the descriptor-type byte written at offset 3 of a non-detailed-
// timing descriptor.
type Tag byte

const (
	TagProductSerial      Tag = 0xff
	TagDataString         Tag = 0xfe
	TagDisplayRangeLimits Tag = 0xfd
	TagProductName        Tag = 0xfc
	TagDummy              Tag = 0x10
)

// Descriptor is the common interface implemented by all six 18-byte
// descriptor variants.
type Descriptor interface {
	// IsDetailedTiming reports whether this descriptor is a DetailedTiming,
	// which drives the base block's slot-0 preferred-timing policy.
	IsDetailedTiming() bool
	// encode writes the descriptor's 18-byte wire form for the given slot
	// index (0-3) and release.
	encode(slot int, release value.Release) ([18]byte, error)
}

// Encode returns the 18-byte wire form of d for the given slot index
// (0-3) and release.
func Encode(d Descriptor, slot int, release value.Release) ([18]byte, error) {
	return d.encode(slot, release)
}

// sentinelHeader writes the standard "00 00 00 TT 00" header shared by
// every non-DetailedTiming descriptor variant except DisplayRangeLimits.
func sentinelHeader(tag Tag) [5]byte {
	return [5]byte{0x00, 0x00, 0x00, byte(tag), 0x00}
}
