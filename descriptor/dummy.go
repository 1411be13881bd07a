/*
NAME
  dummy.go

DESCRIPTION
  dummy.go implements the Dummy descriptor (tag 0x10), used to fill an
  unused descriptor slot with no semantic content beyond its header.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package descriptor

import "github.com/ausocean/edid/value"

// Dummy is the filler descriptor for an unused slot (tag 0x10); its
// payload carries no information.
type Dummy struct{}

// IsDetailedTiming always returns false for Dummy.
func (Dummy) IsDetailedTiming() bool { return false }

func (Dummy) encode(slot int, release value.Release) ([18]byte, error) {
	var out [18]byte
	h := sentinelHeader(TagDummy)
	copy(out[0:5], h[:])
	return out, nil
}
