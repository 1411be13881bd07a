/*
NAME
  release.go

DESCRIPTION
  release.go defines the EDID release (1.3 or 1.4) that gates per-version
  fields throughout the data model.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package value

// Release identifies the EDID base-block revision a description targets.
// Only 1.3 (R3) and 1.4 (R4) are modelled; earlier revisions are a Non-goal.
type Release byte

const (
	// R3 is EDID 1.3 (revision byte 0x03).
	R3 Release = 3
	// R4 is EDID 1.4 (revision byte 0x04).
	R4 Release = 4
)

// String implements fmt.Stringer.
func (r Release) String() string {
	switch r {
	case R3:
		return "1.3"
	case R4:
		return "1.4"
	default:
		return "unknown"
	}
}

// RevisionByte returns the byte written at base-block offset 0x13.
func (r Release) RevisionByte() byte { return byte(r) }

// WeekMax returns the largest valid ISO-ish week number a Date may declare
// for this release: 53 for R3, 54 for R4 (§3).
func (r Release) WeekMax() int {
	if r == R4 {
		return 54
	}
	return 53
}

// Valid reports whether r is one of the two supported releases.
func (r Release) Valid() bool { return r == R3 || r == R4 }
