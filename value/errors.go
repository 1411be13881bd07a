/*
NAME
  errors.go

DESCRIPTION
  errors.go defines the error types returned by the value constructors and by
  the higher assembler packages (descriptor, base, cta861) when a description
  cannot be encoded. No error is ever swallowed; construction fails at the
  first offending field, and assembly fails at the first cross-field or
  slotting violation.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package value

import "fmt"

// InvalidField indicates that a value was rejected at construction, e.g. out
// of range, wrong alphabet, or not a multiple of the required increment.
type InvalidField struct {
	Field  string
	Reason string
}

func (e *InvalidField) Error() string {
	return fmt.Sprintf("edid: invalid field %q: %s", e.Field, e.Reason)
}

// CrossFieldInconsistent indicates that two or more otherwise-valid fields
// conflict, e.g. YCbCr 4:4:4 support without 4:2:2, or a display-type flag
// that disagrees with the analog/digital input flag.
type CrossFieldInconsistent struct {
	Fields []string
	Reason string
}

func (e *CrossFieldInconsistent) Error() string {
	return fmt.Sprintf("edid: fields %v are inconsistent: %s", e.Fields, e.Reason)
}

// VersionUnsupported indicates that a field's value requires a release of
// EDID other than the one declared for the description.
type VersionUnsupported struct {
	Field   string
	Release Release
}

func (e *VersionUnsupported) Error() string {
	return fmt.Sprintf("edid: field %q is not supported under release %s", e.Field, e.Release)
}

// SlotOverflow indicates that a fixed-capacity region (descriptor slots,
// standard timing slots, a data-block collection, a descriptor string) was
// asked to hold more than it has room for.
type SlotOverflow struct {
	Region    string
	Needed    int
	Available int
}

func (e *SlotOverflow) Error() string {
	return fmt.Sprintf("edid: %s needs %d but only %d are available", e.Region, e.Needed, e.Available)
}

// MissingRequired indicates that a mandatory field or descriptor is absent
// for the declared release.
type MissingRequired struct {
	Field   string
	Release Release
}

func (e *MissingRequired) Error() string {
	return fmt.Sprintf("edid: field %q is required under release %s", e.Field, e.Release)
}
