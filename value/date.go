/*
NAME
  date.go

DESCRIPTION
  date.go implements the week-of-manufacture / year-of-manufacture /
  model-year date form at base-block bytes 0x10-0x11.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package value

const baseYear = 1990

// dateKind distinguishes the three wire forms a Date can take.
type dateKind byte

const (
	dateUnspecifiedWeek dateKind = iota
	dateWeekOfYear
	dateModelYear
)

// Date is the manufacture date (or, on R4, model year) of the display.
type Date struct {
	kind dateKind
	year int
	week int
}

// NewDateYearOnly builds a Date that declares only the year of manufacture
// (week byte 0x00), valid for either release.
func NewDateYearOnly(year int) (Date, error) {
	if year < baseYear {
		return Date{}, &InvalidField{Field: "date.year", Reason: "must be >= 1990"}
	}
	return Date{kind: dateUnspecifiedWeek, year: year}, nil
}

// NewDateWeekYear builds a Date that declares a specific week (1..=53 for
// R3, 1..=54 for R4) and year of manufacture.
func NewDateWeekYear(release Release, year, week int) (Date, error) {
	if year < baseYear {
		return Date{}, &InvalidField{Field: "date.year", Reason: "must be >= 1990"}
	}
	if week < 1 || week > release.WeekMax() {
		return Date{}, &InvalidField{Field: "date.week", Reason: "out of range for release"}
	}
	return Date{kind: dateWeekOfYear, year: year, week: week}, nil
}

// NewDateModelYear builds a Date that declares a model year rather than a
// manufacture date (week byte 0xFF). This form only exists in EDID 1.4.
func NewDateModelYear(release Release, modelYear int) (Date, error) {
	if release != R4 {
		return Date{}, &VersionUnsupported{Field: "date.model_year", Release: release}
	}
	if modelYear < baseYear {
		return Date{}, &InvalidField{Field: "date.model_year", Reason: "must be >= 1990"}
	}
	return Date{kind: dateModelYear, year: modelYear}, nil
}

// Year returns the declared calendar year or model year.
func (d Date) Year() int { return d.year }

// Week returns the declared week, or 0 if none was declared.
func (d Date) Week() int { return d.week }

// IsModelYear reports whether this Date declares a model year rather than a
// manufacture date.
func (d Date) IsModelYear() bool { return d.kind == dateModelYear }

// Bytes packs the date into its two-byte wire representation: week byte
// then year byte (year-1990).
func (d Date) Bytes() [2]byte {
	yearByte := byte(d.year - baseYear)
	switch d.kind {
	case dateWeekOfYear:
		return [2]byte{byte(d.week), yearByte}
	case dateModelYear:
		return [2]byte{0xff, yearByte}
	default:
		return [2]byte{0x00, yearByte}
	}
}
