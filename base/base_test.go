/*
DESCRIPTION
  base_test.go exercises the base-block assembler against the §8 seed
  scenarios and its cross-field/release-gating invariants.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package base

import (
	"testing"

	"github.com/ausocean/edid/descriptor"
	"github.com/ausocean/edid/value"
)

func mustManufacturer(t *testing.T, id string) value.ManufacturerID {
	t.Helper()
	m, err := value.NewManufacturerID(id)
	if err != nil {
		t.Fatalf("NewManufacturerID(%q): %v", id, err)
	}
	return m
}

func mustGamma(t *testing.T, g float64) value.Gamma {
	t.Helper()
	v, err := value.NewGamma(g)
	if err != nil {
		t.Fatalf("NewGamma(%v): %v", g, err)
	}
	return v
}

func mustDisplayDimensions(t *testing.T, h, v int) value.DisplaySize {
	t.Helper()
	s, err := value.NewDisplayDimensions(h, v)
	if err != nil {
		t.Fatalf("NewDisplayDimensions(%d,%d): %v", h, v, err)
	}
	return s
}

func mustPixelClock(t *testing.T, hz int) value.PixelClock10kHz {
	t.Helper()
	pc, err := value.NewPixelClockHz(hz)
	if err != nil {
		t.Fatalf("NewPixelClockHz(%d): %v", hz, err)
	}
	return pc
}

func mustRateRange(t *testing.T, release value.Release, field string, min, max int) value.RateRange {
	t.Helper()
	r, err := value.NewRateRange(release, field, min, max)
	if err != nil {
		t.Fatalf("NewRateRange(%s): %v", field, err)
	}
	return r
}

// seedS1 builds the §8 S1 scenario: minimal R3, no extension.
func seedS1(t *testing.T) BaseBlock {
	t.Helper()
	date, err := value.NewDateYearOnly(2023)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pclk, err := value.NewMaxPixelClockMHz(150)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	chroma, err := value.NewChromaticity(value.Chromaticity{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	feature, err := value.NewFeatureSupport(value.R3, value.FeatureSupport{Color: value.ColorRGB444})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dt := descriptor.DetailedTiming{
		PixelClock:   mustPixelClock(t, 148500000),
		HActive:      1920,
		HBlanking:    88 + 44 + 148,
		VActive:      1080,
		VBlanking:    4 + 5 + 36,
		HFrontPorch:  88,
		HSyncPulse:   44,
		VFrontPorch:  4,
		VSyncPulse:   5,
		HImageSizeMM: 1600,
		VImageSizeMM: 900,
		Signal:       descriptor.DigitalSeparateSignal{HsyncPositive: true, VsyncPositive: true},
	}

	return BaseBlock{
		Release:      value.R3,
		Manufacturer: mustManufacturer(t, "LNX"),
		Product:      value.ProductCode(42),
		Date:         date,
		VideoInput:   value.DigitalVideoInput{DFP1Compatible: true},
		DisplaySize:  mustDisplayDimensions(t, 160, 90),
		Gamma:        mustGamma(t, 2.20),
		Feature:      feature,
		Chromaticity: chroma,
		Established:  value.NewEstablishedTimings(value.Mode640x480At60Hz),
		Descriptors: []descriptor.Descriptor{
			dt,
			descriptor.ProductName{Text: "Test EDID"},
			descriptor.DisplayRangeLimits{
				VerticalHz:       mustRateRange(t, value.R3, "vfreq", 50, 70),
				HorizontalKHz:    mustRateRange(t, value.R3, "hfreq", 30, 70),
				MaxPixelClockMHz: pclk,
				Timing:           descriptor.DefaultGTF{},
			},
		},
	}
}

func TestEncodeS1(t *testing.T) {
	out, err := Encode(seedS1(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != Size {
		t.Fatalf("len(out) = %d, want %d", len(out), Size)
	}
	if out[0x13] != 0x03 {
		t.Errorf("out[0x13] = %#x, want 0x03", out[0x13])
	}
	if out[126] != 0 {
		t.Errorf("out[126] (extension count) = %d, want 0", out[126])
	}
	var sum byte
	for _, b := range out {
		sum += b
	}
	if sum != 0 {
		t.Errorf("checksum did not bring byte sum to 0 mod 256, got %d", sum)
	}
}

func TestEncodeRequiresPnPTiming(t *testing.T) {
	b := seedS1(t)
	b.Established = value.EstablishedTimings{}
	if _, err := Encode(b); err == nil {
		t.Error("expected MissingRequired when 640x480@60Hz is absent")
	}
}

func TestEncodeRequiresR3Descriptors(t *testing.T) {
	b := seedS1(t)
	b.Descriptors = b.Descriptors[:1] // drop ProductName and DisplayRangeLimits
	if _, err := Encode(b); err == nil {
		t.Error("expected MissingRequired for missing R3 descriptors")
	}
}

func TestEncodeRejectsColorVideoInputMismatch(t *testing.T) {
	b := seedS1(t)
	b.VideoInput = value.AnalogVideoInput{}
	if _, err := Encode(b); err == nil {
		t.Error("expected CrossFieldInconsistent for analog input with digital color support")
	}
}

func TestEncodeRejectsDetailedTimingOutsideSlotZero(t *testing.T) {
	b := seedS1(t)
	b.Descriptors = []descriptor.Descriptor{
		descriptor.ProductName{Text: "Test EDID"},
		b.Descriptors[0],
	}
	if _, err := Encode(b); err == nil {
		t.Error("expected error for DetailedTiming outside slot 0")
	}
}
