/*
DESCRIPTION
  edid_test.go exercises the top-level Encode orchestration and
  VerifyChecksums, built via Builder so both are covered together.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package edid

import (
	"testing"

	"github.com/ausocean/edid/cta861"
	"github.com/ausocean/edid/descriptor"
	"github.com/ausocean/edid/value"
)

func seedS1Builder(t *testing.T) *Builder {
	t.Helper()
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
	pclk, err := value.NewMaxPixelClockMHz(150)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	vfreq, err := value.NewRateRange(R3, "vfreq", 50, 70)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	hfreq, err := value.NewRateRange(R3, "hfreq", 30, 70)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return NewBuilder(R3, "LNX", 42, 1,
		WithDateYearOnly(2023),
		WithVideoInput(value.DigitalVideoInput{DFP1Compatible: true}),
		WithDisplayDimensions(160, 90),
		WithGamma(2.20),
		WithFeatureSupport(value.FeatureSupport{Color: value.ColorRGB444}),
		WithChromaticity(value.Chromaticity{}),
		WithEstablishedTimings(value.Mode640x480At60Hz),
		WithDescriptor(0, dt),
		WithDescriptor(1, descriptor.ProductName{Text: "Test EDID"}),
		WithDescriptor(2, descriptor.DisplayRangeLimits{
			VerticalHz:       vfreq,
			HorizontalKHz:    hfreq,
			MaxPixelClockMHz: pclk,
			Timing:           descriptor.DefaultGTF{},
		}),
	)
}

func mustPixelClock(t *testing.T, hz int) value.PixelClock10kHz {
	t.Helper()
	pc, err := value.NewPixelClockHz(hz)
	if err != nil {
		t.Fatalf("NewPixelClockHz(%d): %v", hz, err)
	}
	return pc
}

func TestEncodeS1NoExtension(t *testing.T) {
	desc, err := seedS1Builder(t).Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	out, err := Encode(desc)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if len(out) != 128 {
		t.Fatalf("len(out) = %d, want 128", len(out))
	}
	if err := VerifyChecksums(out); err != nil {
		t.Errorf("VerifyChecksums() error: %v", err)
	}
}

func TestEncodeS1WithExtension(t *testing.T) {
	ext := cta861.Extension{
		NativeFormats: 0,
		DataBlocks: []cta861.DataBlock{
			cta861.Video{VICs: []cta861.VIC{{Code: 16, Native: true}}},
		},
	}
	desc, err := seedS1Builder(t).Apply(WithExtension(ext)).Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	out, err := Encode(desc)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if len(out) != 256 {
		t.Fatalf("len(out) = %d, want 256", len(out))
	}
	if err := VerifyChecksums(out); err != nil {
		t.Errorf("VerifyChecksums() error: %v", err)
	}
}

func TestVerifyChecksumsRejectsBadLength(t *testing.T) {
	if err := VerifyChecksums(make([]byte, 100)); err == nil {
		t.Error("expected error for length not a multiple of 128")
	}
}

func TestVerifyChecksumsRejectsCorruptedBlock(t *testing.T) {
	desc, err := seedS1Builder(t).Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	out, err := Encode(desc)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	out[10] ^= 0xff
	if err := VerifyChecksums(out); err == nil {
		t.Error("expected checksum mismatch after corrupting a byte")
	}
}

func TestEncodeRejectsNativeFormatsExceedingAvailableTimings(t *testing.T) {
	ext := cta861.Extension{NativeFormats: 2}
	if _, err := seedS1Builder(t).Apply(WithExtension(ext)).Build(); err == nil {
		t.Error("expected CrossFieldInconsistent for native_formats exceeding available detailed timings")
	}
}
