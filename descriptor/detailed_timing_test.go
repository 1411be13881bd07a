package descriptor

import (
	"testing"

	"github.com/ausocean/edid/value"
)

func mustPixelClock(t *testing.T, hz int) value.PixelClock10kHz {
	t.Helper()
	pc, err := value.NewPixelClockHz(hz)
	if err != nil {
		t.Fatalf("NewPixelClockHz(%d): %v", hz, err)
	}
	return pc
}

// TestDetailedTimingS1 encodes the §8 S1 seed's detailed timing
// (1920x1080@60, pclk 148500 kHz, HFP 88, Hsync 44, HBP 148, VFP 4,
// Vsync 5, VBP 36, size 1600x900 mm, digital separate sync, both
// polarities positive, no stereo) and checks the pixel clock and active
// dimensions land where the VESA layout puts them.
func TestDetailedTimingS1(t *testing.T) {
	dt := DetailedTiming{
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
		Signal:       DigitalSeparateSignal{HsyncPositive: true, VsyncPositive: true},
		Stereo:       StereoNone,
	}

	out, err := Encode(dt, 0, value.R3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pc := dt.PixelClock.Bytes()
	if out[0] != pc[0] || out[1] != pc[1] {
		t.Errorf("pixel clock bytes = %v, want %v", out[0:2], pc)
	}
	if out[2] != byte(1920) {
		t.Errorf("h_active low byte = %#x, want %#x", out[2], byte(1920))
	}
	if out[5] != byte(1080) {
		t.Errorf("v_active low byte = %#x, want %#x", out[5], byte(1080))
	}

	// Digital separate sync with both polarities positive: sync type 11,
	// bit2 (vsync) and bit1 (hsync) both set, no stereo, not interlaced.
	wantFlags := byte(3<<3 | 1<<2 | 1<<1)
	if out[17] != wantFlags {
		t.Errorf("flags byte = %#08b, want %#08b", out[17], wantFlags)
	}
}

func TestDetailedTimingRejectsOutOfRange(t *testing.T) {
	dt := DetailedTiming{
		PixelClock: mustPixelClock(t, 10000000),
		HActive:    4096, // out of 12-bit range
		Signal:     AnalogSignal{},
	}
	if _, err := Encode(dt, 0, value.R3); err == nil {
		t.Error("expected error for h_active exceeding 12 bits")
	}
}

func TestDetailedTimingRequiresSignal(t *testing.T) {
	dt := DetailedTiming{PixelClock: mustPixelClock(t, 10000000)}
	if _, err := Encode(dt, 0, value.R3); err == nil {
		t.Error("expected error for nil signal")
	}
}

func TestDetailedTimingIsDetailedTiming(t *testing.T) {
	if !(DetailedTiming{}).IsDetailedTiming() {
		t.Error("DetailedTiming.IsDetailedTiming() = false, want true")
	}
}

func TestStereoBitsRoundTrip(t *testing.T) {
	modes := []Stereo{
		StereoNone, StereoFieldSequentialRight, StereoTwoWayRight,
		StereoFieldSequentialLeft, StereoTwoWayLeft, StereoFourWay, StereoSideBySide,
	}
	seen := map[[3]byte]Stereo{}
	for _, m := range modes {
		b6, b5, b0 := m.bits()
		key := [3]byte{b6, b5, b0}
		if other, ok := seen[key]; ok && other != m && m != StereoNone {
			t.Errorf("stereo modes %v and %v collide on bit pattern %v", m, other, key)
		}
		seen[key] = m
	}
}
