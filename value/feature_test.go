package value

import "testing"

func TestFeatureSupportByte(t *testing.T) {
	fs := FeatureSupport{
		ActiveOff:               true,
		Color:                   ColorRGB,
		SRGBDefault:             true,
		PreferredTimingIsNative: true,
		GTFDefault:              true,
	}
	validated, err := NewFeatureSupport(R3, fs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := validated.Byte()
	want := byte(1<<5 | byte(ColorRGB)<<3 | 1<<2 | 1<<1 | 1)
	if got != want {
		t.Errorf("Byte() = %#08b, want %#08b", got, want)
	}
}

func TestFeatureSupportRejectsStandbyUnderR4(t *testing.T) {
	fs := FeatureSupport{Standby: true, Color: ColorRGB444}
	if _, err := NewFeatureSupport(R4, fs); err == nil {
		t.Error("expected VersionUnsupported for standby under R4")
	}
}

func TestFeatureSupportRejectsContinuousFrequencyUnderR3(t *testing.T) {
	fs := FeatureSupport{ContinuousFrequency: true, Color: ColorRGB}
	if _, err := NewFeatureSupport(R3, fs); err == nil {
		t.Error("expected VersionUnsupported for continuous frequency under R3")
	}
}

func TestFeatureSupportRequiresColor(t *testing.T) {
	if _, err := NewFeatureSupport(R3, FeatureSupport{}); err == nil {
		t.Error("expected InvalidField for nil color support")
	}
}

func TestColorSupportBits(t *testing.T) {
	bits, digital := ColorSupportBits(ColorRGB444YCbCr422)
	if digital != true {
		t.Error("DigitalColorType must report digital")
	}
	if bits != byte(ColorRGB444YCbCr422) {
		t.Errorf("bits = %d, want %d", bits, byte(ColorRGB444YCbCr422))
	}
}
