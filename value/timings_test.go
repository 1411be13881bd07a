package value

import "testing"

func TestEstablishedTimingsBytes(t *testing.T) {
	e := NewEstablishedTimings(Mode800x600At60Hz, Mode1152x870At75Hz)
	got := e.Bytes()
	want := [3]byte{1 << 0, 0, 1 << 7}
	if got != want {
		t.Errorf("Bytes() = %v, want %v", got, want)
	}
	if !e.Has(Mode800x600At60Hz) {
		t.Error("Has(Mode800x600At60Hz) = false, want true")
	}
	if e.Has(Mode640x480At60Hz) {
		t.Error("Has(Mode640x480At60Hz) = true, want false")
	}
}

func TestStandardTimingBytes(t *testing.T) {
	st, err := NewStandardTiming(1920, Aspect16x9, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := st.Bytes()
	want := [2]byte{byte(1920/8 - 31), byte(Aspect16x9)<<6 | 0}
	if got != want {
		t.Errorf("Bytes() = %v, want %v", got, want)
	}
}

func TestStandardTimingRejectsBadHActive(t *testing.T) {
	if _, err := NewStandardTiming(1921, Aspect4x3, 60); err == nil {
		t.Error("expected error for h_active not a multiple of 8")
	}
	if _, err := NewStandardTiming(100, Aspect4x3, 60); err == nil {
		t.Error("expected error for h_active below 256")
	}
}
