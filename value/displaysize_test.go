package value

import "testing"

func TestDisplayDimensions(t *testing.T) {
	s, err := NewDisplayDimensions(160, 90)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := s.Bytes()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := [2]byte{160, 90}
	if got != want {
		t.Errorf("Bytes() = %v, want %v", got, want)
	}

	if _, err := NewDisplayDimensions(0, 90); err == nil {
		t.Error("expected error for zero h_cm")
	}
}

func TestUndefinedDisplaySize(t *testing.T) {
	got, err := UndefinedDisplaySize().Bytes()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != ([2]byte{0, 0}) {
		t.Errorf("Bytes() = %v, want zero", got)
	}
}

func TestAspectLandscapeRejectedUnderR3(t *testing.T) {
	if _, err := NewAspectLandscape(R3, 1.6); err == nil {
		t.Error("expected VersionUnsupported under R3")
	}
}

func TestAspectLandscape(t *testing.T) {
	s, err := NewAspectLandscape(R4, 1.6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := s.Bytes()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[1] != 0 {
		t.Errorf("landscape byte 1 must be zero, got %v", got)
	}
}
