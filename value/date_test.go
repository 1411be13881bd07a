package value

import "testing"

func TestDateYearOnly(t *testing.T) {
	d, err := NewDateYearOnly(2023)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := d.Bytes()
	want := [2]byte{0x00, 33}
	if got != want {
		t.Errorf("Bytes() = %v, want %v", got, want)
	}
	if _, err := NewDateYearOnly(1989); err == nil {
		t.Error("expected error for year before 1990")
	}
}

func TestDateWeekYear(t *testing.T) {
	d, err := NewDateWeekYear(R3, 2023, 53)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := d.Bytes()
	want := [2]byte{53, 33}
	if got != want {
		t.Errorf("Bytes() = %v, want %v", got, want)
	}
	if _, err := NewDateWeekYear(R3, 2023, 54); err == nil {
		t.Error("expected error for week 54 under R3")
	}
	if _, err := NewDateWeekYear(R4, 2023, 54); err != nil {
		t.Errorf("unexpected error for week 54 under R4: %v", err)
	}
}

func TestDateModelYear(t *testing.T) {
	d, err := NewDateModelYear(R4, 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.IsModelYear() {
		t.Error("expected IsModelYear to be true")
	}
	got := d.Bytes()
	want := [2]byte{0xff, 34}
	if got != want {
		t.Errorf("Bytes() = %v, want %v", got, want)
	}
	if _, err := NewDateModelYear(R3, 2024); err == nil {
		t.Error("expected error for model year under R3")
	}
}
