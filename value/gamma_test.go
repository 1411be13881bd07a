package value

import "testing"

func TestGammaByte(t *testing.T) {
	g, err := NewGamma(2.20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := g.Byte(), byte(120); got != want {
		t.Errorf("Byte() = %d, want %d", got, want)
	}

	if _, err := NewGamma(0.5); err == nil {
		t.Error("expected error for out-of-range gamma")
	}

	if got, want := UndefinedGamma().Byte(), byte(0xff); got != want {
		t.Errorf("UndefinedGamma().Byte() = %#x, want %#x", got, want)
	}
}
