package value

import "testing"

func TestReleaseRevisionByte(t *testing.T) {
	cases := []struct {
		r    Release
		want byte
	}{
		{R3, 0x03},
		{R4, 0x04},
	}
	for _, c := range cases {
		if got := c.r.RevisionByte(); got != c.want {
			t.Errorf("RevisionByte(%v) = %#x, want %#x", c.r, got, c.want)
		}
	}
}

func TestReleaseWeekMax(t *testing.T) {
	if got := R3.WeekMax(); got != 53 {
		t.Errorf("R3.WeekMax() = %d, want 53", got)
	}
	if got := R4.WeekMax(); got != 54 {
		t.Errorf("R4.WeekMax() = %d, want 54", got)
	}
}

func TestReleaseValid(t *testing.T) {
	if !R3.Valid() || !R4.Valid() {
		t.Error("R3 and R4 must be valid")
	}
	if Release(0).Valid() {
		t.Error("Release(0) must not be valid")
	}
}
