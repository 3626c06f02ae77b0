package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 2)

	tests := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},
		{5, 4, true},
		{6, 3, false}, // right edge is exclusive
		{2, 5, false}, // bottom edge is exclusive
		{1, 3, false},
		{2, 2, false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectCenter(t *testing.T) {
	r := NewRect(2, 2, 3, 3)
	cx, cy := r.Center()
	if cx != 3 || cy != 3 {
		t.Errorf("Center() = (%d,%d), want (3,3)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 7) != 5 {
		t.Error("Clamp should pass through in-range values")
	}
	if Clamp(-1, 0, 7) != 0 {
		t.Error("Clamp should raise values below min")
	}
	if Clamp(9, 0, 7) != 7 {
		t.Error("Clamp should lower values above max")
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(2, 3) != 2 || Min(3, 2) != 2 {
		t.Error("Min broken")
	}
	if Max(2, 3) != 3 || Max(3, 2) != 3 {
		t.Error("Max broken")
	}
	if Abs(-4) != 4 || Abs(4) != 4 {
		t.Error("Abs broken")
	}
}
