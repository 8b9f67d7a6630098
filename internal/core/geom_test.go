package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{"overlapping", RectF{0, 0, 10, 10}, RectF{5, 5, 10, 10}, true},
		{"touching right edge", RectF{0, 0, 10, 10}, RectF{10, 0, 10, 10}, false},
		{"touching bottom edge", RectF{0, 0, 10, 10}, RectF{0, 10, 10, 10}, false},
		{"fractional overlap", RectF{0, 0, 10, 10}, RectF{9.5, 9.5, 1, 1}, true},
		{"apart", RectF{0, 0, 10, 10}, RectF{20, 20, 1, 1}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectFInset(t *testing.T) {
	r := RectF{X: 270, Y: 675, W: 270, H: 270}.Inset(40)

	if r.X != 310 || r.Y != 715 || r.W != 190 || r.H != 190 {
		t.Errorf("Inset(40) = %+v", r)
	}
	if r.Right() != 500 || r.Bottom() != 905 {
		t.Errorf("edges = (%v, %v), expected (500, 905)", r.Right(), r.Bottom())
	}
	if !r.Contains(310, 905) {
		t.Error("Contains should include edges")
	}
}

func TestInputFrameCount(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionActivate)
	f.Set(ActionActivate)

	if f.Count(ActionActivate) != 2 {
		t.Errorf("Count = %d, expected 2", f.Count(ActionActivate))
	}
	if f.Has(ActionQuit) {
		t.Error("Quit was never set")
	}

	f.Clear()
	if f.Has(ActionActivate) {
		t.Error("Clear should drop actions")
	}

	var zero InputFrame
	if zero.Has(ActionActivate) {
		t.Error("zero frame should be empty")
	}
}
