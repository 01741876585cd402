package core

import "testing"

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "actor inside tall obstacle",
			a:        NewBox(V(0, 0), V(16, 16)),
			b:        NewBox(V(10, 0), V(20, 300)),
			expected: true,
		},
		{
			name:     "actor left of tall obstacle",
			a:        NewBox(V(0, 0), V(16, 16)),
			b:        NewBox(V(50, 0), V(20, 300)),
			expected: false,
		},
		{
			name:     "overlap on x only",
			a:        NewBox(V(0, 0), V(10, 10)),
			b:        NewBox(V(5, 40), V(10, 10)),
			expected: false,
		},
		{
			name:     "overlap on y only",
			a:        NewBox(V(0, 0), V(10, 10)),
			b:        NewBox(V(40, 5), V(10, 10)),
			expected: false,
		},
		{
			name:     "touching edges (no overlap)",
			a:        NewBox(V(0, 0), V(10, 10)),
			b:        NewBox(V(20, 0), V(10, 10)),
			expected: false,
		},
		{
			name:     "contained box",
			a:        NewBox(V(0, 0), V(50, 50)),
			b:        NewBox(V(5, -5), V(2, 2)),
			expected: true,
		},
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

func TestBoxEdges(t *testing.T) {
	b := NewBox(V(10, 305), V(16, 16))

	if b.Top() != 321 {
		t.Errorf("Top() = %f, expected 321", b.Top())
	}
	if b.Bottom() != 289 {
		t.Errorf("Bottom() = %f, expected 289", b.Bottom())
	}
	if b.Left() != -6 {
		t.Errorf("Left() = %f, expected -6", b.Left())
	}
	if b.Right() != 26 {
		t.Errorf("Right() = %f, expected 26", b.Right())
	}
}

func TestVec2Ops(t *testing.T) {
	v := V(8, 12).Sub(V(1, 1))
	if v != V(7, 11) {
		t.Errorf("got %+v, expected {7 11}", v)
	}
}

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

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionFlap) || !f.Empty() {
		t.Error("zero frame should be empty")
	}

	f.Set(ActionFlap)
	if !f.Has(ActionFlap) {
		t.Error("Set action not reported")
	}

	f.Clear()
	if f.Has(ActionFlap) || !f.Empty() {
		t.Error("Clear should drop actions")
	}

	if ActionRestart.String() != "Restart" || Action(99).String() != "Unknown" {
		t.Error("unexpected Action names")
	}
}
