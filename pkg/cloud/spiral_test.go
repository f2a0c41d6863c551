package cloud

import (
	"math"
	"testing"
)

func TestOffsetAt(t *testing.T) {
	tests := []struct {
		step   int
		dx, dy float64
	}{
		{0, 1, 0},
		{1, 2 * math.Cos(1), 2 * math.Sin(1)},
		{2, 3 * math.Cos(2), 3 * math.Sin(2)},
		{10, 11 * math.Cos(10), 11 * math.Sin(10)},
	}

	for _, tt := range tests {
		dx, dy := OffsetAt(tt.step)
		if math.Abs(dx-tt.dx) > 1e-9 || math.Abs(dy-tt.dy) > 1e-9 {
			t.Errorf("OffsetAt(%d) = (%v, %v), want (%v, %v)", tt.step, dx, dy, tt.dx, tt.dy)
		}
	}
}

func TestOffsetAtRadiusGrowsLinearly(t *testing.T) {
	for step := 0; step < 100; step++ {
		dx, dy := OffsetAt(step)
		r := math.Hypot(dx, dy)
		if math.Abs(r-float64(step+1)) > 1e-9 {
			t.Fatalf("step %d: radius = %v, want %d", step, r, step+1)
		}
	}
}

func TestOffsetAtIsStateless(t *testing.T) {
	dx1, dy1 := OffsetAt(42)
	OffsetAt(7)
	OffsetAt(0)
	dx2, dy2 := OffsetAt(42)
	if dx1 != dx2 || dy1 != dy2 {
		t.Errorf("OffsetAt(42) changed between calls: (%v, %v) vs (%v, %v)", dx1, dy1, dx2, dy2)
	}
}

func TestCandidateAt(t *testing.T) {
	p := CandidateAt(Point{X: 400, Y: 300}, 0)
	if p.X != 401 || p.Y != 300 {
		t.Errorf("CandidateAt(origin, 0) = %+v, want {401 300}", p)
	}
}
