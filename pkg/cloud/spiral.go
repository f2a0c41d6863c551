package cloud

import "math"

// OffsetAt returns the spiral offset for the given step. The radius grows by
// one unit and the angle by one radian per step, so the spiral completes a
// revolution roughly every 6-7 steps. Step 0 is (1, 0).
func OffsetAt(step int) (dx, dy float64) {
	radius := float64(1 + step)
	angle := float64(step)
	return radius * math.Cos(angle), radius * math.Sin(angle)
}

// CandidateAt returns the absolute spiral position for step around origin.
func CandidateAt(origin Point, step int) Point {
	dx, dy := OffsetAt(step)
	return Point{X: origin.X + dx, Y: origin.Y + dy}
}
