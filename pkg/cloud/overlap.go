package cloud

// Overlaps reports whether a and b intersect once each is expanded by xPad
// horizontally and yPad vertically on every side. Boxes are overlapping
// unless they are fully separated on at least one axis; touching padded
// edges count as overlapping.
func Overlaps(a, b Box, xPad, yPad float64) bool {
	separated := a.Right+xPad < b.Left-xPad ||
		a.Left-xPad > b.Right+xPad ||
		a.Top-yPad > b.Bottom+yPad ||
		a.Bottom+yPad < b.Top-yPad
	return !separated
}

// state is the working set of committed boxes for a single layout run.
type state struct {
	boxes      []Box
	xPad, yPad float64
}

func newState(cfg Config) *state {
	return &state{xPad: cfg.XPadding, yPad: cfg.YPadding}
}

// safe reports whether b overlaps none of the committed boxes.
func (s *state) safe(b Box) bool {
	for _, placed := range s.boxes {
		if Overlaps(b, placed, s.xPad, s.yPad) {
			return false
		}
	}
	return true
}

func (s *state) commit(b Box) {
	s.boxes = append(s.boxes, b)
}
