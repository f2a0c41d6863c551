package cloud

import "testing"

func TestOverlaps(t *testing.T) {
	a := Box{Left: 0, Top: 0, Right: 10, Bottom: 10}

	tests := []struct {
		name       string
		b          Box
		xPad, yPad float64
		want       bool
	}{
		{"identical", a, 0, 0, true},
		{"contained", Box{2, 2, 8, 8}, 0, 0, true},
		{"partial", Box{5, 5, 15, 15}, 0, 0, true},
		{"touching right edge", Box{10, 0, 20, 10}, 0, 0, true},
		{"touching bottom edge", Box{0, 10, 10, 20}, 0, 0, true},
		{"gap right", Box{11, 0, 21, 10}, 0, 0, false},
		{"gap left", Box{-21, 0, -11, 10}, 0, 0, false},
		{"gap below", Box{0, 11, 10, 21}, 0, 0, false},
		{"gap above", Box{0, -21, 10, -11}, 0, 0, false},
		{"gap closed by x padding", Box{11, 0, 21, 10}, 1, 0, true},
		{"gap kept with small x padding", Box{11, 0, 21, 10}, 0.4, 0, false},
		{"gap closed by y padding", Box{0, 13, 10, 23}, 0, 2, true},
		{"y padding ignored horizontally", Box{13, 0, 23, 10}, 0, 2, false},
		{"diagonal separation", Box{11, 11, 21, 21}, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(a, tt.b, tt.xPad, tt.yPad); got != tt.want {
				t.Errorf("Overlaps(a, %+v, %v, %v) = %v, want %v", tt.b, tt.xPad, tt.yPad, got, tt.want)
			}
			if got := Overlaps(tt.b, a, tt.xPad, tt.yPad); got != tt.want {
				t.Errorf("Overlaps is not symmetric for %+v", tt.b)
			}
		})
	}
}

func TestStateSafe(t *testing.T) {
	s := &state{}
	b := Box{0, 0, 10, 10}
	if !s.safe(b) {
		t.Fatal("empty state should accept any box")
	}
	s.commit(b)
	if s.safe(Box{5, 5, 15, 15}) {
		t.Error("overlapping box reported safe")
	}
	if !s.safe(Box{20, 20, 30, 30}) {
		t.Error("disjoint box reported unsafe")
	}
}
