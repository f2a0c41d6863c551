package cloud

// Word is a single input label. It is never modified once created.
type Word struct {
	Text string
}

// SizedWord is a Word with its assigned font size.
type SizedWord struct {
	Word
	FontSize int
}

// ColorID identifies an entry of the configured palette. The engine treats it
// as opaque; renderers interpret it (typically as a CSS hex color).
type ColorID string

// Point is a position in layout coordinates.
type Point struct {
	X, Y float64
}

// Box is an axis-aligned bounding box in screen coordinates, where y grows
// downward. A valid box has Right >= Left and Bottom >= Top.
type Box struct {
	Left, Top     float64
	Right, Bottom float64
}

// BoxAt returns the box of the given size centered on (cx, cy).
func BoxAt(cx, cy, width, height float64) Box {
	return Box{
		Left:   cx - width/2,
		Top:    cy - height/2,
		Right:  cx + width/2,
		Bottom: cy + height/2,
	}
}

// Width returns the horizontal span of the box.
func (b Box) Width() float64 { return b.Right - b.Left }

// Height returns the vertical span of the box.
func (b Box) Height() float64 { return b.Bottom - b.Top }

// CenterX returns the horizontal center point of the box.
func (b Box) CenterX() float64 { return (b.Left + b.Right) / 2 }

// CenterY returns the vertical center point of the box.
func (b Box) CenterY() float64 { return (b.Top + b.Bottom) / 2 }

// PlacedWord is a word committed to the layout. It carries everything a
// renderer needs to draw it without recomputation.
type PlacedWord struct {
	SizedWord
	Box   Box
	Color ColorID
}

// Result is the outcome of one layout run.
type Result struct {
	// Placed lists committed words in placement order (non-increasing font size).
	Placed []PlacedWord

	// Unplaced lists words that found no collision-free slot, in placement order.
	Unplaced []Word

	// Evaluations counts candidate positions tested across the whole run.
	Evaluations int

	// BudgetExhausted is set when MaxEvaluations stopped the run early.
	BudgetExhausted bool
}
