package cloud

// Measurer converts a word and its font parameters into rendered dimensions.
// Implementations must be deterministic for layouts to be reproducible.
type Measurer interface {
	Measure(text string, fontSize int, fontFamily string) (width, height float64, err error)
}

// MeasurerFunc adapts an ordinary function to the [Measurer] interface.
type MeasurerFunc func(text string, fontSize int, fontFamily string) (float64, float64, error)

// Measure calls f(text, fontSize, fontFamily).
func (f MeasurerFunc) Measure(text string, fontSize int, fontFamily string) (float64, float64, error) {
	return f(text, fontSize, fontFamily)
}
