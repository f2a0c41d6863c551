package measure

import (
	"sync"
	"testing"

	"github.com/matzehuels/wordcast/pkg/cloud"
	errs "github.com/matzehuels/wordcast/pkg/errors"
	"github.com/matzehuels/wordcast/pkg/fonts"
)

var (
	_ cloud.Measurer = (*Font)(nil)
	_ cloud.Measurer = Estimate{}
	_ cloud.Measurer = Fixed{}
)

func TestFontMeasure(t *testing.T) {
	m := NewFont(nil)

	w10, h10, err := m.Measure("wordcast", 10, fonts.DefaultFamily)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	if w10 <= 0 || h10 <= 0 {
		t.Fatalf("non-positive dimensions %vx%v", w10, h10)
	}

	w20, h20, err := m.Measure("wordcast", 20, fonts.DefaultFamily)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	if w20 <= w10 || h20 <= h10 {
		t.Errorf("larger size did not grow: %vx%v vs %vx%v", w20, h20, w10, h10)
	}

	wLong, _, _ := m.Measure("wordcastwordcast", 10, fonts.DefaultFamily)
	if wLong <= w10 {
		t.Errorf("longer text not wider: %v vs %v", wLong, w10)
	}
}

func TestFontMonoAdvance(t *testing.T) {
	m := NewFont(fonts.Default())
	w1, _, err := m.Measure("i", 16, "Go Mono")
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	w2, _, _ := m.Measure("M", 16, "Go Mono")
	if w1 != w2 {
		t.Errorf("monospace advances differ: %v vs %v", w1, w2)
	}
}

func TestFontDeterministic(t *testing.T) {
	a, b := NewFont(nil), NewFont(nil)
	w1, h1, _ := a.Measure("hello", 24, fonts.DefaultFamily)
	w2, h2, _ := b.Measure("hello", 24, fonts.DefaultFamily)
	if w1 != w2 || h1 != h2 {
		t.Errorf("measurers disagree: %vx%v vs %vx%v", w1, h1, w2, h2)
	}
}

func TestFontErrors(t *testing.T) {
	m := NewFont(nil)
	if _, _, err := m.Measure("x", 12, "No Such Font"); !errs.Is(err, errs.ErrCodeFontNotFound) {
		t.Errorf("expected FONT_NOT_FOUND, got %v", err)
	}
	if _, _, err := m.Measure("x", 0, fonts.DefaultFamily); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}

func TestFontConcurrent(t *testing.T) {
	m := NewFont(nil)
	want, _, _ := m.Measure("concurrent", 18, fonts.DefaultFamily)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				got, _, err := m.Measure("concurrent", 18, fonts.DefaultFamily)
				if err != nil || got != want {
					t.Errorf("concurrent measure = %v, %v", got, err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestEstimate(t *testing.T) {
	tests := []struct {
		name  string
		e     Estimate
		text  string
		size  int
		wantW float64
		wantH float64
	}{
		{"custom", Estimate{CharWidth: 0.5, LineHeight: 1}, "abcd", 10, 20, 10},
		{"runes not bytes", Estimate{CharWidth: 1, LineHeight: 1}, "héllo", 2, 10, 2},
		{"empty", Estimate{CharWidth: 0.5, LineHeight: 2}, "", 10, 0, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, err := tt.e.Measure(tt.text, tt.size, "")
			if err != nil {
				t.Fatalf("Measure: %v", err)
			}
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("Measure = %vx%v, want %vx%v", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestEstimateDefaults(t *testing.T) {
	explicit := Estimate{CharWidth: DefaultCharWidth, LineHeight: DefaultLineHeight}
	w1, h1, _ := Estimate{}.Measure("abcd", 10, "")
	w2, h2, _ := explicit.Measure("abcd", 10, "")
	if w1 != w2 || h1 != h2 {
		t.Errorf("zero Estimate = %vx%v, want %vx%v", w1, h1, w2, h2)
	}
}

func TestFixed(t *testing.T) {
	w, h, err := Fixed{Width: 20, Height: 10}.Measure("anything", 99, "")
	if err != nil || w != 20 || h != 10 {
		t.Errorf("Fixed.Measure = %v, %v, %v", w, h, err)
	}
}

func TestByName(t *testing.T) {
	for _, name := range Names {
		if _, err := ByName(name, nil); err != nil {
			t.Errorf("ByName(%q): %v", name, err)
		}
	}
	if _, err := ByName("ruler", nil); !errs.Is(err, errs.ErrCodeInvalidConfig) {
		t.Errorf("expected INVALID_CONFIG, got %v", err)
	}
}
