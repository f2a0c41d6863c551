package measure

import (
	"sync"

	"github.com/puzpuzpuz/xsync/v4"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	errs "github.com/matzehuels/wordcast/pkg/errors"
	"github.com/matzehuels/wordcast/pkg/fonts"
)

// Font measures words with OpenType metrics. Width is the summed glyph
// advance and height is ascent plus descent. It is safe for concurrent use.
type Font struct {
	reg   *fonts.Registry
	faces *xsync.Map[faceKey, *sharedFace]
}

type faceKey struct {
	family string
	size   int
}

// sharedFace serializes access to a face, which is not safe for concurrent
// use on its own.
type sharedFace struct {
	mu     sync.Mutex
	face   font.Face
	height float64
}

// NewFont returns a measurer backed by reg. A nil reg uses [fonts.Default].
func NewFont(reg *fonts.Registry) *Font {
	if reg == nil {
		reg = fonts.Default()
	}
	return &Font{reg: reg, faces: xsync.NewMap[faceKey, *sharedFace]()}
}

// Measure implements [cloud.Measurer].
func (f *Font) Measure(text string, fontSize int, fontFamily string) (float64, float64, error) {
	if fontSize <= 0 {
		return 0, 0, errs.New(errs.ErrCodeInvalidInput, "font size must be positive, got %d", fontSize)
	}
	sf, err := f.face(fontFamily, fontSize)
	if err != nil {
		return 0, 0, err
	}

	sf.mu.Lock()
	adv := font.MeasureString(sf.face, text)
	sf.mu.Unlock()
	return toFloat(adv), sf.height, nil
}

func (f *Font) face(family string, size int) (*sharedFace, error) {
	key := faceKey{family: family, size: size}
	if sf, ok := f.faces.Load(key); ok {
		return sf, nil
	}

	face, err := f.reg.Face(family, float64(size))
	if err != nil {
		return nil, err
	}
	m := face.Metrics()
	sf := &sharedFace{face: face, height: toFloat(m.Ascent + m.Descent)}

	actual, loaded := f.faces.LoadOrStore(key, sf)
	if loaded {
		_ = face.Close()
	}
	return actual, nil
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
