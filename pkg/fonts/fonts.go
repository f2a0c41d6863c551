// Package fonts provides the font files used for measuring and rendering
// words.
//
// The Go font family (golang.org/x/image/font/gofont) is compiled into the
// binary, so layouts can be measured and rasterized without any system
// fonts. [Default] returns a shared registry preloaded with those families;
// further TrueType or OpenType files can be added with [Registry.Register].
package fonts

import (
	"encoding/base64"
	"slices"
	"sync"

	"github.com/puzpuzpuz/xsync/v4"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/opentype"

	errs "github.com/matzehuels/wordcast/pkg/errors"
)

// DefaultFamily is the family used when none is configured.
const DefaultFamily = "Go"

// FallbackFontFamily is appended to the CSS font-family of SVG output for
// viewers that ignore embedded fonts.
const FallbackFontFamily = `'Helvetica Neue', Arial, sans-serif`

// Registry maps family names to raw font data. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	fonts map[string][]byte

	// Base64 encodings and parsed fonts, computed once per family on first
	// access.
	encoded *xsync.Map[string, string]
	parsed  *xsync.Map[string, *opentype.Font]
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		fonts:   make(map[string][]byte),
		encoded: xsync.NewMap[string, string](),
		parsed:  xsync.NewMap[string, *opentype.Font](),
	}
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	r := NewRegistry()
	r.fonts[DefaultFamily] = goregular.TTF
	r.fonts["Go Bold"] = gobold.TTF
	r.fonts["Go Italic"] = goitalic.TTF
	r.fonts["Go Medium"] = gomedium.TTF
	r.fonts["Go Mono"] = gomono.TTF
	r.fonts["Go Smallcaps"] = gosmallcaps.TTF
	return r
})

// Default returns the process-wide registry holding the embedded Go fonts.
func Default() *Registry {
	return defaultRegistry()
}

// Register adds or replaces a font family. The data must parse as a
// TrueType or OpenType font.
func (r *Registry) Register(family string, data []byte) error {
	if family == "" {
		return errs.New(errs.ErrCodeInvalidInput, "font family name cannot be empty")
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return errs.Wrap(errs.ErrCodeInvalidFormat, err, "parse font %q", family)
	}

	r.mu.Lock()
	r.fonts[family] = data
	r.mu.Unlock()
	r.encoded.Delete(family)
	r.parsed.Store(family, f)
	return nil
}

// Lookup returns the raw font data for family.
func (r *Registry) Lookup(family string) ([]byte, error) {
	r.mu.RLock()
	data, ok := r.fonts[family]
	r.mu.RUnlock()
	if !ok {
		return nil, errs.New(errs.ErrCodeFontNotFound, "font family %q is not registered", family)
	}
	return data, nil
}

// Families returns the registered family names in sorted order.
func (r *Registry) Families() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.fonts))
	for name := range r.fonts {
		names = append(names, name)
	}
	r.mu.RUnlock()
	slices.Sort(names)
	return names
}

// Base64 returns the font data for family as a base64 string, suitable for
// a CSS data URL. The result is cached after first computation.
func (r *Registry) Base64(family string) (string, error) {
	if s, ok := r.encoded.Load(family); ok {
		return s, nil
	}
	data, err := r.Lookup(family)
	if err != nil {
		return "", err
	}
	s, _ := r.encoded.LoadOrStore(family, base64.StdEncoding.EncodeToString(data))
	return s, nil
}

// Face returns a new face for family at size points and 72 DPI, so one
// point maps to one pixel. Faces are not safe for concurrent use; the caller
// owns the result and should Close it.
func (r *Registry) Face(family string, size float64) (font.Face, error) {
	f, err := r.font(family)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "create face %q at %v", family, size)
	}
	return face, nil
}

// font returns the parsed font for family. Parsed fonts are read-only and
// shared across faces.
func (r *Registry) font(family string) (*opentype.Font, error) {
	if f, ok := r.parsed.Load(family); ok {
		return f, nil
	}
	data, err := r.Lookup(family)
	if err != nil {
		return nil, err
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "parse font %q", family)
	}
	f, _ = r.parsed.LoadOrStore(family, f)
	return f, nil
}
