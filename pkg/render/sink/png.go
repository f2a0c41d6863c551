package sink

import (
	"bytes"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/matzehuels/wordcast/pkg/cloud"
	errs "github.com/matzehuels/wordcast/pkg/errors"
)

// RenderPNG rasterizes the placed words. The canvas is the frame size times
// the scale factor; words are drawn with faces from the configured registry.
func RenderPNG(r cloud.Result, opts ...Option) ([]byte, error) {
	s := newSettings(opts...)

	w := int(s.width*s.scale + 0.5)
	h := int(s.height*s.scale + 0.5)
	if w <= 0 || h <= 0 {
		return nil, errs.New(errs.ErrCodeInvalidConfig, "invalid PNG size %dx%d", w, h)
	}

	dc := gg.NewContext(w, h)
	if s.background != "" {
		dc.SetHexColor(s.background)
		dc.Clear()
	}

	// One face per distinct font size; a layout typically uses a handful.
	faces := make(map[int]font.Face)
	defer func() {
		for _, f := range faces {
			_ = f.Close()
		}
	}()

	for _, p := range r.Placed {
		face, ok := faces[p.FontSize]
		if !ok {
			var err error
			face, err = s.registry.Face(s.fontFamily, float64(p.FontSize)*s.scale)
			if err != nil {
				return nil, err
			}
			faces[p.FontSize] = face
		}
		dc.SetFontFace(face)
		dc.SetHexColor(string(p.Color))
		dc.DrawStringAnchored(p.Text, p.Box.CenterX()*s.scale, p.Box.CenterY()*s.scale, 0.5, 0.5)
	}

	if s.showBoxes {
		dc.SetHexColor(boxStroke)
		dc.SetLineWidth(s.scale * 0.5)
		for _, p := range r.Placed {
			b := p.Box
			dc.DrawRectangle((b.Left-s.xPad)*s.scale, (b.Top-s.yPad)*s.scale,
				(b.Width()+2*s.xPad)*s.scale, (b.Height()+2*s.yPad)*s.scale)
			dc.Stroke()
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}
