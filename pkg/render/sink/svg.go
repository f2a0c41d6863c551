package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/wordcast/pkg/cloud"
	"github.com/matzehuels/wordcast/pkg/fonts"
)

// RenderSVG renders the placed words as SVG, one <text> element per word in
// placement order. Unplaced words are not drawn. The output is
// deterministic for a given result and options.
func RenderSVG(r cloud.Result, opts ...Option) []byte {
	s := newSettings(opts...)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		s.width, s.height, s.width, s.height)

	if s.embedFont {
		renderFontFace(&buf, s)
	}
	if s.background != "" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", escapeXML(s.background))
	}

	family := fmt.Sprintf("'%s', %s", s.fontFamily, fonts.FallbackFontFamily)
	fmt.Fprintf(&buf, `  <g font-family="%s" text-anchor="middle" dominant-baseline="central">`+"\n", escapeXML(family))
	for _, p := range r.Placed {
		fmt.Fprintf(&buf, `    <text x="%.2f" y="%.2f" font-size="%d" fill="%s">%s</text>`+"\n",
			p.Box.CenterX(), p.Box.CenterY(), p.FontSize, escapeXML(string(p.Color)), escapeXML(p.Text))
	}
	buf.WriteString("  </g>\n")

	if s.showBoxes {
		renderBoxes(&buf, r.Placed, s)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// renderFontFace writes the @font-face rule for the configured family. A
// family missing from the registry is skipped; viewers fall back to the CSS
// stack.
func renderFontFace(buf *bytes.Buffer, s settings) {
	data, err := s.registry.Base64(s.fontFamily)
	if err != nil {
		return
	}
	fmt.Fprintf(buf, "  <style>@font-face { font-family: '%s'; src: url(data:font/ttf;base64,%s) format('truetype'); }</style>\n",
		escapeXML(s.fontFamily), data)
}

func renderBoxes(buf *bytes.Buffer, placed []cloud.PlacedWord, s settings) {
	fmt.Fprintf(buf, `  <g fill="none" stroke="%s" stroke-width="0.5" stroke-dasharray="2,2">`+"\n", boxStroke)
	for _, p := range placed {
		b := p.Box
		fmt.Fprintf(buf, `    <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f"/>`+"\n",
			b.Left-s.xPad, b.Top-s.yPad, b.Width()+2*s.xPad, b.Height()+2*s.yPad)
	}
	buf.WriteString("  </g>\n")
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
