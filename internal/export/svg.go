package export

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/san-kum/radviz/internal/scene"
)

// SVG collects scene draws as vector elements. It implements
// [scene.Surface]: render one frame into it, then WriteTo emits the
// complete document. A zero SVG is not usable; construct with NewSVG.
type SVG struct {
	width  int
	height int
	body   strings.Builder
}

func NewSVG(width, height int, background color.RGBA) *SVG {
	s := &SVG{width: width, height: height}
	s.body.WriteString(fmt.Sprintf(`<rect width="100%%" height="100%%" fill="%s"/>`+"\n", hexColor(background)))
	return s
}

func (s *SVG) ClosedPolyline(pts []scene.Vec2, col color.RGBA) {
	if len(pts) < 2 {
		return
	}
	s.body.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-opacity="%.3f" stroke-width="1.5" d="M`,
		hexColor(col), opacity(col)))
	for i, p := range pts {
		if i == 0 {
			s.body.WriteString(fmt.Sprintf("%.1f,%.1f", p.X, p.Y))
		} else {
			s.body.WriteString(fmt.Sprintf(" L%.1f,%.1f", p.X, p.Y))
		}
	}
	s.body.WriteString(` Z"/>` + "\n")
}

func (s *SVG) Line(a, b scene.Vec2, thick float64, col color.RGBA) {
	s.body.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-opacity="%.3f" stroke-width="%.1f"/>`+"\n",
		a.X, a.Y, b.X, b.Y, hexColor(col), opacity(col), thick))
}

func (s *SVG) FilledCircle(center scene.Vec2, radius float64, col color.RGBA) {
	s.body.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" fill-opacity="%.3f"/>`+"\n",
		center.X, center.Y, radius, hexColor(col), opacity(col)))
}

// Text places a label. Not part of [scene.Surface]; snapshots add their
// own heads-up text through this.
func (s *SVG) Text(x, y, size float64, col color.RGBA, text string) {
	s.body.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-family="monospace" font-size="%.0f" fill="%s">%s</text>`+"\n",
		x, y, size, hexColor(col), escapeText(text)))
}

func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	doc := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
`, s.width, s.height, s.width, s.height) + s.body.String() + "</svg>\n"
	n, err := io.WriteString(w, doc)
	return int64(n), err
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeText(text string) string {
	return textEscaper.Replace(text)
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func opacity(c color.RGBA) float64 {
	return float64(c.A) / 255
}
