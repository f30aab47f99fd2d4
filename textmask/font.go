package textmask

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// fontGlypher renders glyphs from an opentype face.
type fontGlypher struct {
	face   font.Face
	ascent int
	height int
}

// NewGoFont returns a Glypher backed by the embedded Go Regular font
// at the given point size. It is the default backend for Render; any
// other font can be used by wrapping its face with NewFaceGlypher.
func NewGoFont(size float64) (Glypher, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	return NewFaceGlypher(face), nil
}

// NewFaceGlypher wraps an existing font face as a Glypher.
func NewFaceGlypher(face font.Face) Glypher {
	m := face.Metrics()
	return &fontGlypher{
		face:   face,
		ascent: m.Ascent.Ceil(),
		height: (m.Ascent + m.Descent).Ceil(),
	}
}

func (g *fontGlypher) Measure(r rune) (int, int) {
	adv, ok := g.face.GlyphAdvance(r)
	if !ok {
		// Face has no glyph for r; measure the replacement the
		// drawer will fall back to instead.
		adv, _ = g.face.GlyphAdvance('�')
	}
	return adv.Ceil(), g.height
}

func (g *fontGlypher) Draw(dst *image.Gray, r rune, x, y int) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.White,
		Face: g.face,
		Dot:  fixed.P(x, y+g.ascent),
	}
	d.DrawString(string(r))
}
