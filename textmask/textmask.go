// The textmask package rasterizes a short message as a repeating,
// optionally rotated tiling that covers a whole frame. The resulting
// mask is binary, ink pixels are 255 and background 0 with no
// intermediate values even after rotation; the encoder uses it to
// choose which stripe pattern each pixel gets.
package textmask

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Glypher measures and draws single characters, so that any text
// rendering backend can be dropped in without touching the tiling and
// rotation logic. Draw places the glyph with its cell's top left corner
// at (x, y), clipping to the destination as needed.
type Glypher interface {
	Measure(r rune) (w, h int)
	Draw(dst *image.Gray, r rune, x, y int)
}

// Config holds the layout knobs for Render.
type Config struct {
	// Angle rotates the tiled text, in degrees.
	Angle float64
	// SpacingX and SpacingY scale the tile step relative to the
	// rotated bounding box of one text instance. Values above 1 leave
	// gaps between instances, values below 1 overlap them.
	SpacingX float64
	SpacingY float64
	// LetterSpacing adds pixels between characters within an instance.
	LetterSpacing int
}

// Validate checks a Config before rendering.
func (c Config) Validate() error {
	if c.SpacingX <= 0 {
		return fmt.Errorf("invalid horizontal spacing %f", c.SpacingX)
	}
	if c.SpacingY <= 0 {
		return fmt.Errorf("invalid vertical spacing %f", c.SpacingY)
	}
	return nil
}

// Render produces a height x width binary mask of text tiled across the
// whole frame. Tiles are laid out on an oversized square canvas whose
// side is the frame diagonal plus the rotated text bounding box,
// starting one tile before the visible origin in each axis; the canvas
// is then rotated about its center and a centered window cropped out.
// The margin plus the oversized canvas guarantee that every part of the
// final crop is covered and that no visible tile was clipped at a
// canvas edge before rotation. An empty text gives an all-zero mask.
func Render(text string, height, width int, g Glypher, cfg Config) (*image.Gray, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("invalid mask dimensions %dx%d", width, height)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	mask := image.NewGray(image.Rect(0, 0, width, height))
	if text == "" {
		return mask, nil
	}

	// Accumulate per-character offsets within one text instance.
	type placed struct {
		r      rune
		offset int
	}
	var chars []placed
	textW, textH := 0, 0
	for _, r := range text {
		w, h := g.Measure(r)
		chars = append(chars, placed{r, textW})
		textW += w + cfg.LetterSpacing
		if h > textH {
			textH = h
		}
	}
	textW -= cfg.LetterSpacing
	if textW < 1 {
		textW = 1
	}
	if textH < 1 {
		textH = 1
	}

	// Axis-aligned bounding box of one instance after rotation.
	rad := cfg.Angle * math.Pi / 180
	sin, cos := math.Sincos(rad)
	rw := int(math.Abs(float64(textW)*cos) + math.Abs(float64(textH)*sin))
	rh := int(math.Abs(float64(textW)*sin) + math.Abs(float64(textH)*cos))
	if rw < 1 {
		rw = 1
	}
	if rh < 1 {
		rh = 1
	}

	diag := int(math.Sqrt(float64(height*height+width*width))) + max(rw, rh)
	canvas := image.NewGray(image.Rect(0, 0, diag, diag))

	stepX := int(float64(rw) * cfg.SpacingX)
	if stepX < 1 {
		stepX = 1
	}
	stepY := int(float64(rh) * cfg.SpacingY)
	if stepY < 1 {
		stepY = 1
	}

	for y := -rh; y < diag+rh; y += stepY {
		for x := -rw; x < diag+rw; x += stepX {
			for _, c := range chars {
				g.Draw(canvas, c.r, x+c.offset, y)
			}
		}
	}

	// Glyph rasterizers antialias; force the mask back to binary ink.
	for i, v := range canvas.Pix {
		if v >= 128 {
			canvas.Pix[i] = 255
		} else {
			canvas.Pix[i] = 0
		}
	}

	if cfg.Angle != 0 {
		canvas = rotate(canvas, rad)
	}

	startX := (diag - width) / 2
	startY := (diag - height) / 2
	draw.Draw(mask, mask.Bounds(), canvas, image.Pt(startX, startY), draw.Src)
	return mask, nil
}

// rotate turns img by rad radians about its center using nearest
// neighbour sampling, which cannot introduce values other than 0 and
// 255 into a binary image.
func rotate(img *image.Gray, rad float64) *image.Gray {
	b := img.Bounds()
	out := image.NewGray(b)
	sin, cos := math.Sincos(rad)
	cx, cy := float64(b.Dx())/2, float64(b.Dy())/2
	m := f64.Aff3{
		cos, -sin, cx - cos*cx + sin*cy,
		sin, cos, cy - sin*cx - cos*cy,
	}
	draw.NearestNeighbor.Transform(out, m, img, b, draw.Src, nil)
	return out
}
