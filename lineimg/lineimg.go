// The lineimg package renders a grayscale image as vertical bars whose
// thickness follows local brightness, a halftone-like effect that the
// encoder blends the hidden stripe pattern into.
package lineimg

import (
	"fmt"
	"image"

	"stripetext.xyz/stripetext/integralimg"
)

// Config holds the block layout and thickness mapping for Encode.
type Config struct {
	// StripWidth is the width in pixels of each vertical strip.
	StripWidth int
	// ChunkHeight is the height in pixels of each block within a strip.
	ChunkHeight int
	// MinThickness and MaxThickness bound the bar width a block can get.
	MinThickness int
	MaxThickness int
	// MinBrightness and MaxBrightness span the block mean brightness
	// that maps onto the thickness bounds. Means outside the span clamp
	// to the nearest bound.
	MinBrightness uint8
	MaxBrightness uint8
}

// Validate checks a Config before any pixels are touched.
func (c Config) Validate() error {
	if c.StripWidth < 1 {
		return fmt.Errorf("invalid strip width %d", c.StripWidth)
	}
	if c.ChunkHeight < 1 {
		return fmt.Errorf("invalid chunk height %d", c.ChunkHeight)
	}
	if c.MinThickness < 0 || c.MaxThickness < c.MinThickness {
		return fmt.Errorf("invalid thickness range %d-%d", c.MinThickness, c.MaxThickness)
	}
	if c.MaxBrightness <= c.MinBrightness {
		return fmt.Errorf("invalid brightness range %d-%d", c.MinBrightness, c.MaxBrightness)
	}
	return nil
}

// thickness maps a block mean brightness to a bar width. Brighter
// blocks get thicker bars; this polarity is part of the package
// contract, so encoded output reads like a positive of the carrier.
func (c Config) thickness(mean float64) int {
	t := float64(c.MinThickness) + (mean-float64(c.MinBrightness))*
		float64(c.MaxThickness-c.MinThickness)/
		float64(c.MaxBrightness-c.MinBrightness)
	n := int(t)
	if n < c.MinThickness {
		n = c.MinThickness
	}
	if n > c.MaxThickness {
		n = c.MaxThickness
	}
	return n
}

// Encode partitions img into ChunkHeight x StripWidth blocks and draws
// each as a centered full-intensity vertical bar on a dark field, with
// the bar width mapped from the block's mean brightness. Blocks at the
// right and bottom edges may be smaller; bars are still centered on the
// nominal strip and clipped at the image boundary, so the output always
// has the input's dimensions with every block accounted for.
func Encode(img *image.Gray, cfg Config) (*image.Gray, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewGray(image.Rect(0, 0, w, h))

	integral := integralimg.New(img)
	for x := 0; x < w; x += cfg.StripWidth {
		for y := 0; y < h; y += cfg.ChunkHeight {
			block := image.Rect(x, y, x+cfg.StripWidth, y+cfg.ChunkHeight).
				Intersect(out.Bounds())
			if block.Empty() {
				continue
			}
			thick := cfg.thickness(integral.Mean(block))
			if thick == 0 {
				continue
			}
			start := x + (cfg.StripWidth-thick)/2
			for bx := start; bx < start+thick; bx++ {
				if bx < 0 || bx >= w {
					continue
				}
				for by := block.Min.Y; by < block.Max.Y; by++ {
					out.Pix[out.PixOffset(bx, by)] = 255
				}
			}
		}
	}
	return out, nil
}
