package imgutil

import (
	"errors"
	"image"
	"image/draw"
	"math"
)

// ToGray converts any image to an 8 bit grayscale image anchored at
// the origin.
func ToGray(img image.Image) *image.Gray {
	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Bounds(), img, b.Min, draw.Src)
	return gray
}

// Normalize linearly stretches the pixel values of img so that its
// darkest pixel maps to lo and its brightest to hi. A flat image maps
// entirely to lo. The encoder uses this to pull carrier brightness away
// from the extremes before mapping it to line thickness, and the
// decoder uses it to stretch the difference image to full contrast.
func Normalize(img *image.Gray, lo, hi uint8) *image.Gray {
	b := img.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))

	min, max := uint8(255), uint8(0)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := img.GrayAt(x, y).Y
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	if max <= min {
		for i := range out.Pix {
			out.Pix[i] = lo
		}
		return out
	}

	scale := float64(hi-lo) / float64(max-min)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := float64(img.GrayAt(x, y).Y-min)*scale + float64(lo)
			out.Pix[out.PixOffset(x-b.Min.X, y-b.Min.Y)] = uint8(math.Round(v))
		}
	}
	return out
}

// AbsDiff returns the pixelwise absolute difference of two images of
// identical dimensions.
func AbsDiff(a, b *image.Gray) (*image.Gray, error) {
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Dx() != bb.Dx() || ab.Dy() != bb.Dy() {
		return nil, errors.New("images need to be the same dimensions")
	}
	out := image.NewGray(image.Rect(0, 0, ab.Dx(), ab.Dy()))
	for y := 0; y < ab.Dy(); y++ {
		for x := 0; x < ab.Dx(); x++ {
			av := int(a.GrayAt(ab.Min.X+x, ab.Min.Y+y).Y)
			bv := int(b.GrayAt(bb.Min.X+x, bb.Min.Y+y).Y)
			d := av - bv
			if d < 0 {
				d = -d
			}
			out.Pix[out.PixOffset(x, y)] = uint8(d)
		}
	}
	return out, nil
}
