// The stripe package generates the periodic vertical stripe patterns
// ("key patterns") that stripetext hides messages in. A key pattern is
// fully determined by its dimensions, period and kind, so a decoder can
// regenerate it exactly from those values alone.
package stripe

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// Kind selects the column rule of a key pattern.
type Kind string

const (
	// Binary alternates between full bright and full dark half-periods.
	Binary Kind = "binary"
	// Sinusoidal follows a sine wave across columns.
	Sinusoidal Kind = "sinusoidal"
)

// ParseKind converts a stripe type name as stored in image metadata to
// a Kind. Unknown names are rejected rather than defaulted, as a wrong
// kind makes a decoded image meaningless.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case Binary, Sinusoidal:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown stripe type %q", s)
}

// Generate creates a key pattern of the given dimensions. Every column x
// of a binary pattern is bright if x mod period falls in the first half
// period, and dark otherwise; a sinusoidal pattern follows
// 255*(1+sin(2*pi*x/period))/2. A period of 1 degenerates to a flat
// field. Generation is deterministic: identical arguments always produce
// identical pixels, which is what lets a decoder rebuild the pattern.
func Generate(height, width, period int, kind Kind) (*image.Gray, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("invalid pattern dimensions %dx%d", width, height)
	}
	if period < 1 {
		return nil, fmt.Errorf("invalid stripe period %d", period)
	}

	k := image.NewGray(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		var v uint8
		switch kind {
		case Binary:
			if x%period < period/2 {
				v = 255
			}
		case Sinusoidal:
			f := 255 * (1 + math.Sin(2*math.Pi*float64(x)/float64(period))) / 2
			if f > 255 {
				f = 255
			}
			if f < 0 {
				f = 0
			}
			v = uint8(f)
		default:
			return nil, fmt.Errorf("unknown stripe kind %q", kind)
		}
		for y := 0; y < height; y++ {
			k.SetGray(x, y, color.Gray{v})
		}
	}
	return k, nil
}

// Shift translates a pattern horizontally by shift pixels, wrapping
// around at the image edges rather than clamping. Negative shifts and
// shifts larger than the width wrap too.
func Shift(k *image.Gray, shift int) *image.Gray {
	b := k.Bounds()
	w := b.Dx()
	shifted := image.NewGray(image.Rect(0, 0, w, b.Dy()))
	if w == 0 {
		return shifted
	}
	shift = ((shift % w) + w) % w
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			sx := b.Min.X + ((x-b.Min.X)-shift+w)%w
			shifted.SetGray(x-b.Min.X, y-b.Min.Y, k.GrayAt(sx, y))
		}
	}
	return shifted
}
