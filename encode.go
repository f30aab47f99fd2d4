// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package stripetext

import (
	"errors"
	"fmt"
	"image"

	"stripetext.xyz/stripetext/imgutil"
	"stripetext.xyz/stripetext/lineimg"
	"stripetext.xyz/stripetext/stripe"
	"stripetext.xyz/stripetext/textmask"
)

// EncodeConfig collects every tunable of an encode operation. There
// are no defaults here; callers (normally the command line tools) set
// every field, and Validate catches anything unusable before pixels
// are touched.
type EncodeConfig struct {
	// Period and StripeType define the key pattern.
	Period     int
	StripeType stripe.Kind
	// Amplitude is the blend weight of the stripe layer against the
	// brightness line layer. 0 gives the pure line rendering, 1 the
	// pure stripe/text blend.
	Amplitude float64
	// FontSize is the point size used when no Glypher is supplied.
	FontSize float64
	// Glypher optionally overrides the text rendering backend. When
	// nil, the embedded Go Regular font at FontSize is used.
	Glypher textmask.Glypher
	// Text and Line configure the mask tiling and the line rendering.
	Text textmask.Config
	Line lineimg.Config
}

// Validate checks an EncodeConfig.
func (c EncodeConfig) Validate() error {
	if c.Period < 1 {
		return fmt.Errorf("invalid stripe period %d", c.Period)
	}
	if _, err := stripe.ParseKind(string(c.StripeType)); err != nil {
		return err
	}
	if c.Amplitude < 0 || c.Amplitude > 1 {
		return fmt.Errorf("amplitude %f outside [0,1]", c.Amplitude)
	}
	if c.Glypher == nil && c.FontSize <= 0 {
		return fmt.Errorf("invalid font size %f", c.FontSize)
	}
	if err := c.Text.Validate(); err != nil {
		return err
	}
	return c.Line.Validate()
}

// Encode hides text in the carrier image. The carrier is first
// brightness normalized into the line encoder's brightness range so
// near black or near white input cannot saturate the thickness
// mapping, then rendered as brightness driven vertical bars. A stripe
// layer is built from the key pattern and its half period shifted
// twin, selected per pixel by the rendered text mask, and blended over
// the bars at the configured amplitude. The returned Params are what a
// decoder later needs; the carrier itself is not required again.
func Encode(carrier *image.Gray, text string, cfg EncodeConfig) (*image.Gray, Params, error) {
	if carrier == nil || carrier.Bounds().Empty() {
		return nil, Params{}, errors.New("empty carrier image")
	}
	if err := cfg.Validate(); err != nil {
		return nil, Params{}, err
	}
	b := carrier.Bounds()
	w, h := b.Dx(), b.Dy()

	adjusted := imgutil.Normalize(carrier, cfg.Line.MinBrightness, cfg.Line.MaxBrightness)

	k, err := stripe.Generate(h, w, cfg.Period, cfg.StripeType)
	if err != nil {
		return nil, Params{}, err
	}
	shifted := stripe.Shift(k, cfg.Period/2)

	g := cfg.Glypher
	if g == nil {
		g, err = textmask.NewGoFont(cfg.FontSize)
		if err != nil {
			return nil, Params{}, err
		}
	}
	mask, err := textmask.Render(text, h, w, g, cfg.Text)
	if err != nil {
		return nil, Params{}, err
	}

	lines, err := lineimg.Encode(adjusted, cfg.Line)
	if err != nil {
		return nil, Params{}, err
	}

	out := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			t := float64(mask.GrayAt(x, y).Y) / 255
			kv := float64(k.GrayAt(x, y).Y)
			sv := float64(shifted.GrayAt(x, y).Y)
			stripeV := kv*(1-t) + sv*t
			lineV := float64(lines.GrayAt(x, y).Y)
			v := lineV*(1-cfg.Amplitude) + stripeV*cfg.Amplitude
			if v < 0 {
				v = 0
			}
			if v > 255 {
				v = 255
			}
			out.Pix[out.PixOffset(x, y)] = uint8(v)
		}
	}
	return out, Params{Period: cfg.Period, StripeType: cfg.StripeType}, nil
}
