// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package stripetext

import (
	"errors"
	"fmt"
	"image"

	"stripetext.xyz/stripetext/imgutil"
	"stripetext.xyz/stripetext/stripe"
)

// Decode reveals text hidden in an encoded image. The key pattern is
// regenerated from p and the image's own dimensions, and the contrast
// stretched absolute difference between image and pattern is returned.
// Message ink pixels were encoded from the shifted pattern, so they
// differ from the regenerated key by a different amount than the
// background does, and show up as a silhouette.
func Decode(stego *image.Gray, p Params) (*image.Gray, error) {
	if stego == nil || stego.Bounds().Empty() {
		return nil, errors.New("empty encoded image")
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("cannot regenerate key pattern: %w", err)
	}
	b := stego.Bounds()
	k, err := stripe.Generate(b.Dy(), b.Dx(), p.Period, p.StripeType)
	if err != nil {
		return nil, err
	}
	return DecodeWithKey(stego, k)
}

// DecodeWithKey reveals hidden text using an explicitly supplied key
// pattern instead of regenerating one, for images whose parameters
// were lost but whose pattern was kept.
func DecodeWithKey(stego, key *image.Gray) (*image.Gray, error) {
	d, err := imgutil.AbsDiff(stego, key)
	if err != nil {
		return nil, err
	}
	return imgutil.Normalize(d, 0, 255), nil
}
