// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package stripetext

import (
	"errors"
	"fmt"
	"strconv"

	"stripetext.xyz/stripetext/stripe"
)

// Metadata keys under which encoding parameters are stored in an
// encoded image.
const (
	MetaPeriod     = "stripe_period"
	MetaStripeType = "stripe_type"
)

// ErrMissingParams is returned when an image carries no encoding
// parameters. Decoding must fail in that case: guessing a period would
// produce meaningless noise rather than an obvious failure.
var ErrMissingParams = errors.New("no stripe encoding parameters")

// Params is the record that must survive from encode to decode. Along
// with the encoded image's own dimensions it fully determines the key
// pattern.
type Params struct {
	Period     int
	StripeType stripe.Kind
}

// Validate checks that the parameters can regenerate a key pattern.
func (p Params) Validate() error {
	if p.Period < 1 {
		return fmt.Errorf("invalid stripe period %d", p.Period)
	}
	if _, err := stripe.ParseKind(string(p.StripeType)); err != nil {
		return err
	}
	return nil
}

// Text returns the parameters as metadata key/value pairs for
// embedding in an image file.
func (p Params) Text() map[string]string {
	return map[string]string{
		MetaPeriod:     strconv.Itoa(p.Period),
		MetaStripeType: string(p.StripeType),
	}
}

// ParamsFromText rebuilds Params from image metadata. Absent keys
// report ErrMissingParams; present but unusable values report what is
// wrong with them.
func ParamsFromText(texts map[string]string) (Params, error) {
	var p Params
	ps, ok := texts[MetaPeriod]
	if !ok {
		return p, fmt.Errorf("%w: missing %s", ErrMissingParams, MetaPeriod)
	}
	ts, ok := texts[MetaStripeType]
	if !ok {
		return p, fmt.Errorf("%w: missing %s", ErrMissingParams, MetaStripeType)
	}
	period, err := strconv.Atoi(ps)
	if err != nil {
		return p, fmt.Errorf("bad %s %q: %v", MetaPeriod, ps, err)
	}
	kind, err := stripe.ParseKind(ts)
	if err != nil {
		return p, fmt.Errorf("bad %s: %v", MetaStripeType, err)
	}
	p = Params{Period: period, StripeType: kind}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}
