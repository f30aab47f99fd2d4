package stripetext

import (
	"errors"
	"image"
	"testing"

	"stripetext.xyz/stripetext/stripe"
)

func TestDecodeValidatesParams(t *testing.T) {
	stego := gradient(32, 32)
	cases := []struct {
		name   string
		params Params
	}{
		{"zeroperiod", Params{Period: 0, StripeType: stripe.Binary}},
		{"badkind", Params{Period: 4, StripeType: "plaid"}},
		{"empty", Params{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Decode(stego, c.params); err == nil {
				t.Errorf("Expected error for params %+v", c.params)
			}
		})
	}
}

func TestDecodeEmptyImage(t *testing.T) {
	p := Params{Period: 4, StripeType: stripe.Binary}
	if _, err := Decode(nil, p); err == nil {
		t.Errorf("Expected error for nil image")
	}
	if _, err := Decode(image.NewGray(image.Rect(0, 0, 0, 0)), p); err == nil {
		t.Errorf("Expected error for empty image")
	}
}

func TestDecodeWithKeyDimensionMismatch(t *testing.T) {
	stego := gradient(32, 32)
	key, err := stripe.Generate(16, 32, 4, stripe.Binary)
	if err != nil {
		t.Fatalf("Could not generate pattern: %v", err)
	}
	if _, err := DecodeWithKey(stego, key); err == nil {
		t.Errorf("Expected dimension mismatch error")
	}
}

func TestDecodeWithKeyMatchesDecode(t *testing.T) {
	cfg := testEncodeConfig()
	stego, params, err := Encode(gradient(64, 64), "KEY", cfg)
	if err != nil {
		t.Fatalf("Could not encode: %v", err)
	}
	fromParams, err := Decode(stego, params)
	if err != nil {
		t.Fatalf("Could not decode from params: %v", err)
	}
	key, err := stripe.Generate(64, 64, params.Period, params.StripeType)
	if err != nil {
		t.Fatalf("Could not generate pattern: %v", err)
	}
	fromKey, err := DecodeWithKey(stego, key)
	if err != nil {
		t.Fatalf("Could not decode from key: %v", err)
	}
	for i := range fromParams.Pix {
		if fromParams.Pix[i] != fromKey.Pix[i] {
			t.Fatalf("Pixel %d differs between decode paths", i)
		}
	}
}

func TestParamsFromText(t *testing.T) {
	p, err := ParamsFromText(map[string]string{
		MetaPeriod:     "6",
		MetaStripeType: "sinusoidal",
	})
	if err != nil {
		t.Fatalf("Could not parse valid metadata: %v", err)
	}
	if p.Period != 6 || p.StripeType != stripe.Sinusoidal {
		t.Errorf("Parsed params %+v", p)
	}

	cases := []struct {
		name    string
		texts   map[string]string
		missing bool
	}{
		{"nothing", map[string]string{}, true},
		{"noperiod", map[string]string{MetaStripeType: "binary"}, true},
		{"notype", map[string]string{MetaPeriod: "4"}, true},
		{"badperiod", map[string]string{MetaPeriod: "four", MetaStripeType: "binary"}, false},
		{"zeroperiod", map[string]string{MetaPeriod: "0", MetaStripeType: "binary"}, false},
		{"badtype", map[string]string{MetaPeriod: "4", MetaStripeType: "plaid"}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParamsFromText(c.texts)
			if err == nil {
				t.Fatalf("Expected error")
			}
			if got := errors.Is(err, ErrMissingParams); got != c.missing {
				t.Errorf("errors.Is(err, ErrMissingParams) = %v, want %v (err: %v)", got, c.missing, err)
			}
		})
	}
}

func TestParamsTextRoundTrip(t *testing.T) {
	orig := Params{Period: 10, StripeType: stripe.Binary}
	got, err := ParamsFromText(orig.Text())
	if err != nil {
		t.Fatalf("Could not parse own metadata: %v", err)
	}
	if got != orig {
		t.Errorf("Round trip gave %+v, want %+v", got, orig)
	}
}
