package pngmeta

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

func testimg() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, 12, 9))
	for y := 0; y < 9; y++ {
		for x := 0; x < 12; x++ {
			img.SetGray(x, y, color.Gray{uint8(x*20 + y)})
		}
	}
	return img
}

func TestRoundTrip(t *testing.T) {
	texts := map[string]string{
		"stripe_period": "4",
		"stripe_type":   "binary",
	}
	var buf bytes.Buffer
	if err := Encode(&buf, testimg(), texts); err != nil {
		t.Fatalf("Could not encode: %v", err)
	}

	got, err := ReadText(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Could not read text back: %v", err)
	}
	if len(got) != len(texts) {
		t.Fatalf("Got %d entries, want %d", len(got), len(texts))
	}
	for k, v := range texts {
		if got[k] != v {
			t.Errorf("Key %s = %q, want %q", k, got[k], v)
		}
	}
}

func TestDecodeKeepsPixels(t *testing.T) {
	orig := testimg()
	var buf bytes.Buffer
	if err := Encode(&buf, orig, map[string]string{"k": "v"}); err != nil {
		t.Fatalf("Could not encode: %v", err)
	}
	img, texts, err := Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Could not decode: %v", err)
	}
	if texts["k"] != "v" {
		t.Errorf("Metadata lost in decode")
	}
	b := orig.Bounds()
	if !img.Bounds().Eq(b) {
		t.Fatalf("Decoded bounds %v, want %v", img.Bounds(), b)
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			want := orig.GrayAt(x, y).Y
			got := color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
			if got != want {
				t.Fatalf("Pixel (%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestOutputStillValidPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testimg(), map[string]string{"a": "b"}); err != nil {
		t.Fatalf("Could not encode: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(buf.Bytes())); err != nil {
		t.Errorf("Stdlib png decoder rejected spliced output: %v", err)
	}
}

func TestNoMetadata(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, testimg()); err != nil {
		t.Fatalf("Could not encode: %v", err)
	}
	texts, err := ReadText(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Could not read: %v", err)
	}
	if len(texts) != 0 {
		t.Errorf("Plain png returned metadata %v", texts)
	}
}

func TestBadKeywords(t *testing.T) {
	cases := []struct {
		name  string
		texts map[string]string
	}{
		{"empty", map[string]string{"": "x"}},
		{"toolong", map[string]string{strings.Repeat("k", 80): "x"}},
		{"nulkey", map[string]string{"a\x00b": "x"}},
		{"nulvalue", map[string]string{"a": "x\x00y"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, testimg(), c.texts); err == nil {
				t.Errorf("Expected error for %s", c.name)
			}
		})
	}
}

func TestNotAPNG(t *testing.T) {
	if _, err := ReadText(strings.NewReader("GIF89a not a png")); err == nil {
		t.Errorf("Expected error for non-png input")
	}
}
