// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// stripetext hides a message in a grayscale image, or recovers one.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"stripetext.xyz/stripetext"
	"stripetext.xyz/stripetext/imgutil"
	"stripetext.xyz/stripetext/lineimg"
	"stripetext.xyz/stripetext/pngmeta"
	"stripetext.xyz/stripetext/stripe"
	"stripetext.xyz/stripetext/textmask"
)

const usage = `Usage: stripetext encode [flags] img
       stripetext decode [flags] img

Hide a text message in an image by modulating a vertical stripe
pattern, or reveal a previously hidden message. The parameters needed
for decoding are stored as PNG metadata in the encoded image.
`

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	switch flag.Arg(0) {
	case "encode":
		encode(flag.Args()[1:])
	case "decode":
		decode(flag.Args()[1:])
	default:
		flag.Usage()
		os.Exit(1)
	}
}

// outpath returns the input path with its extension swapped for
// -<suffix>.png, next to the input file.
func outpath(in, suffix string) string {
	base := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
	return filepath.Join(filepath.Dir(in), base+"-"+suffix+".png")
}

func loadGray(path string) (*image.Gray, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode image %s: %v", path, err)
	}
	return imgutil.ToGray(img), nil
}

func encode(args []string) {
	flags := flag.NewFlagSet("encode", flag.ExitOnError)
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: stripetext encode [flags] img\n")
		fmt.Fprintf(os.Stderr, "Encode an image with hidden text\n")
		flags.PrintDefaults()
	}
	text := flags.String("text", "SECRET", "Text to hide in the image.")
	period := flags.Int("period", 2, "Period of the stripes in pixels.")
	stype := flags.String("stripetype", "binary", "Stripe pattern type, binary or sinusoidal.")
	amplitude := flags.Float64("amplitude", 0.3, "Strength of the hidden stripe pattern, 0 to 1.")
	minthick := flags.Int("minthick", 1, "Minimum line thickness.")
	maxthick := flags.Int("maxthick", 5, "Maximum line thickness.")
	stripwidth := flags.Int("stripwidth", 5, "Width of each vertical strip.")
	chunkheight := flags.Int("chunkheight", 5, "Height of each brightness chunk.")
	fontsize := flags.Float64("fontsize", 24, "Font size in points for the hidden text.")
	angle := flags.Float64("angle", 45, "Text rotation angle in degrees.")
	spacingx := flags.Float64("spacingx", 1.4, "Horizontal text spacing multiplier.")
	spacingy := flags.Float64("spacingy", 0.4, "Vertical text spacing multiplier.")
	letterspacing := flags.Int("letterspacing", 0, "Pixel spacing between characters.")
	out := flags.String("o", "", "Output path (default <img>-encoded.png)")
	flags.Parse(args)
	if flags.NArg() != 1 {
		flags.Usage()
		os.Exit(1)
	}
	in := flags.Arg(0)
	if *out == "" {
		*out = outpath(in, "encoded")
	}

	kind, err := stripe.ParseKind(*stype)
	if err != nil {
		log.Fatalf("Bad -stripetype: %v\n", err)
	}
	carrier, err := loadGray(in)
	if err != nil {
		log.Fatalf("Could not load image %s: %v\n", in, err)
	}

	cfg := stripetext.EncodeConfig{
		Period:     *period,
		StripeType: kind,
		Amplitude:  *amplitude,
		FontSize:   *fontsize,
		Text: textmask.Config{
			Angle:         *angle,
			SpacingX:      *spacingx,
			SpacingY:      *spacingy,
			LetterSpacing: *letterspacing,
		},
		Line: lineimg.Config{
			StripWidth:    *stripwidth,
			ChunkHeight:   *chunkheight,
			MinThickness:  *minthick,
			MaxThickness:  *maxthick,
			MinBrightness: 15,
			MaxBrightness: 240,
		},
	}
	stego, params, err := stripetext.Encode(carrier, *text, cfg)
	if err != nil {
		log.Fatalf("Could not encode: %v\n", err)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("Could not create file %s: %v\n", *out, err)
	}
	defer f.Close()
	if err = pngmeta.Encode(f, stego, params.Text()); err != nil {
		log.Fatalf("Could not write image: %v\n", err)
	}
	fmt.Printf("Encoded image saved to %s\n", *out)
}

func decode(args []string) {
	flags := flag.NewFlagSet("decode", flag.ExitOnError)
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: stripetext decode [flags] img\n")
		fmt.Fprintf(os.Stderr, "Reveal text hidden in an encoded image\n")
		flags.PrintDefaults()
	}
	out := flags.String("o", "", "Output path (default <img>-decoded.png)")
	flags.Parse(args)
	if flags.NArg() != 1 {
		flags.Usage()
		os.Exit(1)
	}
	in := flags.Arg(0)
	if *out == "" {
		name := strings.TrimSuffix(strings.TrimSuffix(filepath.Base(in), filepath.Ext(in)), "-encoded")
		*out = filepath.Join(filepath.Dir(in), name+"-decoded.png")
	}

	f, err := os.Open(in)
	if err != nil {
		log.Fatalf("Could not open file %s: %v\n", in, err)
	}
	img, texts, err := pngmeta.Decode(f)
	f.Close()
	if err != nil {
		log.Fatalf("Could not read image %s: %v\n", in, err)
	}
	params, err := stripetext.ParamsFromText(texts)
	if err != nil {
		if errors.Is(err, stripetext.ErrMissingParams) {
			log.Fatalf("%s has no encoding parameters; it was probably not created by stripetext encode, or its metadata has been stripped\n", in)
		}
		log.Fatalf("Could not read encoding parameters from %s: %v\n", in, err)
	}

	revealed, err := stripetext.Decode(imgutil.ToGray(img), params)
	if err != nil {
		log.Fatalf("Could not decode: %v\n", err)
	}

	of, err := os.Create(*out)
	if err != nil {
		log.Fatalf("Could not create file %s: %v\n", *out, err)
	}
	defer of.Close()
	if err = png.Encode(of, revealed); err != nil {
		log.Fatalf("Could not write image: %v\n", err)
	}
	fmt.Printf("Decoded image saved to %s\n", *out)
}
