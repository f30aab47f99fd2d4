// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// stripebatch encodes every image in a directory with the same hidden
// text. Images are independent of each other, so they are processed
// concurrently.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"

	"stripetext.xyz/stripetext"
	"stripetext.xyz/stripetext/imgutil"
	"stripetext.xyz/stripetext/lineimg"
	"stripetext.xyz/stripetext/pngmeta"
	"stripetext.xyz/stripetext/stripe"
	"stripetext.xyz/stripetext/textmask"
)

var exts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

func encodeone(in, out, text string, cfg stripetext.EncodeConfig) error {
	f, err := os.Open(in)
	if err != nil {
		return err
	}
	img, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("could not decode image %s: %v", in, err)
	}

	stego, params, err := stripetext.Encode(imgutil.ToGray(img), text, cfg)
	if err != nil {
		return fmt.Errorf("could not encode %s: %v", in, err)
	}

	of, err := os.Create(out)
	if err != nil {
		return err
	}
	defer of.Close()
	return pngmeta.Encode(of, stego, params.Text())
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: stripebatch [flags] indir outdir\n")
		fmt.Fprintf(os.Stderr, "Encode hidden text into every image in a directory\n")
		flag.PrintDefaults()
	}
	text := flag.String("text", "SECRET", "Text to hide in the images.")
	period := flag.Int("period", 2, "Period of the stripes in pixels.")
	stype := flag.String("stripetype", "binary", "Stripe pattern type, binary or sinusoidal.")
	amplitude := flag.Float64("amplitude", 0.3, "Strength of the hidden stripe pattern, 0 to 1.")
	fontsize := flag.Float64("fontsize", 24, "Font size in points for the hidden text.")
	angle := flag.Float64("angle", 45, "Text rotation angle in degrees.")
	spacingx := flag.Float64("spacingx", 1.4, "Horizontal text spacing multiplier.")
	spacingy := flag.Float64("spacingy", 0.4, "Vertical text spacing multiplier.")
	workers := flag.Int("j", runtime.NumCPU(), "Number of images to process concurrently.")
	verbose := flag.Bool("v", false, "Log each image as it is done.")
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}
	indir, outdir := flag.Arg(0), flag.Arg(1)

	kind, err := stripe.ParseKind(*stype)
	if err != nil {
		log.Fatalf("Bad -stripetype: %v\n", err)
	}
	cfg := stripetext.EncodeConfig{
		Period:     *period,
		StripeType: kind,
		Amplitude:  *amplitude,
		FontSize:   *fontsize,
		Text: textmask.Config{
			Angle:    *angle,
			SpacingX: *spacingx,
			SpacingY: *spacingy,
		},
		Line: lineimg.Config{
			StripWidth:    5,
			ChunkHeight:   5,
			MinThickness:  1,
			MaxThickness:  5,
			MinBrightness: 15,
			MaxBrightness: 240,
		},
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Bad configuration: %v\n", err)
	}

	entries, err := os.ReadDir(indir)
	if err != nil {
		log.Fatalf("Could not read directory %s: %v\n", indir, err)
	}
	if err = os.MkdirAll(outdir, 0755); err != nil {
		log.Fatalf("Could not create directory %s: %v\n", outdir, err)
	}

	var g errgroup.Group
	g.SetLimit(*workers)
	done := 0
	for _, e := range entries {
		if e.IsDir() || !exts[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		name := e.Name()
		in := filepath.Join(indir, name)
		base := strings.TrimSuffix(name, filepath.Ext(name))
		out := filepath.Join(outdir, base+"-encoded.png")
		done++
		g.Go(func() error {
			if err := encodeone(in, out, *text, cfg); err != nil {
				return err
			}
			if *verbose {
				log.Printf("Encoded %s\n", out)
			}
			return nil
		})
	}
	if done == 0 {
		log.Fatalf("No images found in %s\n", indir)
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("Batch failed: %v\n", err)
	}
	fmt.Printf("Encoded %d images to %s\n", done, outdir)
}
