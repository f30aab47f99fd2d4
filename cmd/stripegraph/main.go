// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// stripegraph graphs the mean brightness of each column of an image.
// On an encoded image the stripe period is visible as the distance
// between repeating peaks.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"stripetext.xyz/stripetext"
	"stripetext.xyz/stripetext/imgutil"
	"stripetext.xyz/stripetext/integralimg"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: stripegraph [-o out.png] img\n")
		fmt.Fprintf(os.Stderr, "Graph the column brightness profile of an image\n")
		flag.PrintDefaults()
	}
	out := flag.String("o", "", "Output path (default <img>-profile.png)")
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	in := flag.Arg(0)
	if *out == "" {
		base := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
		*out = filepath.Join(filepath.Dir(in), base+"-profile.png")
	}

	f, err := os.Open(in)
	if err != nil {
		log.Fatalf("Could not open file %s: %v\n", in, err)
	}
	img, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		log.Fatalf("Could not decode image: %v\n", err)
	}

	means := integralimg.New(imgutil.ToGray(img)).ColumnMeans()

	of, err := os.Create(*out)
	if err != nil {
		log.Fatalf("Could not create file %s: %v\n", *out, err)
	}
	defer of.Close()
	if err = stripetext.ProfileGraph(means, filepath.Base(in), of); err != nil {
		log.Fatalf("Could not create graph: %v\n", err)
	}
	fmt.Printf("Profile graph saved to %s\n", *out)
}
