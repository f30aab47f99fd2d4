// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// stripepdf collects images into a PDF contact sheet, one captioned
// page per image, for comparing a carrier with its encoded and
// decoded versions.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"stripetext.xyz/stripetext"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: stripepdf -o out.pdf img...\n")
		fmt.Fprintf(os.Stderr, "Collect images into a PDF contact sheet\n")
		flag.PrintDefaults()
	}
	out := flag.String("o", "report.pdf", "Output PDF path.")
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	var pdf stripetext.Fpdf
	if err := pdf.Setup(); err != nil {
		log.Fatalf("Could not set up PDF: %v\n", err)
	}
	for _, img := range flag.Args() {
		if err := pdf.AddPage(img, filepath.Base(img)); err != nil {
			log.Fatalf("Could not add page for %s: %v\n", img, err)
		}
	}
	if err := pdf.Save(*out); err != nil {
		log.Fatalf("Could not save %s: %v\n", *out, err)
	}
	fmt.Printf("PDF saved to %s\n", *out)
}
