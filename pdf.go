// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package stripetext

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/jung-kurt/gofpdf"
)

const pageWidth = 5 // pageWidth in inches

// captionHeight is the strip reserved under each image, in pt
const captionHeight = 18

// pxToPt converts a pixel value into a pt value (72 pts per inch)
// This uses pageWidth to determine the appropriate value
func pxToPt(i int) float64 {
	return float64(i) / pageWidth
}

// Fpdf builds a contact sheet PDF with one captioned image per page,
// so a carrier, its encoded version and the revealed text can be
// compared side by side.
type Fpdf struct {
	fpdf *gofpdf.Fpdf
}

// Setup creates a new PDF with appropriate settings
func (p *Fpdf) Setup() error {
	p.fpdf = gofpdf.New("P", "pt", "A4", "")
	p.fpdf.SetFont("Helvetica", "", 10)
	p.fpdf.SetAutoPageBreak(false, float64(0))
	return p.fpdf.Error()
}

// AddPage adds a page to the pdf containing the image at imgpath with
// a caption underneath
func (p *Fpdf) AddPage(imgpath, caption string) error {
	f, err := os.Open(imgpath)
	if err != nil {
		return fmt.Errorf("could not open image %s: %v", imgpath, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("could not decode image %s: %v", imgpath, err)
	}
	b := img.Bounds()

	p.fpdf.AddPageFormat("P", gofpdf.SizeType{Wd: pxToPt(b.Dx()), Ht: pxToPt(b.Dy()) + captionHeight})

	_ = p.fpdf.RegisterImageOptions(imgpath, gofpdf.ImageOptions{})
	p.fpdf.ImageOptions(imgpath, 0, 0, pxToPt(b.Dx()), pxToPt(b.Dy()), false, gofpdf.ImageOptions{}, 0, "")

	p.fpdf.SetXY(0, pxToPt(b.Dy()))
	p.fpdf.CellFormat(pxToPt(b.Dx()), captionHeight, caption, "", 0, "C", false, 0, "")
	return p.fpdf.Error()
}

// Save saves the PDF to the file at path
func (p *Fpdf) Save(path string) error {
	return p.fpdf.OutputFileAndClose(path)
}
