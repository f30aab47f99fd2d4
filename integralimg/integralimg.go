package integralimg

import (
	"image"
)

// I is the Integral Image, with an extra zero row and column so that
// rectangle sums need no edge special-casing. I[y][x] holds the sum of
// all pixels above and left of (x, y) exclusive.
type I [][]uint64

// New creates an integral image from a grayscale image. Computing it
// once makes the sum of any rectangle a four-corner lookup, which is
// what keeps block mean calculations cheap however many blocks an
// image is cut into.
func New(img *image.Gray) I {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	integral := make(I, h+1)
	integral[0] = make([]uint64, w+1)
	for y := 0; y < h; y++ {
		row := make([]uint64, w+1)
		prev := integral[y]
		var rowsum uint64
		for x := 0; x < w; x++ {
			rowsum += uint64(img.GrayAt(b.Min.X+x, b.Min.Y+y).Y)
			row[x+1] = prev[x+1] + rowsum
		}
		integral[y+1] = row
	}
	return integral
}

// Rect returns the bounds covered by the integral image.
func (i I) Rect() image.Rectangle {
	if len(i) == 0 {
		return image.Rectangle{}
	}
	return image.Rect(0, 0, len(i[0])-1, len(i)-1)
}

// Sum returns the sum of all pixels within r, which is clipped to the
// image bounds first.
func (i I) Sum(r image.Rectangle) uint64 {
	r = r.Intersect(i.Rect())
	if r.Empty() {
		return 0
	}
	return i[r.Max.Y][r.Max.X] + i[r.Min.Y][r.Min.X] -
		i[r.Min.Y][r.Max.X] - i[r.Max.Y][r.Min.X]
}

// Mean returns the average pixel value within r. An empty rectangle
// has a mean of zero.
func (i I) Mean(r image.Rectangle) float64 {
	r = r.Intersect(i.Rect())
	if r.Empty() {
		return 0
	}
	return float64(i.Sum(r)) / float64(r.Dx()*r.Dy())
}

// ColumnMeans returns the mean pixel value of every column. This is
// the profile used to eyeball the stripe period of an encoded image.
func (i I) ColumnMeans() []float64 {
	b := i.Rect()
	means := make([]float64, b.Dx())
	for x := range means {
		means[x] = i.Mean(image.Rect(x, 0, x+1, b.Dy()))
	}
	return means
}
