package integralimg

import (
	"image"
	"image/color"
	"testing"
)

func testimg(w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetGray(x, y, color.Gray{uint8((x*7 + y*13) % 256)})
		}
	}
	return img
}

func naivesum(img *image.Gray, r image.Rectangle) uint64 {
	var sum uint64
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			sum += uint64(img.GrayAt(x, y).Y)
		}
	}
	return sum
}

func TestSumMatchesNaive(t *testing.T) {
	img := testimg(31, 17)
	integral := New(img)
	cases := []image.Rectangle{
		image.Rect(0, 0, 31, 17),
		image.Rect(0, 0, 1, 1),
		image.Rect(5, 3, 12, 9),
		image.Rect(30, 16, 31, 17),
		image.Rect(10, 10, 10, 15),
		image.Rect(25, 10, 40, 30),
	}
	for _, r := range cases {
		want := naivesum(img, r.Intersect(img.Bounds()))
		if got := integral.Sum(r); got != want {
			t.Errorf("Sum(%v) = %d, want %d", r, got, want)
		}
	}
}

func TestMean(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 10, 10))
	for i := range img.Pix {
		img.Pix[i] = 80
	}
	integral := New(img)
	if got := integral.Mean(image.Rect(2, 2, 8, 8)); got != 80 {
		t.Errorf("Mean of flat image = %f, want 80", got)
	}
	if got := integral.Mean(image.Rect(4, 4, 4, 4)); got != 0 {
		t.Errorf("Mean of empty rectangle = %f, want 0", got)
	}
}

func TestColumnMeans(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 6))
	for y := 0; y < 6; y++ {
		img.SetGray(2, y, color.Gray{255})
	}
	means := New(img).ColumnMeans()
	if len(means) != 4 {
		t.Fatalf("Got %d column means, want 4", len(means))
	}
	for x, m := range means {
		want := 0.0
		if x == 2 {
			want = 255
		}
		if m != want {
			t.Errorf("Column %d mean = %f, want %f", x, m, want)
		}
	}
}
