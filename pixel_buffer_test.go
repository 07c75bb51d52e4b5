// pixel_buffer_test.go - Pixel buffer test suite for RasterForge

/*
(c) 2026 Zayn Otley
https://github.com/IntuitionAmiga/RasterForge
License: GPLv3 or later
*/

package main

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestPixelBuffer_PixOffset_RowMajorRGBA(t *testing.T) {
	buf := NewPixelBuffer(10, 5)

	cases := []struct {
		x, y int
		want int
	}{
		{0, 0, 0},
		{1, 0, 4},
		{0, 1, 40},
		{9, 4, (4*10 + 9) * 4},
	}
	for _, tc := range cases {
		if got := buf.PixOffset(tc.x, tc.y); got != tc.want {
			t.Errorf("PixOffset(%d,%d) = %d, expected %d", tc.x, tc.y, got, tc.want)
		}
	}
	if len(buf.Pix()) != 10*5*4 {
		t.Fatalf("buffer length %d, expected %d", len(buf.Pix()), 10*5*4)
	}
}

func TestPixelBuffer_SetRGBA_RGBAAt(t *testing.T) {
	buf := NewPixelBuffer(4, 4)
	c := color.RGBA{R: 12, G: 34, B: 56, A: 78}
	buf.SetRGBA(2, 3, c)

	if got := buf.RGBAAt(2, 3); got != c {
		t.Fatalf("RGBAAt(2,3) = %v, expected %v", got, c)
	}
	i := buf.PixOffset(2, 3)
	if buf.Pix()[i] != 12 || buf.Pix()[i+1] != 34 || buf.Pix()[i+2] != 56 || buf.Pix()[i+3] != 78 {
		t.Fatal("channel bytes not stored in RGBA order")
	}
}

func TestPixelBuffer_OutOfRangeAccess(t *testing.T) {
	buf := NewPixelBuffer(4, 4)
	buf.SetRGBA(-1, 0, color.RGBA{R: 255})
	buf.SetRGBA(4, 0, color.RGBA{R: 255})
	buf.SetRGBA(0, 4, color.RGBA{R: 255})

	for _, b := range buf.Pix() {
		if b != 0 {
			t.Fatal("out-of-range SetRGBA wrote into the buffer")
		}
	}
	if got := buf.RGBAAt(4, 4); got != (color.RGBA{}) {
		t.Fatalf("out-of-range RGBAAt = %v, expected transparent black", got)
	}
}

func TestPixelBuffer_Clone_Independent(t *testing.T) {
	buf := NewPixelBuffer(4, 4)
	buf.Clear(color.RGBA{R: 9, G: 9, B: 9, A: 255})

	dup := buf.Clone()
	dup.SetRGBA(0, 0, color.RGBA{R: 1, A: 255})

	if got := buf.RGBAAt(0, 0); got.R != 9 {
		t.Fatal("mutating a clone changed the original buffer")
	}
}

func TestPixelBuffer_ToImage_PreservesPixels(t *testing.T) {
	buf := NewPixelBuffer(3, 2)
	buf.SetRGBA(2, 1, color.RGBA{R: 100, G: 150, B: 200, A: 255})

	img := buf.ToImage()
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("image bounds %v, expected 3x2", img.Bounds())
	}
	if got := img.RGBAAt(2, 1); got.R != 100 || got.G != 150 || got.B != 200 {
		t.Fatalf("image pixel (2,1) = %v", got)
	}
}

func TestPixelBuffer_SavePNG_RoundTrip(t *testing.T) {
	buf := NewPixelBuffer(8, 6)
	buf.Clear(color.RGBA{R: 20, G: 40, B: 60, A: 255})

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := buf.SavePNG(path); err != nil {
		t.Fatalf("SavePNG returned error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening saved PNG: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding saved PNG: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 6 {
		t.Fatalf("decoded bounds %v, expected 8x6", img.Bounds())
	}
	r, g, b, _ := img.At(4, 3).RGBA()
	if uint8(r>>8) != 20 || uint8(g>>8) != 40 || uint8(b>>8) != 60 {
		t.Fatalf("decoded pixel (4,3) = (%d,%d,%d)", r>>8, g>>8, b>>8)
	}
}

func TestPixelBufferFromImage_CopiesPixels(t *testing.T) {
	src := NewPixelBuffer(5, 5)
	src.SetRGBA(1, 2, color.RGBA{R: 77, G: 88, B: 99, A: 255})

	buf := PixelBufferFromImage(src.ToImage())
	if buf.Width() != 5 || buf.Height() != 5 {
		t.Fatalf("buffer size %dx%d, expected 5x5", buf.Width(), buf.Height())
	}
	if got := buf.RGBAAt(1, 2); got.R != 77 || got.G != 88 || got.B != 99 {
		t.Fatalf("pixel (1,2) = %v", got)
	}
}
