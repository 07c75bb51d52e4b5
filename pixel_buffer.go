// pixel_buffer.go - Row-major RGBA pixel buffer for RasterForge

/*
(c) 2026 Zayn Otley
https://github.com/IntuitionAmiga/RasterForge
License: GPLv3 or later
*/

package main

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
)

// PixelBuffer is a flat row-major RGBA pixel store, 4 bytes per pixel,
// 8 bits per channel. Pixel (x,y) starts at index (y*width+x)*4.
// It is the sole data contract crossing the surface/driver boundary.
type PixelBuffer struct {
	width  int
	height int
	pix    []uint8
}

// NewPixelBuffer creates a zeroed (fully transparent) pixel buffer.
func NewPixelBuffer(width, height int) *PixelBuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &PixelBuffer{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}
}

// Width returns the buffer width in pixels.
func (b *PixelBuffer) Width() int {
	return b.width
}

// Height returns the buffer height in pixels.
func (b *PixelBuffer) Height() int {
	return b.height
}

// Pix returns the raw RGBA bytes backing the buffer.
func (b *PixelBuffer) Pix() []uint8 {
	return b.pix
}

// PixOffset returns the index of the first (red) channel of pixel (x,y).
func (b *PixelBuffer) PixOffset(x, y int) int {
	return (y*b.width + x) * 4
}

// SetRGBA writes one pixel. Out-of-range coordinates are ignored.
func (b *PixelBuffer) SetRGBA(x, y int, c color.RGBA) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := b.PixOffset(x, y)
	b.pix[i+0] = c.R
	b.pix[i+1] = c.G
	b.pix[i+2] = c.B
	b.pix[i+3] = c.A
}

// RGBAAt reads one pixel. Out-of-range coordinates return transparent black.
func (b *PixelBuffer) RGBAAt(x, y int) color.RGBA {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return color.RGBA{}
	}
	i := b.PixOffset(x, y)
	return color.RGBA{R: b.pix[i+0], G: b.pix[i+1], B: b.pix[i+2], A: b.pix[i+3]}
}

// Clear fills the entire buffer with a single color.
func (b *PixelBuffer) Clear(c color.RGBA) {
	for i := 0; i < len(b.pix); i += 4 {
		b.pix[i+0] = c.R
		b.pix[i+1] = c.G
		b.pix[i+2] = c.B
		b.pix[i+3] = c.A
	}
}

// Clone returns an independent copy of the buffer.
func (b *PixelBuffer) Clone() *PixelBuffer {
	dup := NewPixelBuffer(b.width, b.height)
	copy(dup.pix, b.pix)
	return dup
}

// ToImage converts the buffer to an image.RGBA.
func (b *PixelBuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	copy(img.Pix, b.pix)
	return img
}

// PixelBufferFromImage creates a pixel buffer from any image.
func PixelBufferFromImage(img image.Image) *PixelBuffer {
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	buf := NewPixelBuffer(bounds.Dx(), bounds.Dy())
	copy(buf.pix, rgba.Pix)
	return buf
}

// SavePNG writes the buffer to a PNG file.
func (b *PixelBuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, b.ToImage())
}

// At implements the image.Image interface.
func (b *PixelBuffer) At(x, y int) color.Color {
	return b.RGBAAt(x, y)
}

// Bounds implements the image.Image interface.
func (b *PixelBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *PixelBuffer) ColorModel() color.Model {
	return color.RGBAModel
}
