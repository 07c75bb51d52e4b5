// shaders.go - Built-in per-pixel color functions for RasterForge

/*
(c) 2026 Zayn Otley
https://github.com/IntuitionAmiga/RasterForge
License: GPLv3 or later
*/

package main

// GradientShader is the placeholder gradient: red rises left to right,
// green rises bottom to top, blue held at one fifth intensity.
func GradientShader(x, y, width, height int) (uint8, uint8, uint8, error) {
	r := uint8(255.99 * float64(x) / float64(width))
	g := uint8(255.99 * float64(y) / float64(height))
	bf := 255.99 * 0.2
	b := uint8(bf)
	return r, g, b, nil
}

// SkyShader blends white at the bottom of the frame into sky blue at the
// top, the backdrop a ray-traced scene would fall back to on a miss.
func SkyShader(x, y, width, height int) (uint8, uint8, uint8, error) {
	t := 0.0
	if height > 1 {
		t = float64(y) / float64(height-1)
	}
	r := (1-t)*1.0 + t*0.5
	g := (1-t)*1.0 + t*0.7
	b := (1-t)*1.0 + t*1.0
	return uint8(255.99 * r), uint8(255.99 * g), uint8(255.99 * b), nil
}
