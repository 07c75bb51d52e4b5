// shaders_test.go - Built-in shader test suite for RasterForge

/*
(c) 2026 Zayn Otley
https://github.com/IntuitionAmiga/RasterForge
License: GPLv3 or later
*/

package main

import "testing"

func TestGradientShader_Formula(t *testing.T) {
	cases := []struct {
		x, y    int
		r, g, b uint8
	}{
		{0, 0, 0, 0, 51},
		{639, 0, 255, 0, 51},
		{0, 479, 0, 255, 51},
		{320, 240, 127, 127, 51},
	}
	for _, tc := range cases {
		r, g, b, err := GradientShader(tc.x, tc.y, 640, 480)
		if err != nil {
			t.Fatalf("GradientShader(%d,%d) returned error: %v", tc.x, tc.y, err)
		}
		if r != tc.r || g != tc.g || b != tc.b {
			t.Errorf("GradientShader(%d,%d) = (%d,%d,%d), expected (%d,%d,%d)",
				tc.x, tc.y, r, g, b, tc.r, tc.g, tc.b)
		}
	}
}

func TestSkyShader_Endpoints(t *testing.T) {
	// Bottom of the frame (y=0) is white.
	r, g, b, err := SkyShader(0, 0, 100, 100)
	if err != nil {
		t.Fatalf("SkyShader returned error: %v", err)
	}
	if r != 255 || g != 255 || b != 255 {
		t.Fatalf("bottom pixel = (%d,%d,%d), expected white", r, g, b)
	}

	// Top of the frame (y=height-1) is sky blue.
	r, g, b, err = SkyShader(0, 99, 100, 100)
	if err != nil {
		t.Fatalf("SkyShader returned error: %v", err)
	}
	if r != 127 || g != 179 || b != 255 {
		t.Fatalf("top pixel = (%d,%d,%d), expected (127,179,255)", r, g, b)
	}
}
