//go:build headless

// display_backend_headless.go - Headless stand-in for the Ebiten backend

/*
(c) 2026 Zayn Otley
https://github.com/IntuitionAmiga/RasterForge
License: GPLv3 or later
*/

package main

// NewEbitenOutput returns an offscreen output under the headless build tag
// so CI never links a window system.
func NewEbitenOutput() (DisplayOutput, error) {
	return NewMemoryOutput(), nil
}
