// render_driver.go - Scanline render driver for RasterForge

/*
(c) 2026 Zayn Otley
https://github.com/IntuitionAmiga/RasterForge
License: GPLv3 or later
*/

package main

import "sync"

// ColorFunc computes the color of a single pixel. The coordinates and
// dimensions are in backing-store (physical) pixels. It must be a pure
// function of its coordinates: the driver gives no ordering guarantee
// beyond the scan order documented on RenderFrame and provides no
// synchronization between invocations.
type ColorFunc func(x, y, width, height int) (r, g, b uint8, err error)

// RenderDriver drives full-frame render passes against one surface.
// Overlapping render calls against the same surface are not supported;
// callers must serialize frame triggers.
type RenderDriver struct {
	surface *Surface
}

// NewRenderDriver creates a driver bound to the given surface.
func NewRenderDriver(surface *Surface) *RenderDriver {
	return &RenderDriver{surface: surface}
}

// RenderFrame renders one full frame: it acquires a snapshot of the
// surface's pixel store, invokes fn exactly once per backing-store pixel
// with alpha forced to 255, and commits the whole buffer back in a single
// operation. Coordinates follow a bottom-left origin: y=0 is the bottom
// row, so pixel (x,y) lands on storage row height-1-y. Rows are visited
// bottom-up (y = height-1 down to 0) and pixels left-to-right within each
// row; per-pixel functions may rely on that order for progress reporting
// but not for correctness.
//
// If fn fails for any pixel the frame is abandoned with a
// PixelComputeError before any commit, leaving the previously displayed
// content untouched. A frame either fully commits or not at all.
func (d *RenderDriver) RenderFrame(fn ColorFunc) error {
	buf := d.surface.AcquirePixelBuffer()
	nx := buf.Width()
	ny := buf.Height()

	for y := ny - 1; y >= 0; y-- {
		for x := 0; x < nx; x++ {
			r, g, b, err := fn(x, y, nx, ny)
			if err != nil {
				return &PixelComputeError{X: x, Y: y, Err: err}
			}
			// Index derived per pixel from (x,y); the scan order is an
			// observable convention, not a storage assumption.
			i := buf.PixOffset(x, ny-1-y)
			buf.pix[i+0] = r
			buf.pix[i+1] = g
			buf.pix[i+2] = b
			buf.pix[i+3] = 0xFF
		}
	}

	return d.surface.CommitPixelBuffer(buf)
}

// RenderFrameParallel renders one frame with the rows partitioned across
// worker goroutines. Each pixel is still computed exactly once and written
// at an index derived from its own coordinates, so workers never alias.
// The commit happens only after every worker has joined; the first fn
// error aborts the frame with no commit. fn must be safe for concurrent
// use (true for any pure function of its coordinates).
func (d *RenderDriver) RenderFrameParallel(fn ColorFunc, workers int) error {
	if workers <= 1 {
		return d.RenderFrame(fn)
	}

	buf := d.surface.AcquirePixelBuffer()
	nx := buf.Width()
	ny := buf.Height()
	if workers > ny && ny > 0 {
		workers = ny
	}

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		frameErr error
	)

	rowsPer := (ny + workers - 1) / workers
	for w := 0; w < workers; w++ {
		yHi := ny - 1 - w*rowsPer
		yLo := yHi - rowsPer + 1
		if yLo < 0 {
			yLo = 0
		}
		if yHi < 0 {
			continue
		}

		wg.Add(1)
		go func(yHi, yLo int) {
			defer wg.Done()
			for y := yHi; y >= yLo; y-- {
				for x := 0; x < nx; x++ {
					r, g, b, err := fn(x, y, nx, ny)
					if err != nil {
						errOnce.Do(func() {
							frameErr = &PixelComputeError{X: x, Y: y, Err: err}
						})
						return
					}
					i := buf.PixOffset(x, ny-1-y)
					buf.pix[i+0] = r
					buf.pix[i+1] = g
					buf.pix[i+2] = b
					buf.pix[i+3] = 0xFF
				}
			}
		}(yHi, yLo)
	}
	wg.Wait()

	if frameErr != nil {
		return frameErr
	}
	return d.surface.CommitPixelBuffer(buf)
}
