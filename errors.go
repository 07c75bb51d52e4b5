// errors.go - Surface and render error types for RasterForge

/*
(c) 2026 Zayn Otley
https://github.com/IntuitionAmiga/RasterForge
License: GPLv3 or later
*/

package main

import "fmt"

// InvalidTargetError reports a missing or unusable display target at
// surface initialization. Fatal to the caller; no retry.
type InvalidTargetError struct {
	Details string
	Err     error
}

func (e *InvalidTargetError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid display target: %s: %v", e.Details, e.Err)
	}
	return fmt.Sprintf("invalid display target: %s", e.Details)
}

func (e *InvalidTargetError) Unwrap() error {
	return e.Err
}

// DimensionMismatchError reports a commit buffer whose size disagrees with
// the surface's current backing store. Indicates a caller bug such as stale
// buffer reuse.
type DimensionMismatchError struct {
	GotWidth, GotHeight   int
	WantWidth, WantHeight int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("pixel buffer dimensions %dx%d do not match surface backing store %dx%d",
		e.GotWidth, e.GotHeight, e.WantWidth, e.WantHeight)
}

// PixelComputeError reports a color function failure for one pixel. The
// in-progress frame is abandoned before commit; the prior frame stays visible.
type PixelComputeError struct {
	X, Y int
	Err  error
}

func (e *PixelComputeError) Error() string {
	return fmt.Sprintf("color function failed at pixel (%d,%d): %v", e.X, e.Y, e.Err)
}

func (e *PixelComputeError) Unwrap() error {
	return e.Err
}
