// display_interface.go - Display output interface for RasterForge

/*
(c) 2026 Zayn Otley
https://github.com/IntuitionAmiga/RasterForge
License: GPLv3 or later
*/

package main

import (
	"fmt"
	"time"
)

// DisplayError provides detailed error context for display operations
type DisplayError struct {
	Operation string // What operation was being attempted
	Details   string // Additional error context
	Err       error  // Underlying error if any
}

func (e *DisplayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("display %s failed: %s: %v", e.Operation, e.Details, e.Err)
	}
	return fmt.Sprintf("display %s failed: %s", e.Operation, e.Details)
}

func (e *DisplayError) Unwrap() error {
	return e.Err
}

// FrameSnapshot encapsulates the data needed to represent a complete frame
type FrameSnapshot struct {
	Buffer    []byte // Raw frame buffer data, row-major RGBA
	Width     int    // Frame width in physical pixels
	Height    int    // Frame height in physical pixels
	Timestamp time.Time
}

// DisplayConfig contains hardware-independent configuration.
// Width and Height are logical pixels; the backing store behind them is
// (Width*PixelRatio) x (Height*PixelRatio) physical pixels.
type DisplayConfig struct {
	Width       int
	Height      int
	PixelRatio  int // Physical pixels per logical pixel
	Scale       int // Integer scaling factor for windowed output
	RefreshRate int // Target refresh rate in Hz
	VSync       bool
}

// BackingWidth returns the physical store width implied by the config.
func (c DisplayConfig) BackingWidth() int {
	return c.Width * clampPixelRatio(c.PixelRatio)
}

// BackingHeight returns the physical store height implied by the config.
func (c DisplayConfig) BackingHeight() int {
	return c.Height * clampPixelRatio(c.PixelRatio)
}

// DisplayOutput defines the minimal interface that backends must implement.
// UpdateFrame takes raw RGBA pixels at backing-store resolution and replaces
// the entire visible content in one operation; there is no partial update.
type DisplayOutput interface {
	// Lifecycle management
	Start() error
	Stop() error
	Close() error
	IsStarted() bool

	// Core display operations - kept minimal
	SetDisplayConfig(config DisplayConfig) error
	GetDisplayConfig() DisplayConfig
	UpdateFrame(buffer []byte) error

	// Timing and synchronization
	WaitForVSync() error
	FrameCount() uint64
}

// Predefined display backend types
const (
	DISPLAY_BACKEND_EBITEN   = iota // Pure Go Ebiten windowed backend
	DISPLAY_BACKEND_TERMINAL        // ANSI truecolor terminal backend
	DISPLAY_BACKEND_MEMORY          // Offscreen backend for tests and file output
)

// NewDisplayOutput creates a new display output instance using the specified backend
func NewDisplayOutput(backend int) (DisplayOutput, error) {
	switch backend {
	case DISPLAY_BACKEND_EBITEN:
		return NewEbitenOutput()
	case DISPLAY_BACKEND_TERMINAL:
		return NewTerminalOutput(), nil
	case DISPLAY_BACKEND_MEMORY:
		return NewMemoryOutput(), nil
	}
	return nil, &DisplayError{
		Operation: "backend creation",
		Details:   fmt.Sprintf("unknown backend type: %d", backend),
	}
}

func clampPixelRatio(ratio int) int {
	if ratio < 1 {
		return 1
	}
	return ratio
}

func clampScale(scale int) int {
	if scale < 1 {
		return 1
	}
	if scale > 8 {
		return 8
	}
	return scale
}
