// surface.go - Framebuffer surface for RasterForge

/*
(c) 2026 Zayn Otley
https://github.com/IntuitionAmiga/RasterForge
License: GPLv3 or later
*/

package main

import (
	"image/color"
	"sync"
)

// DefaultBackground is the fill applied at surface creation so the display
// target is never left with undefined pixel contents.
var DefaultBackground = color.RGBA{R: 0, G: 0, B: 0, A: 255}

// Surface owns the backing pixel store bound to one display target and
// mediates all reads and writes against it. The coordinate system exposed
// to callers is logical; storage is physical (logical size times the device
// pixel ratio in each dimension).
//
// All pixel-level changes become visible through CommitPixelBuffer only.
// A commit is a full-surface copy to the display target, so callers must
// acquire once, mutate in memory, and commit once per frame rather than
// committing per pixel.
type Surface struct {
	mutex  sync.RWMutex
	target DisplayOutput

	width  int // logical
	height int // logical
	ratio  int

	store []byte // backing pixel store, row-major RGBA at physical resolution
}

// NewSurface binds a surface to a concrete display target with the given
// logical size. A ratio below 1 defaults to 1; the ratio is always an
// explicit parameter, never read from ambient environment state.
// Returns InvalidTargetError if the target is absent or rejects the
// display configuration, with no partial state created.
func NewSurface(target DisplayOutput, width, height, ratio int) (*Surface, error) {
	if target == nil {
		return nil, &InvalidTargetError{Details: "no display target"}
	}
	if width <= 0 || height <= 0 {
		return nil, &InvalidTargetError{
			Details: "display target cannot present a zero-sized surface",
		}
	}
	ratio = clampPixelRatio(ratio)

	cfg := DisplayConfig{
		Width:      width,
		Height:     height,
		PixelRatio: ratio,
		Scale:      1,
		VSync:      true,
	}
	if err := target.SetDisplayConfig(cfg); err != nil {
		return nil, &InvalidTargetError{
			Details: "display target rejected configuration",
			Err:     err,
		}
	}

	s := &Surface{
		target: target,
		width:  width,
		height: height,
		ratio:  ratio,
		store:  make([]byte, width*ratio*height*ratio*4),
	}
	if err := s.Fill(DefaultBackground); err != nil {
		return nil, &InvalidTargetError{
			Details: "display target refused initial frame",
			Err:     err,
		}
	}
	return s, nil
}

// Width returns the logical width, stable for the surface's lifetime.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the logical height, stable for the surface's lifetime.
func (s *Surface) Height() int {
	return s.height
}

// PixelRatio returns the device pixel ratio the surface was created with.
func (s *Surface) PixelRatio() int {
	return s.ratio
}

// BackingWidth returns the physical width of the backing store.
func (s *Surface) BackingWidth() int {
	return s.width * s.ratio
}

// BackingHeight returns the physical height of the backing store.
func (s *Surface) BackingHeight() int {
	return s.height * s.ratio
}

// Fill floods the entire backing store with one solid color and presents
// it. Used for clearing and resetting, never per pixel.
func (s *Surface) Fill(c color.RGBA) error {
	s.mutex.Lock()
	for i := 0; i < len(s.store); i += 4 {
		s.store[i+0] = c.R
		s.store[i+1] = c.G
		s.store[i+2] = c.B
		s.store[i+3] = c.A
	}
	s.mutex.Unlock()
	return s.present()
}

// Clear erases the backing store to fully transparent and presents it.
func (s *Surface) Clear() error {
	return s.Fill(color.RGBA{})
}

// AcquirePixelBuffer returns a snapshot copy of the full backing store at
// physical resolution. The returned buffer is independent of the live
// store; mutating it has no effect until committed back.
func (s *Surface) AcquirePixelBuffer() *PixelBuffer {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	buf := NewPixelBuffer(s.BackingWidth(), s.BackingHeight())
	copy(buf.pix, s.store)
	return buf
}

// CommitPixelBuffer replaces the entire visible content of the display
// target with the given buffer. The buffer must have exactly the backing
// store's dimensions; otherwise DimensionMismatchError is returned and the
// visible content stays unchanged. This is the only path by which
// pixel-level changes become visible.
func (s *Surface) CommitPixelBuffer(buf *PixelBuffer) error {
	if buf == nil || buf.width != s.BackingWidth() || buf.height != s.BackingHeight() {
		e := &DimensionMismatchError{
			WantWidth:  s.BackingWidth(),
			WantHeight: s.BackingHeight(),
		}
		if buf != nil {
			e.GotWidth = buf.width
			e.GotHeight = buf.height
		}
		return e
	}

	s.mutex.Lock()
	copy(s.store, buf.pix)
	s.mutex.Unlock()
	return s.present()
}

// present pushes the current store to the display target as one frame.
func (s *Surface) present() error {
	s.mutex.RLock()
	frame := make([]byte, len(s.store))
	copy(frame, s.store)
	s.mutex.RUnlock()

	if err := s.target.UpdateFrame(frame); err != nil {
		return &DisplayError{
			Operation: "frame update",
			Details:   "display target rejected frame",
			Err:       err,
		}
	}
	return nil
}
