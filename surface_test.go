// surface_test.go - Framebuffer surface test suite for RasterForge

/*
(c) 2026 Zayn Otley
https://github.com/IntuitionAmiga/RasterForge
License: GPLv3 or later
*/

package main

import (
	"errors"
	"image/color"
	"testing"
)

// rejectingOutput refuses any display configuration, standing in for a
// target that cannot yield a drawable context.
type rejectingOutput struct {
	MemoryOutput
}

func (r *rejectingOutput) SetDisplayConfig(DisplayConfig) error {
	return &DisplayError{Operation: "display config", Details: "no drawable context"}
}

func TestNewSurface_LogicalSizeInvariant(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
		ratio         int
	}{
		{"ratio 1", 640, 480, 1},
		{"ratio 2", 320, 200, 2},
		{"ratio 3", 100, 75, 3},
		{"ratio defaulted", 64, 48, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			surface, err := NewSurface(NewMemoryOutput(), tc.width, tc.height, tc.ratio)
			if err != nil {
				t.Fatalf("NewSurface returned error: %v", err)
			}

			if surface.Width() != tc.width || surface.Height() != tc.height {
				t.Fatalf("logical size %dx%d, expected %dx%d",
					surface.Width(), surface.Height(), tc.width, tc.height)
			}

			wantRatio := tc.ratio
			if wantRatio < 1 {
				wantRatio = 1
			}
			if surface.PixelRatio() != wantRatio {
				t.Fatalf("pixel ratio %d, expected %d", surface.PixelRatio(), wantRatio)
			}
			if surface.BackingWidth() != tc.width*wantRatio ||
				surface.BackingHeight() != tc.height*wantRatio {
				t.Fatalf("backing store %dx%d, expected %dx%d",
					surface.BackingWidth(), surface.BackingHeight(),
					tc.width*wantRatio, tc.height*wantRatio)
			}
		})
	}
}

func TestNewSurface_NilTarget_InvalidTargetError(t *testing.T) {
	surface, err := NewSurface(nil, 640, 480, 1)
	if surface != nil {
		t.Fatal("expected no surface for nil target")
	}
	var invalidErr *InvalidTargetError
	if !errors.As(err, &invalidErr) {
		t.Fatalf("expected InvalidTargetError, got %v", err)
	}
}

func TestNewSurface_RejectedConfig_InvalidTargetError(t *testing.T) {
	surface, err := NewSurface(&rejectingOutput{}, 640, 480, 1)
	if surface != nil {
		t.Fatal("expected no surface when target rejects configuration")
	}
	var invalidErr *InvalidTargetError
	if !errors.As(err, &invalidErr) {
		t.Fatalf("expected InvalidTargetError, got %v", err)
	}
}

func TestNewSurface_InitialFill_DefaultBackground(t *testing.T) {
	surface, err := NewSurface(NewMemoryOutput(), 32, 24, 2)
	if err != nil {
		t.Fatalf("NewSurface returned error: %v", err)
	}

	buf := surface.AcquirePixelBuffer()
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			if got := buf.RGBAAt(x, y); got != DefaultBackground {
				t.Fatalf("pixel (%d,%d) = %v, expected default background %v",
					x, y, got, DefaultBackground)
			}
		}
	}
}

func TestSurface_AcquirePixelBuffer_IndependentOfLiveStore(t *testing.T) {
	output := NewMemoryOutput()
	surface, err := NewSurface(output, 16, 16, 1)
	if err != nil {
		t.Fatalf("NewSurface returned error: %v", err)
	}

	buf := surface.AcquirePixelBuffer()
	buf.SetRGBA(3, 5, color.RGBA{R: 200, G: 10, B: 10, A: 255})

	fresh := surface.AcquirePixelBuffer()
	if got := fresh.RGBAAt(3, 5); got != DefaultBackground {
		t.Fatalf("live store changed by snapshot mutation: pixel (3,5) = %v", got)
	}

	snap := output.Snapshot()
	i := (5*16 + 3) * 4
	if snap.Buffer[i] != DefaultBackground.R {
		t.Fatal("visible content changed by snapshot mutation before commit")
	}
}

func TestSurface_CommitPixelBuffer_WrongDimensions(t *testing.T) {
	output := NewMemoryOutput()
	surface, err := NewSurface(output, 16, 16, 1)
	if err != nil {
		t.Fatalf("NewSurface returned error: %v", err)
	}
	framesBefore := output.FrameCount()

	wrong := NewPixelBuffer(17, 16)
	commitErr := surface.CommitPixelBuffer(wrong)

	var mismatch *DimensionMismatchError
	if !errors.As(commitErr, &mismatch) {
		t.Fatalf("expected DimensionMismatchError, got %v", commitErr)
	}
	if mismatch.GotWidth != 17 || mismatch.WantWidth != 16 {
		t.Fatalf("mismatch details wrong: got %dx%d want %dx%d",
			mismatch.GotWidth, mismatch.GotHeight, mismatch.WantWidth, mismatch.WantHeight)
	}
	if output.FrameCount() != framesBefore {
		t.Fatal("failed commit must not update the visible frame")
	}
}

func TestSurface_CommitPixelBuffer_NilBuffer(t *testing.T) {
	surface, err := NewSurface(NewMemoryOutput(), 8, 8, 1)
	if err != nil {
		t.Fatalf("NewSurface returned error: %v", err)
	}
	var mismatch *DimensionMismatchError
	if !errors.As(surface.CommitPixelBuffer(nil), &mismatch) {
		t.Fatal("expected DimensionMismatchError for nil buffer")
	}
}

func TestSurface_CommitPixelBuffer_ReplacesVisibleContent(t *testing.T) {
	output := NewMemoryOutput()
	surface, err := NewSurface(output, 8, 8, 1)
	if err != nil {
		t.Fatalf("NewSurface returned error: %v", err)
	}

	buf := surface.AcquirePixelBuffer()
	buf.Clear(color.RGBA{R: 1, G: 2, B: 3, A: 255})
	if err := surface.CommitPixelBuffer(buf); err != nil {
		t.Fatalf("CommitPixelBuffer returned error: %v", err)
	}

	snap := output.Snapshot()
	for i := 0; i < len(snap.Buffer); i += 4 {
		if snap.Buffer[i] != 1 || snap.Buffer[i+1] != 2 || snap.Buffer[i+2] != 3 || snap.Buffer[i+3] != 255 {
			t.Fatalf("visible pixel at byte %d = %v, expected (1,2,3,255)", i, snap.Buffer[i:i+4])
		}
	}
}

func TestSurface_Fill_SolidColorVisible(t *testing.T) {
	output := NewMemoryOutput()
	surface, err := NewSurface(output, 8, 4, 2)
	if err != nil {
		t.Fatalf("NewSurface returned error: %v", err)
	}

	if err := surface.Fill(color.RGBA{R: 255, G: 128, B: 0, A: 255}); err != nil {
		t.Fatalf("Fill returned error: %v", err)
	}

	snap := output.Snapshot()
	if len(snap.Buffer) != 16*8*4 {
		t.Fatalf("snapshot length %d, expected %d", len(snap.Buffer), 16*8*4)
	}
	for i := 0; i < len(snap.Buffer); i += 4 {
		if snap.Buffer[i] != 255 || snap.Buffer[i+1] != 128 || snap.Buffer[i+2] != 0 {
			t.Fatalf("fill not uniform at byte %d: %v", i, snap.Buffer[i:i+4])
		}
	}
}

func TestSurface_Clear_FullyTransparent(t *testing.T) {
	surface, err := NewSurface(NewMemoryOutput(), 8, 8, 1)
	if err != nil {
		t.Fatalf("NewSurface returned error: %v", err)
	}
	if err := surface.Clear(); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}

	buf := surface.AcquirePixelBuffer()
	for i, b := range buf.Pix() {
		if b != 0 {
			t.Fatalf("byte %d = %d after Clear, expected 0", i, b)
		}
	}
}
