//go:build !headless

// display_backend_ebiten.go - Ebiten display backend for RasterForge

/*
(c) 2026 Zayn Otley
https://github.com/IntuitionAmiga/RasterForge
License: GPLv3 or later
*/

package main

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"
)

type EbitenOutput struct {
	running     bool
	window      *ebiten.Image
	width       int // logical
	height      int // logical
	ratio       int
	scale       int
	fullscreen  bool
	windowedW   int
	windowedH   int
	frameBuffer []byte // backing-store RGBA
	bufferMutex sync.RWMutex
	frameCount  uint64
	refreshRate int
	vsyncChan   chan struct{}
	done        chan struct{}
	keyHandler  func(byte)

	clipboardOnce sync.Once
	clipboardOK   bool
	showStatusBar bool
}

func NewEbitenOutput() (DisplayOutput, error) {
	return &EbitenOutput{
		width:         640,
		height:        480,
		ratio:         1,
		scale:         1,
		windowedW:     640,
		windowedH:     480,
		frameBuffer:   make([]byte, 640*480*4),
		refreshRate:   60,
		vsyncChan:     make(chan struct{}, 1),
		done:          make(chan struct{}),
		showStatusBar: true,
	}, nil
}

func (eo *EbitenOutput) Start() error {
	if eo.running {
		return nil
	}
	eo.bufferMutex.Lock()
	eo.done = make(chan struct{})
	eo.bufferMutex.Unlock()
	eo.running = true
	ebiten.SetWindowSize(eo.windowedW, eo.windowedH)
	ebiten.SetWindowTitle("RasterForge (c) 2026 Zayn Otley")
	ebiten.SetWindowResizable(true)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetVsyncEnabled(true)
	if eo.fullscreen {
		ebiten.SetFullscreen(true)
	}

	go func() {
		defer func() {
			eo.running = false
			eo.bufferMutex.RLock()
			done := eo.done
			eo.bufferMutex.RUnlock()
			select {
			case <-done:
			default:
				close(done)
			}
		}()
		if err := ebiten.RunGame(eo); err != nil {
			fmt.Printf("Ebiten error: %v\n", err)
		}
	}()

	// Wait for first Draw call to ensure Ebiten is ready
	<-eo.vsyncChan
	return nil
}

func (eo *EbitenOutput) Stop() error {
	eo.running = false
	return nil
}

func (eo *EbitenOutput) Close() error {
	return eo.Stop()
}

func (eo *EbitenOutput) Done() <-chan struct{} {
	eo.bufferMutex.RLock()
	done := eo.done
	eo.bufferMutex.RUnlock()
	return done
}

func (eo *EbitenOutput) IsStarted() bool {
	return eo.running
}

func (eo *EbitenOutput) SetDisplayConfig(config DisplayConfig) error {
	eo.bufferMutex.Lock()
	defer eo.bufferMutex.Unlock()

	if config.Width <= 0 || config.Height <= 0 {
		return &DisplayError{
			Operation: "display config",
			Details:   "width and height must be positive",
		}
	}
	eo.width = config.Width
	eo.height = config.Height
	eo.ratio = clampPixelRatio(config.PixelRatio)
	eo.scale = clampScale(config.Scale)
	if config.RefreshRate > 0 {
		eo.refreshRate = config.RefreshRate
	}

	newSize := eo.width * eo.ratio * eo.height * eo.ratio * 4
	if len(eo.frameBuffer) != newSize {
		eo.frameBuffer = make([]byte, newSize)
	}

	eo.windowedW = eo.width * eo.scale
	eo.windowedH = eo.height * eo.scale
	if !eo.fullscreen {
		ebiten.SetWindowSize(eo.windowedW, eo.windowedH)
	}
	if eo.window != nil {
		eo.window.Dispose()
		eo.window = nil
	}
	return nil
}

func (eo *EbitenOutput) GetDisplayConfig() DisplayConfig {
	return DisplayConfig{
		Width:       eo.width,
		Height:      eo.height,
		PixelRatio:  eo.ratio,
		Scale:       eo.scale,
		RefreshRate: eo.refreshRate,
		VSync:       true,
	}
}

func (eo *EbitenOutput) UpdateFrame(data []byte) error {
	eo.bufferMutex.Lock()
	defer eo.bufferMutex.Unlock()
	if len(data) != len(eo.frameBuffer) {
		return &DisplayError{
			Operation: "frame update",
			Details:   "frame size does not match display configuration",
		}
	}
	copy(eo.frameBuffer, data)
	return nil
}

func (eo *EbitenOutput) WaitForVSync() error {
	<-eo.vsyncChan
	return nil
}

func (eo *EbitenOutput) FrameCount() uint64 {
	return eo.frameCount
}

// SetKeyHandler registers a callback for printable key input. The viewer
// uses it to wire render triggers without the backend knowing about them.
func (eo *EbitenOutput) SetKeyHandler(fn func(byte)) {
	eo.bufferMutex.Lock()
	eo.keyHandler = fn
	eo.bufferMutex.Unlock()
}

func (eo *EbitenOutput) emitByte(b byte) {
	eo.bufferMutex.RLock()
	handler := eo.keyHandler
	eo.bufferMutex.RUnlock()
	if handler != nil {
		handler(b)
	}
}

func (eo *EbitenOutput) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	if !eo.running {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		eo.bufferMutex.Lock()
		eo.fullscreen = !eo.fullscreen
		ebiten.SetFullscreen(eo.fullscreen)
		if !eo.fullscreen {
			ebiten.SetWindowSize(eo.windowedW, eo.windowedH)
		}
		eo.bufferMutex.Unlock()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		eo.bufferMutex.Lock()
		eo.showStatusBar = !eo.showStatusBar
		eo.bufferMutex.Unlock()
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)
	shift := ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)

	// Clipboard copy of the displayed frame: Ctrl+Shift+C
	if ctrl && shift && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		eo.handleClipboardCopy()
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		if r > 0 && r <= 0xFF {
			eo.emitByte(byte(r))
		}
	}
	return nil
}

func (eo *EbitenOutput) handleClipboardCopy() {
	eo.clipboardOnce.Do(func() {
		eo.clipboardOK = clipboard.Init() == nil
	})
	if !eo.clipboardOK {
		return
	}

	eo.bufferMutex.RLock()
	buf := NewPixelBuffer(eo.width*eo.ratio, eo.height*eo.ratio)
	copy(buf.pix, eo.frameBuffer)
	eo.bufferMutex.RUnlock()

	var out bytes.Buffer
	if err := png.Encode(&out, buf.ToImage()); err != nil {
		return
	}
	clipboard.Write(clipboard.FmtImage, out.Bytes())
}

func (eo *EbitenOutput) Draw(screen *ebiten.Image) {
	bw := eo.width * eo.ratio
	bh := eo.height * eo.ratio
	if eo.window == nil {
		eo.window = ebiten.NewImage(bw, bh)
	}

	eo.bufferMutex.RLock()
	eo.window.WritePixels(eo.frameBuffer)
	showStatusBar := eo.showStatusBar
	eo.bufferMutex.RUnlock()
	screen.DrawImage(eo.window, nil)
	if showStatusBar {
		eo.drawStatusBar(screen)
	}

	eo.frameCount++
	select {
	case eo.vsyncChan <- struct{}{}:
	default:
	}
}

// Layout returns the backing-store resolution; Ebiten scales it to the
// window, which is how the logical-vs-physical coordinate split is kept
// out of the render path.
func (eo *EbitenOutput) Layout(_, _ int) (int, int) {
	return eo.width * eo.ratio, eo.height * eo.ratio
}

func (eo *EbitenOutput) drawStatusBar(screen *ebiten.Image) {
	face := basicfont.Face7x13
	barHeight := 18
	bh := eo.height * eo.ratio
	bw := eo.width * eo.ratio
	if barHeight >= bh {
		return
	}
	y := bh - barHeight
	ebitenutil.DrawRect(screen, 0, float64(y), float64(bw), float64(barHeight), color.RGBA{0, 0, 0, 180})

	status := fmt.Sprintf("%dx%d @%dx  FPS %0.2f", eo.width, eo.height, eo.ratio, ebiten.CurrentFPS())
	text.Draw(screen, status, face, 6, y+13, color.RGBA{190, 190, 190, 255})

	legend := "R Render  S Save PNG  Ctrl+Shift+C Copy  F11 Fullscreen  F12 Status Bar"
	legendW := text.BoundString(face, legend).Dx()
	legendX := max(bw-legendW-6, 6)
	text.Draw(screen, legend, face, legendX, y+13, color.RGBA{160, 160, 160, 255})
}
