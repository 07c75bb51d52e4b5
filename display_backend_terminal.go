// display_backend_terminal.go - ANSI truecolor terminal backend for RasterForge

/*
(c) 2026 Zayn Otley
https://github.com/IntuitionAmiga/RasterForge
License: GPLv3 or later
*/

package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// TerminalOutput renders committed frames into a terminal using truecolor
// half-block glyphs: each character cell shows two vertically stacked
// pixels (upper half block foreground over background). Frames larger than
// the terminal are downsampled with nearest-neighbour sampling.
type TerminalOutput struct {
	mutex      sync.Mutex
	started    bool
	config     DisplayConfig
	writer     io.Writer
	fd         int
	isTerminal bool
	frameCount uint64
}

func NewTerminalOutput() *TerminalOutput {
	fd := int(os.Stdout.Fd())
	return &TerminalOutput{
		writer:     os.Stdout,
		fd:         fd,
		isTerminal: term.IsTerminal(fd),
	}
}

// NewTerminalOutputTo renders into an arbitrary writer with a fixed cell
// grid instead of a detected terminal. Used by tests.
func NewTerminalOutputTo(w io.Writer) *TerminalOutput {
	return &TerminalOutput{writer: w, fd: -1}
}

func (to *TerminalOutput) Start() error {
	to.mutex.Lock()
	defer to.mutex.Unlock()
	if to.isTerminal {
		// Hide cursor and clear once; frames then repaint from home.
		fmt.Fprint(to.writer, "\x1b[?25l\x1b[2J")
	}
	to.started = true
	return nil
}

func (to *TerminalOutput) Stop() error {
	to.mutex.Lock()
	defer to.mutex.Unlock()
	if to.started && to.isTerminal {
		fmt.Fprint(to.writer, "\x1b[0m\x1b[?25h\n")
	}
	to.started = false
	return nil
}

func (to *TerminalOutput) Close() error {
	return to.Stop()
}

func (to *TerminalOutput) IsStarted() bool {
	to.mutex.Lock()
	defer to.mutex.Unlock()
	return to.started
}

func (to *TerminalOutput) SetDisplayConfig(config DisplayConfig) error {
	if config.Width <= 0 || config.Height <= 0 {
		return &DisplayError{
			Operation: "display config",
			Details:   "width and height must be positive",
		}
	}
	to.mutex.Lock()
	to.config = config
	to.mutex.Unlock()
	return nil
}

func (to *TerminalOutput) GetDisplayConfig() DisplayConfig {
	to.mutex.Lock()
	defer to.mutex.Unlock()
	return to.config
}

func (to *TerminalOutput) UpdateFrame(buffer []byte) error {
	to.mutex.Lock()
	defer to.mutex.Unlock()

	bw := to.config.BackingWidth()
	bh := to.config.BackingHeight()
	if len(buffer) != bw*bh*4 {
		return &DisplayError{
			Operation: "frame update",
			Details:   "frame size does not match display configuration",
		}
	}

	cols, rows := to.cellGrid(bw, bh)
	var sb strings.Builder
	if to.isTerminal {
		sb.WriteString("\x1b[H")
	}

	// Each text row covers two sampled pixel rows.
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			topX := col * bw / cols
			topY := (row * 2) * bh / (rows * 2)
			botY := (row*2 + 1) * bh / (rows * 2)

			ti := (topY*bw + topX) * 4
			bi := (botY*bw + topX) * 4
			fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
				buffer[ti], buffer[ti+1], buffer[ti+2],
				buffer[bi], buffer[bi+1], buffer[bi+2])
		}
		sb.WriteString("\x1b[0m\n")
	}

	if _, err := io.WriteString(to.writer, sb.String()); err != nil {
		return &DisplayError{Operation: "frame update", Details: "terminal write", Err: err}
	}
	to.frameCount++
	return nil
}

func (to *TerminalOutput) WaitForVSync() error {
	return nil
}

func (to *TerminalOutput) FrameCount() uint64 {
	to.mutex.Lock()
	defer to.mutex.Unlock()
	return to.frameCount
}

// cellGrid picks the character grid a frame is sampled into. On a real
// terminal the frame is fitted to the current window; otherwise one cell
// per pixel column and one per two pixel rows.
func (to *TerminalOutput) cellGrid(bw, bh int) (cols, rows int) {
	cols = bw
	rows = (bh + 1) / 2
	if !to.isTerminal {
		return cols, rows
	}
	tw, th, err := term.GetSize(to.fd)
	if err != nil || tw <= 0 || th <= 0 {
		return cols, rows
	}
	if cols > tw {
		cols = tw
	}
	// Keep one terminal row free for the shell prompt.
	if rows > th-1 && th > 1 {
		rows = th - 1
	}
	return cols, rows
}
