// display_backend_memory.go - Offscreen display backend for RasterForge

/*
(c) 2026 Zayn Otley
https://github.com/IntuitionAmiga/RasterForge
License: GPLv3 or later
*/

package main

import (
	"sync"
	"time"
)

// MemoryOutput is an offscreen display target. It keeps the last committed
// frame so callers can inspect or export what would have been shown.
// It is the default target for tests and for render-to-file runs.
type MemoryOutput struct {
	mutex      sync.RWMutex
	started    bool
	config     DisplayConfig
	lastFrame  []byte
	frameCount uint64
}

func NewMemoryOutput() *MemoryOutput {
	return &MemoryOutput{}
}

func (m *MemoryOutput) Start() error {
	m.mutex.Lock()
	m.started = true
	m.mutex.Unlock()
	return nil
}

func (m *MemoryOutput) Stop() error {
	m.mutex.Lock()
	m.started = false
	m.mutex.Unlock()
	return nil
}

func (m *MemoryOutput) Close() error {
	return m.Stop()
}

func (m *MemoryOutput) IsStarted() bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.started
}

func (m *MemoryOutput) SetDisplayConfig(config DisplayConfig) error {
	if config.Width <= 0 || config.Height <= 0 {
		return &DisplayError{
			Operation: "display config",
			Details:   "width and height must be positive",
		}
	}
	m.mutex.Lock()
	m.config = config
	m.lastFrame = nil
	m.mutex.Unlock()
	return nil
}

func (m *MemoryOutput) GetDisplayConfig() DisplayConfig {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.config
}

func (m *MemoryOutput) UpdateFrame(buffer []byte) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	want := m.config.BackingWidth() * m.config.BackingHeight() * 4
	if len(buffer) != want {
		return &DisplayError{
			Operation: "frame update",
			Details:   "frame size does not match display configuration",
		}
	}
	if m.lastFrame == nil {
		m.lastFrame = make([]byte, want)
	}
	copy(m.lastFrame, buffer)
	m.frameCount++
	return nil
}

func (m *MemoryOutput) WaitForVSync() error {
	return nil
}

func (m *MemoryOutput) FrameCount() uint64 {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.frameCount
}

// Snapshot returns a copy of the last committed frame, or nil if no frame
// has been committed since the configuration was set.
func (m *MemoryOutput) Snapshot() FrameSnapshot {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	snap := FrameSnapshot{
		Width:     m.config.BackingWidth(),
		Height:    m.config.BackingHeight(),
		Timestamp: time.Now(),
	}
	if m.lastFrame != nil {
		snap.Buffer = make([]byte, len(m.lastFrame))
		copy(snap.Buffer, m.lastFrame)
	}
	return snap
}
