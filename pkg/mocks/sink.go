package mocks

import (
	"context"
	"image"
	"sync"

	"github.com/user/memecanvas/pkg/meme"
	"github.com/user/memecanvas/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	Repaints map[int]image.Image
	States   [][]byte
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled:  enabled,
		Repaints: make(map[int]image.Image),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveRepaint(seq int, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Repaints[seq] = img
	return nil
}

func (m *DebugSink) SaveState(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.States = append(m.States, data)
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)

// Exporter is a mock implementation of ports.Exporter.
type Exporter struct {
	ExportFunc func(ctx context.Context, name string, img image.Image) (string, error)

	// Track calls for assertions
	Names  []string
	Images []image.Image
}

func (m *Exporter) Export(ctx context.Context, name string, img image.Image) (string, error) {
	m.Names = append(m.Names, name)
	m.Images = append(m.Images, img)
	if m.ExportFunc != nil {
		return m.ExportFunc(ctx, name, img)
	}
	return "/exports/" + name, nil
}

var _ ports.Exporter = (*Exporter)(nil)

// Notice records one Listener.Notice call.
type Notice struct {
	Message  string
	Blocking bool
}

// Listener is a mock implementation of ports.Listener.
type Listener struct {
	mu sync.Mutex

	Lists   [][]meme.FreeText
	Modes   []meme.Mode
	Cursors []meme.Cursor
	Notices []Notice
}

func (m *Listener) ListChanged(items []meme.FreeText) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Lists = append(m.Lists, items)
}

func (m *Listener) ModeChanged(mode meme.Mode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Modes = append(m.Modes, mode)
}

func (m *Listener) CursorChanged(cursor meme.Cursor) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Cursors = append(m.Cursors, cursor)
}

func (m *Listener) Notice(message string, blocking bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Notices = append(m.Notices, Notice{Message: message, Blocking: blocking})
}

// LastCursor returns the most recent cursor, or CursorDefault if none.
func (m *Listener) LastCursor() meme.Cursor {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Cursors) == 0 {
		return meme.CursorDefault
	}
	return m.Cursors[len(m.Cursors)-1]
}

// NoticeCount returns the number of notices received.
func (m *Listener) NoticeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Notices)
}

var _ ports.Listener = (*Listener)(nil)
