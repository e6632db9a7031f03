// Package nullsink provides a no-op debug sink implementation.
package nullsink

import (
	"image"

	"github.com/user/memecanvas/pkg/ports"
)

// Sink discards all debug output.
type Sink struct{}

// New creates a new Sink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false so callers skip building debug output.
func (s *Sink) Enabled() bool {
	return false
}

// SaveRepaint does nothing.
func (s *Sink) SaveRepaint(seq int, img image.Image) error {
	return nil
}

// SaveState does nothing.
func (s *Sink) SaveState(data []byte) error {
	return nil
}

var _ ports.DebugSink = (*Sink)(nil)
