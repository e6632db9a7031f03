// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/memecanvas/pkg/ports"
)

// Sink saves debug output to files under a base directory.
type Sink struct {
	baseDir  string
	fs       ports.FileSystem
	renderer ports.Renderer
}

// New creates a new Sink.
func New(baseDir string, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	return &Sink{
		baseDir:  baseDir,
		fs:       fs,
		renderer: renderer,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveRepaint saves the surface after a repaint as repaints/repaint-NNNN.png.
func (s *Sink) SaveRepaint(seq int, img image.Image) error {
	data, err := s.renderer.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode repaint %d: %w", seq, err)
	}
	path := filepath.Join(s.baseDir, "repaints", fmt.Sprintf("repaint-%04d.png", seq))
	return s.fs.WriteFile(path, data)
}

// SaveState overwrites state.yaml with the latest editor snapshot.
func (s *Sink) SaveState(data []byte) error {
	return s.fs.WriteFile(filepath.Join(s.baseDir, "state.yaml"), data)
}

var _ ports.DebugSink = (*Sink)(nil)
