package ports

import (
	"context"
	"image"
)

// Exporter persists a composed image under name and returns where it went.
type Exporter interface {
	Export(ctx context.Context, name string, img image.Image) (string, error)
}

// DebugSink receives intermediate results for inspection.
type DebugSink interface {
	// Enabled reports whether anything is recorded. Callers skip
	// expensive work when it returns false.
	Enabled() bool

	// SaveRepaint records the surface after the seq-th repaint.
	SaveRepaint(seq int, img image.Image) error

	// SaveState records a serialized snapshot of the editor state.
	SaveState(data []byte) error
}
