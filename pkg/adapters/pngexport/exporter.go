// Package pngexport writes composed memes as PNG files.
package pngexport

import (
	"context"
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/memecanvas/pkg/ports"
)

// Exporter implements ports.Exporter by encoding PNG and writing it into a
// directory.
type Exporter struct {
	dir      string
	fs       ports.FileSystem
	renderer ports.Renderer
	logger   ports.Logger
}

// New creates an Exporter that writes into dir.
func New(dir string, fs ports.FileSystem, renderer ports.Renderer, logger ports.Logger) *Exporter {
	return &Exporter{
		dir:      dir,
		fs:       fs,
		renderer: renderer,
		logger:   logger.WithComponent("export"),
	}
}

// Export encodes img and writes it as dir/name. The image is fully encoded
// before anything is written.
func (e *Exporter) Export(ctx context.Context, name string, img image.Image) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := e.renderer.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", name, err)
	}

	path := filepath.Join(e.dir, filepath.Base(name))
	if err := e.fs.WriteFile(path, data); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	e.logger.Debug("Exported %s (%d bytes)", path, len(data))
	return path, nil
}

var _ ports.Exporter = (*Exporter)(nil)
