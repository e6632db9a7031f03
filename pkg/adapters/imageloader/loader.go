// Package imageloader decodes template images from a filesystem.
package imageloader

import (
	"context"
	"fmt"
	"image"

	"github.com/user/memecanvas/pkg/ports"
)

// Loader implements ports.ImageLoader by reading through a ports.FileSystem
// and decoding with a ports.Renderer.
type Loader struct {
	fs       ports.FileSystem
	renderer ports.Renderer
	logger   ports.Logger
}

// New creates a Loader.
func New(fs ports.FileSystem, renderer ports.Renderer, logger ports.Logger) *Loader {
	return &Loader{
		fs:       fs,
		renderer: renderer,
		logger:   logger.WithComponent("loader"),
	}
}

// Load reads and decodes the image at location. The format is sniffed from
// the content, so the file extension does not matter.
func (l *Loader) Load(ctx context.Context, location string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.logger.Debug("Decoding %s", location)

	data, err := l.fs.ReadFile(location)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", location, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, err := l.renderer.DecodeImage(data, ports.FormatAuto)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", location, err)
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("decode %s: empty image", location)
	}
	return img, nil
}

var _ ports.ImageLoader = (*Loader)(nil)
