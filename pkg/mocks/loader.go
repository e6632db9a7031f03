package mocks

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/user/memecanvas/pkg/ports"
)

// ImageLoader is a mock implementation of ports.ImageLoader.
// Without LoadFunc it serves Images by location and fails for anything else.
type ImageLoader struct {
	mu sync.Mutex

	LoadFunc func(ctx context.Context, location string) (image.Image, error)
	Images   map[string]image.Image

	// Track calls for assertions
	LoadCalls []string
}

// NewImageLoader creates a mock loader with no images.
func NewImageLoader() *ImageLoader {
	return &ImageLoader{Images: make(map[string]image.Image)}
}

func (m *ImageLoader) Load(ctx context.Context, location string) (image.Image, error) {
	m.mu.Lock()
	m.LoadCalls = append(m.LoadCalls, location)
	fn := m.LoadFunc
	img, ok := m.Images[location]
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, location)
	}
	if !ok {
		return nil, fmt.Errorf("image not found: %s", location)
	}
	return img, nil
}

var _ ports.ImageLoader = (*ImageLoader)(nil)

// Placeholder is a mock implementation of ports.Placeholder that returns a
// flat gray image and records the names it was asked for.
type Placeholder struct {
	mu    sync.Mutex
	Names []string
}

func (m *Placeholder) Generate(name string, width, height int) image.Image {
	m.mu.Lock()
	m.Names = append(m.Names, name)
	m.mu.Unlock()
	return SolidImage(width, height, color.Gray{Y: 0x40})
}

var _ ports.Placeholder = (*Placeholder)(nil)

// SolidImage returns an opaque image filled with c.
func SolidImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}
