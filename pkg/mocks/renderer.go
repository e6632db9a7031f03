package mocks

import (
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/font"

	"github.com/user/memecanvas/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
type Renderer struct {
	CreateSurfaceFunc func(width, height int, bg color.Color) ports.Surface
	DecodeImageFunc   func(data []byte, format ports.ImageFormat) (image.Image, error)
	EncodeImageFunc   func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)
	ResizeImageFunc   func(img image.Image, width, height int) image.Image
}

func (m *Renderer) CreateSurface(width, height int, bg color.Color) ports.Surface {
	if m.CreateSurfaceFunc != nil {
		return m.CreateSurfaceFunc(width, height, bg)
	}
	return NewSurface(width, height)
}

func (m *Renderer) DecodeImage(data []byte, format ports.ImageFormat) (image.Image, error) {
	if m.DecodeImageFunc != nil {
		return m.DecodeImageFunc(data, format)
	}
	return image.NewRGBA(image.Rect(0, 0, 100, 100)), nil
}

func (m *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format, quality)
	}
	return []byte{0x89, 'P', 'N', 'G'}, nil
}

func (m *Renderer) ResizeImage(img image.Image, width, height int) image.Image {
	if m.ResizeImageFunc != nil {
		return m.ResizeImageFunc(img, width, height)
	}
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

var _ ports.Renderer = (*Renderer)(nil)

// DrawCall records one Surface.DrawString call.
type DrawCall struct {
	Text  string
	X, Y  float64
	Color color.Color
}

// Surface is a mock implementation of ports.Surface that records draw calls.
// Fill and Resize reset the recorded calls, mirroring how they wipe pixels.
type Surface struct {
	mu     sync.Mutex
	width  int
	height int

	Fills   []color.Color
	Blits   []image.Rectangle
	Strings []DrawCall
}

// NewSurface creates a mock surface of the given size.
func NewSurface(width, height int) *Surface {
	return &Surface{width: width, height: height}
}

func (m *Surface) Resize(width, height int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.width, m.height = width, height
	m.Fills, m.Blits, m.Strings = nil, nil, nil
}

func (m *Surface) Size() (int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.width, m.height
}

func (m *Surface) Fill(c color.Color) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Fills = append(m.Fills, c)
	m.Blits, m.Strings = nil, nil
}

func (m *Surface) DrawImageScaled(img image.Image, x, y, width, height int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Blits = append(m.Blits, image.Rect(x, y, x+width, y+height))
}

func (m *Surface) DrawString(text string, x, y float64, face font.Face, c color.Color) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Strings = append(m.Strings, DrawCall{Text: text, X: x, Y: y, Color: c})
}

func (m *Surface) ToImage() image.Image {
	m.mu.Lock()
	defer m.mu.Unlock()
	return image.NewRGBA(image.Rect(0, 0, m.width, m.height))
}

// TextsIn returns the texts drawn in color c, in draw order.
func (m *Surface) TextsIn(c color.Color) []DrawCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	var calls []DrawCall
	for _, call := range m.Strings {
		if sameColor(call.Color, c) {
			calls = append(calls, call)
		}
	}
	return calls
}

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

var _ ports.Surface = (*Surface)(nil)
