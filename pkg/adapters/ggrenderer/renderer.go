// Package ggrenderer provides the surface and image codecs on top of the gg library.
package ggrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"

	// Extra formats accepted for template images.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/user/memecanvas/pkg/ports"
)

// Renderer implements ports.Renderer using the gg library.
type Renderer struct{}

// New creates a new Renderer.
func New() *Renderer {
	return &Renderer{}
}

// CreateSurface creates a surface filled with bg.
func (r *Renderer) CreateSurface(width, height int, bg color.Color) ports.Surface {
	s := &Surface{}
	s.Resize(width, height)
	s.Fill(bg)
	return s
}

// DecodeImage decodes image data into an image.Image.
func (r *Renderer) DecodeImage(data []byte, format ports.ImageFormat) (image.Image, error) {
	reader := bytes.NewReader(data)

	switch format {
	case ports.FormatJPEG:
		return jpeg.Decode(reader)
	case ports.FormatPNG:
		return png.Decode(reader)
	default:
		img, _, err := image.Decode(reader)
		return img, err
	}
}

// EncodeImage encodes an image to the specified format.
func (r *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case ports.FormatJPEG:
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("encode JPEG: %w", err)
		}
	case ports.FormatPNG:
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode PNG: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %d", format)
	}

	return buf.Bytes(), nil
}

// ResizeImage resizes an image to the specified dimensions.
func (r *Renderer) ResizeImage(img image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

var _ ports.Renderer = (*Renderer)(nil)

// Surface implements ports.Surface with a gg.Context as the pixel buffer.
type Surface struct {
	dc *gg.Context
}

// NewSurface returns a transparent surface of the given size.
func NewSurface(width, height int) *Surface {
	s := &Surface{}
	s.Resize(width, height)
	return s
}

// Resize replaces the buffer. Sizes below one pixel are raised to one.
func (s *Surface) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	s.dc = gg.NewContext(width, height)
}

// Size returns the buffer dimensions.
func (s *Surface) Size() (int, int) {
	return s.dc.Width(), s.dc.Height()
}

// Fill paints the whole buffer.
func (s *Surface) Fill(c color.Color) {
	s.dc.SetColor(c)
	s.dc.Clear()
}

// DrawImageScaled stretches img over the given rectangle. An image that
// already has the target size is copied without resampling.
func (s *Surface) DrawImageScaled(img image.Image, x, y, width, height int) {
	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		s.dc.DrawImage(img, x, y)
		return
	}
	dst, ok := s.dc.Image().(*image.RGBA)
	if !ok {
		return
	}
	rect := image.Rect(x, y, x+width, y+height)
	draw.CatmullRom.Scale(dst, rect, img, b, draw.Over, nil)
}

// DrawString draws text centered on (x, y).
func (s *Surface) DrawString(text string, x, y float64, face font.Face, c color.Color) {
	s.dc.SetFontFace(face)
	s.dc.SetColor(c)
	s.dc.DrawStringAnchored(text, x, y, 0.5, 0.5)
}

// ToImage returns the live buffer.
func (s *Surface) ToImage() image.Image {
	return s.dc.Image()
}

var _ ports.Surface = (*Surface)(nil)
