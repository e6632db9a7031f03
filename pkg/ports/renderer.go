package ports

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
)

// Renderer creates surfaces and converts images to and from encoded bytes.
type Renderer interface {
	// CreateSurface returns a surface of the given size filled with bg.
	CreateSurface(width, height int, bg color.Color) Surface

	// DecodeImage decodes data. FormatAuto sniffs the format.
	DecodeImage(data []byte, format ImageFormat) (image.Image, error)

	// EncodeImage encodes img. quality only applies to JPEG.
	EncodeImage(img image.Image, format ImageFormat, quality int) ([]byte, error)

	// ResizeImage returns img scaled to exactly width x height.
	ResizeImage(img image.Image, width, height int) image.Image
}

// Surface owns the pixel buffer that is composed and finally exported.
type Surface interface {
	// Resize replaces the buffer with a transparent one of the given size.
	Resize(width, height int)

	// Size returns the current buffer dimensions.
	Size() (width, height int)

	// Fill paints the whole buffer with c.
	Fill(c color.Color)

	// DrawImageScaled stretches img over the rectangle (x, y, width, height).
	DrawImageScaled(img image.Image, x, y, width, height int)

	// DrawString draws text with face, centered horizontally and vertically
	// on (x, y).
	DrawString(text string, x, y float64, face font.Face, c color.Color)

	// ToImage returns the buffer as a readable image.
	ToImage() image.Image
}

// ImageFormat selects an encoding.
type ImageFormat int

const (
	FormatAuto ImageFormat = iota
	FormatJPEG
	FormatPNG
)
