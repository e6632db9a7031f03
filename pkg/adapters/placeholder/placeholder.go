// Package placeholder generates stand-in template images for assets that
// fail to decode.
package placeholder

import (
	"image"
	"image/color"
	"strings"

	"github.com/fogleman/gg"

	"github.com/user/memecanvas/pkg/caption"
	"github.com/user/memecanvas/pkg/ports"
)

// Title is the heading drawn on every placeholder.
const Title = "Meme Template"

// Theme holds the gradient and label colors.
type Theme struct {
	From color.Color
	To   color.Color
	Text color.Color
}

// DefaultTheme returns a slate gradient with light text.
func DefaultTheme() Theme {
	return Theme{
		From: color.RGBA{R: 0x4a, G: 0x55, B: 0x68, A: 0xff},
		To:   color.RGBA{R: 0x2d, G: 0x37, B: 0x48, A: 0xff},
		Text: color.RGBA{R: 0xcb, G: 0xd5, B: 0xe0, A: 0xff},
	}
}

// Generator implements ports.Placeholder with a diagonal gradient labeled
// with the template name.
type Generator struct {
	theme Theme
	fonts *caption.Fonts
}

// New creates a Generator. A nil fonts selects caption.DefaultFonts.
func New(theme Theme, fonts *caption.Fonts) *Generator {
	if fonts == nil {
		fonts = caption.DefaultFonts()
	}
	return &Generator{theme: theme, fonts: fonts}
}

// Generate draws the placeholder for name at width x height.
func (g *Generator) Generate(name string, width, height int) image.Image {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	w, h := float64(width), float64(height)

	dc := gg.NewContext(width, height)
	grad := gg.NewLinearGradient(0, 0, w, h)
	grad.AddColorStop(0, g.theme.From)
	grad.AddColorStop(1, g.theme.To)
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()

	dc.SetColor(g.theme.Text)
	dc.SetFontFace(g.fonts.Face(32, true))
	dc.DrawStringAnchored(Title, w/2, h/2-20, 0.5, 0)
	dc.SetFontFace(g.fonts.Face(20, false))
	dc.DrawStringAnchored(strings.ToUpper(name), w/2, h/2+20, 0.5, 0)

	return dc.Image()
}

var _ ports.Placeholder = (*Generator)(nil)
