// Package caption renders text in the classic meme style: uppercase, bold,
// white fill over a black outline proportional to the font size.
package caption

import (
	"fmt"
	"image/color"
	"math"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/user/memecanvas/pkg/ports"
)

var (
	fillColor    = color.White
	outlineColor = color.Black
)

// OutlineRatio is the outline width as a fraction of the font size.
const OutlineRatio = 1.0 / 16

// Fonts holds the parsed font family and caches one face per size.
type Fonts struct {
	bold    *truetype.Font
	regular *truetype.Font

	mu    sync.Mutex
	faces map[faceKey]font.Face
}

type faceKey struct {
	size float64
	bold bool
}

// DefaultFonts returns the Go font family.
func DefaultFonts() *Fonts {
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		panic(fmt.Sprintf("parse gobold: %v", err))
	}
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		panic(fmt.Sprintf("parse goregular: %v", err))
	}
	return &Fonts{bold: bold, regular: regular, faces: make(map[faceKey]font.Face)}
}

// ParseFonts builds a family from a single TrueType file, used for both
// bold and regular text.
func ParseFonts(ttf []byte) (*Fonts, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Fonts{bold: f, regular: f, faces: make(map[faceKey]font.Face)}, nil
}

// Face returns the face for size pixels. Sizes are rounded to the nearest
// half pixel so the cache holds a bounded set of faces.
func (f *Fonts) Face(size float64, bold bool) font.Face {
	size = math.Round(size*2) / 2
	key := faceKey{size: size, bold: bold}

	f.mu.Lock()
	defer f.mu.Unlock()

	if face, ok := f.faces[key]; ok {
		return face
	}
	ttf := f.regular
	if bold {
		ttf = f.bold
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	f.faces[key] = face
	return face
}

// Renderer draws and measures styled captions.
type Renderer struct {
	fonts *Fonts
}

// NewRenderer creates a Renderer using fonts. A nil fonts selects DefaultFonts.
func NewRenderer(fonts *Fonts) *Renderer {
	if fonts == nil {
		fonts = DefaultFonts()
	}
	return &Renderer{fonts: fonts}
}

// Fonts returns the family used by the renderer.
func (r *Renderer) Fonts() *Fonts {
	return r.fonts
}

// Render draws text centered on (x, y) at size pixels. Blank text draws nothing.
func (r *Renderer) Render(s ports.Surface, text string, x, y, size float64) {
	if strings.TrimSpace(text) == "" || size <= 0 {
		return
	}
	text = strings.ToUpper(text)
	face := r.fonts.Face(size, true)

	// A stroke of width w centered on the glyph edge reaches w/2 outside
	// it. Stamping the fill shape at every offset inside that radius gives
	// the same silhouette with round joins.
	for _, off := range outlineOffsets(size * OutlineRatio / 2) {
		s.DrawString(text, x+off[0], y+off[1], face, outlineColor)
	}
	s.DrawString(text, x, y, face, fillColor)
}

// Measure returns the box a caption occupies. The height is size itself,
// not the font's real extent.
func (r *Renderer) Measure(text string, size float64) (width, height float64) {
	if strings.TrimSpace(text) == "" || size <= 0 {
		return 0, size
	}
	face := r.fonts.Face(size, true)
	adv := font.MeasureString(face, strings.ToUpper(text))
	return float64(adv) / 64, size
}

// DrawPlain draws text without outline or case change, centered on (x, y).
func (r *Renderer) DrawPlain(s ports.Surface, text string, x, y, size float64, bold bool, c color.Color) {
	if text == "" {
		return
	}
	s.DrawString(text, x, y, r.fonts.Face(size, bold), c)
}

// outlineOffsets lists the integer offsets inside a disc of the given
// radius, excluding the center. Thin outlines still cover the full
// 8-neighborhood.
func outlineOffsets(radius float64) [][2]float64 {
	limit := math.Max(radius, math.Sqrt2)
	n := int(math.Ceil(limit))
	var offsets [][2]float64
	for dy := -n; dy <= n; dy++ {
		for dx := -n; dx <= n; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if math.Hypot(float64(dx), float64(dy)) > limit+1e-9 {
				continue
			}
			offsets = append(offsets, [2]float64{float64(dx), float64(dy)})
		}
	}
	return offsets
}
