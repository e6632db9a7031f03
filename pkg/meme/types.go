// Package meme defines the data types shared by the editor core and its hosts.
package meme

import "fmt"

// Mode selects how text is placed on the background.
type Mode int

const (
	// ModeClassic places two captions at fixed top and bottom positions.
	ModeClassic Mode = iota
	// ModeFree places any number of draggable captions.
	ModeFree
)

// String returns the lowercase mode name.
func (m Mode) String() string {
	switch m {
	case ModeClassic:
		return "classic"
	case ModeFree:
		return "free"
	default:
		return "unknown"
	}
}

// ParseMode parses a mode name.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "classic", "":
		return ModeClassic, nil
	case "free":
		return ModeFree, nil
	default:
		return ModeClassic, fmt.Errorf("unknown mode %q", s)
	}
}

// MarshalYAML encodes the mode by name.
func (m Mode) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

// FreeText is a caption placed at an arbitrary position in Free mode.
// (X, Y) is the center of the caption in surface pixels.
type FreeText struct {
	ID   int     `yaml:"id"`
	Text string  `yaml:"text"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// Cursor is the pointer cue a host should show over the surface.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorCrosshair
	CursorGrabbing
)

// String returns the CSS name of the cursor.
func (c Cursor) String() string {
	switch c {
	case CursorCrosshair:
		return "crosshair"
	case CursorGrabbing:
		return "grabbing"
	default:
		return "default"
	}
}

// Size is a width and height in pixels.
type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// FitWithin scales natural to fit inside bounds, preserving the aspect
// ratio. Small images are scaled up. Fractional pixels are dropped and each
// side is at least one pixel.
func FitWithin(natural, bounds Size) Size {
	if natural.Width <= 0 || natural.Height <= 0 {
		return bounds
	}
	var fit Size
	if bounds.Width*natural.Height <= bounds.Height*natural.Width {
		fit = Size{Width: bounds.Width, Height: natural.Height * bounds.Width / natural.Width}
	} else {
		fit = Size{Width: natural.Width * bounds.Height / natural.Height, Height: bounds.Height}
	}
	if fit.Width < 1 {
		fit.Width = 1
	}
	if fit.Height < 1 {
		fit.Height = 1
	}
	return fit
}
