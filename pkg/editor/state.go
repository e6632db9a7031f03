package editor

import (
	"image"

	"github.com/user/memecanvas/pkg/meme"
)

// State is everything a repaint depends on. It is owned by the Editor and
// only touched under its lock.
type State struct {
	Template   string
	Background image.Image
	Natural    meme.Size
	Display    meme.Size

	// Placeholder is set when Background stands in for an image that
	// failed to decode.
	Placeholder bool

	// bgVersion changes whenever Background is replaced, so the engine
	// can tell when its scaled copy is stale.
	bgVersion int

	Mode       meme.Mode
	TopText    string
	BottomText string
	FontSize   float64

	Items  []meme.FreeText
	nextID int
}

// Snapshot is a copy of the editor state safe to hand to other goroutines.
type Snapshot struct {
	Template    string          `yaml:"template,omitempty"`
	HasImage    bool            `yaml:"has_image"`
	Placeholder bool            `yaml:"placeholder,omitempty"`
	Natural     meme.Size       `yaml:"natural"`
	Display     meme.Size       `yaml:"display"`
	Mode        meme.Mode       `yaml:"mode"`
	TopText     string          `yaml:"top_text"`
	BottomText  string          `yaml:"bottom_text"`
	FontSize    float64         `yaml:"font_size"`
	Items       []meme.FreeText `yaml:"items"`
}

func (s *State) snapshot() Snapshot {
	return Snapshot{
		Template:    s.Template,
		HasImage:    s.Background != nil,
		Placeholder: s.Placeholder,
		Natural:     s.Natural,
		Display:     s.Display,
		Mode:        s.Mode,
		TopText:     s.TopText,
		BottomText:  s.BottomText,
		FontSize:    s.FontSize,
		Items:       s.items(),
	}
}

func (s *State) items() []meme.FreeText {
	items := make([]meme.FreeText, len(s.Items))
	copy(items, s.Items)
	return items
}

func (s *State) indexOf(id int) int {
	for i, item := range s.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (s *State) setBackground(template string, img image.Image, bounds meme.Size, placeholder bool) {
	b := img.Bounds()
	s.Template = template
	s.Background = img
	s.Placeholder = placeholder
	s.Natural = meme.Size{Width: b.Dx(), Height: b.Dy()}
	s.Display = meme.FitWithin(s.Natural, bounds)
	s.bgVersion++
}
