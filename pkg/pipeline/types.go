package pipeline

import (
	"github.com/user/memecanvas/pkg/meme"
)

// =============================================================================
// Load Stage Types
// =============================================================================

// LoadInput names the template to put behind the captions.
type LoadInput struct {
	Template string
}

// LoadResult describes the loaded background.
type LoadResult struct {
	Template    string
	Natural     meme.Size // Size of the decoded image
	Display     meme.Size // Size after fitting into the canvas bounds
	Placeholder bool      // True if the image failed to decode
	DurationMs  int
}

// =============================================================================
// Compose Stage Types
// =============================================================================

// Placement is a Free mode caption requested on the command line.
type Placement struct {
	Text string
	X, Y float64

	// Positioned is false when the caption stays where it is added, at the
	// center of the canvas.
	Positioned bool
}

// ComposeInput contains the captions to apply.
type ComposeInput struct {
	Mode       meme.Mode
	TopText    string
	BottomText string
	FontSize   float64 // 0 keeps the configured default
	Texts      []Placement
}

// ComposeResult contains the caption state after composition.
type ComposeResult struct {
	Mode     meme.Mode
	FontSize float64
	Items    []meme.FreeText
	Skipped  int // Blank captions that were ignored
}

// =============================================================================
// Export Stage Types
// =============================================================================

// ExportInput is empty: the stage exports whatever the editor shows.
type ExportInput struct{}

// ExportResult contains the written file.
type ExportResult struct {
	Path   string
	Width  int
	Height int
}
