// Package summarizer provides summary generation for render results.
package summarizer

import (
	"time"

	"github.com/user/memecanvas/pkg/meme"
)

// Summary contains all data collected during a render.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Background
	Template TemplateInfo

	// Captions
	Captions CaptionInfo

	// Output image
	Output OutputInfo

	// Timing
	Timing TimingInfo
}

// TemplateInfo describes the background image.
type TemplateInfo struct {
	ID          string
	Placeholder bool
	Natural     meme.Size
	Display     meme.Size
}

// CaptionInfo contains the captions as rendered.
type CaptionInfo struct {
	Mode       meme.Mode
	FontSize   float64
	TopText    string
	BottomText string
	Items      []meme.FreeText
}

// OutputInfo describes the written image.
type OutputInfo struct {
	Path   string
	Width  int
	Height int
}

// TimingInfo contains timing measurements.
type TimingInfo struct {
	LoadMs  int
	TotalMs int
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithTemplate sets background information.
func (b *Builder) WithTemplate(info TemplateInfo) *Builder {
	b.summary.Template = info
	return b
}

// WithCaptions sets caption information.
func (b *Builder) WithCaptions(info CaptionInfo) *Builder {
	b.summary.Captions = info
	return b
}

// WithOutput sets output image information.
func (b *Builder) WithOutput(path string, width, height int) *Builder {
	b.summary.Output = OutputInfo{
		Path:   path,
		Width:  width,
		Height: height,
	}
	return b
}

// WithTiming sets timing information.
func (b *Builder) WithTiming(loadMs, totalMs int) *Builder {
	b.summary.Timing = TimingInfo{
		LoadMs:  loadMs,
		TotalMs: totalMs,
	}
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
