// Package export implements the image export stage.
package export

import (
	"context"

	"github.com/user/memecanvas/pkg/editor"
	"github.com/user/memecanvas/pkg/pipeline"
	"github.com/user/memecanvas/pkg/ports"
)

// Stage writes the composed meme through an exporter.
type Stage struct {
	editor   *editor.Editor
	exporter ports.Exporter
}

// NewStage creates a new export stage.
func NewStage(ed *editor.Editor, exporter ports.Exporter) *Stage {
	return &Stage{
		editor:   ed,
		exporter: exporter,
	}
}

// Execute exports the current surface.
func (s *Stage) Execute(ctx context.Context, input pipeline.ExportInput) (pipeline.ExportResult, error) {
	result := pipeline.ExportResult{}

	path, err := s.editor.Export(ctx, s.exporter)
	if err != nil {
		return result, err
	}

	b := s.editor.Image().Bounds()
	result.Path = path
	result.Width = b.Dx()
	result.Height = b.Dy()
	return result, nil
}
