// Package load implements the template loading stage.
package load

import (
	"context"
	"fmt"
	"time"

	"github.com/user/memecanvas/pkg/editor"
	"github.com/user/memecanvas/pkg/pipeline"
	"github.com/user/memecanvas/pkg/ports"
)

// Stage selects a template on the editor and waits for it to be shown.
type Stage struct {
	editor *editor.Editor
	logger ports.Logger
}

// NewStage creates a new load stage.
func NewStage(ed *editor.Editor, logger ports.Logger) *Stage {
	return &Stage{
		editor: ed,
		logger: logger.WithComponent("load"),
	}
}

// Execute loads input.Template. A template that fails to decode is replaced
// by a placeholder and is not an error.
func (s *Stage) Execute(ctx context.Context, input pipeline.LoadInput) (pipeline.LoadResult, error) {
	result := pipeline.LoadResult{}
	start := time.Now()

	done, err := s.editor.SelectTemplate(ctx, input.Template)
	if err != nil {
		return result, err
	}

	select {
	case <-done:
	case <-ctx.Done():
		return result, ctx.Err()
	}

	snap := s.editor.Snapshot()
	if !snap.HasImage || snap.Template != input.Template {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}
		return result, fmt.Errorf("template %s was not applied", input.Template)
	}

	result.Template = snap.Template
	result.Natural = snap.Natural
	result.Display = snap.Display
	result.Placeholder = snap.Placeholder
	result.DurationMs = int(time.Since(start).Milliseconds())
	return result, nil
}
