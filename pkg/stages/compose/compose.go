// Package compose implements the caption composition stage.
package compose

import (
	"context"
	"fmt"

	"github.com/user/memecanvas/pkg/editor"
	"github.com/user/memecanvas/pkg/meme"
	"github.com/user/memecanvas/pkg/pipeline"
	"github.com/user/memecanvas/pkg/ports"
)

// Stage applies captions to the editor the way a user would: typing into
// the text fields and dragging Free mode captions into place.
type Stage struct {
	editor *editor.Editor
	logger ports.Logger
}

// NewStage creates a new compose stage.
func NewStage(ed *editor.Editor, logger ports.Logger) *Stage {
	return &Stage{
		editor: ed,
		logger: logger.WithComponent("compose"),
	}
}

// Execute applies input and leaves the editor in input.Mode. Captions of
// both modes are applied, only the ones of the active mode are drawn.
func (s *Stage) Execute(ctx context.Context, input pipeline.ComposeInput) (pipeline.ComposeResult, error) {
	result := pipeline.ComposeResult{}
	ed := s.editor

	if input.FontSize > 0 {
		ed.SetFontSize(input.FontSize)
	}
	ed.SetTopText(input.TopText)
	ed.SetBottomText(input.BottomText)

	if len(input.Texts) > 0 {
		ed.SetMode(meme.ModeFree)
	}
	for _, p := range input.Texts {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		id, ok := ed.AddFreeText(p.Text)
		if !ok {
			result.Skipped++
			continue
		}
		if p.Positioned {
			if err := s.place(id, p.X, p.Y); err != nil {
				return result, err
			}
		}
	}

	ed.SetMode(input.Mode)

	result.Mode = ed.Mode()
	result.FontSize = ed.FontSize()
	result.Items = ed.FreeTexts()
	return result, nil
}

// place drags caption id from where it was added to (x, y).
func (s *Stage) place(id int, x, y float64) error {
	snap := s.editor.Snapshot()
	var item *meme.FreeText
	for i := range snap.Items {
		if snap.Items[i].ID == id {
			item = &snap.Items[i]
			break
		}
	}
	if item == nil {
		return fmt.Errorf("place text %d: not found", id)
	}

	ptr := s.editor.Pointer()
	ptr.SetDisplaySize(snap.Display.Width, snap.Display.Height)
	ptr.Down(item.X, item.Y)
	if got, ok := ptr.Dragging(); !ok || got != id {
		ptr.Up()
		return fmt.Errorf("place text %d: caption could not be grabbed", id)
	}
	ptr.Move(x, y)
	ptr.Up()

	s.logger.Debug("Placed text %d at (%.0f, %.0f)", id, x, y)
	return nil
}
