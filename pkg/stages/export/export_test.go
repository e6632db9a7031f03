package export

import (
	"context"
	"errors"
	"image/color"
	"testing"

	"github.com/user/memecanvas/pkg/adapters/logger"
	"github.com/user/memecanvas/pkg/assets"
	"github.com/user/memecanvas/pkg/editor"
	"github.com/user/memecanvas/pkg/mocks"
	"github.com/user/memecanvas/pkg/pipeline"
)

func newEditor(loader *mocks.ImageLoader) *editor.Editor {
	return editor.New(assets.Default(), loader, &mocks.Placeholder{}, mocks.NewSurface(0, 0),
		&mocks.Renderer{}, mocks.NewDebugSink(false), logger.NewNoop(), editor.DefaultOptions())
}

func TestStage_Execute(t *testing.T) {
	loader := mocks.NewImageLoader()
	loader.Images["templates/distracted.jpeg"] = mocks.SolidImage(1200, 800, color.White)
	ed := newEditor(loader)
	done, _ := ed.SelectTemplate(context.Background(), "distracted")
	<-done

	exporter := &mocks.Exporter{}
	stage := NewStage(ed, exporter)

	result, err := stage.Execute(context.Background(), pipeline.ExportInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(exporter.Names) != 1 {
		t.Fatalf("expected one export, got %d", len(exporter.Names))
	}
	if result.Path != "/exports/"+exporter.Names[0] {
		t.Errorf("unexpected path %s", result.Path)
	}
	if result.Width != 600 || result.Height != 400 {
		t.Errorf("expected 600x400, got %dx%d", result.Width, result.Height)
	}
}

func TestStage_Execute_NoImage(t *testing.T) {
	exporter := &mocks.Exporter{}
	stage := NewStage(newEditor(mocks.NewImageLoader()), exporter)

	_, err := stage.Execute(context.Background(), pipeline.ExportInput{})
	if !errors.Is(err, editor.ErrNoImage) {
		t.Errorf("expected ErrNoImage, got %v", err)
	}
	if len(exporter.Names) != 0 {
		t.Error("expected nothing exported")
	}
}
