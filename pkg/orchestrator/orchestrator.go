// Package orchestrator coordinates the stages of a non-interactive render.
package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/user/memecanvas/pkg/meme"
	"github.com/user/memecanvas/pkg/pipeline"
	"github.com/user/memecanvas/pkg/ports"
)

// Config contains everything one render needs.
type Config struct {
	// Input
	Template string

	// Captions
	Mode       meme.Mode
	TopText    string
	BottomText string
	FontSize   float64 // 0 keeps the configured default
	Texts      []pipeline.Placement
}

// Orchestrator runs load, compose and export in order.
type Orchestrator struct {
	loadStage    pipeline.Stage[pipeline.LoadInput, pipeline.LoadResult]
	composeStage pipeline.Stage[pipeline.ComposeInput, pipeline.ComposeResult]
	exportStage  pipeline.Stage[pipeline.ExportInput, pipeline.ExportResult]
	logger       ports.Logger
	now          func() time.Time
}

// New creates a new Orchestrator.
func New(
	loadStage pipeline.Stage[pipeline.LoadInput, pipeline.LoadResult],
	composeStage pipeline.Stage[pipeline.ComposeInput, pipeline.ComposeResult],
	exportStage pipeline.Stage[pipeline.ExportInput, pipeline.ExportResult],
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		loadStage:    loadStage,
		composeStage: composeStage,
		exportStage:  exportStage,
		logger:       logger,
		now:          time.Now,
	}
}

// Run executes the complete pipeline.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	start := o.now()

	// 1. Load template
	o.logger.Info("Loading template %s", config.Template)
	loaded, err := o.loadStage.Execute(ctx, pipeline.LoadInput{Template: config.Template})
	if err != nil {
		o.logger.Error("Failed to load template %s: %s", config.Template, err)
		return RunResult{}, fmt.Errorf("load stage: %w", err)
	}
	if loaded.Placeholder {
		o.logger.Warn("Failed to load image. Using placeholder instead.")
	}

	// 2. Apply captions
	composed, err := o.composeStage.Execute(ctx, pipeline.ComposeInput{
		Mode:       config.Mode,
		TopText:    config.TopText,
		BottomText: config.BottomText,
		FontSize:   config.FontSize,
		Texts:      config.Texts,
	})
	if err != nil {
		o.logger.Error("Failed to compose captions: %s", err)
		return RunResult{}, fmt.Errorf("compose stage: %w", err)
	}
	if composed.Skipped > 0 {
		o.logger.Warn("Skipped %d blank captions", composed.Skipped)
	}

	// 3. Export
	exported, err := o.exportStage.Execute(ctx, pipeline.ExportInput{})
	if err != nil {
		o.logger.Error("Failed to write output: %s", err)
		return RunResult{}, fmt.Errorf("export stage: %w", err)
	}

	result := RunResult{
		Template:     loaded.Template,
		Placeholder:  loaded.Placeholder,
		Natural:      loaded.Natural,
		Display:      loaded.Display,
		LoadMs:       loaded.DurationMs,
		Mode:         composed.Mode,
		FontSize:     composed.FontSize,
		TopText:      config.TopText,
		BottomText:   config.BottomText,
		Items:        composed.Items,
		OutputPath:   exported.Path,
		OutputWidth:  exported.Width,
		OutputHeight: exported.Height,
		TotalMs:      int(o.now().Sub(start).Milliseconds()),
	}
	return result, nil
}

// RunResult contains the results of a render for summary generation.
type RunResult struct {
	// Background
	Template    string
	Placeholder bool
	Natural     meme.Size
	Display     meme.Size
	LoadMs      int

	// Captions
	Mode       meme.Mode
	FontSize   float64
	TopText    string
	BottomText string
	Items      []meme.FreeText

	// Output
	OutputPath   string
	OutputWidth  int
	OutputHeight int
	TotalMs      int
}
