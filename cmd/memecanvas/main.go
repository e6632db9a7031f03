// Package main provides the CLI entry point for memecanvas.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/memecanvas/pkg/config"
	"github.com/user/memecanvas/pkg/meme"
	"github.com/user/memecanvas/pkg/orchestrator"
	"github.com/user/memecanvas/pkg/pipeline"
	"github.com/user/memecanvas/pkg/stages/compose"
	"github.com/user/memecanvas/pkg/stages/export"
	"github.com/user/memecanvas/pkg/stages/load"
	"github.com/user/memecanvas/pkg/summarizer"
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Render    RenderCmd    `cmd:"" help:"Render a meme to a PNG file."`
	Edit      EditCmd      `cmd:"" help:"Edit a meme interactively in the terminal."`
	Templates TemplatesCmd `cmd:"" help:"List the available templates."`
	Version   VersionCmd   `cmd:"" help:"Show version information."`
}

// CommonFlags are shared by the commands that build an editor.
type CommonFlags struct {
	Config   string `short:"c" type:"path" help:"Path to a YAML config file."`
	OutDir   string `short:"o" type:"path" help:"Directory for exported images (overrides config)."`
	FontPath string `type:"path" help:"TrueType font for captions (overrides config)."`

	// Debug options
	Debug    bool   `short:"d" help:"Enable debug output."`
	DebugDir string `help:"Directory for debug output (overrides config)."`

	// Logging options
	LogLevel string `short:"l" help:"Log level (debug, info, warn, error; overrides config)."`
	Quiet    bool   `short:"Q" help:"Suppress all log output."`
}

// RenderCmd defines the render subcommand.
type RenderCmd struct {
	Template string `short:"T" required:"" help:"Template id (see the templates command)."`

	// Captions
	Mode     string   `short:"m" default:"classic" enum:"classic,free" help:"Placement mode (classic or free)."`
	Top      string   `short:"t" help:"Top text (classic mode)."`
	Bottom   string   `short:"b" help:"Bottom text (classic mode)."`
	Text     []string `short:"x" sep:"none" help:"Free mode text as TEXT or TEXT@X,Y (repeatable)."`
	FontSize *float64 `short:"s" help:"Caption font size in pixels."`

	// Output
	Summary string `type:"path" help:"Output render summary to file (Markdown format)."`

	CommonFlags `embed:""`
}

// TemplatesCmd lists the catalog.
type TemplatesCmd struct {
	Config string `short:"c" type:"path" help:"Path to a YAML config file."`
}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("memecanvas"),
		kong.Description(l10n.T("Put captions on meme templates.")),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run executes the render command.
func (cmd *RenderCmd) Run() error {
	mode, err := meme.ParseMode(cmd.Mode)
	if err != nil {
		return err
	}

	a, err := newApp(cmd.CommonFlags, nil)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(a)
	defer cancel()

	orch := orchestrator.New(
		load.NewStage(a.editor, a.log),
		compose.NewStage(a.editor, a.log),
		export.NewStage(a.editor, a.exporter),
		a.log,
	)

	job := orchestrator.Config{
		Template:   cmd.Template,
		Mode:       mode,
		TopText:    cmd.Top,
		BottomText: cmd.Bottom,
		Texts:      make([]pipeline.Placement, 0, len(cmd.Text)),
	}
	if cmd.FontSize != nil {
		job.FontSize = *cmd.FontSize
	}
	for _, s := range cmd.Text {
		job.Texts = append(job.Texts, parsePlacement(s))
	}

	result, err := orch.Run(ctx, job)
	if err != nil {
		return err
	}

	if cmd.Summary != "" {
		summary := buildSummary(result)
		writer := summarizer.NewWriter(summarizer.NewMarkdownFormatter(
			summarizer.WithTranslator(l10n.T),
			summarizer.WithVersion(version),
		), a.fs)
		if err := writer.Write(cmd.Summary, summary); err != nil {
			a.log.Warn("Failed to write summary: %s", err)
		} else {
			a.log.Info("Summary saved to %s", cmd.Summary)
		}
	}

	return nil
}

func buildSummary(r orchestrator.RunResult) *summarizer.Summary {
	return summarizer.NewBuilder().
		WithTemplate(summarizer.TemplateInfo{
			ID:          r.Template,
			Placeholder: r.Placeholder,
			Natural:     r.Natural,
			Display:     r.Display,
		}).
		WithCaptions(summarizer.CaptionInfo{
			Mode:       r.Mode,
			FontSize:   r.FontSize,
			TopText:    r.TopText,
			BottomText: r.BottomText,
			Items:      r.Items,
		}).
		WithOutput(r.OutputPath, r.OutputWidth, r.OutputHeight).
		WithTiming(r.LoadMs, r.TotalMs).
		Build()
}

// Run executes the templates command.
func (cmd *TemplatesCmd) Run() error {
	cfg, err := loadConfig(cmd.Config)
	if err != nil {
		return err
	}

	catalog := cfg.Catalog()
	for _, id := range catalog.IDs() {
		location, _ := catalog.Resolve(id)
		fmt.Printf("%-12s %s\n", id, location)
	}
	return nil
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("memecanvas version %s", version))
	return nil
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Defaults(), nil
	}
	cfg, err := config.LoadFromFile(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext(a *app) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			a.log.Warn("Interrupted, shutting down...")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}
