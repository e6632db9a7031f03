package main

import (
	"fmt"
	"io"

	"github.com/user/memecanvas/pkg/adapters/filesink"
	"github.com/user/memecanvas/pkg/adapters/ggrenderer"
	"github.com/user/memecanvas/pkg/adapters/imageloader"
	"github.com/user/memecanvas/pkg/adapters/logger"
	"github.com/user/memecanvas/pkg/adapters/nullsink"
	"github.com/user/memecanvas/pkg/adapters/osfilesystem"
	"github.com/user/memecanvas/pkg/adapters/placeholder"
	"github.com/user/memecanvas/pkg/adapters/pngexport"
	"github.com/user/memecanvas/pkg/caption"
	"github.com/user/memecanvas/pkg/config"
	"github.com/user/memecanvas/pkg/editor"
	"github.com/user/memecanvas/pkg/ports"
)

// app holds the adapters and the editor wired from config and flags.
type app struct {
	cfg      config.Config
	fs       ports.FileSystem
	log      ports.Logger
	editor   *editor.Editor
	exporter ports.Exporter
}

// newApp builds the editor. Log output goes to logOut when it is not nil,
// otherwise to the console.
func newApp(flags CommonFlags, logOut io.Writer) (*app, error) {
	cfg, err := loadConfig(flags.Config)
	if err != nil {
		return nil, err
	}
	applyFlags(&cfg, flags)

	var log ports.Logger
	level := ports.ParseLogLevel(cfg.LogLevel)
	switch {
	case flags.Quiet:
		log = logger.NewNoop()
	case logOut != nil:
		log = logger.NewWriter(level, logOut)
	default:
		log = logger.NewConsole(level)
	}

	fs := osfilesystem.New()
	renderer := ggrenderer.New()

	fonts := caption.DefaultFonts()
	if cfg.FontPath != "" {
		ttf, err := fs.ReadFile(cfg.FontPath)
		if err != nil {
			return nil, fmt.Errorf("read font: %w", err)
		}
		if fonts, err = caption.ParseFonts(ttf); err != nil {
			return nil, err
		}
	}

	// Create debug sink
	var sink ports.DebugSink
	if cfg.Debug {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return nil, fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(cfg.DebugDir, fs, renderer)
	} else {
		sink = nullsink.New()
	}

	if err := fs.MkdirAll(cfg.ExportDir); err != nil {
		return nil, fmt.Errorf("create export directory: %w", err)
	}

	opts := cfg.ToEditorOptions()
	opts.Fonts = fonts

	ed := editor.New(
		cfg.Catalog(),
		imageloader.New(fs, renderer, log),
		placeholder.New(cfg.PlaceholderTheme(), fonts),
		ggrenderer.NewSurface(cfg.CanvasWidth, cfg.CanvasHeight),
		renderer,
		sink,
		log,
		opts,
	)

	return &app{
		cfg:      cfg,
		fs:       fs,
		log:      log,
		editor:   ed,
		exporter: pngexport.New(cfg.ExportDir, fs, renderer, log),
	}, nil
}

// applyFlags overrides config values with the flags that were set.
func applyFlags(cfg *config.Config, flags CommonFlags) {
	if flags.OutDir != "" {
		cfg.ExportDir = flags.OutDir
	}
	if flags.FontPath != "" {
		cfg.FontPath = flags.FontPath
	}
	if flags.Debug {
		cfg.Debug = true
	}
	if flags.DebugDir != "" {
		cfg.DebugDir = flags.DebugDir
	}
	if flags.LogLevel != "" {
		cfg.LogLevel = flags.LogLevel
	}
}
