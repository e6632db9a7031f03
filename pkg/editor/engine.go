package editor

import (
	"image"
	"image/color"

	"gopkg.in/yaml.v3"

	"github.com/user/memecanvas/pkg/caption"
	"github.com/user/memecanvas/pkg/meme"
	"github.com/user/memecanvas/pkg/ports"
)

// IdlePrompt is shown while no template is loaded.
const IdlePrompt = "Select a template to get started"

const idlePromptSize = 24

// Engine composes the surface from a State. Every Repaint redraws the
// whole surface from the background, so the output never depends on what
// was drawn before.
type Engine struct {
	surface  ports.Surface
	renderer ports.Renderer
	captions *caption.Renderer
	sink     ports.DebugSink
	logger   ports.Logger

	idleSize       meme.Size
	idleBackground color.Color
	idleText       color.Color

	// background scaled to the display size, rebuilt when the state's
	// bgVersion moves.
	scaled        image.Image
	scaledVersion int

	seq int
}

// NewEngine creates an Engine drawing onto surface.
func NewEngine(surface ports.Surface, renderer ports.Renderer, captions *caption.Renderer, sink ports.DebugSink, logger ports.Logger, opts Options) *Engine {
	return &Engine{
		surface:        surface,
		renderer:       renderer,
		captions:       captions,
		sink:           sink,
		logger:         logger.WithComponent("engine"),
		idleSize:       opts.Bounds,
		idleBackground: opts.IdleBackground,
		idleText:       opts.IdleText,
	}
}

// Surface returns the surface the engine draws onto.
func (e *Engine) Surface() ports.Surface {
	return e.surface
}

// Repaint redraws the surface from st.
func (e *Engine) Repaint(st *State) {
	e.seq++

	if st.Background == nil {
		e.paintIdle()
	} else {
		e.paintMeme(st)
	}

	w, h := e.surface.Size()
	e.logger.Debug("Repaint %d: %dx%d, %s mode", e.seq, w, h, st.Mode)

	if e.sink.Enabled() {
		e.saveDebug(st)
	}
}

func (e *Engine) paintIdle() {
	e.ensureSize(e.idleSize)
	e.surface.Fill(e.idleBackground)
	w, h := e.surface.Size()
	e.captions.DrawPlain(e.surface, IdlePrompt, float64(w)/2, float64(h)/2, idlePromptSize, false, e.idleText)
}

func (e *Engine) paintMeme(st *State) {
	e.ensureSize(st.Display)
	if e.scaled == nil || e.scaledVersion != st.bgVersion {
		e.scaled = e.renderer.ResizeImage(st.Background, st.Display.Width, st.Display.Height)
		e.scaledVersion = st.bgVersion
	}

	w, h := e.surface.Size()
	e.surface.Fill(color.Transparent)
	e.surface.DrawImageScaled(e.scaled, 0, 0, w, h)

	size := st.FontSize
	switch st.Mode {
	case meme.ModeClassic:
		cx := float64(w) / 2
		if st.TopText != "" {
			e.captions.Render(e.surface, st.TopText, cx, size, size)
		}
		if st.BottomText != "" {
			e.captions.Render(e.surface, st.BottomText, cx, float64(h)-size, size)
		}
	case meme.ModeFree:
		for _, item := range st.Items {
			e.captions.Render(e.surface, item.Text, item.X, item.Y, size)
		}
	}
}

func (e *Engine) ensureSize(size meme.Size) {
	w, h := e.surface.Size()
	if w != size.Width || h != size.Height {
		e.surface.Resize(size.Width, size.Height)
	}
}

func (e *Engine) saveDebug(st *State) {
	if err := e.sink.SaveRepaint(e.seq, e.surface.ToImage()); err != nil {
		e.logger.Warn("Failed to save debug output: %s", err)
	}
	data, err := yaml.Marshal(st.snapshot())
	if err != nil {
		e.logger.Warn("Failed to save debug output: %s", err)
		return
	}
	if err := e.sink.SaveState(data); err != nil {
		e.logger.Warn("Failed to save debug output: %s", err)
	}
}
