// Package editor is the composition and interaction core of memecanvas: it
// owns the placement state, repaints the surface after every change and
// turns pointer input into caption drags.
package editor

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"
	"sync"
	"time"

	"golang.org/x/image/draw"

	"github.com/user/memecanvas/pkg/caption"
	"github.com/user/memecanvas/pkg/meme"
	"github.com/user/memecanvas/pkg/ports"
)

// Options configures an Editor.
type Options struct {
	// Bounds is the box backgrounds are fitted into, and the surface size
	// while no background is loaded.
	Bounds meme.Size

	FontSize    float64
	MinFontSize float64
	MaxFontSize float64

	IdleBackground color.Color
	IdleText       color.Color

	// Fonts overrides the caption font family.
	Fonts *caption.Fonts
}

// DefaultOptions returns a 600x600 canvas with 48px captions.
func DefaultOptions() Options {
	return Options{
		Bounds:         meme.Size{Width: 600, Height: 600},
		FontSize:       48,
		MinFontSize:    12,
		MaxFontSize:    120,
		IdleBackground: color.RGBA{R: 0x2a, G: 0x2a, B: 0x2a, A: 0xff},
		IdleText:       color.RGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xff},
	}
}

// Catalog resolves template ids to image locations.
type Catalog interface {
	Resolve(id string) (string, bool)
}

// PlaceholderNotice is sent to the listener when a template falls back to
// a generated placeholder.
const PlaceholderNotice = "Failed to load image. Using placeholder instead."

// NoImageNotice is sent to the listener when exporting without a template.
const NoImageNotice = "Please select a template first!"

// Editor owns the meme being edited. All methods are safe for concurrent
// use; mutations are serialized and each one ends with a full repaint.
type Editor struct {
	mu sync.Mutex

	opts        Options
	state       State
	engine      *Engine
	captions    *caption.Renderer
	catalog     Catalog
	loader      ports.ImageLoader
	placeholder ports.Placeholder
	logger      ports.Logger
	listener    ports.Listener
	pointer     *Controller

	// generation identifies the latest SelectTemplate request. Loads that
	// finish for an older generation are dropped.
	generation int

	pending []func(ports.Listener)
	now     func() time.Time
}

// New creates an Editor and paints the idle screen.
func New(
	catalog Catalog,
	loader ports.ImageLoader,
	placeholder ports.Placeholder,
	surface ports.Surface,
	renderer ports.Renderer,
	sink ports.DebugSink,
	logger ports.Logger,
	opts Options,
) *Editor {
	captions := caption.NewRenderer(opts.Fonts)
	e := &Editor{
		opts:        opts,
		captions:    captions,
		catalog:     catalog,
		loader:      loader,
		placeholder: placeholder,
		logger:      logger.WithComponent("editor"),
		listener:    NopListener{},
		now:         time.Now,
	}
	e.state.Mode = meme.ModeClassic
	e.state.FontSize = e.clampFontSize(opts.FontSize)
	e.engine = NewEngine(surface, renderer, captions, sink, logger, opts)
	e.pointer = &Controller{e: e}

	e.engine.Repaint(&e.state)
	return e
}

// SetListener replaces the change listener. nil restores the no-op listener.
func (e *Editor) SetListener(l ports.Listener) {
	if l == nil {
		l = NopListener{}
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listener = l
}

// Pointer returns the interaction controller bound to this editor.
func (e *Editor) Pointer() *Controller {
	return e.pointer
}

// Captions returns the caption renderer used for drawing and hit-testing.
func (e *Editor) Captions() *caption.Renderer {
	return e.captions
}

// unlock releases the lock and then delivers queued notifications, so
// listeners can call back into the editor.
func (e *Editor) unlock() {
	pending := e.pending
	e.pending = nil
	l := e.listener
	e.mu.Unlock()

	for _, fn := range pending {
		fn(l)
	}
}

func (e *Editor) notify(fn func(ports.Listener)) {
	e.pending = append(e.pending, fn)
}

func (e *Editor) repaint() {
	e.engine.Repaint(&e.state)
}

// SelectTemplate starts loading the template id in the background. The
// returned channel is closed once the result has been applied or dropped.
// An unknown id returns ErrUnknownTemplate and changes nothing.
//
// If the image cannot be decoded, a placeholder of the configured bounds
// is used instead and the listener receives a non-blocking notice. When
// several selections overlap, only the most recent request is applied.
func (e *Editor) SelectTemplate(ctx context.Context, id string) (<-chan struct{}, error) {
	location, ok := e.catalog.Resolve(id)
	if !ok {
		e.logger.Warn("Unknown template %s", id)
		return nil, fmt.Errorf("%w: %s", ErrUnknownTemplate, id)
	}

	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	e.logger.Debug("Selecting template %s", id)

	done := make(chan struct{})
	go func() {
		defer close(done)
		img, err := e.loader.Load(ctx, location)
		e.applyLoad(ctx, gen, id, img, err)
	}()
	return done, nil
}

func (e *Editor) applyLoad(ctx context.Context, gen int, id string, img image.Image, err error) {
	e.mu.Lock()
	defer e.unlock()

	if gen != e.generation {
		e.logger.Debug("Discarding stale load of %s", id)
		return
	}
	if err != nil {
		if ctx.Err() != nil {
			e.logger.Debug("Discarding stale load of %s", id)
			return
		}
		e.logger.Warn("Failed to load template %s: %s", id, err)
		e.logger.Debug("Generating placeholder for %s", id)
		img = e.placeholder.Generate(id, e.opts.Bounds.Width, e.opts.Bounds.Height)
		e.notify(func(l ports.Listener) { l.Notice(PlaceholderNotice, false) })
	}

	e.state.setBackground(id, img, e.opts.Bounds, err != nil)
	e.pointer.release()
	e.logger.Debug("Template %s loaded: %dx%d shown at %dx%d", id,
		e.state.Natural.Width, e.state.Natural.Height, e.state.Display.Width, e.state.Display.Height)
	e.repaint()
}

// SetMode switches the placement mode. The data of both modes is kept.
func (e *Editor) SetMode(mode meme.Mode) {
	e.mu.Lock()
	defer e.unlock()

	changed := e.state.Mode != mode
	e.state.Mode = mode
	e.pointer.release()
	e.repaint()

	if changed {
		e.logger.Debug("Mode switched to %s", mode)
		e.notify(func(l ports.Listener) { l.ModeChanged(mode) })
	}
}

// SetTopText sets the top caption of Classic mode.
func (e *Editor) SetTopText(s string) {
	e.mu.Lock()
	defer e.unlock()

	e.state.TopText = s
	e.repaint()
}

// SetBottomText sets the bottom caption of Classic mode.
func (e *Editor) SetBottomText(s string) {
	e.mu.Lock()
	defer e.unlock()

	e.state.BottomText = s
	e.repaint()
}

// SetFontSize sets the size shared by every caption, clamped to the
// configured range. NaN is ignored.
func (e *Editor) SetFontSize(n float64) {
	if math.IsNaN(n) {
		return
	}

	e.mu.Lock()
	defer e.unlock()

	e.state.FontSize = e.clampFontSize(n)
	e.repaint()
}

func (e *Editor) clampFontSize(n float64) float64 {
	lo, hi := e.opts.MinFontSize, e.opts.MaxFontSize
	if lo <= 0 {
		lo = 1
	}
	if hi < lo {
		hi = lo
	}
	return math.Max(lo, math.Min(hi, n))
}

// AddFreeText adds a caption at the center of the surface and returns its
// id. Text that is blank after trimming is ignored and ok is false.
func (e *Editor) AddFreeText(s string) (id int, ok bool) {
	text := strings.TrimSpace(s)
	if text == "" {
		return 0, false
	}

	e.mu.Lock()
	defer e.unlock()

	w, h := e.engine.Surface().Size()
	item := meme.FreeText{
		ID:   e.state.nextID,
		Text: text,
		X:    float64(w) / 2,
		Y:    float64(h) / 2,
	}
	e.state.nextID++
	e.state.Items = append(e.state.Items, item)
	e.repaint()

	e.logger.Debug("Added text %d: %s", item.ID, item.Text)
	items := e.state.items()
	e.notify(func(l ports.Listener) { l.ListChanged(items) })
	return item.ID, true
}

// RemoveFreeText removes the caption with id. Removing an id that is not
// present does nothing.
func (e *Editor) RemoveFreeText(id int) {
	e.mu.Lock()
	defer e.unlock()

	i := e.state.indexOf(id)
	if i < 0 {
		return
	}
	e.state.Items = append(e.state.Items[:i], e.state.Items[i+1:]...)
	if e.pointer.dragging && e.pointer.dragID == id {
		e.pointer.release()
	}
	e.repaint()

	e.logger.Debug("Removed text %d", id)
	items := e.state.items()
	e.notify(func(l ports.Listener) { l.ListChanged(items) })
}

// Snapshot returns a copy of the current state.
func (e *Editor) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.snapshot()
}

// Template returns the id of the loaded template, or "" before the first
// load completes.
func (e *Editor) Template() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Template
}

// Mode returns the active placement mode.
func (e *Editor) Mode() meme.Mode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Mode
}

// TopText returns the top caption of Classic mode.
func (e *Editor) TopText() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.TopText
}

// BottomText returns the bottom caption of Classic mode.
func (e *Editor) BottomText() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.BottomText
}

// FontSize returns the shared caption size.
func (e *Editor) FontSize() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.FontSize
}

// FreeTexts returns a copy of the Free mode captions in z-order.
func (e *Editor) FreeTexts() []meme.FreeText {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.items()
}

// HasImage reports whether a background is loaded.
func (e *Editor) HasImage() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Background != nil
}

// Image returns a copy of the composed surface.
func (e *Editor) Image() image.Image {
	e.mu.Lock()
	defer e.mu.Unlock()
	return cloneImage(e.engine.Surface().ToImage())
}

// Export hands a copy of the composed surface to exp under a timestamped
// name and returns where it was written. Without a background nothing is
// exported, the listener receives a blocking notice and ErrNoImage is
// returned.
func (e *Editor) Export(ctx context.Context, exp ports.Exporter) (string, error) {
	e.mu.Lock()
	if e.state.Background == nil {
		e.notify(func(l ports.Listener) { l.Notice(NoImageNotice, true) })
		e.unlock()
		return "", ErrNoImage
	}
	img := cloneImage(e.engine.Surface().ToImage())
	name := ExportFileName(e.now())
	e.unlock()

	path, err := exp.Export(ctx, name, img)
	if err != nil {
		return "", fmt.Errorf("export %s: %w", name, err)
	}
	e.logger.Info("Output saved to %s", path)
	return path, nil
}

// ExportFileName returns the file name used for an export made at t.
func ExportFileName(t time.Time) string {
	return fmt.Sprintf("meme-%d.png", t.UnixMilli())
}

func cloneImage(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
