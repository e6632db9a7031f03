package editor

import (
	"github.com/user/memecanvas/pkg/meme"
	"github.com/user/memecanvas/pkg/ports"
)

// PointerHandler receives pointer input in display coordinates, i.e.
// relative to the top-left corner of the surface as the host shows it.
type PointerHandler interface {
	Down(x, y float64)
	Move(x, y float64)
	Up()
	Leave()
}

// Controller drags Free mode captions. It is either idle or dragging one
// caption, remembering where on the caption it was grabbed. Its fields are
// guarded by the editor lock.
type Controller struct {
	e *Editor

	// display is the size the host shows the surface at. Zero means the
	// buffer is shown at its own size.
	display meme.Size

	dragging         bool
	dragID           int
	offsetX, offsetY float64

	cursor meme.Cursor
}

var _ PointerHandler = (*Controller)(nil)

// SetDisplaySize records the size the surface is displayed at, so pointer
// positions can be scaled to buffer pixels. Axes scale independently.
func (c *Controller) SetDisplaySize(width, height int) {
	c.e.mu.Lock()
	defer c.e.mu.Unlock()
	c.display = meme.Size{Width: width, Height: height}
}

// ToBuffer converts a display position to surface buffer coordinates.
func (c *Controller) ToBuffer(x, y float64) (float64, float64) {
	c.e.mu.Lock()
	defer c.e.mu.Unlock()
	return c.toBuffer(x, y)
}

func (c *Controller) toBuffer(x, y float64) (float64, float64) {
	w, h := c.e.engine.Surface().Size()
	dw, dh := c.display.Width, c.display.Height
	if dw > 0 {
		x *= float64(w) / float64(dw)
	}
	if dh > 0 {
		y *= float64(h) / float64(dh)
	}
	return x, y
}

// Dragging returns the id of the caption being dragged.
func (c *Controller) Dragging() (id int, ok bool) {
	c.e.mu.Lock()
	defer c.e.mu.Unlock()
	return c.dragID, c.dragging
}

// Cursor returns the current pointer cue.
func (c *Controller) Cursor() meme.Cursor {
	c.e.mu.Lock()
	defer c.e.mu.Unlock()
	return c.cursor
}

// HitTest returns the id of the topmost caption whose box contains the
// buffer position (x, y). The box spans the measured text width and the
// font size, centered on the caption's position.
func (c *Controller) HitTest(x, y float64) (int, bool) {
	c.e.mu.Lock()
	defer c.e.mu.Unlock()
	return c.hitTest(x, y)
}

func (c *Controller) hitTest(x, y float64) (int, bool) {
	st := &c.e.state
	size := st.FontSize
	for i := len(st.Items) - 1; i >= 0; i-- {
		item := st.Items[i]
		w, h := c.e.captions.Measure(item.Text, size)
		if x >= item.X-w/2 && x <= item.X+w/2 &&
			y >= item.Y-h/2 && y <= item.Y+h/2 {
			return item.ID, true
		}
	}
	return 0, false
}

// Down grabs the topmost caption under the pointer. It only acts in Free
// mode with a background loaded.
func (c *Controller) Down(x, y float64) {
	e := c.e
	e.mu.Lock()
	defer e.unlock()

	if e.state.Mode != meme.ModeFree || e.state.Background == nil {
		return
	}

	bx, by := c.toBuffer(x, y)
	id, ok := c.hitTest(bx, by)
	if !ok {
		return
	}
	item := e.state.Items[e.state.indexOf(id)]

	c.dragging = true
	c.dragID = id
	c.offsetX = bx - item.X
	c.offsetY = by - item.Y
	c.setCursor(meme.CursorGrabbing)
	e.logger.Debug("Grabbed text %d at (%.0f, %.0f)", id, item.X, item.Y)
}

// Move drags the grabbed caption so the grab point follows the pointer.
// Captions may leave the surface.
func (c *Controller) Move(x, y float64) {
	e := c.e
	e.mu.Lock()
	defer e.unlock()

	if !c.dragging {
		return
	}
	i := e.state.indexOf(c.dragID)
	if i < 0 {
		c.release()
		return
	}

	bx, by := c.toBuffer(x, y)
	e.state.Items[i].X = bx - c.offsetX
	e.state.Items[i].Y = by - c.offsetY
	e.repaint()
}

// Up ends a drag.
func (c *Controller) Up() {
	c.end()
}

// Leave ends a drag when the pointer leaves the surface.
func (c *Controller) Leave() {
	c.end()
}

func (c *Controller) end() {
	e := c.e
	e.mu.Lock()
	defer e.unlock()

	if !c.dragging {
		return
	}
	if i := e.state.indexOf(c.dragID); i >= 0 {
		item := e.state.Items[i]
		e.logger.Debug("Released text %d at (%.0f, %.0f)", item.ID, item.X, item.Y)
	}
	c.release()
}

// release drops any drag and restores the idle cue for the current mode.
// Callers hold the editor lock.
func (c *Controller) release() {
	c.dragging = false
	c.dragID = 0
	c.offsetX, c.offsetY = 0, 0

	idle := meme.CursorDefault
	if c.e.state.Mode == meme.ModeFree {
		idle = meme.CursorCrosshair
	}
	c.setCursor(idle)
}

func (c *Controller) setCursor(cursor meme.Cursor) {
	if c.cursor == cursor {
		return
	}
	c.cursor = cursor
	c.e.notify(func(l ports.Listener) { l.CursorChanged(cursor) })
}
