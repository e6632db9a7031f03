package main

import (
	"image"
	"image/color"
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ideamans/go-l10n"

	"github.com/user/memecanvas/pkg/adapters/logger"
	"github.com/user/memecanvas/pkg/assets"
	"github.com/user/memecanvas/pkg/editor"
	"github.com/user/memecanvas/pkg/meme"
	"github.com/user/memecanvas/pkg/mocks"
)

func newTestModel(t *testing.T) (*editModel, *mocks.Exporter) {
	t.Helper()
	loader := mocks.NewImageLoader()
	loader.Images["templates/drake.jpeg"] = mocks.SolidImage(600, 600, color.Black)
	loader.Images["templates/buttons.jpeg"] = mocks.SolidImage(1200, 600, color.Black)
	ed := editor.New(assets.Default(), loader, &mocks.Placeholder{}, mocks.NewSurface(0, 0),
		&mocks.Renderer{}, mocks.NewDebugSink(false), logger.NewNoop(), editor.DefaultOptions())

	exp := &mocks.Exporter{}
	m := newEditModel(ed, exp, assets.Default().IDs())
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m, exp
}

func (m *editModel) open(t *testing.T, id string) {
	t.Helper()
	cmd := m.selectTemplate(id)
	if cmd == nil {
		t.Fatalf("selectTemplate(%q) returned no command", id)
	}
	m.Update(cmd())
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPreviewSize(t *testing.T) {
	tests := []struct {
		name               string
		w, h, maxC, maxR   int
		wantCols, wantRows int
	}{
		{"square", 600, 600, 80, 20, 40, 20},
		{"wide", 1200, 600, 80, 20, 80, 20},
		{"width bound", 1200, 300, 60, 40, 60, 8},
		{"empty image", 0, 0, 80, 20, 1, 1},
		{"no room", 600, 600, 0, 0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, rows := previewSize(tt.w, tt.h, tt.maxC, tt.maxR)
			if cols != tt.wantCols || rows != tt.wantRows {
				t.Errorf("previewSize = %dx%d, want %dx%d", cols, rows, tt.wantCols, tt.wantRows)
			}
		})
	}
}

func TestCellToDisplay(t *testing.T) {
	m := &editModel{cols: 40, rows: 20}

	tests := []struct {
		cx, cy     int
		wantX      float64
		wantY      float64
		wantInside bool
	}{
		{0, headerLines, 0.5, 1, true},
		{39, headerLines + 19, 39.5, 39, true},
		{40, headerLines, 40.5, 1, false},
		{5, headerLines - 1, 5.5, -1, false},
		{5, headerLines + 20, 5.5, 41, false},
	}

	for _, tt := range tests {
		x, y, inside := m.cellToDisplay(tt.cx, tt.cy)
		if x != tt.wantX || y != tt.wantY || inside != tt.wantInside {
			t.Errorf("cellToDisplay(%d, %d) = (%v, %v, %v), want (%v, %v, %v)",
				tt.cx, tt.cy, x, y, inside, tt.wantX, tt.wantY, tt.wantInside)
		}
	}
}

func TestRenderPreview(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	out := renderPreview(img, 2, 3)

	if got := strings.Count(out, "▀"); got != 6 {
		t.Errorf("rendered %d cells, want 6", got)
	}
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("rendered %d line breaks, want 2", got)
	}
	if renderPreview(img, 0, 3) != "" {
		t.Error("expected empty preview for zero columns")
	}
}

func TestEditModel_ClassicTyping(t *testing.T) {
	m, _ := newTestModel(t)
	m.open(t, "drake")

	m.Update(runes("one does"))
	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m.Update(runes("not"))
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m.Update(runes("simplyy"))
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})

	if got := m.ed.TopText(); got != "one does not" {
		t.Errorf("TopText = %q", got)
	}
	if got := m.ed.BottomText(); got != "simply" {
		t.Errorf("BottomText = %q", got)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.ed.TopText(); got != "one does no" {
		t.Errorf("TopText after backspace = %q", got)
	}
}

func TestEditModel_FreeText(t *testing.T) {
	m, _ := newTestModel(t)
	m.open(t, "drake")

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	if m.ed.Mode() != meme.ModeFree {
		t.Fatalf("mode = %v, want free", m.ed.Mode())
	}

	m.Update(runes("hi"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(runes("there"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	items := m.ed.FreeTexts()
	if len(items) != 2 || items[0].Text != "hi" || items[1].Text != "there" {
		t.Fatalf("unexpected items %+v", items)
	}
	if m.input != "" {
		t.Errorf("input not cleared: %q", m.input)
	}

	// Blank input is kept as typed.
	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if len(m.ed.FreeTexts()) != 2 || m.input != " " {
		t.Errorf("blank add changed state: %d items, input %q", len(m.ed.FreeTexts()), m.input)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	items = m.ed.FreeTexts()
	if len(items) != 1 || items[0].Text != "hi" {
		t.Errorf("ctrl+x left %+v", items)
	}
}

func TestEditModel_FontSize(t *testing.T) {
	m, _ := newTestModel(t)
	start := m.ed.FontSize()

	m.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	if got := m.ed.FontSize(); got != start+4 {
		t.Errorf("FontSize after pgup = %v, want %v", got, start+4)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	if got := m.ed.FontSize(); got != start-4 {
		t.Errorf("FontSize after pgdown = %v, want %v", got, start-4)
	}
}

func TestEditModel_StepTemplate(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	if cmd == nil {
		t.Fatal("expected a load command")
	}
	m.Update(cmd())
	if got := m.ed.Template(); got != m.templates[0] {
		t.Errorf("Template = %q, want %q", got, m.templates[0])
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	m.Update(cmd())
	if got := m.ed.Template(); got != m.templates[len(m.templates)-1] {
		t.Errorf("Template = %q, want %q", got, m.templates[len(m.templates)-1])
	}
}

func TestEditModel_Export(t *testing.T) {
	m, exp := newTestModel(t)
	var copied string
	m.copy = func(s string) error {
		copied = s
		return nil
	}

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if len(exp.Names) != 0 {
		t.Fatal("exported without an image")
	}
	if m.alert != l10n.T(editor.NoImageNotice) {
		t.Errorf("alert = %q", m.alert)
	}

	// Any key dismisses the alert without acting on it.
	m.Update(runes("x"))
	if m.alert != "" || m.ed.TopText() != "" {
		t.Errorf("alert %q, top text %q", m.alert, m.ed.TopText())
	}

	m.open(t, "drake")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if len(exp.Names) != 1 {
		t.Fatalf("Export called %d times", len(exp.Names))
	}
	want := "/exports/" + exp.Names[0]
	if copied != want {
		t.Errorf("copied %q, want %q", copied, want)
	}
	if !strings.Contains(m.status, want) {
		t.Errorf("status %q does not mention %q", m.status, want)
	}
}

func TestEditModel_Quit(t *testing.T) {
	m, _ := newTestModel(t)
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		_, cmd := m.Update(tea.KeyMsg{Type: key})
		if cmd == nil {
			t.Fatalf("%v: expected quit command", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%v: expected tea.QuitMsg", key)
		}
	}
}

func TestEditModel_MouseDrag(t *testing.T) {
	m, _ := newTestModel(t)
	m.open(t, "drake")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	m.Update(runes("hi"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	// 80x24 leaves a 32x16 cell preview showing the 600x600 surface at
	// 32x32, so one display pixel is 18.75 buffer pixels.
	if m.cols != 32 || m.rows != 16 {
		t.Fatalf("preview %dx%d, want 32x16", m.cols, m.rows)
	}

	m.Update(tea.MouseMsg{X: 15, Y: headerLines + 7, Type: tea.MouseLeft})
	if _, ok := m.ed.Pointer().Dragging(); !ok {
		t.Fatal("expected drag to start on the caption")
	}
	if m.cursor != meme.CursorGrabbing {
		t.Errorf("cursor = %v, want grabbing", m.cursor)
	}

	m.Update(tea.MouseMsg{X: 5, Y: headerLines + 2, Type: tea.MouseMotion})
	m.Update(tea.MouseMsg{X: 5, Y: headerLines + 2, Type: tea.MouseRelease})

	item := m.ed.FreeTexts()[0]
	if math.Abs(item.X-112.5) > 1e-6 || math.Abs(item.Y-112.5) > 1e-6 {
		t.Errorf("caption at (%v, %v), want (112.5, 112.5)", item.X, item.Y)
	}
	if _, ok := m.ed.Pointer().Dragging(); ok {
		t.Error("drag still active after release")
	}
}

func TestEditModel_MouseLeaveEndsDrag(t *testing.T) {
	m, _ := newTestModel(t)
	m.open(t, "drake")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	m.Update(runes("hi"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m.Update(tea.MouseMsg{X: 15, Y: headerLines + 7, Type: tea.MouseLeft})
	m.Update(tea.MouseMsg{X: 70, Y: headerLines + 7, Type: tea.MouseMotion})

	if _, ok := m.ed.Pointer().Dragging(); ok {
		t.Error("drag still active after leaving the preview")
	}
	item := m.ed.FreeTexts()[0]
	if item.X != 300 || item.Y != 300 {
		t.Errorf("caption moved to (%v, %v)", item.X, item.Y)
	}
}

func TestHostListener_Drain(t *testing.T) {
	l := &hostListener{}
	l.Notice("first", false)
	l.Notice("second", false)
	l.Notice("stop", true)
	l.CursorChanged(meme.CursorCrosshair)
	l.ModeChanged(meme.ModeFree)
	l.ListChanged([]meme.FreeText{{ID: 1, Text: "hi"}})

	ev := l.drain()
	if len(ev.notices) != 2 || ev.notices[1] != "second" || ev.alert != "stop" || ev.cursor != meme.CursorCrosshair {
		t.Errorf("drain = %+v", ev)
	}
	if !ev.modeChanged || ev.mode != meme.ModeFree {
		t.Errorf("mode change not recorded: %+v", ev)
	}
	if !ev.itemsChanged || len(ev.items) != 1 || ev.items[0].Text != "hi" {
		t.Errorf("list change not recorded: %+v", ev)
	}

	ev = l.drain()
	if ev.notices != nil || ev.alert != "" || ev.modeChanged || ev.itemsChanged {
		t.Errorf("second drain = %+v", ev)
	}
	if ev.cursor != meme.CursorCrosshair {
		t.Errorf("cursor = %v, want crosshair kept", ev.cursor)
	}
}

func TestEditModel_FollowsEditorNotifications(t *testing.T) {
	m, _ := newTestModel(t)
	m.open(t, "drake")

	// Changes made outside the key handlers reach the model through the
	// listener on the next Update.
	m.ed.SetMode(meme.ModeFree)
	m.ed.AddFreeText("from elsewhere")
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	if m.mode != meme.ModeFree || m.focus != fieldFree {
		t.Errorf("mode %v, focus %v; want free mode with the free field focused", m.mode, m.focus)
	}
	if len(m.items) != 1 || m.items[0].Text != "from elsewhere" {
		t.Fatalf("items = %+v", m.items)
	}
	if !strings.Contains(m.View(), "from elsewhere") {
		t.Error("view does not list the added text")
	}

	m.ed.SetMode(meme.ModeClassic)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if m.mode != meme.ModeClassic || m.focus != fieldTop {
		t.Errorf("mode %v, focus %v; want classic mode with the top field focused", m.mode, m.focus)
	}

	// ctrl+x removes the last item the listener reported.
	m.ed.SetMode(meme.ModeFree)
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	if len(m.ed.FreeTexts()) != 0 || len(m.items) != 0 {
		t.Errorf("ctrl+x left editor %+v, model %+v", m.ed.FreeTexts(), m.items)
	}
}
