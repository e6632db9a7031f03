package main

import (
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ideamans/go-l10n"

	"github.com/user/memecanvas/pkg/editor"
	"github.com/user/memecanvas/pkg/meme"
	"github.com/user/memecanvas/pkg/ports"
)

// EditCmd defines the edit subcommand.
type EditCmd struct {
	Template string `short:"T" help:"Template to open with."`
	LogFile  string `type:"path" help:"Write log output to this file instead of discarding it."`

	CommonFlags `embed:""`
}

// Run executes the edit command.
func (cmd *EditCmd) Run() error {
	flags := cmd.CommonFlags
	var logOut io.Writer
	if cmd.LogFile != "" && !flags.Quiet {
		f, err := os.OpenFile(cmd.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	} else {
		// The terminal belongs to the editor.
		flags.Quiet = true
	}

	a, err := newApp(flags, logOut)
	if err != nil {
		return err
	}

	m := newEditModel(a.editor, a.exporter, a.cfg.Catalog().IDs())
	m.copy = clipboard.WriteAll

	if cmd.Template != "" {
		m.initial = m.selectTemplate(cmd.Template)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

// field is the input that receives typed characters.
type field int

const (
	fieldTop field = iota
	fieldBottom
	fieldFree
)

// headerLines is the number of lines above the preview.
const headerLines = 2

// templateLoadedMsg is sent when a template selection has been applied.
type templateLoadedMsg struct {
	id string
}

// hostEvents are the notifications received since the last Update.
type hostEvents struct {
	notices []string
	alert   string
	cursor  meme.Cursor

	items        []meme.FreeText
	itemsChanged bool
	mode         meme.Mode
	modeChanged  bool
}

// hostListener queues editor notifications until the next Update.
type hostListener struct {
	mu     sync.Mutex
	events hostEvents
}

func (l *hostListener) ListChanged(items []meme.FreeText) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events.items = items
	l.events.itemsChanged = true
}

func (l *hostListener) ModeChanged(mode meme.Mode) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events.mode = mode
	l.events.modeChanged = true
}

func (l *hostListener) CursorChanged(cursor meme.Cursor) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events.cursor = cursor
}

func (l *hostListener) Notice(message string, blocking bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if blocking {
		l.events.alert = message
		return
	}
	l.events.notices = append(l.events.notices, message)
}

// drain returns the queued events and resets them. The cursor is a state,
// not an event, so it carries over.
func (l *hostListener) drain() hostEvents {
	l.mu.Lock()
	defer l.mu.Unlock()
	ev := l.events
	l.events = hostEvents{cursor: ev.cursor}
	return ev
}

var _ ports.Listener = (*hostListener)(nil)

// editModel is the bubbletea model of the edit command.
type editModel struct {
	ed        *editor.Editor
	exporter  ports.Exporter
	listener  *hostListener
	templates []string
	current   int

	focus field
	input string // pending Free mode text

	width, height int
	cols, rows    int // preview size in cells
	preview       string

	status string
	alert  string
	cursor meme.Cursor
	mode   meme.Mode
	items  []meme.FreeText

	copy    func(string) error
	initial tea.Cmd
}

func newEditModel(ed *editor.Editor, exporter ports.Exporter, templates []string) *editModel {
	m := &editModel{
		ed:        ed,
		exporter:  exporter,
		listener:  &hostListener{},
		templates: templates,
		current:   -1,
		copy:      func(string) error { return nil },
	}
	ed.SetListener(m.listener)
	m.mode = ed.Mode()
	m.items = ed.FreeTexts()
	m.width, m.height = 80, 24
	m.layout()
	return m
}

func (m *editModel) Init() tea.Cmd {
	return m.initial
}

func (m *editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()

	case templateLoadedMsg:
		m.status = l10n.F("Template: %s", msg.id)
		m.layout()

	case tea.MouseMsg:
		m.mouse(msg)

	case tea.KeyMsg:
		if m.alert != "" {
			m.alert = ""
			break
		}
		var quit bool
		cmd, quit = m.key(msg)
		if quit {
			return m, tea.Quit
		}
	}

	m.sync()
	return m, cmd
}

// sync pulls queued notifications and redraws the preview.
func (m *editModel) sync() {
	ev := m.listener.drain()
	if len(ev.notices) > 0 {
		m.status = l10n.T(ev.notices[len(ev.notices)-1])
	}
	if ev.alert != "" {
		m.alert = l10n.T(ev.alert)
	}
	if ev.itemsChanged {
		m.items = ev.items
	}
	if ev.modeChanged && ev.mode != m.mode {
		m.mode = ev.mode
		if m.mode == meme.ModeFree {
			m.focus = fieldFree
		} else {
			m.focus = fieldTop
		}
	}
	m.cursor = ev.cursor
	m.preview = renderPreview(m.ed.Image(), m.cols, m.rows)
}

func (m *editModel) key(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "esc", "ctrl+c":
		return nil, true
	case "ctrl+t":
		if m.mode == meme.ModeClassic {
			m.ed.SetMode(meme.ModeFree)
		} else {
			m.ed.SetMode(meme.ModeClassic)
		}
	case "ctrl+n":
		return m.stepTemplate(1), false
	case "ctrl+p":
		return m.stepTemplate(-1), false
	case "up", "shift+tab":
		if m.focus == fieldBottom {
			m.focus = fieldTop
		}
	case "down", "tab":
		if m.focus == fieldTop {
			m.focus = fieldBottom
		}
	case "pgup":
		m.ed.SetFontSize(m.ed.FontSize() + 4)
	case "pgdown":
		m.ed.SetFontSize(m.ed.FontSize() - 4)
	case "enter":
		if m.focus == fieldFree {
			if _, ok := m.ed.AddFreeText(m.input); ok {
				m.input = ""
			}
		}
	case "ctrl+x":
		if len(m.items) > 0 {
			m.ed.RemoveFreeText(m.items[len(m.items)-1].ID)
		}
	case "ctrl+s":
		m.export()
	case "backspace":
		m.edit(func(s string) string {
			r := []rune(s)
			if len(r) == 0 {
				return s
			}
			return string(r[:len(r)-1])
		})
	default:
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			m.edit(func(s string) string { return s + string(msg.Runes) })
		}
	}
	return nil, false
}

// edit applies fn to the focused field. Classic captions update on every
// keystroke.
func (m *editModel) edit(fn func(string) string) {
	switch m.focus {
	case fieldTop:
		m.ed.SetTopText(fn(m.ed.TopText()))
	case fieldBottom:
		m.ed.SetBottomText(fn(m.ed.BottomText()))
	case fieldFree:
		m.input = fn(m.input)
	}
}

func (m *editModel) export() {
	path, err := m.ed.Export(context.Background(), m.exporter)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.status = l10n.F("Saved %s", path)
	if err := m.copy(path); err == nil {
		m.status += " " + l10n.T("(path copied to clipboard)")
	}
}

func (m *editModel) stepTemplate(delta int) tea.Cmd {
	if len(m.templates) == 0 {
		return nil
	}
	m.current = (m.current + delta + len(m.templates)) % len(m.templates)
	return m.selectTemplate(m.templates[m.current])
}

// selectTemplate starts loading id and returns a command that reports when
// it has been applied.
func (m *editModel) selectTemplate(id string) tea.Cmd {
	for i, t := range m.templates {
		if t == id {
			m.current = i
		}
	}
	done, err := m.ed.SelectTemplate(context.Background(), id)
	if err != nil {
		m.status = err.Error()
		return nil
	}
	m.status = l10n.F("Loading template %s", id)
	return func() tea.Msg {
		<-done
		return templateLoadedMsg{id: id}
	}
}

func (m *editModel) mouse(msg tea.MouseMsg) {
	ptr := m.ed.Pointer()
	x, y, inside := m.cellToDisplay(msg.X, msg.Y)

	switch msg.Type {
	case tea.MouseLeft:
		if inside {
			ptr.Down(x, y)
		}
	case tea.MouseMotion:
		if inside {
			ptr.Move(x, y)
		} else {
			ptr.Leave()
		}
	case tea.MouseRelease:
		ptr.Up()
	}
}

// cellToDisplay maps a terminal cell to display coordinates. Every cell is
// one display pixel wide and two tall, one per half block.
func (m *editModel) cellToDisplay(cx, cy int) (x, y float64, inside bool) {
	px, py := cx, cy-headerLines
	inside = px >= 0 && px < m.cols && py >= 0 && py < m.rows
	return float64(px) + 0.5, float64(py)*2 + 1, inside
}

// layout fits the preview into the terminal and tells the pointer
// controller how large the surface is shown.
func (m *editModel) layout() {
	b := m.ed.Image().Bounds()
	m.cols, m.rows = previewSize(b.Dx(), b.Dy(), m.width, m.height-headerLines-6)
	m.ed.Pointer().SetDisplaySize(m.cols, m.rows*2)
}

// previewSize returns the largest cols x rows preview of a w x h image
// that fits maxCols x maxRows cells, with two pixels per cell vertically.
func previewSize(w, h, maxCols, maxRows int) (cols, rows int) {
	if w <= 0 || h <= 0 || maxCols <= 0 || maxRows <= 0 {
		return 1, 1
	}
	fit := meme.FitWithin(meme.Size{Width: w, Height: h}, meme.Size{Width: maxCols, Height: maxRows * 2})
	cols = fit.Width
	rows = (fit.Height + 1) / 2
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}

// renderPreview draws img as cols x rows half-block cells.
func renderPreview(img image.Image, cols, rows int) string {
	b := img.Bounds()
	if cols <= 0 || rows <= 0 || b.Empty() {
		return ""
	}

	sample := func(cx, cy int) lipgloss.Color {
		x := b.Min.X + (2*cx+1)*b.Dx()/(2*cols)
		y := b.Min.Y + (2*cy+1)*b.Dy()/(4*rows)
		r, g, bl, _ := img.At(x, y).RGBA()
		return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, bl>>8))
	}

	var sb strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			style := lipgloss.NewStyle().
				Foreground(sample(col, 2*row)).
				Background(sample(col, 2*row+1))
			sb.WriteString(style.Render("▀"))
		}
		if row < rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Background(lipgloss.Color("63")).Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("81"))
	focusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	alertStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("160")).Bold(true).Padding(0, 1)
)

func (m *editModel) View() string {
	snap := m.ed.Snapshot()
	var b strings.Builder

	template := snap.Template
	if template == "" {
		template = "-"
	}
	b.WriteString(titleStyle.Render("memecanvas"))
	b.WriteString(" ")
	b.WriteString(labelStyle.Render(l10n.T("Template")+": ") + valueStyle.Render(template))
	b.WriteString("  ")
	b.WriteString(labelStyle.Render(l10n.T("Mode")+": ") + valueStyle.Render(m.mode.String()))
	b.WriteString("  ")
	b.WriteString(labelStyle.Render(l10n.T("Size")+": ") + valueStyle.Render(fmt.Sprintf("%g", snap.FontSize)))
	b.WriteString("  ")
	b.WriteString(labelStyle.Render(m.cursor.String()))
	b.WriteString("\n\n")

	b.WriteString(m.preview)
	b.WriteString("\n")

	if m.mode == meme.ModeClassic {
		b.WriteString(m.fieldLine(fieldTop, l10n.T("Top text"), snap.TopText))
		b.WriteString(m.fieldLine(fieldBottom, l10n.T("Bottom text"), snap.BottomText))
	} else {
		b.WriteString(m.fieldLine(fieldFree, l10n.T("New text"), m.input))
		var texts []string
		for _, item := range m.items {
			texts = append(texts, item.Text)
		}
		b.WriteString(labelStyle.Render(l10n.F("%d texts", len(texts))+": ") + strings.Join(texts, ", ") + "\n")
	}

	if m.alert != "" {
		b.WriteString(alertStyle.Render(m.alert))
	} else {
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(l10n.T("ctrl+n/p template · ctrl+t mode · pgup/pgdn size · enter add · ctrl+x remove · ctrl+s save · esc quit")))
	return b.String()
}

func (m *editModel) fieldLine(f field, label, value string) string {
	marker := "  "
	style := labelStyle
	if m.focus == f {
		marker = "> "
		style = focusStyle
	}
	return style.Render(marker+label+": ") + value + "\n"
}
