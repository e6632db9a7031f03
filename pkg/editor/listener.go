package editor

import (
	"github.com/user/memecanvas/pkg/meme"
	"github.com/user/memecanvas/pkg/ports"
)

// NopListener ignores every notification.
type NopListener struct{}

func (NopListener) ListChanged(items []meme.FreeText)    {}
func (NopListener) ModeChanged(mode meme.Mode)           {}
func (NopListener) CursorChanged(cursor meme.Cursor)     {}
func (NopListener) Notice(message string, blocking bool) {}

var _ ports.Listener = NopListener{}
