package ports

import "github.com/user/memecanvas/pkg/meme"

// Listener receives change notifications from the editor so a host UI can
// refresh the parts it draws itself. Calls are made after the editor has
// released its lock, so a listener may call back into the editor.
type Listener interface {
	// ListChanged is called after a Free mode caption is added or removed.
	ListChanged(items []meme.FreeText)

	// ModeChanged is called after the placement mode switches.
	ModeChanged(mode meme.Mode)

	// CursorChanged is called when the pointer cue over the surface changes.
	CursorChanged(cursor meme.Cursor)

	// Notice carries a message for the user. blocking is true when the
	// user must acknowledge it before continuing, as with a failed export.
	Notice(message string, blocking bool)
}
