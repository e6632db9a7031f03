package editor

import "errors"

var (
	// ErrUnknownTemplate is returned by SelectTemplate for an id the
	// catalog does not know. The editor state is left untouched.
	ErrUnknownTemplate = errors.New("unknown template")

	// ErrNoImage is returned by Export when no background is loaded.
	ErrNoImage = errors.New("no template selected")
)
