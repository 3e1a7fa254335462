package note

import "errors"

var (
	ErrNoteNotFound   = errors.New("note not found")
	ErrNotNoteCreator = errors.New("only the note creator may modify it")
)
