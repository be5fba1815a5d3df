package errors

import "errors"

var (
	ErrAlreadyExists  = errors.New("already exists")
	ErrNotFound       = errors.New("not found")
	ErrNoBoard        = errors.New("no destination board")
	ErrColumnNotFound = errors.New("column not found")
	ErrUnclassified   = errors.New("order not classifiable")
	ErrTagsNotReady   = errors.New("tags not ready")
)
