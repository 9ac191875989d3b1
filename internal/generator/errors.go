package generator

import (
	"errors"
	"fmt"
)

// Sentinels for the two ways generation can fail. Both are environmental:
// the identicon pipeline itself cannot fail.
var (
	ErrRender  = errors.New("rendering failed")
	ErrPersist = errors.New("persistence failed")
)

// RenderError reports that the Renderer could not produce an image.
type RenderError struct {
	Input string
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("%s for %q: %v", ErrRender, e.Input, e.Err)
}

// Unwrap returns the underlying error.
func (e *RenderError) Unwrap() error { return e.Err }

// Is reports whether target is ErrRender.
func (e *RenderError) Is(target error) bool { return target == ErrRender }

// PersistError reports that the Persister could not store an image.
type PersistError struct {
	Identifier string
	Err        error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("%s for %q: %v", ErrPersist, e.Identifier, e.Err)
}

// Unwrap returns the underlying error.
func (e *PersistError) Unwrap() error { return e.Err }

// Is reports whether target is ErrPersist.
func (e *PersistError) Is(target error) bool { return target == ErrPersist }
