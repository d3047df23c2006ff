package bookmark

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the renderer.
var (
	// ErrSuperseded is returned by Regenerator.Regenerate when a newer
	// request started before the pass finished.
	ErrSuperseded = errors.New("bookmark: render superseded by a newer request")

	// ErrNoFont is returned when a text-mode pass has no font source.
	ErrNoFont = errors.New("bookmark: renderer has no font source")
)

// ParamError describes one invalid field of a Params value.
type ParamError struct {
	Field  string
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("bookmark: invalid %s: %s", e.Field, e.Reason)
}

func paramErr(field, format string, args ...any) error {
	return &ParamError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
