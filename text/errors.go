package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrFontClosed is returned by a FontSource after Close.
	ErrFontClosed = errors.New("text: font source is closed")

	// ErrInvalidMetrics is returned for fonts whose vertical metrics cannot
	// drive line layout (non-positive ascender or units per em).
	ErrInvalidMetrics = errors.New("text: invalid vertical metrics")

	// ErrGlyphNotFound is returned for glyph ids outside the font.
	ErrGlyphNotFound = errors.New("text: glyph not found")
)

// FontError wraps a failure of the font backend.
type FontError struct {
	Op  string
	Err error
}

func (e *FontError) Error() string {
	return "text: " + e.Op + ": " + e.Err.Error()
}

func (e *FontError) Unwrap() error {
	return e.Err
}
