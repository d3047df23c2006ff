package text

// FontParser is an interface for font parsing backends.
//
// The default implementation uses golang.org/x/image/font/opentype.
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont represents a parsed font file.
// Implementations must be safe for concurrent use.
type ParsedFont interface {
	// Name returns the font family name.
	// Returns empty string if not available.
	Name() string

	// FullName returns the full font name.
	// Returns empty string if not available.
	FullName() string

	// NumGlyphs returns the number of glyphs in the font.
	NumGlyphs() int

	// UnitsPerEm returns the units per em for the font.
	UnitsPerEm() int

	// GlyphIndex returns the glyph index for a rune.
	// Returns 0 if the glyph is not found.
	GlyphIndex(r rune) GlyphID

	// VerticalMetrics returns ascender and descender in font units.
	VerticalMetrics() (VerticalMetrics, error)

	// LoadGlyph returns the outline of a glyph in font units, y down.
	LoadGlyph(gid GlyphID) (*GlyphOutline, error)
}

// defaultParser is used by NewFontSource unless WithParser is given.
var defaultParser FontParser = &ximageParser{}
