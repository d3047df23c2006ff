package text

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/gogpu/bookmark/internal/cache"
)

// FontSource represents a loaded font file.
// FontSource is heavyweight and should be shared across render passes.
//
// FontSource is safe for concurrent use. Font data is read-only after
// creation; decoded glyph outlines are cached per glyph id.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection (Ebitengine pattern).
	// It must point to the FontSource itself.
	addr *FontSource

	data    []byte
	parsed  ParsedFont
	shaping *gotext.Font // go-text view of data, read-only
	metrics VerticalMetrics
	name    string

	glyphs *cache.Sharded[uint32, glyphResult]

	mu     sync.RWMutex
	closed bool
}

// glyphResult caches failures too, so a broken glyph is decoded once.
type glyphResult struct {
	outline *GlyphOutline
	err     error
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	parsed, err := config.parser.Parse(dataCopy)
	if err != nil {
		return nil, err
	}

	metrics, err := parsed.VerticalMetrics()
	if err != nil {
		return nil, err
	}
	if err := metrics.Validate(); err != nil {
		return nil, err
	}

	// ParseTTF returns a *Face which embeds the thread-safe *Font.
	face, err := gotext.ParseTTF(bytes.NewReader(dataCopy))
	if err != nil {
		return nil, &FontError{Op: "parse for shaping", Err: err}
	}

	s := &FontSource{
		data:    dataCopy,
		parsed:  parsed,
		shaping: face.Font,
		metrics: metrics,
		glyphs:  cache.NewSharded[uint32, glyphResult](config.cacheCapacity, cache.Uint32Hasher),
	}
	s.addr = s // Self-reference for copy detection
	s.name = extractFontName(parsed)

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	return NewFontSource(data, opts...)
}

// DefaultFontSource loads Go Mono, the font used when none is configured.
func DefaultFontSource(opts ...SourceOption) (*FontSource, error) {
	return NewFontSource(gomono.TTF, opts...)
}

// Name returns the font name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Parsed returns the parsed font for advanced operations.
func (s *FontSource) Parsed() ParsedFont {
	s.copyCheck()
	return s.parsed
}

// VerticalMetrics returns ascender, descender and units per em.
func (s *FontSource) VerticalMetrics() VerticalMetrics {
	s.copyCheck()
	return s.metrics
}

// UnitsPerEm returns the size of the em square in font units.
func (s *FontSource) UnitsPerEm() int {
	return s.VerticalMetrics().UnitsPerEm
}

// Glyph returns the outline of gid in font units. Results, including
// failures, are cached.
func (s *FontSource) Glyph(gid GlyphID) (*GlyphOutline, error) {
	s.copyCheck()

	s.mu.RLock()
	closed := s.closed
	s.mu.RUnlock()
	if closed {
		return nil, ErrFontClosed
	}

	r := s.glyphs.GetOrCreate(uint32(gid), func() glyphResult {
		o, err := s.parsed.LoadGlyph(gid)
		return glyphResult{outline: o, err: err}
	})
	return r.outline, r.err
}

// CacheStats reports glyph cache counters.
func (s *FontSource) CacheStats() cache.Stats {
	s.copyCheck()
	return s.glyphs.Stats()
}

// shapingFont returns the go-text font, or nil once closed.
func (s *FontSource) shapingFont() *gotext.Font {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil
	}
	return s.shaping
}

// Close releases the font data and the glyph cache. Further calls to
// Glyph return ErrFontClosed.
func (s *FontSource) Close() error {
	s.copyCheck()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.data = nil
	s.shaping = nil
	s.glyphs.Clear()

	return nil
}

// copyCheck panics if FontSource was copied by value.
// This is the Ebitengine pattern for preventing accidental copies.
func (s *FontSource) copyCheck() {
	if s == nil {
		panic("text: FontSource is nil, check the error from NewFontSource")
	}
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// extractFontName extracts the font family name from the parsed font.
func extractFontName(parsed ParsedFont) string {
	if name := parsed.Name(); name != "" {
		return name
	}
	if fullName := parsed.FullName(); fullName != "" {
		return fullName
	}
	return "Unknown Font"
}
