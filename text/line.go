package text

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/bookmark/geom"
	"github.com/gogpu/bookmark/internal/cache"
)

// LineStats describes one extracted line.
type LineStats struct {
	// Glyphs is the number of shaped glyphs, including blanks.
	Glyphs int

	// Missing counts glyphs skipped because the font has no outline for
	// them (.notdef) or their outline failed to load.
	Missing int

	// Advance is the line width in document units.
	Advance float64
}

// LineExtractor converts lines of text into glyph outline paths.
// It is safe for concurrent use.
type LineExtractor struct {
	src    *FontSource
	shaper *Shaper

	// Shaped runs by normalized text. Runs are in font units, so one
	// entry serves every size and position.
	runs *cache.Sharded[string, []ShapedGlyph]
}

// NewLineExtractor returns an extractor for src.
func NewLineExtractor(src *FontSource) *LineExtractor {
	return &LineExtractor{
		src:    src,
		shaper: NewShaper(),
		runs:   cache.NewSharded[string, []ShapedGlyph](runCacheCapacity, cache.StringHasher),
	}
}

// runCacheCapacity is per shard.
const runCacheCapacity = 32

// RunCacheStats reports hits and misses of the shaped-run cache.
func (e *LineExtractor) RunCacheStats() cache.Stats {
	return e.runs.Stats()
}

// Source returns the font the extractor reads.
func (e *LineExtractor) Source() *FontSource {
	return e.src
}

// Line shapes s and returns the outline of every glyph placed on the
// baseline starting at (x, y), at font size size. Coordinates are rounded
// to precision decimals and every contour is closed.
//
// Missing glyphs keep their advance and are reported in LineStats rather
// than as errors. Blank lines produce an empty path.
func (e *LineExtractor) Line(s string, size, x, y float64, precision int) (*geom.Path, LineStats) {
	path := geom.NewPath()
	stats := e.each(s, size, x, y, precision, func() *geom.Path { return path })
	return path, stats
}

// Outline is Line resolved into a fillable region. Each glyph is filled
// with the non-zero rule on its own and the glyphs are then unioned, so
// overlapping strokes and neighbours that touch keep all their ink.
// Blank lines return nil.
func (e *LineExtractor) Outline(s string, size, x, y float64, precision int) (*geom.Outline, LineStats) {
	var glyphs []*geom.Path
	stats := e.each(s, size, x, y, precision, func() *geom.Path {
		p := geom.NewPath()
		glyphs = append(glyphs, p)
		return p
	})
	outlines := make([]*geom.Outline, len(glyphs))
	for i, p := range glyphs {
		outlines[i] = geom.NewNonZeroOutline(p)
	}
	return geom.UnionTree(outlines...), stats
}

// each shapes s and appends every drawable glyph to the path returned by
// target.
func (e *LineExtractor) each(s string, size, x, y float64, precision int, target func() *geom.Path) LineStats {
	var stats LineStats

	s = norm.NFC.String(s)
	if strings.TrimSpace(s) == "" {
		return stats
	}

	scale := size / float64(e.src.UnitsPerEm())
	glyphs := e.runs.GetOrCreate(s, func() []ShapedGlyph {
		return e.shaper.Shape(e.src, s)
	})
	stats.Glyphs = len(glyphs)

	for _, g := range glyphs {
		stats.Advance += g.XAdvance * scale
		if g.GID == 0 {
			stats.Missing++
			continue
		}
		outline, err := e.src.Glyph(g.GID)
		if err != nil {
			stats.Missing++
			continue
		}
		if outline.IsEmpty() {
			continue
		}
		outline.AppendTo(target(), Placement{
			Scale:     scale,
			OriginX:   x + g.X*scale,
			OriginY:   y + g.Y*scale,
			Precision: precision,
		})
	}
	return stats
}
