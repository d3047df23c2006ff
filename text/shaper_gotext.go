package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// ShapedGlyph is a positioned glyph in font units. X and Y are the glyph
// origin relative to the line origin with y pointing down.
type ShapedGlyph struct {
	GID      GlyphID
	Cluster  int
	X, Y     float64
	XAdvance float64
}

// Shaper provides HarfBuzz-level text shaping using go-text/typesetting.
// Kerning, ligatures and contextual alternates are applied with the
// font's default features.
//
// Shaper is safe for concurrent use. HarfbuzzShaper instances hold
// mutable buffers and are pooled; each Shape call gets its own
// lightweight font.Face over the shared, read-only font.Font.
type Shaper struct {
	pool sync.Pool
}

// NewShaper creates a new Shaper.
func NewShaper() *Shaper {
	return &Shaper{
		pool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

// Shape converts a left-to-right line into positioned glyphs measured in
// font units of src.
func (s *Shaper) Shape(src *FontSource, text string) []ShapedGlyph {
	if text == "" || src == nil {
		return nil
	}
	f := src.shapingFont()
	if f == nil {
		return nil
	}

	// font.Face is NOT safe for concurrent use, so each call gets its own.
	face := gotext.NewFace(f)
	runes := []rune(text)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      face,
		// Shaping at one pixel per font unit keeps positions in font units.
		Size:     fixed.I(src.UnitsPerEm()),
		Script:   detectScript(runes),
		Language: language.NewLanguage("en"),
	}

	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.pool.Put(hb)

	return convertGlyphs(output.Glyphs)
}

// detectScript inspects the runes and returns the script of the first
// non-space character. Mixed-script lines are shaped as one run.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// convertGlyphs accumulates pen positions. HarfBuzz offsets point up, the
// document points down.
func convertGlyphs(glyphs []shaping.Glyph) []ShapedGlyph {
	if len(glyphs) == 0 {
		return nil
	}

	result := make([]ShapedGlyph, len(glyphs))
	var pen float64
	for i, g := range glyphs {
		adv := fixedToFloat64(g.Advance)
		result[i] = ShapedGlyph{
			GID:      GlyphID(uint16(g.GlyphID)), //nolint:gosec // sfnt glyph ids are 16-bit
			Cluster:  g.TextIndex(),
			X:        pen + fixedToFloat64(g.XOffset),
			Y:        -fixedToFloat64(g.YOffset),
			XAdvance: adv,
		}
		pen += adv
	}
	return result
}
