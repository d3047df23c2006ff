package text

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &ximageParsedFont{
		font: f,
		bufs: sync.Pool{New: func() any { return new(sfnt.Buffer) }},
	}, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
//
// sfnt.Font is safe for concurrent use as long as every call gets its own
// sfnt.Buffer, so buffers are pooled.
type ximageParsedFont struct {
	font *opentype.Font
	bufs sync.Pool
}

// Name implements ParsedFont.Name.
func (f *ximageParsedFont) Name() string {
	if name, err := f.font.Name(nil, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

// FullName implements ParsedFont.FullName.
func (f *ximageParsedFont) FullName() string {
	if name, err := f.font.Name(nil, sfnt.NameIDFull); err == nil {
		return name
	}
	return ""
}

// NumGlyphs implements ParsedFont.NumGlyphs.
func (f *ximageParsedFont) NumGlyphs() int {
	return f.font.NumGlyphs()
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *ximageParsedFont) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

// unitsPPEM is the ppem at which sfnt reports values in font units.
func (f *ximageParsedFont) unitsPPEM() fixed.Int26_6 {
	return fixed.I(f.UnitsPerEm())
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *ximageParsedFont) GlyphIndex(r rune) GlyphID {
	buf := f.bufs.Get().(*sfnt.Buffer)
	defer f.bufs.Put(buf)

	idx, err := f.font.GlyphIndex(buf, r)
	if err != nil {
		return 0
	}
	return GlyphID(idx)
}

// VerticalMetrics implements ParsedFont.VerticalMetrics.
func (f *ximageParsedFont) VerticalMetrics() (VerticalMetrics, error) {
	buf := f.bufs.Get().(*sfnt.Buffer)
	defer f.bufs.Put(buf)

	m, err := f.font.Metrics(buf, f.unitsPPEM(), font.HintingNone)
	if err != nil {
		return VerticalMetrics{}, &FontError{Op: "metrics", Err: err}
	}
	return VerticalMetrics{
		Ascender:   fixedToFloat64(m.Ascent),
		Descender:  -fixedToFloat64(m.Descent),
		UnitsPerEm: f.UnitsPerEm(),
	}, nil
}

// LoadGlyph implements ParsedFont.LoadGlyph.
func (f *ximageParsedFont) LoadGlyph(gid GlyphID) (*GlyphOutline, error) {
	if int(gid) >= f.font.NumGlyphs() {
		return nil, ErrGlyphNotFound
	}

	buf := f.bufs.Get().(*sfnt.Buffer)
	defer f.bufs.Put(buf)

	ppem := f.unitsPPEM()
	segments, err := f.font.LoadGlyph(buf, sfnt.GlyphIndex(gid), ppem, nil)
	if err != nil {
		if errors.Is(err, sfnt.ErrNotFound) {
			return nil, ErrGlyphNotFound
		}
		// ErrColoredGlyph and malformed outlines land here.
		return nil, &FontError{Op: "load glyph", Err: err}
	}

	advance, err := f.font.GlyphAdvance(buf, sfnt.GlyphIndex(gid), ppem, font.HintingNone)
	if err != nil {
		return nil, &FontError{Op: "glyph advance", Err: err}
	}

	outline := &GlyphOutline{
		Segments: make([]OutlineSegment, 0, len(segments)),
		Advance:  fixedToFloat64(advance),
		GID:      gid,
	}
	for _, seg := range segments {
		var out OutlineSegment
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			out.Op = OutlineOpMoveTo
			out.Points[0] = fixedPointToOutline(seg.Args[0])
		case sfnt.SegmentOpLineTo:
			out.Op = OutlineOpLineTo
			out.Points[0] = fixedPointToOutline(seg.Args[0])
		case sfnt.SegmentOpQuadTo:
			out.Op = OutlineOpQuadTo
			out.Points[0] = fixedPointToOutline(seg.Args[0]) // Control
			out.Points[1] = fixedPointToOutline(seg.Args[1]) // Target
		case sfnt.SegmentOpCubeTo:
			out.Op = OutlineOpCubicTo
			out.Points[0] = fixedPointToOutline(seg.Args[0]) // Control 1
			out.Points[1] = fixedPointToOutline(seg.Args[1]) // Control 2
			out.Points[2] = fixedPointToOutline(seg.Args[2]) // Target
		default:
			continue
		}
		outline.Segments = append(outline.Segments, out)
	}
	return outline, nil
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}

// fixedPointToOutline converts a fixed.Point26_6 to OutlinePoint.
func fixedPointToOutline(p fixed.Point26_6) OutlinePoint {
	return OutlinePoint{
		X: fixedToFloat64(p.X),
		Y: fixedToFloat64(p.Y),
	}
}
