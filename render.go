package bookmark

import (
	"context"
	"fmt"

	"github.com/gogpu/bookmark/content"
	"github.com/gogpu/bookmark/geom"
	"github.com/gogpu/bookmark/internal/parallel"
	"github.com/gogpu/bookmark/layout"
	"github.com/gogpu/bookmark/rng"
	"github.com/gogpu/bookmark/text"
)

// RenderStats summarizes one render pass.
type RenderStats struct {
	Mode          Mode
	Requested     int // lines or shapes produced by the generator
	Placed        int // lines accepted by the layout, or shapes drawn
	MissingGlyphs int
	Contours      int
	Area          float64
}

// Renderer turns parameter sets into documents.
//
// A Renderer holds only the font, which is read-only after loading, so a
// single Renderer may serve concurrent passes.
type Renderer struct {
	src     *text.FontSource
	lines   *text.LineExtractor
	workers int
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithWorkers sets how many goroutines extract glyph outlines during a
// pass. The default, 1, extracts on the calling goroutine and starts no
// pool; values <= 0 select GOMAXPROCS. The document does not depend on this
// setting.
func WithWorkers(n int) RendererOption {
	return func(r *Renderer) {
		r.workers = n
	}
}

// NewRenderer creates a renderer drawing text with src. A nil src is
// allowed when only shape mode is used.
func NewRenderer(src *text.FontSource, opts ...RendererOption) *Renderer {
	r := &Renderer{src: src, workers: 1}
	for _, opt := range opts {
		opt(r)
	}
	if src != nil {
		r.lines = text.NewLineExtractor(src)
	}
	return r
}

// Font returns the font source, or nil.
func (r *Renderer) Font() *text.FontSource {
	return r.src
}

// Render runs one full pass. Invalid parameters are rejected before any
// geometry is built. Content that produces no outline is not an error;
// the document then carries no outline.
//
// The context is checked between lines and shapes. A cancelled pass
// returns the context error.
func (r *Renderer) Render(ctx context.Context, p Params) (*Document, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.Mode == ModeText && r.lines == nil {
		return nil, ErrNoFont
	}

	log := Logger().With("seed", p.Seed, "mode", string(p.Mode))
	stream := rng.New(p.Seed)
	frame := p.Frame()
	stats := RenderStats{Mode: p.Mode}

	var (
		union *geom.Outline
		err   error
	)
	switch p.Mode {
	case ModeShapes:
		union, err = r.shapes(ctx, stream, p, frame, &stats)
	default:
		union, err = r.text(ctx, stream, p, &stats)
	}
	if err != nil {
		return nil, err
	}

	if union.IsEmpty() {
		log.Warn("bookmark: nothing to draw", "requested", stats.Requested, "placed", stats.Placed)
	} else if p.ClipToFrame {
		union = union.IntersectRect(frame)
		if union.IsEmpty() {
			log.Warn("bookmark: outline lies outside the frame")
		}
	}

	if !union.IsEmpty() {
		stats.Contours = union.Len()
		stats.Area = union.Area()
	}
	log.Debug("bookmark: render done",
		"requested", stats.Requested,
		"placed", stats.Placed,
		"missing", stats.MissingGlyphs,
		"contours", stats.Contours,
		"area", stats.Area,
	)

	doc := &Document{
		Width:       p.Width,
		Height:      p.Height,
		Seed:        p.Seed,
		Background:  p.Background,
		Fill:        p.Fill,
		Stroke:      p.Stroke,
		StrokeWidth: p.StrokeWidth,
		Outline:     union,
		Stats:       stats,
	}
	if p.ShowFrame {
		f := frame
		doc.Frame = &f
	}
	return doc, nil
}

func (r *Renderer) text(ctx context.Context, s *rng.Stream, p Params, stats *RenderStats) (*geom.Outline, error) {
	// Without code lines the document stays empty, header included.
	var lines []string
	if p.Header && p.Lines > 0 {
		lines = content.Header(p.Seed, p.Sketch)
	}
	lines = append(lines, content.Code(s, p.Lines)...)
	stats.Requested = len(lines)

	eng := layout.Engine{
		Metrics:    r.src.VerticalMetrics(),
		FontSize:   p.FontSize,
		LineFactor: p.LineFactor,
		Left:       p.Margins.Left,
		Top:        p.Margins.Top,
		Limit:      p.Limit(),
	}
	placed := eng.Place(lines)
	stats.Placed = len(placed)
	if len(placed) < len(lines) {
		Logger().Debug("bookmark: layout truncated",
			"requested", len(lines), "placed", len(placed), "capacity", eng.Capacity())
	}

	// Lines may be extracted in parallel. They are merged in line order
	// so the union does not depend on scheduling.
	outlines := make([]*geom.Outline, len(placed))
	missing := make([]int, len(placed))
	extract := func(i int) {
		if ctx.Err() != nil {
			return
		}
		pl := placed[i]
		o, ls := r.lines.Outline(pl.Text, p.FontSize, pl.X, pl.Y, p.Precision)
		outlines[i] = o
		missing[i] = ls.Missing
	}
	if r.workers == 1 {
		for i := range placed {
			extract(i)
		}
	} else {
		pool := parallel.NewPool(r.workers)
		pool.ForEach(len(placed), extract)
		pool.Close()
	}

	var comp geom.Compositor
	for i, o := range outlines {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("bookmark: render: %w", err)
		}
		if missing[i] > 0 {
			Logger().Debug("bookmark: missing glyphs", "line", placed[i].Index, "count", missing[i])
		}
		stats.MissingGlyphs += missing[i]
		comp.Add(o)
	}
	return comp.Result(), nil
}

func (r *Renderer) shapes(ctx context.Context, s *rng.Stream, p Params, frame geom.Rect, stats *RenderStats) (*geom.Outline, error) {
	shapes := content.Shapes(s, p.Shapes, frame)
	stats.Requested = len(shapes)

	var comp geom.Compositor
	for _, sh := range shapes {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("bookmark: render: %w", err)
		}
		Logger().Debug("bookmark: shape",
			"kind", sh.Kind.String(), "x", sh.Center.X, "y", sh.Center.Y,
			"size", sh.Size, "rotation", sh.Rotation)
		comp.AddPath(sh.Path())
	}
	stats.Placed = comp.Len()
	return comp.Result(), nil
}
