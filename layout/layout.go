// Package layout places text lines on successive baselines inside a
// bounded column.
package layout

import (
	"fmt"

	"github.com/gogpu/bookmark/text"
)

// Engine computes baselines for a column of text.
//
// Lines start at Left. The first baseline sits one ascent below Top, and
// each following baseline is LineHeight further down. A line is placed
// only while its descender stays at or above Limit; the first line that
// would cross it ends the layout and it and every later line are dropped.
type Engine struct {
	Metrics    text.VerticalMetrics
	FontSize   float64
	LineFactor float64

	Left  float64
	Top   float64
	Limit float64
}

// Placement is a line accepted by the engine.
type Placement struct {
	Index int // position in the input
	Text  string
	X, Y  float64 // baseline origin
}

// Validate reports whether the engine can place lines.
func (e Engine) Validate() error {
	if err := e.Metrics.Validate(); err != nil {
		return err
	}
	if e.FontSize <= 0 {
		return fmt.Errorf("layout: font size must be positive, got %v", e.FontSize)
	}
	if e.LineFactor <= 0 {
		return fmt.Errorf("layout: line factor must be positive, got %v", e.LineFactor)
	}
	return nil
}

// LineHeight returns the distance between consecutive baselines.
func (e Engine) LineHeight() float64 {
	return e.Metrics.Height(e.FontSize) * e.LineFactor
}

// FirstBaseline returns the baseline of the first line.
func (e Engine) FirstBaseline() float64 {
	return e.Top + e.Metrics.Ascent(e.FontSize)
}

// Descent returns how far glyphs reach below their baseline.
func (e Engine) Descent() float64 {
	return e.Metrics.Descent(e.FontSize)
}

// Baseline returns the baseline of the i-th line (0-based). Baselines are
// computed from the first one rather than accumulated, so long columns do
// not drift.
func (e Engine) Baseline(i int) float64 {
	return e.FirstBaseline() + float64(i)*e.LineHeight()
}

// fits reports whether a line on baseline y keeps its descender within
// Limit.
func (e Engine) fits(y float64) bool {
	return y+e.Descent() <= e.Limit
}

// Capacity returns how many lines fit in the column.
func (e Engine) Capacity() int {
	if e.Validate() != nil || !e.fits(e.FirstBaseline()) {
		return 0
	}
	n := 1
	for e.fits(e.Baseline(n)) {
		n++
	}
	return n
}

// Place lays out lines in order and returns the accepted prefix.
// An invalid engine places nothing.
func (e Engine) Place(lines []string) []Placement {
	if len(lines) == 0 || e.Validate() != nil {
		return nil
	}

	st := state{engine: e, remaining: lines}
	var out []Placement
	for {
		p, ok := st.next()
		if !ok {
			break
		}
		out = append(out, p)
	}
	return out
}

// state is the layout state machine: the next baseline and the lines not
// yet placed. It halts when the input is exhausted or the column is full.
type state struct {
	engine    Engine
	index     int
	remaining []string
	halted    bool
}

func (s *state) next() (Placement, bool) {
	if s.halted || len(s.remaining) == 0 {
		return Placement{}, false
	}
	y := s.engine.Baseline(s.index)
	if !s.engine.fits(y) {
		s.halted = true
		s.remaining = nil
		return Placement{}, false
	}
	p := Placement{
		Index: s.index,
		Text:  s.remaining[0],
		X:     s.engine.Left,
		Y:     y,
	}
	s.index++
	s.remaining = s.remaining[1:]
	return p, true
}
