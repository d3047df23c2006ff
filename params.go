package bookmark

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/bookmark/content"
	"github.com/gogpu/bookmark/geom"
)

// Mode selects what fills the bookmark.
type Mode string

const (
	// ModeText fills the frame with generated source code.
	ModeText Mode = "text"

	// ModeShapes places four organic shapes driven by a noise field.
	ModeShapes Mode = "shapes"
)

// MaxPrecision is the largest number of decimals a coordinate may keep.
const MaxPrecision = 8

// Margins are the distances from the page edges to the frame, in mm.
type Margins struct {
	Top    float64 `toml:"top"`
	Right  float64 `toml:"right"`
	Bottom float64 `toml:"bottom"`
	Left   float64 `toml:"left"`
}

// Params is the full input of one render pass. A pass never mutates it.
type Params struct {
	Seed string `toml:"seed"`
	Mode Mode   `toml:"mode"`

	Width   float64 `toml:"width"`
	Height  float64 `toml:"height"`
	Margins Margins `toml:"margins"`

	Lines      int     `toml:"lines"`
	FontSize   float64 `toml:"font_size"`
	LineFactor float64 `toml:"line_factor"`
	Precision  int     `toml:"precision"`
	Header     bool    `toml:"header"` // ignored when Lines is 0
	Sketch     string  `toml:"sketch"`

	Background  string  `toml:"background"`
	Fill        string  `toml:"fill"`
	Stroke      string  `toml:"stroke"`
	StrokeWidth float64 `toml:"stroke_width"`

	ClipToFrame bool `toml:"clip_to_frame"`
	ShowFrame   bool `toml:"show_frame"`

	Shapes content.ShapeParams `toml:"shapes"`
}

// DefaultParams returns the settings of the printed bookmark: 48 by 164 mm
// with a wider bottom margin for the hole punch.
func DefaultParams() Params {
	return Params{
		Mode:        ModeText,
		Width:       48,
		Height:      164,
		Margins:     Margins{Top: 2, Right: 2, Bottom: 18, Left: 2},
		Lines:       56,
		FontSize:    3,
		LineFactor:  1.2,
		Precision:   2,
		Header:      true,
		Sketch:      content.DefaultSketch,
		Background:  "#f5f5f5",
		Fill:        "#151515",
		ClipToFrame: true,
		Shapes:      content.DefaultShapeParams(),
	}
}

// Frame returns the margin-inset drawing area.
func (p Params) Frame() geom.Rect {
	return geom.NewRect(
		geom.Pt(p.Margins.Left, p.Margins.Top),
		geom.Pt(p.Width-p.Margins.Right, p.Height-p.Margins.Bottom),
	)
}

// Limit returns the lowest y a descender may reach.
func (p Params) Limit() float64 {
	return p.Height - p.Margins.Bottom
}

// Validate checks every field and returns all problems joined together.
// Each problem is a *ParamError.
func (p Params) Validate() error {
	var errs []error
	add := func(err error) { errs = append(errs, err) }

	if p.Seed == "" {
		add(paramErr("seed", "must not be empty"))
	}
	switch p.Mode {
	case ModeText, ModeShapes:
	default:
		add(paramErr("mode", "must be %q or %q, got %q", ModeText, ModeShapes, p.Mode))
	}

	if !positive(p.Width) {
		add(paramErr("width", "must be positive, got %v", p.Width))
	}
	if !positive(p.Height) {
		add(paramErr("height", "must be positive, got %v", p.Height))
	}
	marginsOK := true
	for _, m := range []struct {
		name string
		v    float64
	}{
		{"margins.top", p.Margins.Top},
		{"margins.right", p.Margins.Right},
		{"margins.bottom", p.Margins.Bottom},
		{"margins.left", p.Margins.Left},
	} {
		if math.IsNaN(m.v) || math.IsInf(m.v, 0) || m.v < 0 {
			add(paramErr(m.name, "must be a non-negative number, got %v", m.v))
			marginsOK = false
		}
	}
	if marginsOK && positive(p.Width) && positive(p.Height) {
		w := p.Width - p.Margins.Left - p.Margins.Right
		h := p.Height - p.Margins.Top - p.Margins.Bottom
		if w <= 0 || h <= 0 {
			add(paramErr("margins", "leave no drawable area (%vx%v)", w, h))
		}
	}

	if p.Lines < 0 {
		add(paramErr("lines", "must not be negative, got %d", p.Lines))
	}
	if !positive(p.FontSize) {
		add(paramErr("font_size", "must be positive, got %v", p.FontSize))
	}
	if !positive(p.LineFactor) {
		add(paramErr("line_factor", "must be positive, got %v", p.LineFactor))
	}
	if p.Precision < 0 || p.Precision > MaxPrecision {
		add(paramErr("precision", "must be in [0, %d], got %d", MaxPrecision, p.Precision))
	}

	for _, c := range []struct {
		name, v string
	}{
		{"background", p.Background},
		{"fill", p.Fill},
		{"stroke", p.Stroke},
	} {
		if !validColor(c.v) {
			add(paramErr(c.name, "not a hex color: %q", c.v))
		}
	}
	if math.IsNaN(p.StrokeWidth) || math.IsInf(p.StrokeWidth, 0) || p.StrokeWidth < 0 {
		add(paramErr("stroke_width", "must be a non-negative number, got %v", p.StrokeWidth))
	}

	if p.Mode == ModeShapes {
		if err := p.Shapes.Validate(); err != nil {
			add(paramErr("shapes", "%v", err))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("bookmark: invalid parameters: %w", errors.Join(errs...))
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// validColor accepts an empty string or "none" for "not painted", and any
// hex color go-colorful understands.
func validColor(s string) bool {
	if s == "" || strings.EqualFold(s, "none") {
		return true
	}
	_, err := colorful.Hex(s)
	return err == nil
}

// painted reports whether a color string paints anything.
func painted(s string) bool {
	return s != "" && !strings.EqualFold(s, "none")
}
