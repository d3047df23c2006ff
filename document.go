package bookmark

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo"

	"github.com/gogpu/bookmark/geom"
)

// Debug frame style.
const (
	frameStroke    = "#ff00ff"
	frameDashArray = "2,2"
)

// Document is a finished bookmark: page size, colors and the clipped
// outline. Lengths are millimeters, which are also the viewBox units.
type Document struct {
	Width, Height float64
	Seed          string

	Background  string
	Fill        string
	Stroke      string
	StrokeWidth float64

	// Outline is nil when the content produced nothing to draw.
	Outline *geom.Outline

	// Frame is set when the debug frame should be drawn.
	Frame *geom.Rect

	Stats RenderStats
}

// WriteSVG serializes the document. Equal documents produce equal bytes.
func (d *Document) WriteSVG(w io.Writer) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)

	width, height := num(d.Width), num(d.Height)
	canvas.Startraw(
		`id="bookmark"`,
		fmt.Sprintf(`width="%smm"`, width),
		fmt.Sprintf(`height="%smm"`, height),
		fmt.Sprintf(`viewBox="0 0 %s %s"`, width, height),
	)
	canvas.Desc("seed " + d.Seed)

	if painted(d.Background) {
		canvas.Path(rectData(geom.XYWH(0, 0, d.Width, d.Height)), attr("fill", d.Background))
	}
	if d.Frame != nil {
		canvas.Path(rectData(*d.Frame),
			`fill="none"`,
			attr("stroke", frameStroke),
			attr("stroke-dasharray", frameDashArray),
		)
	}
	if !d.Outline.IsEmpty() {
		attrs := []string{`fill-rule="evenodd"`}
		if painted(d.Fill) {
			attrs = append(attrs, attr("fill", d.Fill))
		} else {
			attrs = append(attrs, `fill="none"`)
		}
		if d.StrokeWidth > 0 && painted(d.Stroke) {
			attrs = append(attrs, attr("stroke", d.Stroke), attr("stroke-width", num(d.StrokeWidth)))
		}
		canvas.Path(d.Outline.PathData(geom.DocumentPrecision), attrs...)
	}

	canvas.End()
	if ew.err != nil {
		return fmt.Errorf("bookmark: write svg: %w", ew.err)
	}
	return nil
}

// SVG returns the serialized document.
func (d *Document) SVG() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.WriteSVG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// errWriter keeps the first write error; svgo ignores them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

func rectData(r geom.Rect) string {
	x0, y0 := num(r.Min.X), num(r.Min.Y)
	x1, y1 := num(r.Max.X), num(r.Max.Y)
	return fmt.Sprintf("M%s %sL%s %sL%s %sL%s %sZ", x0, y0, x1, y0, x1, y1, x0, y1)
}

func attr(name, value string) string {
	return name + `="` + value + `"`
}

func num(v float64) string {
	return strconv.FormatFloat(geom.RoundCoord(v, geom.DocumentPrecision), 'f', -1, 64)
}
