// Package geom provides the planar geometry used by the bookmark pipeline.
//
// # Overview
//
// Geometry flows through two representations:
//   - Path: a sequence of MoveTo/LineTo/QuadTo/CubicTo/Close elements, as
//     produced by glyph outlines and shape builders.
//   - Outline: a flattened region made of non-crossing contours, the
//     operand type of the boolean operations.
//
// A Path becomes an Outline through NewNonZeroOutline (glyphs and shapes)
// or NewOutline (even-odd paths), both of which flatten curves with
// FlattenTolerance. Outlines are combined with Union, Difference and
// Intersect and accumulated with a Compositor.
//
// # Coordinate System
//
// Same convention as the output document:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// All numerical tolerances are declared in tolerance.go.
package geom
