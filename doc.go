// Package bookmark generates printable bookmarks as SVG documents.
//
// # Overview
//
// One render pass turns an immutable Params snapshot into a Document:
//
//	seed -> content -> glyph outlines -> union -> clip to frame -> SVG
//
// In text mode the content is deterministic fake source code, laid out on
// baselines and converted to glyph outlines. In shape mode it is four
// organic shapes sampled from a seeded noise field. Either way the
// outlines are merged into one silhouette and optionally clipped to the
// margin frame.
//
// # Quick Start
//
//	src, err := text.DefaultFontSource()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r := bookmark.NewRenderer(src)
//
//	p := bookmark.DefaultParams()
//	p.Seed = "K7mXq2Pz9BcDeF"
//	doc, err := r.Render(context.Background(), p)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	doc.WriteSVG(os.Stdout)
//
// # Determinism
//
// Equal parameters and font produce byte-identical documents on every
// platform. The random stream is Alea over float64 arithmetic and every
// consumer draws from it in a fixed order.
//
// # Coordinate System
//
// Document units are millimeters and match the viewBox:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Rotations in degrees, positive turns clockwise on the page
package bookmark

// Version information
const (
	// Version is the current version of the module
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
