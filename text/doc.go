// Package text turns lines of text into filled glyph outlines.
//
// The pipeline has three parts:
//
//   - FontSource: heavyweight, shared font resource. Parses TTF/OTF data
//     once, reports vertical metrics and caches decoded glyph outlines.
//   - Shaper: HarfBuzz shaping through go-text/typesetting. Applies
//     kerning and ligatures and returns positioned glyph ids.
//   - LineExtractor: shapes one line, loads each glyph outline, scales it
//     to the requested size and places it at a baseline origin.
//
// # Example usage
//
//	src, err := text.NewFontSourceFromFile("JetBrainsMono-Thin.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer src.Close()
//
//	ex := text.NewLineExtractor(src)
//	path, stats := ex.Line("const seed = 1;", 3, 2, 5.2, 2)
//
// # Coordinates
//
// Outlines are produced in document space: origin top-left, y down. Font
// units are converted with size / unitsPerEm.
//
// # Font parsing
//
// Font files are parsed through the FontParser interface. The default
// backend is golang.org/x/image/font/opentype. Shaping parses the same
// bytes a second time with go-text/typesetting; glyph ids agree because
// both read the font's own glyph order.
package text
