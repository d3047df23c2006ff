package content

import "fmt"

// DefaultSketch is the sketch title printed in the header.
const DefaultSketch = "001 - Bookmark"

// Studio is the signature printed on the first header line.
const Studio = `tekh.studio("hny-2026")`

// Header returns the lines printed above the generated code. They carry the
// seed so a printed bookmark can be regenerated.
func Header(seed, sketch string) []string {
	if sketch == "" {
		sketch = DefaultSketch
	}
	return []string{
		Studio,
		fmt.Sprintf("const seed = %q", seed),
		fmt.Sprintf("const sketch = %q", sketch),
	}
}
