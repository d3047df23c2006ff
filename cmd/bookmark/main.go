// Command bookmark renders procedural code bookmarks as SVG.
//
// Usage:
//
//	bookmark init                   # write bookmark.toml with a fresh seed
//	bookmark render -o out.svg      # render it
//	bookmark watch -o out.svg       # re-render on every save
//	bookmark render --seed abc123 --frame > debug.svg
package main

import (
	"os"

	"github.com/gogpu/bookmark/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
